package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"opsboard/internal/domain"
	"opsboard/internal/schedule"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility
// on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// milestoneColumns defines the milestone CSV header row.
var milestoneColumns = []string{
	"Milestone",
	"Status",
	"Original End Date",
	"Current End Date",
	"Slip Days",
	"Completed At",
}

// MilestoneWriter exports a project's milestones as CSV.
type MilestoneWriter struct {
	csv *csv.Writer
}

// NewMilestoneWriter creates a MilestoneWriter that writes CSV to w.
func NewMilestoneWriter(w io.Writer) *MilestoneWriter {
	return &MilestoneWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *MilestoneWriter) WriteHeader() error {
	return w.csv.Write(milestoneColumns)
}

// WriteMilestones converts milestones to CSV rows and writes them.
func (w *MilestoneWriter) WriteMilestones(milestones []domain.Milestone) error {
	for i := range milestones {
		if err := w.csv.Write(milestoneToRow(&milestones[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *MilestoneWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *MilestoneWriter) Error() error {
	return w.csv.Error()
}

func milestoneToRow(m *domain.Milestone) []string {
	row := make([]string, len(milestoneColumns))
	row[0] = m.Name
	row[1] = string(m.Status)
	if m.OriginalEndDate != nil {
		row[2] = m.OriginalEndDate.Format("2006-01-02")
	}
	if m.CurrentEndDate != nil {
		row[3] = m.CurrentEndDate.Format("2006-01-02")
	}
	if m.OriginalEndDate != nil && m.CurrentEndDate != nil {
		row[4] = fmt.Sprintf("%d", schedule.DayDelta(*m.OriginalEndDate, *m.CurrentEndDate))
	}
	if m.CompletedAt != nil {
		row[5] = m.CompletedAt.Format("2006-01-02")
	}
	return row
}
