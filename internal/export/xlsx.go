package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"opsboard/internal/domain"
)

// DelayReport renders a project's delay log as an XLSX workbook.
func DelayReport(projectName string, entries []domain.DelayLogEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Delay Log"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Logged At", "Milestone ID", "Previous Date", "New Date", "Delta Days", "Attribution", "Reason"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("delay report header: %w", err)
		}
	}

	for r, e := range entries {
		values := []interface{}{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.MilestoneID.String(),
			e.PreviousDate.Format("2006-01-02"),
			e.NewDate.Format("2006-01-02"),
			e.DeltaDays,
			string(e.Attribution),
			e.Reason,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("delay report row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SetCellValue(sheet, "I1", "Project"); err != nil {
		return nil, fmt.Errorf("delay report meta: %w", err)
	}
	if err := f.SetCellValue(sheet, "J1", projectName); err != nil {
		return nil, fmt.Errorf("delay report meta: %w", err)
	}
	return f, nil
}

// PORegister renders purchase orders as an XLSX register with one row per PO.
func PORegister(pos []domain.PurchaseOrder) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "PO Register"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"PO Number", "Status", "Tax Type", "Tax Rate", "Subtotal", "CGST", "SGST", "IGST", "Total", "Amount In Words", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("po register header: %w", err)
		}
	}

	deref := func(v *float64) interface{} {
		if v == nil {
			return ""
		}
		return *v
	}

	for r, po := range pos {
		values := []interface{}{
			po.PONumber,
			string(po.Status),
			po.TaxType,
			po.TaxRate,
			po.Subtotal,
			deref(po.CGSTAmount),
			deref(po.SGSTAmount),
			deref(po.IGSTAmount),
			po.Total,
			po.AmountInWords,
			po.CreatedAt.Format("2006-01-02"),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("po register row %d: %w", r+1, err)
			}
		}
	}
	return f, nil
}
