package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"opsboard/internal/export"
	"opsboard/internal/port"
)

// ExportService renders project data into downloadable files.
type ExportService interface {
	MilestonesCSV(ctx context.Context, projectID uuid.UUID) ([]byte, string, error)
	DelayReportXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, string, error)
	PORegisterXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, string, error)
}

type exportService struct {
	projectRepo   port.ProjectRepository
	milestoneRepo port.MilestoneRepository
	delayLogRepo  port.DelayLogRepository
	poRepo        port.PurchaseOrderRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	projectRepo port.ProjectRepository,
	milestoneRepo port.MilestoneRepository,
	delayLogRepo port.DelayLogRepository,
	poRepo port.PurchaseOrderRepository,
) ExportService {
	return &exportService{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		delayLogRepo:  delayLogRepo,
		poRepo:        poRepo,
	}
}

// MilestonesCSV renders the project's milestones as a BOM-prefixed CSV and
// returns the bytes plus a suggested filename.
func (s *exportService) MilestonesCSV(ctx context.Context, projectID uuid.UUID) ([]byte, string, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(export.BOM)
	w := export.NewMilestoneWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("exportService.MilestonesCSV header: %w", err)
	}
	if err := w.WriteMilestones(milestones); err != nil {
		return nil, "", fmt.Errorf("exportService.MilestonesCSV rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("exportService.MilestonesCSV flush: %w", err)
	}

	return buf.Bytes(), fmt.Sprintf("%s-milestones.csv", project.Code), nil
}

// DelayReportXLSX renders the project's delay log as an XLSX workbook.
func (s *exportService) DelayReportXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, string, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	entries, err := s.delayLogRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	f, err := export.DelayReport(project.Name, entries)
	if err != nil {
		return nil, "", fmt.Errorf("exportService.DelayReportXLSX: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("exportService.DelayReportXLSX write: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("%s-delay-report.xlsx", project.Code), nil
}

// PORegisterXLSX renders the project's purchase orders as an XLSX register.
func (s *exportService) PORegisterXLSX(ctx context.Context, projectID uuid.UUID) ([]byte, string, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, "", err
	}
	pos, _, err := s.poRepo.ListByProject(ctx, projectID, 0, 10000)
	if err != nil {
		return nil, "", err
	}

	f, err := export.PORegister(pos)
	if err != nil {
		return nil, "", fmt.Errorf("exportService.PORegisterXLSX: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("exportService.PORegisterXLSX write: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("%s-po-register.xlsx", project.Code), nil
}
