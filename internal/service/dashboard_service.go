package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/port"
	"opsboard/internal/schedule"
)

// POSpendSummary aggregates purchase order spend on a project.
type POSpendSummary struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
}

// ProjectDashboard is the derived operations view of one project.
type ProjectDashboard struct {
	Project      *domain.Project        `json:"project"`
	DelayStats   schedule.DelayStats    `json:"delay_stats"`
	CascadeRisks []schedule.CascadeRisk `json:"cascade_risks"`
	BOMCost      float64                `json:"bom_estimated_cost"`
	POSpend      POSpendSummary         `json:"po_spend"`
}

// DashboardService assembles read-only project overviews.
type DashboardService interface {
	ProjectOverview(ctx context.Context, projectID uuid.UUID) (*ProjectDashboard, error)
	DelayStats(ctx context.Context, projectID uuid.UUID) (*schedule.DelayStats, error)
	CascadeRisks(ctx context.Context, projectID uuid.UUID) ([]schedule.CascadeRisk, error)
}

type dashboardService struct {
	projectRepo   port.ProjectRepository
	milestoneRepo port.MilestoneRepository
	delayLogRepo  port.DelayLogRepository
	bomRepo       port.BOMItemRepository
	poRepo        port.PurchaseOrderRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(
	projectRepo port.ProjectRepository,
	milestoneRepo port.MilestoneRepository,
	delayLogRepo port.DelayLogRepository,
	bomRepo port.BOMItemRepository,
	poRepo port.PurchaseOrderRepository,
) DashboardService {
	return &dashboardService{
		projectRepo:   projectRepo,
		milestoneRepo: milestoneRepo,
		delayLogRepo:  delayLogRepo,
		bomRepo:       bomRepo,
		poRepo:        poRepo,
	}
}

func (s *dashboardService) ProjectOverview(ctx context.Context, projectID uuid.UUID) (*ProjectDashboard, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	entries, err := s.delayLogRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	bomItems, err := s.bomRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var bomCost float64
	for i := range bomItems {
		bomCost += bomItems[i].Quantity * bomItems[i].EstUnitCost
	}

	pos, _, err := s.poRepo.ListByProject(ctx, projectID, 0, 1000)
	if err != nil {
		return nil, err
	}
	spend := POSpendSummary{Count: len(pos)}
	for i := range pos {
		spend.Subtotal += pos[i].Subtotal
		spend.Total += pos[i].Total
	}
	spend.Subtotal = math.Round(spend.Subtotal*100) / 100
	spend.Total = math.Round(spend.Total*100) / 100

	return &ProjectDashboard{
		Project:      project,
		DelayStats:   schedule.Stats(entries),
		CascadeRisks: schedule.CascadeRisks(milestones),
		BOMCost:      math.Round(bomCost*100) / 100,
		POSpend:      spend,
	}, nil
}

func (s *dashboardService) DelayStats(ctx context.Context, projectID uuid.UUID) (*schedule.DelayStats, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	entries, err := s.delayLogRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	stats := schedule.Stats(entries)
	return &stats, nil
}

func (s *dashboardService) CascadeRisks(ctx context.Context, projectID uuid.UUID) ([]schedule.CascadeRisk, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return schedule.CascadeRisks(milestones), nil
}
