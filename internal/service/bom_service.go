package service

import (
	"context"
	"math"

	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

// CreateBOMItemInput is the DTO for adding a bill-of-materials line.
type CreateBOMItemInput struct {
	Description string  `json:"description" binding:"required"`
	PartNumber  string  `json:"part_number"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	EstUnitCost float64 `json:"est_unit_cost" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

// UpdateBOMItemInput is the DTO for updating a bill-of-materials line.
type UpdateBOMItemInput struct {
	Description *string  `json:"description"`
	PartNumber  *string  `json:"part_number"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	EstUnitCost *float64 `json:"est_unit_cost"`
	Notes       *string  `json:"notes"`
}

// BOMSummary is the cost rollup of a project's bill of materials.
type BOMSummary struct {
	Items         []domain.BOMItem `json:"items"`
	LineCount     int              `json:"line_count"`
	EstimatedCost float64          `json:"estimated_cost"`
}

// BOMService defines the bill-of-materials contract.
type BOMService interface {
	Create(ctx context.Context, projectID uuid.UUID, input CreateBOMItemInput) (*domain.BOMItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) (*BOMSummary, error)
	Update(ctx context.Context, itemID uuid.UUID, input UpdateBOMItemInput) (*domain.BOMItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type bomService struct {
	repo        port.BOMItemRepository
	projectRepo port.ProjectRepository
}

// NewBOMService creates a new BOMService implementation.
func NewBOMService(repo port.BOMItemRepository, projectRepo port.ProjectRepository) BOMService {
	return &bomService{repo: repo, projectRepo: projectRepo}
}

func (s *bomService) Create(ctx context.Context, projectID uuid.UUID, input CreateBOMItemInput) (*domain.BOMItem, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	item := &domain.BOMItem{
		ProjectID:   projectID,
		Description: input.Description,
		PartNumber:  input.PartNumber,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		EstUnitCost: input.EstUnitCost,
		Notes:       input.Notes,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *bomService) ListByProject(ctx context.Context, projectID uuid.UUID) (*BOMSummary, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var cost float64
	for i := range items {
		cost += items[i].Quantity * items[i].EstUnitCost
	}

	return &BOMSummary{
		Items:         items,
		LineCount:     len(items),
		EstimatedCost: math.Round(cost*100) / 100,
	}, nil
}

func (s *bomService) Update(ctx context.Context, itemID uuid.UUID, input UpdateBOMItemInput) (*domain.BOMItem, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.PartNumber != nil {
		item.PartNumber = *input.PartNumber
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.EstUnitCost != nil {
		item.EstUnitCost = *input.EstUnitCost
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *bomService) Delete(ctx context.Context, itemID uuid.UUID) error {
	return s.repo.Delete(ctx, itemID)
}
