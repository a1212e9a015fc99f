package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/port"
	"opsboard/internal/schedule"
)

// CreateProjectInput is the DTO for creating a project.
type CreateProjectInput struct {
	Code        string     `json:"code" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	ClientID    *uuid.UUID `json:"client_id"`
	OwnerEmail  string     `json:"owner_email"`
}

// UpdateProjectInput is the DTO for updating a project.
type UpdateProjectInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	ClientID    *uuid.UUID            `json:"client_id"`
	Status      *domain.ProjectStatus `json:"status"`
	OwnerEmail  *string               `json:"owner_email"`
}

// BaselineResult reports the outcome of a baseline lock attempt. When the
// project fails the readiness checks, Violations carries every failing check
// and the lock is not applied.
type BaselineResult struct {
	Project    *domain.Project      `json:"project,omitempty"`
	Violations []domain.CheckResult `json:"violations,omitempty"`
}

// ProjectService defines the project management contract.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput, createdBy uuid.UUID) (*domain.Project, error)
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	LockBaseline(ctx context.Context, projectID, lockedBy uuid.UUID) (*BaselineResult, error)
	CheckBaseline(ctx context.Context, projectID uuid.UUID) ([]domain.CheckResult, error)
}

type projectService struct {
	projectRepo   port.ProjectRepository
	milestoneRepo port.MilestoneRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(projectRepo port.ProjectRepository, milestoneRepo port.MilestoneRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, milestoneRepo: milestoneRepo}
}

func (s *projectService) Create(ctx context.Context, input CreateProjectInput, createdBy uuid.UUID) (*domain.Project, error) {
	project := &domain.Project{
		Code:        input.Code,
		Name:        input.Name,
		Description: input.Description,
		ClientID:    input.ClientID,
		Status:      domain.ProjectActive,
		OwnerEmail:  input.OwnerEmail,
		CreatedBy:   createdBy,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	return s.projectRepo.GetByID(ctx, projectID)
}

func (s *projectService) List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, int, error) {
	return s.projectRepo.List(ctx, status, offset, limit)
}

func (s *projectService) Update(ctx context.Context, projectID uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ClientID != nil {
		project.ClientID = input.ClientID
	}
	if input.Status != nil {
		if !domain.ValidProjectStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		project.Status = *input.Status
	}
	if input.OwnerEmail != nil {
		project.OwnerEmail = *input.OwnerEmail
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	return s.projectRepo.Delete(ctx, projectID)
}

// CheckBaseline runs the readiness checks without locking anything.
func (s *projectService) CheckBaseline(ctx context.Context, projectID uuid.UUID) ([]domain.CheckResult, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return schedule.CheckBaselineReadiness(milestones), nil
}

func (s *projectService) LockBaseline(ctx context.Context, projectID, lockedBy uuid.UUID) (*BaselineResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.IsBaselined {
		return nil, domain.ErrAlreadyBaselined
	}

	milestones, err := s.milestoneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if violations := schedule.CheckBaselineReadiness(milestones); len(violations) > 0 {
		log.Printf("projectService.LockBaseline: project %s refused, %d violations", projectID, len(violations))
		return &BaselineResult{Violations: violations}, domain.ErrBaselineRefused
	}

	now := time.Now().UTC()
	locked := schedule.ApplyBaseline(milestones, now)

	project.IsBaselined = true
	project.BaselinedAt = &now
	project.BaselinedBy = &lockedBy

	if err := s.projectRepo.LockBaseline(ctx, project, locked); err != nil {
		return nil, err
	}

	log.Printf("projectService.LockBaseline: project %s baselined with %d milestones by %s",
		projectID, len(locked), lockedBy)
	return &BaselineResult{Project: project}, nil
}
