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

// CreateMilestoneInput is the DTO for creating a milestone.
type CreateMilestoneInput struct {
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description"`
	CurrentEndDate *time.Time `json:"current_end_date"`
}

// UpdateMilestoneInput is the DTO for editing milestone fields other than
// the planned end date. Date changes go through ChangeDate.
type UpdateMilestoneInput struct {
	Name        *string                 `json:"name"`
	Description *string                 `json:"description"`
	Status      *domain.MilestoneStatus `json:"status"`
}

// ChangeDateInput is the DTO for moving a milestone's planned end date.
// Reason and Attribution are required only once the project is baselined.
type ChangeDateInput struct {
	NewDate     time.Time               `json:"new_date" binding:"required"`
	Reason      string                  `json:"reason"`
	Attribution domain.DelayAttribution `json:"attribution"`
}

// DateChangeResult reports the outcome of a date change. Violations is
// non-empty when the delay gate refused the edit; DelayEntry is set when the
// change was recorded against a locked baseline.
type DateChangeResult struct {
	Milestone  *domain.Milestone     `json:"milestone,omitempty"`
	DelayEntry *domain.DelayLogEntry `json:"delay_entry,omitempty"`
	Violations []domain.CheckResult  `json:"violations,omitempty"`
}

// MilestoneService defines the milestone management contract.
type MilestoneService interface {
	Create(ctx context.Context, projectID uuid.UUID, input CreateMilestoneInput, createdBy uuid.UUID) (*domain.Milestone, error)
	GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error)
	Update(ctx context.Context, milestoneID uuid.UUID, input UpdateMilestoneInput) (*domain.Milestone, error)
	Delete(ctx context.Context, milestoneID uuid.UUID) error
	ChangeDate(ctx context.Context, milestoneID uuid.UUID, input ChangeDateInput, actor uuid.UUID) (*DateChangeResult, error)
	DelayLog(ctx context.Context, milestoneID uuid.UUID) ([]domain.DelayLogEntry, error)
}

type milestoneService struct {
	milestoneRepo port.MilestoneRepository
	projectRepo   port.ProjectRepository
	delayLogRepo  port.DelayLogRepository
	emailSender   port.EmailSender
}

// NewMilestoneService creates a new MilestoneService implementation.
func NewMilestoneService(
	milestoneRepo port.MilestoneRepository,
	projectRepo port.ProjectRepository,
	delayLogRepo port.DelayLogRepository,
	emailSender port.EmailSender,
) MilestoneService {
	return &milestoneService{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
		delayLogRepo:  delayLogRepo,
		emailSender:   emailSender,
	}
}

func (s *milestoneService) Create(ctx context.Context, projectID uuid.UUID, input CreateMilestoneInput, createdBy uuid.UUID) (*domain.Milestone, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	milestone := &domain.Milestone{
		ProjectID:      projectID,
		Name:           input.Name,
		Description:    input.Description,
		CurrentEndDate: input.CurrentEndDate,
		Status:         domain.MilestoneNotStarted,
		CreatedBy:      createdBy,
	}

	// A milestone added after the lock enters the baseline as-is: its
	// original date is its current date from day one.
	if project.IsBaselined && input.CurrentEndDate != nil {
		original := *input.CurrentEndDate
		milestone.OriginalEndDate = &original
	}

	if err := s.milestoneRepo.Create(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *milestoneService) GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error) {
	return s.milestoneRepo.GetByID(ctx, milestoneID)
}

func (s *milestoneService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error) {
	return s.milestoneRepo.ListByProject(ctx, projectID)
}

func (s *milestoneService) Update(ctx context.Context, milestoneID uuid.UUID, input UpdateMilestoneInput) (*domain.Milestone, error) {
	milestone, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		milestone.Name = *input.Name
	}
	if input.Description != nil {
		milestone.Description = *input.Description
	}
	if input.Status != nil {
		if !domain.ValidMilestoneStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		if *input.Status == domain.MilestoneCompleted && milestone.Status != domain.MilestoneCompleted {
			now := time.Now().UTC()
			milestone.CompletedAt = &now
		}
		if *input.Status != domain.MilestoneCompleted {
			milestone.CompletedAt = nil
		}
		milestone.Status = *input.Status
	}

	if err := s.milestoneRepo.Update(ctx, milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *milestoneService) Delete(ctx context.Context, milestoneID uuid.UUID) error {
	return s.milestoneRepo.Delete(ctx, milestoneID)
}

// ChangeDate moves a milestone's planned end date. Before the baseline is
// locked the date moves freely. After the lock the edit must pass the delay
// gate, and the date change and its log entry are committed together.
func (s *milestoneService) ChangeDate(ctx context.Context, milestoneID uuid.UUID, input ChangeDateInput, actor uuid.UUID) (*DateChangeResult, error) {
	milestone, err := s.milestoneRepo.GetByID(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetByID(ctx, milestone.ProjectID)
	if err != nil {
		return nil, err
	}

	if !project.IsBaselined {
		newDate := input.NewDate
		milestone.CurrentEndDate = &newDate
		if err := s.milestoneRepo.Update(ctx, milestone); err != nil {
			return nil, err
		}
		return &DateChangeResult{Milestone: milestone}, nil
	}

	if milestone.CurrentEndDate == nil {
		return nil, domain.ErrDelayLogRequired
	}

	edit := schedule.DelayEdit{
		PreviousDate: *milestone.CurrentEndDate,
		NewDate:      input.NewDate,
		Reason:       input.Reason,
		Attribution:  input.Attribution,
	}
	if violations := schedule.ValidateDelayEdit(edit); len(violations) > 0 {
		log.Printf("milestoneService.ChangeDate: milestone %s edit refused, %d violations", milestoneID, len(violations))
		return &DateChangeResult{Violations: violations}, domain.ErrDelayLogRequired
	}

	entry := schedule.NewDelayEntry(milestone.ProjectID, milestone.ID, edit, actor, time.Now().UTC())
	newDate := input.NewDate
	milestone.CurrentEndDate = &newDate

	if err := s.milestoneRepo.UpdateWithDelayLog(ctx, milestone, &entry); err != nil {
		return nil, err
	}

	log.Printf("milestoneService.ChangeDate: milestone %s moved %+d days (%s)",
		milestoneID, entry.DeltaDays, entry.Attribution)

	s.notifyOwner(ctx, project, milestone, &entry)

	return &DateChangeResult{Milestone: milestone, DelayEntry: &entry}, nil
}

func (s *milestoneService) DelayLog(ctx context.Context, milestoneID uuid.UUID) ([]domain.DelayLogEntry, error) {
	if _, err := s.milestoneRepo.GetByID(ctx, milestoneID); err != nil {
		return nil, err
	}
	return s.delayLogRepo.ListByMilestone(ctx, milestoneID)
}

// notifyOwner emails the project owner about a recorded delay. Failures are
// logged but never block the edit.
func (s *milestoneService) notifyOwner(ctx context.Context, project *domain.Project, milestone *domain.Milestone, entry *domain.DelayLogEntry) {
	if project.OwnerEmail == "" {
		return
	}
	if err := s.emailSender.SendDelayNotification(ctx, project.OwnerEmail, project.Name, milestone.Name, entry); err != nil {
		log.Printf("milestoneService.notifyOwner: failed to notify %s for milestone %s: %v",
			project.OwnerEmail, milestone.ID, err)
	}
}
