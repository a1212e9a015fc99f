package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/domain"
	"opsboard/internal/service"
	"opsboard/mocks"
)

func setupMilestoneService() (*mocks.MockMilestoneRepo, *mocks.MockProjectRepo, *mocks.MockDelayLogRepo, *mocks.MockEmailSender, service.MilestoneService) {
	milestoneRepo := new(mocks.MockMilestoneRepo)
	projectRepo := new(mocks.MockProjectRepo)
	delayLogRepo := new(mocks.MockDelayLogRepo)
	emailSender := new(mocks.MockEmailSender)
	svc := service.NewMilestoneService(milestoneRepo, projectRepo, delayLogRepo, emailSender)
	return milestoneRepo, projectRepo, delayLogRepo, emailSender, svc
}

func TestChangeDate_UnbaselinedMovesFreely(t *testing.T) {
	milestoneRepo, projectRepo, _, emailSender, svc := setupMilestoneService()

	projectID := uuid.New()
	milestoneID := uuid.New()
	milestone := &domain.Milestone{
		ID:             milestoneID,
		ProjectID:      projectID,
		Name:           "Design freeze",
		CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	milestoneRepo.On("GetByID", mock.Anything, milestoneID).Return(milestone, nil)
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, IsBaselined: false}, nil)
	milestoneRepo.On("Update", mock.Anything, milestone).Return(nil)

	newDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.ChangeDate(context.Background(), milestoneID, service.ChangeDateInput{NewDate: newDate}, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, newDate, *result.Milestone.CurrentEndDate)
	assert.Nil(t, result.DelayEntry)
	assert.Empty(t, result.Violations)
	milestoneRepo.AssertNotCalled(t, "UpdateWithDelayLog", mock.Anything, mock.Anything, mock.Anything)
	emailSender.AssertNotCalled(t, "SendDelayNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeDate_GateRefusesShortReason(t *testing.T) {
	milestoneRepo, projectRepo, _, emailSender, svc := setupMilestoneService()

	projectID := uuid.New()
	milestoneID := uuid.New()
	milestone := &domain.Milestone{
		ID:             milestoneID,
		ProjectID:      projectID,
		CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	milestoneRepo.On("GetByID", mock.Anything, milestoneID).Return(milestone, nil)
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, IsBaselined: true}, nil)

	result, err := svc.ChangeDate(context.Background(), milestoneID, service.ChangeDateInput{
		NewDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Reason:      "vendor late",
		Attribution: domain.AttributionExternalVendor,
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrDelayLogRequired)
	assert.NotEmpty(t, result.Violations)
	assert.Nil(t, result.Milestone)

	// Neither the date change nor the log entry may be written.
	milestoneRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	milestoneRepo.AssertNotCalled(t, "UpdateWithDelayLog", mock.Anything, mock.Anything, mock.Anything)
	emailSender.AssertNotCalled(t, "SendDelayNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestChangeDate_RecordsDelayAndNotifiesOwner(t *testing.T) {
	milestoneRepo, projectRepo, _, emailSender, svc := setupMilestoneService()

	projectID := uuid.New()
	milestoneID := uuid.New()
	actor := uuid.New()
	milestone := &domain.Milestone{
		ID:             milestoneID,
		ProjectID:      projectID,
		Name:           "FAT",
		CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	project := &domain.Project{
		ID:          projectID,
		Name:        "Plant expansion",
		IsBaselined: true,
		OwnerEmail:  "owner@example.com",
	}

	milestoneRepo.On("GetByID", mock.Anything, milestoneID).Return(milestone, nil)
	projectRepo.On("GetByID", mock.Anything, projectID).Return(project, nil)
	milestoneRepo.On("UpdateWithDelayLog", mock.Anything, milestone, mock.AnythingOfType("*domain.DelayLogEntry")).Return(nil)
	emailSender.On("SendDelayNotification", mock.Anything, "owner@example.com", "Plant expansion", "FAT", mock.AnythingOfType("*domain.DelayLogEntry")).Return(nil)

	newDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	result, err := svc.ChangeDate(context.Background(), milestoneID, service.ChangeDateInput{
		NewDate:     newDate,
		Reason:      "vendor shipped the switchgear two weeks late",
		Attribution: domain.AttributionExternalVendor,
	}, actor)

	assert.NoError(t, err)
	assert.Equal(t, newDate, *result.Milestone.CurrentEndDate)
	assert.Equal(t, 14, result.DelayEntry.DeltaDays)
	assert.Equal(t, domain.AttributionExternalVendor, result.DelayEntry.Attribution)
	assert.Equal(t, actor, result.DelayEntry.CreatedBy)

	milestoneRepo.AssertExpectations(t)
	emailSender.AssertExpectations(t)
}

func TestChangeDate_EmailFailureDoesNotBlock(t *testing.T) {
	milestoneRepo, projectRepo, _, emailSender, svc := setupMilestoneService()

	projectID := uuid.New()
	milestoneID := uuid.New()
	milestone := &domain.Milestone{
		ID:             milestoneID,
		ProjectID:      projectID,
		Name:           "FAT",
		CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	project := &domain.Project{ID: projectID, Name: "Plant expansion", IsBaselined: true, OwnerEmail: "owner@example.com"}

	milestoneRepo.On("GetByID", mock.Anything, milestoneID).Return(milestone, nil)
	projectRepo.On("GetByID", mock.Anything, projectID).Return(project, nil)
	milestoneRepo.On("UpdateWithDelayLog", mock.Anything, milestone, mock.AnythingOfType("*domain.DelayLogEntry")).Return(nil)
	emailSender.On("SendDelayNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := svc.ChangeDate(context.Background(), milestoneID, service.ChangeDateInput{
		NewDate:     time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Reason:      "client sign-off on drawings arrived a week late",
		Attribution: domain.AttributionExternalClient,
	}, uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, result.DelayEntry)
}

func TestCreateMilestone_AfterBaselineSetsOriginalDate(t *testing.T) {
	milestoneRepo, projectRepo, _, _, svc := setupMilestoneService()

	projectID := uuid.New()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, IsBaselined: true}, nil)
	milestoneRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Milestone")).Return(nil)

	milestone, err := svc.Create(context.Background(), projectID, service.CreateMilestoneInput{
		Name:           "Commissioning",
		CurrentEndDate: &date,
	}, uuid.New())

	assert.NoError(t, err)
	assert.NotNil(t, milestone.OriginalEndDate)
	assert.Equal(t, date, *milestone.OriginalEndDate)
}

func TestUpdateMilestone_CompletedStampsTimestamp(t *testing.T) {
	milestoneRepo, _, _, _, svc := setupMilestoneService()

	milestoneID := uuid.New()
	milestone := &domain.Milestone{ID: milestoneID, Status: domain.MilestoneInProgress}

	milestoneRepo.On("GetByID", mock.Anything, milestoneID).Return(milestone, nil)
	milestoneRepo.On("Update", mock.Anything, milestone).Return(nil)

	completed := domain.MilestoneCompleted
	updated, err := svc.Update(context.Background(), milestoneID, service.UpdateMilestoneInput{Status: &completed})

	assert.NoError(t, err)
	assert.Equal(t, domain.MilestoneCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	// Reopening the milestone clears the completion stamp.
	reopened := domain.MilestoneInProgress
	updated, err = svc.Update(context.Background(), milestoneID, service.UpdateMilestoneInput{Status: &reopened})
	assert.NoError(t, err)
	assert.Nil(t, updated.CompletedAt)
}
