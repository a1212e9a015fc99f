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

func setupProjectService() (*mocks.MockProjectRepo, *mocks.MockMilestoneRepo, service.ProjectService) {
	projectRepo := new(mocks.MockProjectRepo)
	milestoneRepo := new(mocks.MockMilestoneRepo)
	svc := service.NewProjectService(projectRepo, milestoneRepo)
	return projectRepo, milestoneRepo, svc
}

func datePtr(t time.Time) *time.Time { return &t }

func TestLockBaseline_Success(t *testing.T) {
	projectRepo, milestoneRepo, svc := setupProjectService()

	projectID := uuid.New()
	lockedBy := uuid.New()
	project := &domain.Project{ID: projectID, Code: "PRJ-01", IsBaselined: false}
	milestones := []domain.Milestone{
		{ID: uuid.New(), ProjectID: projectID, Name: "Design freeze", CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))},
		{ID: uuid.New(), ProjectID: projectID, Name: "FAT", CurrentEndDate: datePtr(time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC))},
	}

	projectRepo.On("GetByID", mock.Anything, projectID).Return(project, nil)
	milestoneRepo.On("ListByProject", mock.Anything, projectID).Return(milestones, nil)
	projectRepo.On("LockBaseline", mock.Anything, mock.AnythingOfType("*domain.Project"), mock.AnythingOfType("[]domain.Milestone")).
		Run(func(args mock.Arguments) {
			locked := args.Get(2).([]domain.Milestone)
			for _, m := range locked {
				assert.NotNil(t, m.OriginalEndDate)
				assert.Equal(t, *m.CurrentEndDate, *m.OriginalEndDate)
			}
		}).Return(nil)

	result, err := svc.LockBaseline(context.Background(), projectID, lockedBy)

	assert.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.True(t, result.Project.IsBaselined)
	assert.NotNil(t, result.Project.BaselinedAt)
	assert.Equal(t, lockedBy, *result.Project.BaselinedBy)

	projectRepo.AssertExpectations(t)
	milestoneRepo.AssertExpectations(t)
}

func TestLockBaseline_AlreadyBaselined(t *testing.T) {
	projectRepo, _, svc := setupProjectService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, IsBaselined: true}, nil)

	result, err := svc.LockBaseline(context.Background(), projectID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrAlreadyBaselined)
	assert.Nil(t, result)
	projectRepo.AssertNotCalled(t, "LockBaseline", mock.Anything, mock.Anything, mock.Anything)
}

func TestLockBaseline_RefusedWithViolations(t *testing.T) {
	projectRepo, milestoneRepo, svc := setupProjectService()

	projectID := uuid.New()
	milestones := []domain.Milestone{
		{ID: uuid.New(), ProjectID: projectID, Name: "Design freeze", CurrentEndDate: datePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))},
		{ID: uuid.New(), ProjectID: projectID, Name: "Undated milestone"},
	}

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	milestoneRepo.On("ListByProject", mock.Anything, projectID).Return(milestones, nil)

	result, err := svc.LockBaseline(context.Background(), projectID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrBaselineRefused)
	assert.NotEmpty(t, result.Violations)
	assert.Nil(t, result.Project)
	projectRepo.AssertNotCalled(t, "LockBaseline", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckBaseline_NoMilestones(t *testing.T) {
	projectRepo, milestoneRepo, svc := setupProjectService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	milestoneRepo.On("ListByProject", mock.Anything, projectID).Return([]domain.Milestone{}, nil)

	violations, err := svc.CheckBaseline(context.Background(), projectID)

	assert.NoError(t, err)
	assert.Len(t, violations, 1)
	assert.Equal(t, "project.milestones", violations[0].FieldPath)
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	projectRepo, _, svc := setupProjectService()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, Status: domain.ProjectActive}, nil)

	bad := domain.ProjectStatus("archived")
	_, err := svc.Update(context.Background(), projectID, service.UpdateProjectInput{Status: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	projectRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
