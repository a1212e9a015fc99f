package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

type milestoneRepo struct {
	db *sqlx.DB
}

// NewMilestoneRepo creates a new PostgreSQL-backed MilestoneRepository.
func NewMilestoneRepo(db *sqlx.DB) port.MilestoneRepository {
	return &milestoneRepo{db: db}
}

func (r *milestoneRepo) Create(ctx context.Context, milestone *domain.Milestone) error {
	milestone.ID = uuid.New()
	now := time.Now().UTC()
	milestone.CreatedAt = now
	milestone.UpdatedAt = now

	query := `INSERT INTO milestones (id, project_id, name, description, original_end_date,
		current_end_date, status, completed_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		milestone.ID, milestone.ProjectID, milestone.Name, milestone.Description,
		milestone.OriginalEndDate, milestone.CurrentEndDate, milestone.Status,
		milestone.CompletedAt, milestone.CreatedBy, milestone.CreatedAt, milestone.UpdatedAt)
	if err != nil {
		return fmt.Errorf("milestoneRepo.Create: %w", err)
	}
	return nil
}

func (r *milestoneRepo) GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error) {
	var milestone domain.Milestone
	err := r.db.GetContext(ctx, &milestone, "SELECT * FROM milestones WHERE id = $1", milestoneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("milestoneRepo.GetByID: %w", err)
	}
	return &milestone, nil
}

func (r *milestoneRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error) {
	var milestones []domain.Milestone
	err := r.db.SelectContext(ctx, &milestones,
		"SELECT * FROM milestones WHERE project_id = $1 ORDER BY current_end_date ASC NULLS LAST, created_at ASC",
		projectID)
	if err != nil {
		return nil, fmt.Errorf("milestoneRepo.ListByProject: %w", err)
	}
	return milestones, nil
}

func (r *milestoneRepo) Update(ctx context.Context, milestone *domain.Milestone) error {
	milestone.UpdatedAt = time.Now().UTC()
	query := `UPDATE milestones SET name = $1, description = $2, original_end_date = $3,
		current_end_date = $4, status = $5, completed_at = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		milestone.Name, milestone.Description, milestone.OriginalEndDate,
		milestone.CurrentEndDate, milestone.Status, milestone.CompletedAt,
		milestone.UpdatedAt, milestone.ID)
	if err != nil {
		return fmt.Errorf("milestoneRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMilestoneNotFound
	}
	return nil
}

func (r *milestoneRepo) Delete(ctx context.Context, milestoneID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM milestones WHERE id = $1", milestoneID)
	if err != nil {
		return fmt.Errorf("milestoneRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMilestoneNotFound
	}
	return nil
}

func (r *milestoneRepo) UpdateWithDelayLog(ctx context.Context, milestone *domain.Milestone, entry *domain.DelayLogEntry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("milestoneRepo.UpdateWithDelayLog begin: %w", err)
	}
	defer tx.Rollback()

	milestone.UpdatedAt = time.Now().UTC()
	result, err := tx.ExecContext(ctx,
		`UPDATE milestones SET current_end_date = $1, updated_at = $2 WHERE id = $3`,
		milestone.CurrentEndDate, milestone.UpdatedAt, milestone.ID)
	if err != nil {
		return fmt.Errorf("milestoneRepo.UpdateWithDelayLog milestone: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMilestoneNotFound
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO delay_logs (id, project_id, milestone_id, previous_date, new_date,
			delta_days, reason, attribution, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID, entry.ProjectID, entry.MilestoneID, entry.PreviousDate, entry.NewDate,
		entry.DeltaDays, entry.Reason, entry.Attribution, entry.CreatedBy, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("milestoneRepo.UpdateWithDelayLog log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("milestoneRepo.UpdateWithDelayLog commit: %w", err)
	}
	return nil
}
