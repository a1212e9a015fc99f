package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

type delayLogRepo struct {
	db *sqlx.DB
}

// NewDelayLogRepo creates a new PostgreSQL-backed DelayLogRepository.
func NewDelayLogRepo(db *sqlx.DB) port.DelayLogRepository {
	return &delayLogRepo{db: db}
}

func (r *delayLogRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.DelayLogEntry, error) {
	var entries []domain.DelayLogEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM delay_logs WHERE project_id = $1 ORDER BY created_at ASC", projectID)
	if err != nil {
		return nil, fmt.Errorf("delayLogRepo.ListByProject: %w", err)
	}
	return entries, nil
}

func (r *delayLogRepo) ListByMilestone(ctx context.Context, milestoneID uuid.UUID) ([]domain.DelayLogEntry, error) {
	var entries []domain.DelayLogEntry
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM delay_logs WHERE milestone_id = $1 ORDER BY created_at ASC", milestoneID)
	if err != nil {
		return nil, fmt.Errorf("delayLogRepo.ListByMilestone: %w", err)
	}
	return entries, nil
}
