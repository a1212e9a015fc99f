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

type bomItemRepo struct {
	db *sqlx.DB
}

// NewBOMItemRepo creates a new PostgreSQL-backed BOMItemRepository.
func NewBOMItemRepo(db *sqlx.DB) port.BOMItemRepository {
	return &bomItemRepo{db: db}
}

func (r *bomItemRepo) Create(ctx context.Context, item *domain.BOMItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO bom_items (id, project_id, description, part_number, quantity, unit,
		est_unit_cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.ProjectID, item.Description, item.PartNumber,
		item.Quantity, item.Unit, item.EstUnitCost, item.Notes,
		item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("bomItemRepo.Create: %w", err)
	}
	return nil
}

func (r *bomItemRepo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.BOMItem, error) {
	var item domain.BOMItem
	err := r.db.GetContext(ctx, &item, "SELECT * FROM bom_items WHERE id = $1", itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("bomItemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *bomItemRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.BOMItem, error) {
	var items []domain.BOMItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM bom_items WHERE project_id = $1 ORDER BY created_at ASC", projectID)
	if err != nil {
		return nil, fmt.Errorf("bomItemRepo.ListByProject: %w", err)
	}
	return items, nil
}

func (r *bomItemRepo) Update(ctx context.Context, item *domain.BOMItem) error {
	item.UpdatedAt = time.Now().UTC()
	query := `UPDATE bom_items SET description = $1, part_number = $2, quantity = $3, unit = $4,
		est_unit_cost = $5, notes = $6, updated_at = $7 WHERE id = $8`
	result, err := r.db.ExecContext(ctx, query,
		item.Description, item.PartNumber, item.Quantity, item.Unit,
		item.EstUnitCost, item.Notes, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("bomItemRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bomItemRepo) Delete(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM bom_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("bomItemRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
