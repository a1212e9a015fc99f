package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"opsboard/internal/domain"
	"opsboard/internal/port"
)

type projectRepo struct {
	db *sqlx.DB
}

// NewProjectRepo creates a new PostgreSQL-backed ProjectRepository.
func NewProjectRepo(db *sqlx.DB) port.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project) error {
	project.ID = uuid.New()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `INSERT INTO projects (id, code, name, description, client_id, status, is_baselined,
		baselined_at, baselined_by, owner_email, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Code, project.Name, project.Description, project.ClientID,
		project.Status, project.IsBaselined, project.BaselinedAt, project.BaselinedBy,
		project.OwnerEmail, project.CreatedBy, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateProjectCode
		}
		return fmt.Errorf("projectRepo.Create: %w", err)
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE id = $1", projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByID: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) GetByCode(ctx context.Context, code string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.GetContext(ctx, &project, "SELECT * FROM projects WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("projectRepo.GetByCode: %w", err)
	}
	return &project, nil
}

func (r *projectRepo) List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, int, error) {
	where := ""
	args := []interface{}{}
	n := 0
	if status != "" {
		n++
		where = fmt.Sprintf("WHERE status = $%d", n)
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM projects "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List count: %w", err)
	}

	var projects []domain.Project
	query := fmt.Sprintf("SELECT * FROM projects %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	err = r.db.SelectContext(ctx, &projects, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("projectRepo.List: %w", err)
	}
	return projects, total, nil
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	project.UpdatedAt = time.Now().UTC()
	query := `UPDATE projects SET name = $1, description = $2, client_id = $3, status = $4,
		owner_email = $5, updated_at = $6 WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query,
		project.Name, project.Description, project.ClientID, project.Status,
		project.OwnerEmail, project.UpdatedAt, project.ID)
	if err != nil {
		return fmt.Errorf("projectRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", projectID)
	if err != nil {
		return fmt.Errorf("projectRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepo) LockBaseline(ctx context.Context, project *domain.Project, milestones []domain.Milestone) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("projectRepo.LockBaseline begin: %w", err)
	}
	defer tx.Rollback()

	// Guard against a concurrent lock: the flag flip only succeeds if the
	// project is still unbaselined.
	result, err := tx.ExecContext(ctx,
		`UPDATE projects SET is_baselined = true, baselined_at = $1, baselined_by = $2, updated_at = $1
		 WHERE id = $3 AND is_baselined = false`,
		project.BaselinedAt, project.BaselinedBy, project.ID)
	if err != nil {
		return fmt.Errorf("projectRepo.LockBaseline project: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAlreadyBaselined
	}

	for i := range milestones {
		m := &milestones[i]
		_, err := tx.ExecContext(ctx,
			`UPDATE milestones SET original_end_date = $1, updated_at = $2 WHERE id = $3 AND project_id = $4`,
			m.OriginalEndDate, m.UpdatedAt, m.ID, m.ProjectID)
		if err != nil {
			return fmt.Errorf("projectRepo.LockBaseline milestone %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("projectRepo.LockBaseline commit: %w", err)
	}
	return nil
}
