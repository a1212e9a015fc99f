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

type partyRepo struct {
	db *sqlx.DB
}

// NewPartyRepo creates a new PostgreSQL-backed PartyRepository.
func NewPartyRepo(db *sqlx.DB) port.PartyRepository {
	return &partyRepo{db: db}
}

func (r *partyRepo) Create(ctx context.Context, party *domain.Party) error {
	party.ID = uuid.New()
	now := time.Now().UTC()
	party.CreatedAt = now
	party.UpdatedAt = now

	query := `INSERT INTO parties (id, kind, name, gstin, state_code, contact_name, contact_email,
		contact_phone, address, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		party.ID, party.Kind, party.Name, party.GSTIN, party.StateCode,
		party.ContactName, party.ContactEmail, party.ContactPhone, party.Address,
		party.IsActive, party.CreatedAt, party.UpdatedAt)
	if err != nil {
		return fmt.Errorf("partyRepo.Create: %w", err)
	}
	return nil
}

func (r *partyRepo) GetByID(ctx context.Context, partyID uuid.UUID) (*domain.Party, error) {
	var party domain.Party
	err := r.db.GetContext(ctx, &party, "SELECT * FROM parties WHERE id = $1", partyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("partyRepo.GetByID: %w", err)
	}
	return &party, nil
}

func (r *partyRepo) List(ctx context.Context, kind domain.PartyKind, activeOnly bool, offset, limit int) ([]domain.Party, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	n := 0
	if kind != "" {
		n++
		where += fmt.Sprintf(" AND kind = $%d", n)
		args = append(args, kind)
	}
	if activeOnly {
		where += " AND is_active = true"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM parties "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List count: %w", err)
	}

	var parties []domain.Party
	query := fmt.Sprintf("SELECT * FROM parties %s ORDER BY name ASC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	err = r.db.SelectContext(ctx, &parties, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("partyRepo.List: %w", err)
	}
	return parties, total, nil
}

func (r *partyRepo) Update(ctx context.Context, party *domain.Party) error {
	party.UpdatedAt = time.Now().UTC()
	query := `UPDATE parties SET name = $1, gstin = $2, state_code = $3, contact_name = $4,
		contact_email = $5, contact_phone = $6, address = $7, is_active = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		party.Name, party.GSTIN, party.StateCode, party.ContactName,
		party.ContactEmail, party.ContactPhone, party.Address, party.IsActive,
		party.UpdatedAt, party.ID)
	if err != nil {
		return fmt.Errorf("partyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

func (r *partyRepo) Delete(ctx context.Context, partyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM parties WHERE id = $1", partyID)
	if err != nil {
		return fmt.Errorf("partyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}
