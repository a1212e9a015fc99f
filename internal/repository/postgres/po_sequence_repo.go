package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"opsboard/internal/port"
)

type poSequenceRepo struct {
	db *sqlx.DB
}

// NewPOSequenceRepo creates a new PostgreSQL-backed POSequenceRepository.
func NewPOSequenceRepo(db *sqlx.DB) port.POSequenceRepository {
	return &poSequenceRepo{db: db}
}

// Next uses an upsert so the first number in a new scope and every
// increment after it are a single atomic statement. Concurrent callers
// serialize on the row and never see the same value.
func (r *poSequenceRepo) Next(ctx context.Context, scope string) (int, error) {
	var seq int
	err := r.db.GetContext(ctx, &seq,
		`INSERT INTO po_sequences (scope, last_seq) VALUES ($1, 1)
		 ON CONFLICT (scope) DO UPDATE SET last_seq = po_sequences.last_seq + 1
		 RETURNING last_seq`,
		scope)
	if err != nil {
		return 0, fmt.Errorf("poSequenceRepo.Next: %w", err)
	}
	return seq, nil
}
