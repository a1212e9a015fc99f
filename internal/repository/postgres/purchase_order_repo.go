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

type purchaseOrderRepo struct {
	db *sqlx.DB
}

// NewPurchaseOrderRepo creates a new PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *sqlx.DB) port.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	po.ID = uuid.New()
	now := time.Now().UTC()
	po.CreatedAt = now
	po.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO purchase_orders (id, po_number, project_id, vendor_id, status, tax_type,
		tax_rate, subtotal, cgst_amount, sgst_amount, igst_amount, total, amount_in_words,
		notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = tx.ExecContext(ctx, query,
		po.ID, po.PONumber, po.ProjectID, po.VendorID, po.Status, po.TaxType,
		po.TaxRate, po.Subtotal, po.CGSTAmount, po.SGSTAmount, po.IGSTAmount,
		po.Total, po.AmountInWords, po.Notes, po.CreatedBy, po.CreatedAt, po.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicatePONumber
		}
		return fmt.Errorf("purchaseOrderRepo.Create: %w", err)
	}

	for i := range po.Items {
		item := &po.Items[i]
		item.ID = uuid.New()
		item.POID = po.ID
		_, err := tx.ExecContext(ctx,
			`INSERT INTO po_items (id, po_id, description, hsn_code, quantity, unit_rate, discount_percent, amount)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.POID, item.Description, item.HSNCode,
			item.Quantity, item.UnitRate, item.DiscountPercent, item.Amount)
		if err != nil {
			return fmt.Errorf("purchaseOrderRepo.Create item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("purchaseOrderRepo.Create commit: %w", err)
	}
	return nil
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := r.db.GetContext(ctx, &po, "SELECT * FROM purchase_orders WHERE id = $1", poID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPONotFound
		}
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &po.Items,
		"SELECT * FROM po_items WHERE po_id = $1 ORDER BY id", poID)
	if err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo.GetByID items: %w", err)
	}
	return &po, nil
}

func (r *purchaseOrderRepo) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM purchase_orders WHERE project_id = $1", projectID)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.ListByProject count: %w", err)
	}

	var pos []domain.PurchaseOrder
	err = r.db.SelectContext(ctx, &pos,
		"SELECT * FROM purchase_orders WHERE project_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		projectID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.ListByProject: %w", err)
	}
	return pos, total, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	where := ""
	args := []interface{}{}
	n := 0
	if status != "" {
		n++
		where = fmt.Sprintf("WHERE status = $%d", n)
		args = append(args, status)
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchase_orders "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List count: %w", err)
	}

	var pos []domain.PurchaseOrder
	query := fmt.Sprintf("SELECT * FROM purchase_orders %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d", where, n+1, n+2)
	err = r.db.SelectContext(ctx, &pos, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseOrderRepo.List: %w", err)
	}
	return pos, total, nil
}

func (r *purchaseOrderRepo) UpdateStatus(ctx context.Context, poID uuid.UUID, status domain.POStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE purchase_orders SET status = $1, updated_at = NOW() WHERE id = $2", status, poID)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPONotFound
	}
	return nil
}

func (r *purchaseOrderRepo) Delete(ctx context.Context, poID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM purchase_orders WHERE id = $1", poID)
	if err != nil {
		return fmt.Errorf("purchaseOrderRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrPONotFound
	}
	return nil
}
