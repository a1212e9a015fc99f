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

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, attachment *domain.Attachment) error {
	attachment.ID = uuid.New()
	attachment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO attachments (id, entity_type, entity_id, file_name, file_size,
		content_type, s3_bucket, s3_key, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		attachment.ID, attachment.EntityType, attachment.EntityID, attachment.FileName,
		attachment.FileSize, attachment.ContentType, attachment.S3Bucket, attachment.S3Key,
		attachment.UploadedBy, attachment.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	err := r.db.GetContext(ctx, &attachment, "SELECT * FROM attachments WHERE id = $1", attachmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &attachment, nil
}

func (r *attachmentRepo) ListByEntity(ctx context.Context, entityType domain.AttachmentEntity, entityID uuid.UUID) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := r.db.SelectContext(ctx, &attachments,
		"SELECT * FROM attachments WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at DESC",
		entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByEntity: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM attachments WHERE id = $1", attachmentID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}
