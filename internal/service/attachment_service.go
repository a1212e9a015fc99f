package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"opsboard/internal/config"
	"opsboard/internal/domain"
	"opsboard/internal/port"
)

// AttachmentUploadInput is the DTO for attachment upload requests.
type AttachmentUploadInput struct {
	EntityType domain.AttachmentEntity
	EntityID   uuid.UUID
	UploadedBy uuid.UUID
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the attachment management contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	ListByEntity(ctx context.Context, entityType domain.AttachmentEntity, entityID uuid.UUID) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, attachmentID uuid.UUID) error
}

type attachmentService struct {
	repo    port.AttachmentRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(repo port.AttachmentRepository, storage port.ObjectStorage, cfg *config.S3Config) AttachmentService {
	return &attachmentService{repo: repo, storage: storage, cfg: cfg}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	if !domain.ValidAttachmentEntities[input.EntityType] {
		return nil, domain.ErrNotFound
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte sniff beats trusting the client's Content-Type header.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	contentType := http.DetectContentType(buf[:n])

	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	attachmentID := uuid.New()
	s3Key := fmt.Sprintf("%s/%s/%s/%s", input.EntityType, input.EntityID, attachmentID, input.Header.Filename)

	attachment := &domain.Attachment{
		ID:          attachmentID,
		EntityType:  input.EntityType,
		EntityID:    input.EntityID,
		FileName:    input.Header.Filename,
		FileSize:    input.Header.Size,
		ContentType: contentType,
		S3Bucket:    s.cfg.Bucket,
		S3Key:       s3Key,
		UploadedBy:  input.UploadedBy,
	}

	log.Printf("attachmentService.Upload: uploading %s (%s, %d bytes) against %s %s",
		input.Header.Filename, contentType, input.Header.Size, input.EntityType, input.EntityID)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: S3 upload failed for %s: %v", attachmentID, err)
		return nil, domain.ErrUploadFailed
	}

	if err := s.repo.Create(ctx, attachment); err != nil {
		// best effort cleanup of the orphaned object
		_ = s.storage.Delete(ctx, s.cfg.Bucket, s3Key)
		return nil, err
	}

	return attachment, nil
}

func (s *attachmentService) ListByEntity(ctx context.Context, entityType domain.AttachmentEntity, entityID uuid.UUID) ([]domain.Attachment, error) {
	return s.repo.ListByEntity(ctx, entityType, entityID)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, attachmentID uuid.UUID) (string, error) {
	attachment, err := s.repo.GetByID(ctx, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, attachment.S3Bucket, attachment.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, attachmentID uuid.UUID) error {
	attachment, err := s.repo.GetByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, attachment.S3Bucket, attachment.S3Key); err != nil {
		log.Printf("attachmentService.Delete: failed to delete object %s/%s: %v",
			attachment.S3Bucket, attachment.S3Key, err)
	}
	return s.repo.Delete(ctx, attachmentID)
}
