package port

import (
	"context"

	"github.com/google/uuid"

	"opsboard/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// PartyRepository defines the contract for vendor/client persistence.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, partyID uuid.UUID) (*domain.Party, error)
	List(ctx context.Context, kind domain.PartyKind, activeOnly bool, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, partyID uuid.UUID) error
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	GetByCode(ctx context.Context, code string) (*domain.Project, error)
	List(ctx context.Context, status domain.ProjectStatus, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, projectID uuid.UUID) error

	// LockBaseline freezes the project's milestone schedule in one
	// transaction: every milestone's original date is set from its current
	// date and the project is flagged as baselined.
	LockBaseline(ctx context.Context, project *domain.Project, milestones []domain.Milestone) error
}

// MilestoneRepository defines the contract for milestone persistence.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *domain.Milestone) error
	GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error)
	Update(ctx context.Context, milestone *domain.Milestone) error
	Delete(ctx context.Context, milestoneID uuid.UUID) error

	// UpdateWithDelayLog applies a date change and records the delay log
	// entry in the same transaction. Neither write is visible without the
	// other.
	UpdateWithDelayLog(ctx context.Context, milestone *domain.Milestone, entry *domain.DelayLogEntry) error
}

// DelayLogRepository defines the contract for reading the delay log.
// Entries are written only through MilestoneRepository.UpdateWithDelayLog.
type DelayLogRepository interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.DelayLogEntry, error)
	ListByMilestone(ctx context.Context, milestoneID uuid.UUID) ([]domain.DelayLogEntry, error)
}

// PurchaseOrderRepository defines the contract for purchase order persistence.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	GetByID(ctx context.Context, poID uuid.UUID) (*domain.PurchaseOrder, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.PurchaseOrder, int, error)
	List(ctx context.Context, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error)
	UpdateStatus(ctx context.Context, poID uuid.UUID, status domain.POStatus) error
	Delete(ctx context.Context, poID uuid.UUID) error
}

// POSequenceRepository hands out purchase order sequence numbers.
type POSequenceRepository interface {
	// Next atomically increments and returns the sequence for the given
	// scope key (a year or financial-year label).
	Next(ctx context.Context, scope string) (int, error)
}

// BOMItemRepository defines the contract for bill-of-materials persistence.
type BOMItemRepository interface {
	Create(ctx context.Context, item *domain.BOMItem) error
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.BOMItem, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.BOMItem, error)
	Update(ctx context.Context, item *domain.BOMItem) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// AttachmentRepository defines the contract for attachment metadata persistence.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	GetByID(ctx context.Context, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByEntity(ctx context.Context, entityType domain.AttachmentEntity, entityID uuid.UUID) ([]domain.Attachment, error)
	Delete(ctx context.Context, attachmentID uuid.UUID) error
}
