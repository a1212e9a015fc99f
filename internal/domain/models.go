package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Party represents a vendor or client counterparty.
type Party struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Kind          PartyKind `db:"kind" json:"kind"`
	Name          string    `db:"name" json:"name"`
	GSTIN         string    `db:"gstin" json:"gstin"`
	StateCode     string    `db:"state_code" json:"state_code"`
	ContactName   string    `db:"contact_name" json:"contact_name"`
	ContactEmail  string    `db:"contact_email" json:"contact_email"`
	ContactPhone  string    `db:"contact_phone" json:"contact_phone"`
	Address       string    `db:"address" json:"address"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Project represents an engineering project.
type Project struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	Code         string        `db:"code" json:"code"`
	Name         string        `db:"name" json:"name"`
	Description  string        `db:"description" json:"description"`
	ClientID     *uuid.UUID    `db:"client_id" json:"client_id"`
	Status       ProjectStatus `db:"status" json:"status"`
	IsBaselined  bool          `db:"is_baselined" json:"is_baselined"`
	BaselinedAt  *time.Time    `db:"baselined_at" json:"baselined_at"`
	BaselinedBy  *uuid.UUID    `db:"baselined_by" json:"baselined_by"`
	OwnerEmail   string        `db:"owner_email" json:"owner_email"`
	CreatedBy    uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// Milestone represents a scheduled deliverable within a project.
// OriginalEndDate is fixed at baseline lock (or at creation, for milestones
// created after the lock) and never recomputed afterwards.
type Milestone struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	ProjectID       uuid.UUID       `db:"project_id" json:"project_id"`
	Name            string          `db:"name" json:"name"`
	Description     string          `db:"description" json:"description"`
	OriginalEndDate *time.Time      `db:"original_end_date" json:"original_end_date"`
	CurrentEndDate  *time.Time      `db:"current_end_date" json:"current_end_date"`
	Status          MilestoneStatus `db:"status" json:"status"`
	CompletedAt     *time.Time      `db:"completed_at" json:"completed_at"`
	CreatedBy       uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// DelayLogEntry is the immutable audit record written whenever a baselined
// milestone's current planned end date changes.
type DelayLogEntry struct {
	ID           uuid.UUID        `db:"id" json:"id"`
	ProjectID    uuid.UUID        `db:"project_id" json:"project_id"`
	MilestoneID  uuid.UUID        `db:"milestone_id" json:"milestone_id"`
	PreviousDate time.Time        `db:"previous_date" json:"previous_date"`
	NewDate      time.Time        `db:"new_date" json:"new_date"`
	DeltaDays    int              `db:"delta_days" json:"delta_days"`
	Reason       string           `db:"reason" json:"reason"`
	Attribution  DelayAttribution `db:"attribution" json:"attribution"`
	CreatedBy    uuid.UUID        `db:"created_by" json:"created_by"`
	CreatedAt    time.Time        `db:"created_at" json:"created_at"`
}

// PurchaseOrder represents an issued or draft purchase order.
// The tax amount for the regime that does not apply is NULL, not zero.
type PurchaseOrder struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PONumber      string     `db:"po_number" json:"po_number"`
	ProjectID     uuid.UUID  `db:"project_id" json:"project_id"`
	VendorID      uuid.UUID  `db:"vendor_id" json:"vendor_id"`
	Status        POStatus   `db:"status" json:"status"`
	TaxType       string     `db:"tax_type" json:"tax_type"`
	TaxRate       float64    `db:"tax_rate" json:"tax_rate"`
	Subtotal      float64    `db:"subtotal" json:"subtotal"`
	CGSTAmount    *float64   `db:"cgst_amount" json:"cgst_amount,omitempty"`
	SGSTAmount    *float64   `db:"sgst_amount" json:"sgst_amount,omitempty"`
	IGSTAmount    *float64   `db:"igst_amount" json:"igst_amount,omitempty"`
	Total         float64    `db:"total" json:"total"`
	AmountInWords string     `db:"amount_in_words" json:"amount_in_words"`
	Notes         string     `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID  `db:"created_by" json:"created_by"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
	Items         []POItem   `db:"-" json:"items,omitempty"`
}

// POItem represents a single line item on a purchase order.
type POItem struct {
	ID              uuid.UUID `db:"id" json:"id"`
	POID            uuid.UUID `db:"po_id" json:"po_id"`
	Description     string    `db:"description" json:"description"`
	HSNCode         string    `db:"hsn_code" json:"hsn_code"`
	Quantity        float64   `db:"quantity" json:"quantity"`
	UnitRate        float64   `db:"unit_rate" json:"unit_rate"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	Amount          float64   `db:"amount" json:"amount"`
}

// BOMItem represents a bill-of-materials line on a project.
type BOMItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ProjectID   uuid.UUID `db:"project_id" json:"project_id"`
	Description string    `db:"description" json:"description"`
	PartNumber  string    `db:"part_number" json:"part_number"`
	Quantity    float64   `db:"quantity" json:"quantity"`
	Unit        string    `db:"unit" json:"unit"`
	EstUnitCost float64   `db:"est_unit_cost" json:"est_unit_cost"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Attachment stores metadata about a file uploaded against a project or PO.
type Attachment struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	EntityType  AttachmentEntity `db:"entity_type" json:"entity_type"`
	EntityID    uuid.UUID        `db:"entity_id" json:"entity_id"`
	FileName    string           `db:"file_name" json:"file_name"`
	FileSize    int64            `db:"file_size" json:"file_size"`
	ContentType string           `db:"content_type" json:"content_type"`
	S3Bucket    string           `db:"s3_bucket" json:"s3_bucket"`
	S3Key       string           `db:"s3_key" json:"s3_key"`
	UploadedBy  uuid.UUID        `db:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
}
