package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"opsboard/internal/config"
	"opsboard/internal/domain"
	"opsboard/internal/gst"
	"opsboard/internal/port"
)

// POItemInput is the DTO for one purchase order line item.
type POItemInput struct {
	Description     string  `json:"description" binding:"required"`
	HSNCode         string  `json:"hsn_code"`
	Quantity        float64 `json:"quantity" binding:"required,gt=0"`
	UnitRate        float64 `json:"unit_rate" binding:"required,gte=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
}

// CreatePOInput is the DTO for creating a purchase order.
type CreatePOInput struct {
	ProjectID uuid.UUID     `json:"project_id" binding:"required"`
	VendorID  uuid.UUID     `json:"vendor_id" binding:"required"`
	TaxRate   float64       `json:"tax_rate" binding:"gte=0"`
	Notes     string        `json:"notes"`
	Items     []POItemInput `json:"items" binding:"required,min=1,dive"`
}

// POWithWarnings pairs a created purchase order with any counterparty
// findings. Missing vendor GSTIN or state code warns but never blocks.
type POWithWarnings struct {
	PurchaseOrder *domain.PurchaseOrder `json:"purchase_order"`
	Warnings      []domain.CheckResult  `json:"warnings,omitempty"`
}

// PurchaseOrderService defines the purchase order contract.
type PurchaseOrderService interface {
	Create(ctx context.Context, input CreatePOInput, createdBy uuid.UUID) (*POWithWarnings, error)
	GetByID(ctx context.Context, poID uuid.UUID) (*domain.PurchaseOrder, error)
	ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.PurchaseOrder, int, error)
	List(ctx context.Context, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error)
	UpdateStatus(ctx context.Context, poID uuid.UUID, status domain.POStatus) error
	Delete(ctx context.Context, poID uuid.UUID) error
}

type purchaseOrderService struct {
	poRepo      port.PurchaseOrderRepository
	seqRepo     port.POSequenceRepository
	partyRepo   port.PartyRepository
	projectRepo port.ProjectRepository
	cfg         config.POConfig
}

// NewPurchaseOrderService creates a new PurchaseOrderService implementation.
func NewPurchaseOrderService(
	poRepo port.PurchaseOrderRepository,
	seqRepo port.POSequenceRepository,
	partyRepo port.PartyRepository,
	projectRepo port.ProjectRepository,
	cfg config.POConfig,
) PurchaseOrderService {
	return &purchaseOrderService{
		poRepo:      poRepo,
		seqRepo:     seqRepo,
		partyRepo:   partyRepo,
		projectRepo: projectRepo,
		cfg:         cfg,
	}
}

func (s *purchaseOrderService) Create(ctx context.Context, input CreatePOInput, createdBy uuid.UUID) (*POWithWarnings, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyPO
	}

	project, err := s.projectRepo.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	vendor, err := s.partyRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor.Kind != domain.PartyVendor {
		return nil, domain.ErrVendorRequired
	}

	// Buyer jurisdiction comes from the project's client when one is set;
	// otherwise both sides are unknown and the regime defaults to the split.
	buyerState := ""
	if project.ClientID != nil {
		client, err := s.partyRepo.GetByID(ctx, *project.ClientID)
		if err != nil {
			return nil, err
		}
		buyerState = client.StateCode
	}

	items := make([]domain.POItem, len(input.Items))
	for i, in := range input.Items {
		items[i] = domain.POItem{
			Description:     in.Description,
			HSNCode:         in.HSNCode,
			Quantity:        in.Quantity,
			UnitRate:        in.UnitRate,
			DiscountPercent: in.DiscountPercent,
			Amount:          gst.ItemAmount(in.Quantity, in.UnitRate, in.DiscountPercent),
		}
	}

	taxType := gst.DetermineTaxType(buyerState, vendor.StateCode)
	totals := gst.CalculateTotals(items, taxType, input.TaxRate)

	now := time.Now().UTC()
	format := domain.PONumberFormat(s.cfg.NumberFormat)
	if !domain.ValidPONumberFormats[format] {
		format = domain.POFormatFinancialYear
	}

	scope := gst.FinancialYearShort(now)
	if format == domain.POFormatSimple {
		scope = fmt.Sprintf("%d", now.Year())
	}
	seq, err := s.seqRepo.Next(ctx, scope)
	if err != nil {
		return nil, err
	}

	po := &domain.PurchaseOrder{
		PONumber:      gst.GeneratePONumber(s.cfg.NumberPrefix, format, seq, now),
		ProjectID:     input.ProjectID,
		VendorID:      input.VendorID,
		Status:        domain.POStatusDraft,
		TaxType:       string(taxType),
		TaxRate:       input.TaxRate,
		Subtotal:      totals.Subtotal,
		CGSTAmount:    totals.CGSTAmount,
		SGSTAmount:    totals.SGSTAmount,
		IGSTAmount:    totals.IGSTAmount,
		Total:         totals.Total,
		AmountInWords: totals.AmountInWords,
		Notes:         input.Notes,
		CreatedBy:     createdBy,
		Items:         items,
	}

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	log.Printf("purchaseOrderService.Create: %s created for project %s, total %.2f (%s)",
		po.PONumber, po.ProjectID, po.Total, po.TaxType)

	return &POWithWarnings{
		PurchaseOrder: po,
		Warnings:      gst.ValidateCounterparty(vendor),
	}, nil
}

func (s *purchaseOrderService) GetByID(ctx context.Context, poID uuid.UUID) (*domain.PurchaseOrder, error) {
	return s.poRepo.GetByID(ctx, poID)
}

func (s *purchaseOrderService) ListByProject(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	return s.poRepo.ListByProject(ctx, projectID, offset, limit)
}

func (s *purchaseOrderService) List(ctx context.Context, status domain.POStatus, offset, limit int) ([]domain.PurchaseOrder, int, error) {
	return s.poRepo.List(ctx, status, offset, limit)
}

func (s *purchaseOrderService) UpdateStatus(ctx context.Context, poID uuid.UUID, status domain.POStatus) error {
	switch status {
	case domain.POStatusDraft, domain.POStatusIssued, domain.POStatusClosed:
	default:
		return domain.ErrInvalidStatus
	}
	return s.poRepo.UpdateStatus(ctx, poID, status)
}

func (s *purchaseOrderService) Delete(ctx context.Context, poID uuid.UUID) error {
	return s.poRepo.Delete(ctx, poID)
}
