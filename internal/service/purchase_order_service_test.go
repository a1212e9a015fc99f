package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"opsboard/internal/config"
	"opsboard/internal/domain"
	"opsboard/internal/gst"
	"opsboard/internal/service"
	"opsboard/mocks"
)

func setupPOService(cfg config.POConfig) (*mocks.MockPurchaseOrderRepo, *mocks.MockPOSequenceRepo, *mocks.MockPartyRepo, *mocks.MockProjectRepo, service.PurchaseOrderService) {
	poRepo := new(mocks.MockPurchaseOrderRepo)
	seqRepo := new(mocks.MockPOSequenceRepo)
	partyRepo := new(mocks.MockPartyRepo)
	projectRepo := new(mocks.MockProjectRepo)
	svc := service.NewPurchaseOrderService(poRepo, seqRepo, partyRepo, projectRepo, cfg)
	return poRepo, seqRepo, partyRepo, projectRepo, svc
}

func TestCreatePO_IntraStateSplitsTax(t *testing.T) {
	poRepo, seqRepo, partyRepo, projectRepo, svc := setupPOService(config.POConfig{
		NumberPrefix: "PO",
		NumberFormat: "financial_year",
	})

	projectID := uuid.New()
	vendorID := uuid.New()
	clientID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, ClientID: &clientID}, nil)
	partyRepo.On("GetByID", mock.Anything, vendorID).Return(&domain.Party{
		ID: vendorID, Kind: domain.PartyVendor, Name: "Acme Switchgear",
		GSTIN: "29ABCDE1234F1Z5", StateCode: "29",
	}, nil)
	partyRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Party{
		ID: clientID, Kind: domain.PartyClient, StateCode: "29",
	}, nil)

	fy := gst.FinancialYearShort(time.Now().UTC())
	seqRepo.On("Next", mock.Anything, fy).Return(7, nil)
	poRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	result, err := svc.Create(context.Background(), service.CreatePOInput{
		ProjectID: projectID,
		VendorID:  vendorID,
		TaxRate:   18,
		Items: []service.POItemInput{
			{Description: "MCCB panel", Quantity: 10, UnitRate: 100},
		},
	}, uuid.New())

	assert.NoError(t, err)
	po := result.PurchaseOrder
	assert.Equal(t, fmt.Sprintf("PO/%s/007", fy), po.PONumber)
	assert.Equal(t, domain.POStatusDraft, po.Status)
	assert.Equal(t, "cgst_sgst", po.TaxType)
	assert.Equal(t, 1000.0, po.Subtotal)
	assert.Equal(t, 90.0, *po.CGSTAmount)
	assert.Equal(t, 90.0, *po.SGSTAmount)
	assert.Nil(t, po.IGSTAmount)
	assert.Equal(t, 1180.0, po.Total)
	assert.Equal(t, "INR One Thousand One Hundred Eighty Only", po.AmountInWords)
	assert.Empty(t, result.Warnings)

	poRepo.AssertExpectations(t)
	seqRepo.AssertExpectations(t)
}

func TestCreatePO_InterStateLeviesIGST(t *testing.T) {
	poRepo, seqRepo, partyRepo, projectRepo, svc := setupPOService(config.POConfig{
		NumberPrefix: "PO",
		NumberFormat: "financial_year",
	})

	projectID := uuid.New()
	vendorID := uuid.New()
	clientID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID, ClientID: &clientID}, nil)
	partyRepo.On("GetByID", mock.Anything, vendorID).Return(&domain.Party{
		ID: vendorID, Kind: domain.PartyVendor, GSTIN: "27ABCDE1234F1Z5", StateCode: "27",
	}, nil)
	partyRepo.On("GetByID", mock.Anything, clientID).Return(&domain.Party{
		ID: clientID, Kind: domain.PartyClient, StateCode: "29",
	}, nil)
	seqRepo.On("Next", mock.Anything, mock.AnythingOfType("string")).Return(1, nil)
	poRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	result, err := svc.Create(context.Background(), service.CreatePOInput{
		ProjectID: projectID,
		VendorID:  vendorID,
		TaxRate:   18,
		Items: []service.POItemInput{
			{Description: "Cabling", Quantity: 10, UnitRate: 100},
		},
	}, uuid.New())

	assert.NoError(t, err)
	po := result.PurchaseOrder
	assert.Equal(t, "igst", po.TaxType)
	assert.Equal(t, 180.0, *po.IGSTAmount)
	assert.Nil(t, po.CGSTAmount)
	assert.Nil(t, po.SGSTAmount)
	assert.Equal(t, 1180.0, po.Total)
}

func TestCreatePO_NoClientDefaultsToSplit(t *testing.T) {
	poRepo, seqRepo, partyRepo, projectRepo, svc := setupPOService(config.POConfig{
		NumberPrefix: "PO",
		NumberFormat: "financial_year",
	})

	projectID := uuid.New()
	vendorID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	partyRepo.On("GetByID", mock.Anything, vendorID).Return(&domain.Party{
		ID: vendorID, Kind: domain.PartyVendor,
	}, nil)
	seqRepo.On("Next", mock.Anything, mock.AnythingOfType("string")).Return(1, nil)
	poRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	result, err := svc.Create(context.Background(), service.CreatePOInput{
		ProjectID: projectID,
		VendorID:  vendorID,
		TaxRate:   18,
		Items: []service.POItemInput{
			{Description: "Hardware", Quantity: 1, UnitRate: 500},
		},
	}, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, "cgst_sgst", result.PurchaseOrder.TaxType)
	// Vendor without GSTIN or state code warns but never blocks.
	assert.NotEmpty(t, result.Warnings)
}

func TestCreatePO_RejectsClientAsVendor(t *testing.T) {
	poRepo, _, partyRepo, projectRepo, svc := setupPOService(config.POConfig{
		NumberPrefix: "PO",
		NumberFormat: "financial_year",
	})

	projectID := uuid.New()
	partyID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	partyRepo.On("GetByID", mock.Anything, partyID).Return(&domain.Party{ID: partyID, Kind: domain.PartyClient}, nil)

	_, err := svc.Create(context.Background(), service.CreatePOInput{
		ProjectID: projectID,
		VendorID:  partyID,
		TaxRate:   18,
		Items:     []service.POItemInput{{Description: "Anything", Quantity: 1, UnitRate: 1}},
	}, uuid.New())

	assert.ErrorIs(t, err, domain.ErrVendorRequired)
	poRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePO_SimpleFormatUsesCalendarYear(t *testing.T) {
	poRepo, seqRepo, partyRepo, projectRepo, svc := setupPOService(config.POConfig{
		NumberPrefix: "ACME",
		NumberFormat: "simple",
	})

	projectID := uuid.New()
	vendorID := uuid.New()

	projectRepo.On("GetByID", mock.Anything, projectID).Return(&domain.Project{ID: projectID}, nil)
	partyRepo.On("GetByID", mock.Anything, vendorID).Return(&domain.Party{
		ID: vendorID, Kind: domain.PartyVendor, GSTIN: "29ABCDE1234F1Z5", StateCode: "29",
	}, nil)

	year := fmt.Sprintf("%d", time.Now().UTC().Year())
	seqRepo.On("Next", mock.Anything, year).Return(1042, nil)
	poRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PurchaseOrder")).Return(nil)

	result, err := svc.Create(context.Background(), service.CreatePOInput{
		ProjectID: projectID,
		VendorID:  vendorID,
		TaxRate:   18,
		Items:     []service.POItemInput{{Description: "Spares", Quantity: 1, UnitRate: 100}},
	}, uuid.New())

	assert.NoError(t, err)
	// Sequence numbers past three digits render at natural width.
	assert.Equal(t, fmt.Sprintf("ACME-%s-1042", year), result.PurchaseOrder.PONumber)
}

func TestUpdatePOStatus_RejectsUnknownStatus(t *testing.T) {
	poRepo, _, _, _, svc := setupPOService(config.POConfig{NumberPrefix: "PO", NumberFormat: "financial_year"})

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.POStatus("archived"))

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	poRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
