package service

import (
	"context"

	"github.com/google/uuid"

	"opsboard/internal/domain"
	"opsboard/internal/gst"
	"opsboard/internal/port"
)

// CreatePartyInput is the DTO for creating a vendor or client.
type CreatePartyInput struct {
	Kind         domain.PartyKind `json:"kind" binding:"required"`
	Name         string           `json:"name" binding:"required"`
	GSTIN        string           `json:"gstin"`
	StateCode    string           `json:"state_code"`
	ContactName  string           `json:"contact_name"`
	ContactEmail string           `json:"contact_email"`
	ContactPhone string           `json:"contact_phone"`
	Address      string           `json:"address"`
}

// UpdatePartyInput is the DTO for updating a party.
type UpdatePartyInput struct {
	Name         *string `json:"name"`
	GSTIN        *string `json:"gstin"`
	StateCode    *string `json:"state_code"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
	IsActive     *bool   `json:"is_active"`
}

// PartyWithFindings pairs a party with its counterparty readiness findings.
type PartyWithFindings struct {
	Party    *domain.Party        `json:"party"`
	Findings []domain.CheckResult `json:"findings,omitempty"`
}

// PartyService defines the vendor/client management contract.
type PartyService interface {
	Create(ctx context.Context, input CreatePartyInput) (*PartyWithFindings, error)
	GetByID(ctx context.Context, partyID uuid.UUID) (*PartyWithFindings, error)
	List(ctx context.Context, kind domain.PartyKind, activeOnly bool, offset, limit int) ([]domain.Party, int, error)
	Update(ctx context.Context, partyID uuid.UUID, input UpdatePartyInput) (*PartyWithFindings, error)
	Delete(ctx context.Context, partyID uuid.UUID) error
}

type partyService struct {
	repo port.PartyRepository
}

// NewPartyService creates a new PartyService implementation.
func NewPartyService(repo port.PartyRepository) PartyService {
	return &partyService{repo: repo}
}

func (s *partyService) Create(ctx context.Context, input CreatePartyInput) (*PartyWithFindings, error) {
	if !domain.ValidPartyKinds[input.Kind] {
		return nil, domain.ErrInvalidPartyKind
	}

	// A GSTIN carries its state code in the first two characters; fill the
	// state code from it when the caller omits one.
	stateCode := input.StateCode
	if stateCode == "" {
		stateCode = gst.ExtractStateCode(input.GSTIN)
	}

	party := &domain.Party{
		Kind:         input.Kind,
		Name:         input.Name,
		GSTIN:        input.GSTIN,
		StateCode:    stateCode,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Address:      input.Address,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return &PartyWithFindings{Party: party, Findings: gst.ValidateCounterparty(party)}, nil
}

func (s *partyService) GetByID(ctx context.Context, partyID uuid.UUID) (*PartyWithFindings, error) {
	party, err := s.repo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	return &PartyWithFindings{Party: party, Findings: gst.ValidateCounterparty(party)}, nil
}

func (s *partyService) List(ctx context.Context, kind domain.PartyKind, activeOnly bool, offset, limit int) ([]domain.Party, int, error) {
	return s.repo.List(ctx, kind, activeOnly, offset, limit)
}

func (s *partyService) Update(ctx context.Context, partyID uuid.UUID, input UpdatePartyInput) (*PartyWithFindings, error) {
	party, err := s.repo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		party.Name = *input.Name
	}
	if input.GSTIN != nil {
		party.GSTIN = *input.GSTIN
		if party.StateCode == "" && input.StateCode == nil {
			party.StateCode = gst.ExtractStateCode(party.GSTIN)
		}
	}
	if input.StateCode != nil {
		party.StateCode = *input.StateCode
	}
	if input.ContactName != nil {
		party.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		party.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		party.ContactPhone = *input.ContactPhone
	}
	if input.Address != nil {
		party.Address = *input.Address
	}
	if input.IsActive != nil {
		party.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, party); err != nil {
		return nil, err
	}
	return &PartyWithFindings{Party: party, Findings: gst.ValidateCounterparty(party)}, nil
}

func (s *partyService) Delete(ctx context.Context, partyID uuid.UUID) error {
	return s.repo.Delete(ctx, partyID)
}
