package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/billing"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	infraRepo "github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// PartyService handles party-related operations
type PartyService struct {
	partyRepo repository.PartyRepository
	billRepo  repository.BillRepository
}

// NewPartyService creates a new party service
func NewPartyService(partyRepo repository.PartyRepository, billRepo repository.BillRepository) *PartyService {
	return &PartyService{partyRepo: partyRepo, billRepo: billRepo}
}

// CreatePartyInput represents the create party input
type CreatePartyInput struct {
	UserID  uuid.UUID
	Type    enum.PartyType
	Name    string
	Phone   string
	Email   *string
	Address *string
	GSTIN   *string
	Photo   *string
}

// CreateParty creates a new party
func (s *PartyService) CreateParty(ctx context.Context, input *CreatePartyInput) (*entity.Party, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	existing, err := s.partyRepo.GetByPhone(ctx, input.Phone, input.Type)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A party with this phone number already exists")
	}

	party := &entity.Party{
		BusinessID: businessID,
		UserID:     input.UserID,
		Type:       input.Type,
		Name:       input.Name,
		Phone:      input.Phone,
		Email:      input.Email,
		Address:    input.Address,
		GSTIN:      input.GSTIN,
		Photo:      input.Photo,
	}

	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by ID
func (s *PartyService) GetParty(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}
	return party, nil
}

// ListParties lists parties in the active business
func (s *PartyService) ListParties(ctx context.Context, params *repository.PartyFilterParams) (*pagination.PaginatedResult[entity.Party], error) {
	parties, total, err := s.partyRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(parties, pag), nil
}

// ListPartiesWithCursor lists parties using cursor-based pagination
func (s *PartyService) ListPartiesWithCursor(ctx context.Context, params *pagination.CursorParams, search string, partyType *enum.PartyType) (*pagination.CursorPaginatedResult[entity.Party], error) {
	parties, err := s.partyRepo.ListWithCursor(ctx, params, search, partyType)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(parties, params.Limit,
		func(p entity.Party) string { return p.ID.String() },
		func(p entity.Party) time.Time { return p.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdatePartyInput represents the update party input
type UpdatePartyInput struct {
	ID      uuid.UUID
	Name    *string
	Phone   *string
	Email   *string
	Address *string
	GSTIN   *string
	Photo   *string
}

// UpdateParty updates a party. Bills keep the party snapshot taken at
// creation, so historical documents are unaffected.
func (s *PartyService) UpdateParty(ctx context.Context, input *UpdatePartyInput) (*entity.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}

	if input.Name != nil {
		party.Name = *input.Name
	}
	if input.Phone != nil {
		party.Phone = *input.Phone
	}
	if input.Email != nil {
		party.Email = input.Email
	}
	if input.Address != nil {
		party.Address = input.Address
	}
	if input.GSTIN != nil {
		party.GSTIN = input.GSTIN
	}
	if input.Photo != nil {
		party.Photo = input.Photo
	}

	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// DeleteParty deletes a party
func (s *PartyService) DeleteParty(ctx context.Context, id uuid.UUID) error {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if party == nil {
		return apperror.NewNotFoundError("Party")
	}

	return s.partyRepo.Delete(ctx, id)
}

// PartyBalance is the outstanding position of one party.
type PartyBalance struct {
	PartyID    uuid.UUID `json:"party_id"`
	Receivable float64   `json:"receivable"`
	Payable    float64   `json:"payable"`
	UnpaidBill int       `json:"unpaid_bills"`
}

// GetPartyBalance computes the outstanding balance of a party from its
// unpaid bills. Unpaid sales are receivable, unpaid purchases payable.
func (s *PartyService) GetPartyBalance(ctx context.Context, partyID uuid.UUID) (*PartyBalance, error) {
	party, err := s.partyRepo.GetByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}

	bills, err := s.billRepo.ListUnpaidByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	balance := &PartyBalance{PartyID: partyID}
	for i := range bills {
		bill := &bills[i]
		totals := billing.ComputeTotals(bill)
		amount := billing.DisplayAmount(bill, totals)

		if bill.Type == enum.BillTypeSale {
			balance.Receivable += amount
		} else {
			balance.Payable += amount
		}
		balance.UnpaidBill++
	}

	return balance, nil
}
