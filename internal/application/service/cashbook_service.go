package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	infraRepo "github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// CashbookService handles cashbook operations
type CashbookService struct {
	cashbookRepo repository.CashbookRepository
}

// NewCashbookService creates a new cashbook service
func NewCashbookService(cashbookRepo repository.CashbookRepository) *CashbookService {
	return &CashbookService{cashbookRepo: cashbookRepo}
}

// CreateEntryInput represents the create cashbook entry input
type CreateEntryInput struct {
	UserID    uuid.UUID
	Direction enum.EntryDirection
	Amount    float64
	Method    enum.PaymentMethod
	Note      *string
	Date      time.Time
}

// CreateEntry records a cash-in or cash-out entry
func (s *CashbookService) CreateEntry(ctx context.Context, input *CreateEntryInput) (*entity.CashbookEntry, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}
	if input.Method == enum.PaymentMethodUnpaid {
		return nil, apperror.NewBadRequestError("Cashbook entries must use cash or online payment")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &entity.CashbookEntry{
		BusinessID: businessID,
		UserID:     input.UserID,
		Direction:  input.Direction,
		Amount:     input.Amount,
		Method:     input.Method,
		Note:       input.Note,
		Date:       date,
	}

	if err := s.cashbookRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetEntry retrieves a cashbook entry by ID
func (s *CashbookService) GetEntry(ctx context.Context, id uuid.UUID) (*entity.CashbookEntry, error) {
	entry, err := s.cashbookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Cashbook entry")
	}
	return entry, nil
}

// ListEntries lists cashbook entries in the active business
func (s *CashbookService) ListEntries(ctx context.Context, params *repository.CashbookFilterParams) (*pagination.PaginatedResult[entity.CashbookEntry], error) {
	entries, total, err := s.cashbookRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// UpdateEntryInput represents the update cashbook entry input
type UpdateEntryInput struct {
	ID        uuid.UUID
	Direction *enum.EntryDirection
	Amount    *float64
	Method    *enum.PaymentMethod
	Note      *string
	Date      *time.Time
}

// UpdateEntry updates a cashbook entry
func (s *CashbookService) UpdateEntry(ctx context.Context, input *UpdateEntryInput) (*entity.CashbookEntry, error) {
	entry, err := s.cashbookRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NewNotFoundError("Cashbook entry")
	}

	if input.Direction != nil {
		entry.Direction = *input.Direction
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be greater than zero")
		}
		entry.Amount = *input.Amount
	}
	if input.Method != nil {
		if *input.Method == enum.PaymentMethodUnpaid {
			return nil, apperror.NewBadRequestError("Cashbook entries must use cash or online payment")
		}
		entry.Method = *input.Method
	}
	if input.Note != nil {
		entry.Note = input.Note
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	if err := s.cashbookRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry deletes a cashbook entry
func (s *CashbookService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	entry, err := s.cashbookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return apperror.NewNotFoundError("Cashbook entry")
	}

	return s.cashbookRepo.Delete(ctx, id)
}

// GetSummary aggregates cash in, cash out and balance for the date range
func (s *CashbookService) GetSummary(ctx context.Context, startDate, endDate *time.Time) (*repository.CashbookSummary, error) {
	return s.cashbookRepo.Summarize(ctx, startDate, endDate)
}
