package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Type          *enum.BillType
	PartyID       *uuid.UUID
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
	SortBy        string
	SortOrder     string
}

// BillCursorFilterParams contains cursor-based filtering parameters for bill queries
type BillCursorFilterParams struct {
	Cursor  *pagination.CursorParams
	Search  string
	Type    *enum.BillType
	PartyID *uuid.UUID
}

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	// Create persists the bill together with its items, charges and discounts.
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	// GetWithDetails loads the bill with items, charges and discounts, items
	// ordered by position.
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNo(ctx context.Context, billNo string, billType enum.BillType) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	// ReplaceDetails swaps the bill's items, charges and discounts in one
	// transaction.
	ReplaceDetails(ctx context.Context, billID uuid.UUID, items []entity.BillItem, charges []entity.BillCharge, discounts []entity.BillDiscount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	ListWithCursor(ctx context.Context, params *BillCursorFilterParams) ([]entity.Bill, error)
	// ListUnpaidByParty returns unpaid bills of one party, used for balance
	// computation.
	ListUnpaidByParty(ctx context.Context, partyID uuid.UUID) ([]entity.Bill, error)
	// NextBillNo returns the next sequential number for the bill type, e.g.
	// "INV-043" after "INV-042".
	NextBillNo(ctx context.Context, billType enum.BillType) (string, error)
}

// IdempotencyRepository defines the interface for idempotency key storage
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
