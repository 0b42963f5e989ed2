package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// CashbookFilterParams contains filtering parameters for cashbook queries
type CashbookFilterParams struct {
	Pagination *pagination.PaginationParams
	Direction  *enum.EntryDirection
	Method     *enum.PaymentMethod
	StartDate  *time.Time
	EndDate    *time.Time
}

// CashbookSummary aggregates a date range of cashbook entries.
type CashbookSummary struct {
	TotalIn  float64 `json:"total_in"`
	TotalOut float64 `json:"total_out"`
	Balance  float64 `json:"balance"`
}

// CashbookRepository defines the interface for cashbook data operations
type CashbookRepository interface {
	Create(ctx context.Context, entry *entity.CashbookEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CashbookEntry, error)
	Update(ctx context.Context, entry *entity.CashbookEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CashbookFilterParams) ([]entity.CashbookEntry, int64, error)
	Summarize(ctx context.Context, startDate, endDate *time.Time) (*CashbookSummary, error)
}
