package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// CategoryTotal is the spend aggregated for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	// TotalsByCategory sums expenses per category within the date range.
	TotalsByCategory(ctx context.Context, startDate, endDate time.Time) ([]CategoryTotal, error)
}

// BudgetRepository defines the interface for budget data operations
type BudgetRepository interface {
	Create(ctx context.Context, budget *entity.Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)
	// GetByCategoryMonth fetches the budget for one category in one month
	// ("2006-01"), nil when none is set.
	GetByCategoryMonth(ctx context.Context, category, month string) (*entity.Budget, error)
	Update(ctx context.Context, budget *entity.Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByMonth(ctx context.Context, month string) ([]entity.Budget, error)
}
