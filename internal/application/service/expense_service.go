package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	infraRepo "github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// ExpenseService handles expense and budget operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	budgetRepo  repository.BudgetRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, budgetRepo repository.BudgetRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, budgetRepo: budgetRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Category string
	Amount   float64
	Note     *string
	Date     time.Time
}

// CreateExpense records a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, input *CreateExpenseInput) (*entity.Expense, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}
	if input.Category == "" {
		return nil, apperror.NewBadRequestError("Category is required")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := &entity.Expense{
		BusinessID: businessID,
		UserID:     input.UserID,
		Category:   input.Category,
		Amount:     input.Amount,
		Note:       input.Note,
		Date:       date,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses lists expenses in the active business
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	ID       uuid.UUID
	Category *string
	Amount   *float64
	Note     *string
	Date     *time.Time
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Amount must be greater than zero")
		}
		expense.Amount = *input.Amount
	}
	if input.Note != nil {
		expense.Note = input.Note
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}

	return s.expenseRepo.Delete(ctx, id)
}

// SetBudgetInput represents the set budget input
type SetBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Month    string // "2006-01"
	Amount   float64
}

// SetBudget creates or updates the monthly budget for a category
func (s *ExpenseService) SetBudget(ctx context.Context, input *SetBudgetInput) (*entity.Budget, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	if _, err := time.Parse("2006-01", input.Month); err != nil {
		return nil, apperror.NewBadRequestError("Month must be in YYYY-MM format")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Amount must be greater than zero")
	}

	budget, err := s.budgetRepo.GetByCategoryMonth(ctx, input.Category, input.Month)
	if err != nil {
		return nil, err
	}

	if budget != nil {
		budget.Amount = input.Amount
		if err := s.budgetRepo.Update(ctx, budget); err != nil {
			return nil, err
		}
		return budget, nil
	}

	budget = &entity.Budget{
		BusinessID: businessID,
		UserID:     input.UserID,
		Category:   input.Category,
		Month:      input.Month,
		Amount:     input.Amount,
	}
	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// DeleteBudget deletes a budget
func (s *ExpenseService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if budget == nil {
		return apperror.NewNotFoundError("Budget")
	}

	return s.budgetRepo.Delete(ctx, id)
}

// BudgetStatus is one category's spend against its monthly budget.
type BudgetStatus struct {
	Category  string   `json:"category"`
	Spent     float64  `json:"spent"`
	Budget    *float64 `json:"budget,omitempty"`
	Remaining *float64 `json:"remaining,omitempty"`
	OverLimit bool     `json:"over_limit"`
}

// MonthlySummary is the per-category expense summary for one month.
type MonthlySummary struct {
	Month      string         `json:"month"`
	TotalSpent float64        `json:"total_spent"`
	Categories []BudgetStatus `json:"categories"`
}

// GetMonthlySummary aggregates the month's expenses per category and matches
// them against any budgets set for that month. Categories with a budget but
// no spend still appear.
func (s *ExpenseService) GetMonthlySummary(ctx context.Context, month string) (*MonthlySummary, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, apperror.NewBadRequestError("Month must be in YYYY-MM format")
	}
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	totals, err := s.expenseRepo.TotalsByCategory(ctx, start, end)
	if err != nil {
		return nil, err
	}

	budgets, err := s.budgetRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	budgetByCategory := make(map[string]*entity.Budget, len(budgets))
	for i := range budgets {
		budgetByCategory[budgets[i].Category] = &budgets[i]
	}

	summary := &MonthlySummary{Month: month}
	seen := make(map[string]bool)

	for _, total := range totals {
		status := BudgetStatus{Category: total.Category, Spent: total.Total}
		if budget, ok := budgetByCategory[total.Category]; ok {
			amount := budget.Amount
			remaining := amount - total.Total
			status.Budget = &amount
			status.Remaining = &remaining
			status.OverLimit = total.Total > amount
		}
		summary.Categories = append(summary.Categories, status)
		summary.TotalSpent += total.Total
		seen[total.Category] = true
	}

	for _, budget := range budgets {
		if seen[budget.Category] {
			continue
		}
		amount := budget.Amount
		remaining := amount
		summary.Categories = append(summary.Categories, BudgetStatus{
			Category:  budget.Category,
			Budget:    &amount,
			Remaining: &remaining,
		})
	}

	return summary, nil
}
