package service

import (
	"context"
	"fmt"
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

// BillService handles sale and purchase bills
type BillService struct {
	billRepo     repository.BillRepository
	partyRepo    repository.PartyRepository
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewBillService creates a new bill service
func NewBillService(
	billRepo repository.BillRepository,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) *BillService {
	return &BillService{
		billRepo:     billRepo,
		partyRepo:    partyRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// BillItemInput is one line item on a bill
type BillItemInput struct {
	ProductID *uuid.UUID
	Name      string
	Quantity  float64
	UnitPrice float64
	Unit      *string
}

// BillChargeInput is one additional charge on a bill
type BillChargeInput struct {
	Name   string
	Amount float64
}

// BillDiscountInput is one discount on a bill
type BillDiscountInput struct {
	Kind  enum.DiscountKind
	Value float64
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	UserID        uuid.UUID
	Type          enum.BillType
	BillNo        string // auto-generated when empty
	PartyID       uuid.UUID
	PaymentMethod enum.PaymentMethod
	Date          *time.Time
	DueDate       *time.Time
	Items         []BillItemInput
	Charges       []BillChargeInput
	Discounts     []BillDiscountInput
	BalanceDue    *float64
	TotalAmount   *float64
	Notes         *string
	Terms         *string
	Photos        []string
}

func validateBillDetails(items []BillItemInput, charges []BillChargeInput, discounts []BillDiscountInput) error {
	if len(items) == 0 {
		return apperror.NewBadRequestError("A bill needs at least one item")
	}
	for _, item := range items {
		if item.Name == "" {
			return apperror.NewBadRequestError("Item name is required")
		}
		if item.Quantity <= 0 {
			return apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if item.UnitPrice < 0 {
			return apperror.NewBadRequestError("Item price cannot be negative")
		}
	}
	for _, charge := range charges {
		if charge.Name == "" {
			return apperror.NewBadRequestError("Charge name is required")
		}
		if charge.Amount < 0 {
			return apperror.NewBadRequestError("Charge amount cannot be negative")
		}
	}
	for _, discount := range discounts {
		if discount.Value < 0 {
			return apperror.NewBadRequestError("Discount value cannot be negative")
		}
		if discount.Kind == enum.DiscountKindPercentage && discount.Value > 100 {
			return apperror.NewBadRequestError("Percentage discount cannot exceed 100")
		}
	}
	return nil
}

// stockPlan builds the deltas and ledger movements a bill applies to stock.
// Sales move stock out, purchases move stock in; reverse inverts both.
func stockPlan(bill *entity.Bill, reverse bool) (map[uuid.UUID]float64, []entity.StockMovement) {
	deltas := make(map[uuid.UUID]float64)
	var movements []entity.StockMovement

	direction := enum.EntryDirectionOut
	sign := -1.0
	if bill.Type == enum.BillTypePurchase {
		direction = enum.EntryDirectionIn
		sign = 1.0
	}
	if reverse {
		sign = -sign
		if direction == enum.EntryDirectionOut {
			direction = enum.EntryDirectionIn
		} else {
			direction = enum.EntryDirectionOut
		}
	}

	date := time.Now()
	if bill.Date != nil {
		date = *bill.Date
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		if item.ProductID == nil {
			continue
		}
		deltas[*item.ProductID] += sign * item.Quantity

		note := bill.BillNo
		if reverse {
			note = bill.BillNo + " (reversed)"
		}
		billID := bill.ID
		movements = append(movements, entity.StockMovement{
			BusinessID: bill.BusinessID,
			ProductID:  *item.ProductID,
			BillID:     &billID,
			Direction:  direction,
			Quantity:   item.Quantity,
			Note:       &note,
			Date:       date,
		})
	}

	return deltas, movements
}

// CreateBill creates a bill, snapshots the party onto it, and adjusts stock
// for every line item that references a product. Sales decrement stock,
// purchases increment it.
func (s *BillService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	if err := validateBillDetails(input.Items, input.Charges, input.Discounts); err != nil {
		return nil, err
	}

	if input.PaymentMethod == enum.PaymentMethodUnpaid && input.DueDate == nil {
		return nil, apperror.NewBadRequestError("Unpaid bills need a due date")
	}

	party, err := s.partyRepo.GetByID(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}

	billNo := input.BillNo
	if billNo == "" {
		billNo, err = s.billRepo.NextBillNo(ctx, input.Type)
		if err != nil {
			return nil, err
		}
	} else {
		existing, err := s.billRepo.GetByBillNo(ctx, billNo, input.Type)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Bill number already in use")
		}
	}

	bill := &entity.Bill{
		BusinessID:    businessID,
		UserID:        input.UserID,
		Type:          input.Type,
		BillNo:        billNo,
		PartyID:       party.ID,
		PartyName:     party.Name,
		PartyPhone:    party.Phone,
		PartyAddress:  party.Address,
		PartyGSTIN:    party.GSTIN,
		PaymentMethod: input.PaymentMethod,
		Date:          input.Date,
		DueDate:       input.DueDate,
		BalanceDue:    input.BalanceDue,
		TotalAmount:   input.TotalAmount,
		Notes:         input.Notes,
		Terms:         input.Terms,
		Photos:        input.Photos,
	}

	for i, item := range input.Items {
		bill.Items = append(bill.Items, entity.BillItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Unit:      item.Unit,
			Position:  i,
		})
	}
	for _, charge := range input.Charges {
		bill.Charges = append(bill.Charges, entity.BillCharge{Name: charge.Name, Amount: charge.Amount})
	}
	for _, discount := range input.Discounts {
		bill.Discounts = append(bill.Discounts, entity.BillDiscount{Kind: discount.Kind, Value: discount.Value})
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	if err := s.applyStock(ctx, bill, false); err != nil {
		// Roll the bill back so a failed stock adjustment leaves nothing behind.
		_ = s.billRepo.Delete(ctx, bill.ID)
		return nil, err
	}

	return bill, nil
}

func (s *BillService) applyStock(ctx context.Context, bill *entity.Bill, reverse bool) error {
	deltas, movements := stockPlan(bill, reverse)
	if len(deltas) == 0 {
		return nil
	}

	// Reversals may legitimately take stock negative (the product was sold
	// or adjusted in the meantime).
	failed, err := s.productRepo.AdjustStockBatch(ctx, deltas, movements, reverse)
	if err != nil {
		return err
	}
	if len(failed) > 0 {
		return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for %d product(s)", len(failed)))
	}
	return nil
}

// BillWithTotals couples a bill with its computed totals.
type BillWithTotals struct {
	Bill   *entity.Bill   `json:"bill"`
	Totals billing.Totals `json:"totals"`
}

// GetBill retrieves a bill with its details and computed totals
func (s *BillService) GetBill(ctx context.Context, id uuid.UUID) (*BillWithTotals, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	return &BillWithTotals{Bill: bill, Totals: billing.ComputeTotals(bill)}, nil
}

// ListBills lists bills with computed totals
func (s *BillService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[BillWithTotals], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	results := make([]BillWithTotals, 0, len(bills))
	for i := range bills {
		results = append(results, BillWithTotals{
			Bill:   &bills[i],
			Totals: billing.ComputeTotals(&bills[i]),
		})
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(results, pag), nil
}

// ListBillsWithCursor lists bills using cursor-based pagination
func (s *BillService) ListBillsWithCursor(ctx context.Context, params *repository.BillCursorFilterParams) (*pagination.CursorPaginatedResult[BillWithTotals], error) {
	bills, err := s.billRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(bills, params.Cursor.Limit,
		func(b entity.Bill) string { return b.ID.String() },
		func(b entity.Bill) time.Time { return b.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	results := make([]BillWithTotals, 0, len(items))
	for i := range items {
		results = append(results, BillWithTotals{
			Bill:   &items[i],
			Totals: billing.ComputeTotals(&items[i]),
		})
	}

	return pagination.NewCursorPaginatedResult(results, cursorPag), nil
}

// UpdateBillInput represents the update bill input. Items, charges and
// discounts replace the existing details when provided.
type UpdateBillInput struct {
	ID            uuid.UUID
	PaymentMethod *enum.PaymentMethod
	Date          *time.Time
	DueDate       *time.Time
	Items         []BillItemInput
	Charges       []BillChargeInput
	Discounts     []BillDiscountInput
	BalanceDue    *float64
	TotalAmount   *float64
	Notes         *string
	Terms         *string
	Photos        []string
}

// UpdateBill updates a bill. When line items change, the old stock effects
// are reversed and the new ones applied so product stock stays consistent.
func (s *BillService) UpdateBill(ctx context.Context, input *UpdateBillInput) (*BillWithTotals, error) {
	bill, err := s.billRepo.GetWithDetails(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	if input.Items != nil {
		if err := validateBillDetails(input.Items, input.Charges, input.Discounts); err != nil {
			return nil, err
		}

		if err := s.applyStock(ctx, bill, true); err != nil {
			return nil, err
		}

		items := make([]entity.BillItem, 0, len(input.Items))
		for i, item := range input.Items {
			items = append(items, entity.BillItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Unit:      item.Unit,
				Position:  i,
			})
		}
		charges := make([]entity.BillCharge, 0, len(input.Charges))
		for _, charge := range input.Charges {
			charges = append(charges, entity.BillCharge{Name: charge.Name, Amount: charge.Amount})
		}
		discounts := make([]entity.BillDiscount, 0, len(input.Discounts))
		for _, discount := range input.Discounts {
			discounts = append(discounts, entity.BillDiscount{Kind: discount.Kind, Value: discount.Value})
		}

		if err := s.billRepo.ReplaceDetails(ctx, bill.ID, items, charges, discounts); err != nil {
			return nil, err
		}

		bill.Items = items
		bill.Charges = charges
		bill.Discounts = discounts

		if err := s.applyStock(ctx, bill, false); err != nil {
			return nil, err
		}
	}

	if input.PaymentMethod != nil {
		bill.PaymentMethod = *input.PaymentMethod
	}
	if input.Date != nil {
		bill.Date = input.Date
	}
	if input.DueDate != nil {
		bill.DueDate = input.DueDate
	}
	if input.BalanceDue != nil {
		bill.BalanceDue = input.BalanceDue
	}
	if input.TotalAmount != nil {
		bill.TotalAmount = input.TotalAmount
	}
	if input.Notes != nil {
		bill.Notes = input.Notes
	}
	if input.Terms != nil {
		bill.Terms = input.Terms
	}
	if input.Photos != nil {
		bill.Photos = input.Photos
	}

	if bill.PaymentMethod == enum.PaymentMethodUnpaid && bill.DueDate == nil {
		return nil, apperror.NewBadRequestError("Unpaid bills need a due date")
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		return nil, err
	}

	return &BillWithTotals{Bill: bill, Totals: billing.ComputeTotals(bill)}, nil
}

// DeleteBill deletes a bill and reverses the stock effects of its items
func (s *BillService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetWithDetails(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	if err := s.applyStock(ctx, bill, true); err != nil {
		return err
	}

	if err := s.movementRepo.DeleteByBillID(ctx, id); err != nil {
		return err
	}

	return s.billRepo.Delete(ctx, id)
}
