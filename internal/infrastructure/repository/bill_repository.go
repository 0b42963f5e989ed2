package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	domainRepo "github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

// Create persists the bill with its items, charges and discounts in one
// transaction via GORM association writes.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Charges").
		Preload("Discounts").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetByBillNo(ctx context.Context, billNo string, billType enum.BillType) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		First(&bill, "bill_no = ? AND type = ?", billNo, billType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Omit("Items", "Charges", "Discounts").Save(bill).Error
}

// ReplaceDetails swaps the bill's line items, charges and discounts. The old
// rows are hard-deleted so a re-read never resurrects them.
func (r *billRepository) ReplaceDetails(ctx context.Context, billID uuid.UUID, items []entity.BillItem, charges []entity.BillCharge, discounts []entity.BillDiscount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.BillItem{}, "bill_id = ?", billID).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&entity.BillCharge{}, "bill_id = ?", billID).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Delete(&entity.BillDiscount{}, "bill_id = ?", billID).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].BillID = billID
		}
		for i := range charges {
			charges[i].BillID = billID
		}
		for i := range discounts {
			discounts[i].BillID = billID
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		if len(charges) > 0 {
			if err := tx.Create(&charges).Error; err != nil {
				return err
			}
		}
		if len(discounts) > 0 {
			if err := tx.Create(&discounts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.BillItem{}, "bill_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BillCharge{}, "bill_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.BillDiscount{}, "bill_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Bill{}, "id = ?", id).Error
	})
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(BusinessScope(ctx))

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR party_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.PartyID != nil {
		query = query.Where("party_id = ?", *params.PartyID)
	}

	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}

	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Charges").
		Preload("Discounts").
		Order(sortBy + " " + sortOrder).
		Find(&bills).Error

	return bills, total, err
}

// ListWithCursor returns bills using cursor-based pagination
func (r *billRepository) ListWithCursor(ctx context.Context, params *domainRepo.BillCursorFilterParams) ([]entity.Bill, error) {
	var bills []entity.Bill

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Bill{}).Scopes(BusinessScope(ctx))

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR party_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.PartyID != nil {
		query = query.Where("party_id = ?", *params.PartyID)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Charges").
		Preload("Discounts").
		Order("created_at ASC, id ASC").
		Find(&bills).Error

	return bills, err
}

func (r *billRepository) ListUnpaidByParty(ctx context.Context, partyID uuid.UUID) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		Preload("Items").
		Preload("Charges").
		Preload("Discounts").
		Where("party_id = ? AND payment_method = ?", partyID, enum.PaymentMethodUnpaid).
		Order("created_at ASC").
		Find(&bills).Error
	return bills, err
}

// NextBillNo derives the next sequential number from the highest existing
// one within the business, e.g. "INV-042" -> "INV-043". Soft-deleted bills
// still count so numbers are never reissued.
func (r *billRepository) NextBillNo(ctx context.Context, billType enum.BillType) (string, error) {
	prefix := "INV"
	if billType == enum.BillTypePurchase {
		prefix = "PUR"
	}

	var billNos []string
	err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Unscoped().
		Scopes(BusinessScope(ctx)).
		Where("type = ?", billType).
		Pluck("bill_no", &billNos).Error
	if err != nil {
		return "", err
	}

	max := 0
	for _, no := range billNos {
		rest, ok := strings.CutPrefix(no, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s-%03d", prefix, max+1), nil
}
