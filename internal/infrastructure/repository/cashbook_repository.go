package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	domainRepo "github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
)

type cashbookRepository struct {
	db *gorm.DB
}

// NewCashbookRepository creates a new cashbook repository
func NewCashbookRepository(db *gorm.DB) domainRepo.CashbookRepository {
	return &cashbookRepository{db: db}
}

func (r *cashbookRepository) Create(ctx context.Context, entry *entity.CashbookEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *cashbookRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CashbookEntry, error) {
	var entry entity.CashbookEntry
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *cashbookRepository) Update(ctx context.Context, entry *entity.CashbookEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *cashbookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CashbookEntry{}, "id = ?", id).Error
}

func (r *cashbookRepository) List(ctx context.Context, params *domainRepo.CashbookFilterParams) ([]entity.CashbookEntry, int64, error) {
	var entries []entity.CashbookEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CashbookEntry{}).Scopes(BusinessScope(ctx))

	if params.Direction != nil {
		query = query.Where("direction = ?", *params.Direction)
	}

	if params.Method != nil {
		query = query.Where("method = ?", *params.Method)
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

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date DESC, created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *cashbookRepository) Summarize(ctx context.Context, startDate, endDate *time.Time) (*domainRepo.CashbookSummary, error) {
	type row struct {
		Direction enum.EntryDirection
		Total     float64
	}
	var rows []row

	query := r.db.WithContext(ctx).Model(&entity.CashbookEntry{}).Scopes(BusinessScope(ctx))
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	err := query.
		Select("direction, COALESCE(SUM(amount), 0) AS total").
		Group("direction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &domainRepo.CashbookSummary{}
	for _, rw := range rows {
		switch rw.Direction {
		case enum.EntryDirectionIn:
			summary.TotalIn = rw.Total
		case enum.EntryDirectionOut:
			summary.TotalOut = rw.Total
		}
	}
	summary.Balance = summary.TotalIn - summary.TotalOut
	return summary, nil
}
