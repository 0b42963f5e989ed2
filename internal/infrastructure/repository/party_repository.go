package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	domainRepo "github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db *gorm.DB) domainRepo.PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	return r.db.WithContext(ctx).Create(party).Error
}

func (r *partyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var party entity.Party
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		First(&party, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &party, err
}

func (r *partyRepository) GetByPhone(ctx context.Context, phone string, partyType enum.PartyType) (*entity.Party, error) {
	var party entity.Party
	err := r.db.WithContext(ctx).
		Scopes(BusinessScope(ctx)).
		First(&party, "phone = ? AND type = ?", phone, partyType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &party, err
}

func (r *partyRepository) Update(ctx context.Context, party *entity.Party) error {
	return r.db.WithContext(ctx).Save(party).Error
}

func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Party{}, "id = ?", id).Error
}

func (r *partyRepository) List(ctx context.Context, params *domainRepo.PartyFilterParams) ([]entity.Party, int64, error) {
	var parties []entity.Party
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Party{}).Scopes(BusinessScope(ctx))

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&parties).Error

	return parties, total, err
}

// ListWithCursor returns parties using cursor-based pagination.
// Fetches limit+1 items to detect if there are more results.
func (r *partyRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string, partyType *enum.PartyType) ([]entity.Party, error) {
	var parties []entity.Party

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Party{}).Scopes(BusinessScope(ctx))

	if partyType != nil {
		query = query.Where("type = ?", *partyType)
	}

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&parties).Error

	return parties, err
}
