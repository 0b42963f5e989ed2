package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// PartyFilterParams contains filtering parameters for party queries
type PartyFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.PartyType
}

// PartyRepository defines the interface for party data operations
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)
	GetByPhone(ctx context.Context, phone string, partyType enum.PartyType) (*entity.Party, error)
	Update(ctx context.Context, party *entity.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Party, int64, error)
	// ListWithCursor returns parties using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string, partyType *enum.PartyType) ([]entity.Party, error)
}
