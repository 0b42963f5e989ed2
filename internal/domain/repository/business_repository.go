package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
)

// BusinessRepository defines the interface for business data operations
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByUser returns every business the user owns.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Business, error)
}
