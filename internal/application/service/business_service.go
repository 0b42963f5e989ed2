package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
)

// BusinessService handles business-related operations
type BusinessService struct {
	businessRepo repository.BusinessRepository
}

// NewBusinessService creates a new business service
func NewBusinessService(businessRepo repository.BusinessRepository) *BusinessService {
	return &BusinessService{businessRepo: businessRepo}
}

// CreateBusinessInput represents the create business input
type CreateBusinessInput struct {
	UserID  uuid.UUID
	Name    string
	Phone   string
	Address *string
	GSTIN   *string
	Logo    *string
}

// CreateBusiness creates a new business for the user
func (s *BusinessService) CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.Business, error) {
	business := &entity.Business{
		UserID:  input.UserID,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		GSTIN:   input.GSTIN,
		Logo:    input.Logo,
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

// GetBusiness retrieves a business owned by the user
func (s *BusinessService) GetBusiness(ctx context.Context, userID, id uuid.UUID) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}
	if business.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return business, nil
}

// ListBusinesses lists every business the user owns
func (s *BusinessService) ListBusinesses(ctx context.Context, userID uuid.UUID) ([]entity.Business, error) {
	return s.businessRepo.ListByUser(ctx, userID)
}

// UpdateBusinessInput represents the update business input
type UpdateBusinessInput struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Name    *string
	Phone   *string
	Address *string
	GSTIN   *string
	Logo    *string
}

// UpdateBusiness updates a business owned by the user
func (s *BusinessService) UpdateBusiness(ctx context.Context, input *UpdateBusinessInput) (*entity.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, apperror.NewNotFoundError("Business")
	}
	if business.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.Address != nil {
		business.Address = input.Address
	}
	if input.GSTIN != nil {
		business.GSTIN = input.GSTIN
	}
	if input.Logo != nil {
		business.Logo = input.Logo
	}

	if err := s.businessRepo.Update(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

// DeleteBusiness deletes a business owned by the user
func (s *BusinessService) DeleteBusiness(ctx context.Context, userID, id uuid.UUID) error {
	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if business == nil {
		return apperror.NewNotFoundError("Business")
	}
	if business.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.businessRepo.Delete(ctx, id)
}
