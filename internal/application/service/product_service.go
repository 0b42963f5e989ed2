package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	infraRepo "github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/pkg/apperror"
	"github.com/kuldeephumbal/BMS-sub001/pkg/pagination"
)

// ProductService handles product and stock operations
type ProductService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) *ProductService {
	return &ProductService{productRepo: productRepo, movementRepo: movementRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID        uuid.UUID
	Name          string
	Unit          *string
	SalePrice     float64
	PurchasePrice float64
	OpeningStock  float64
	StockAlert    float64
	Photo         *string
	Notes         *string
}

// CreateProduct creates a new product. An opening stock records an initial
// stock movement so the ledger starts balanced.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	product := &entity.Product{
		BusinessID:    businessID,
		UserID:        input.UserID,
		Name:          input.Name,
		Unit:          input.Unit,
		SalePrice:     input.SalePrice,
		PurchasePrice: input.PurchasePrice,
		Stock:         input.OpeningStock,
		StockAlert:    input.StockAlert,
		Photo:         input.Photo,
		Notes:         input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if input.OpeningStock > 0 {
		note := "Opening stock"
		movement := &entity.StockMovement{
			BusinessID: businessID,
			ProductID:  product.ID,
			Direction:  enum.EntryDirectionIn,
			Quantity:   input.OpeningStock,
			Note:       &note,
			Date:       time.Now(),
		}
		if err := s.movementRepo.Create(ctx, movement); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products in the active business
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts lists products at or below their stock alert level
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID            uuid.UUID
	Name          *string
	Unit          *string
	SalePrice     *float64
	PurchasePrice *float64
	StockAlert    *float64
	Photo         *string
	Notes         *string
}

// UpdateProduct updates a product. Stock is not writable here: it only moves
// through stock adjustments and bills.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Unit != nil {
		product.Unit = input.Unit
	}
	if input.SalePrice != nil {
		product.SalePrice = *input.SalePrice
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.StockAlert != nil {
		product.StockAlert = *input.StockAlert
	}
	if input.Photo != nil {
		product.Photo = input.Photo
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// AdjustStockInput represents a manual stock adjustment
type AdjustStockInput struct {
	ProductID uuid.UUID
	Direction enum.EntryDirection
	Quantity  float64
	Note      *string
	Date      time.Time
}

// AdjustStock applies a manual stock adjustment and records the movement.
// Stock can never be driven below zero by a manual adjustment.
func (s *ProductService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.Product, error) {
	businessID, ok := infraRepo.GetBusinessID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Business context required")
	}

	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	delta := input.Quantity
	if input.Direction == enum.EntryDirectionOut {
		delta = -delta
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	movement := entity.StockMovement{
		BusinessID: businessID,
		ProductID:  input.ProductID,
		Direction:  input.Direction,
		Quantity:   input.Quantity,
		Note:       input.Note,
		Date:       date,
	}

	failed, err := s.productRepo.AdjustStockBatch(ctx,
		map[uuid.UUID]float64{input.ProductID: delta},
		[]entity.StockMovement{movement},
		false,
	)
	if err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		return nil, apperror.NewBadRequestError("Insufficient stock for adjustment")
	}

	return s.productRepo.GetByID(ctx, input.ProductID)
}

// ListStockMovements lists the stock ledger of one product
func (s *ProductService) ListStockMovements(ctx context.Context, productID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockMovement], error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	movements, total, err := s.movementRepo.ListByProduct(ctx, productID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(movements, pag), nil
}
