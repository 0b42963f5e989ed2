package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a product in the business catalogue. Stock is kept as a
// running quantity and adjusted through StockMovement records.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Unit          *string        `gorm:"size:50" json:"unit,omitempty"`
	SalePrice     float64        `gorm:"default:0" json:"sale_price"`
	PurchasePrice float64        `gorm:"default:0" json:"purchase_price"`
	Stock         float64        `gorm:"default:0" json:"stock"`
	StockAlert    float64        `gorm:"default:0" json:"stock_alert"`
	Photo         *string        `gorm:"size:512" json:"photo,omitempty"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business  Business        `gorm:"foreignKey:BusinessID" json:"-"`
	Movements []StockMovement `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the stock has fallen to or below the alert level
func (p *Product) IsLowStock() bool {
	return p.StockAlert > 0 && p.Stock <= p.StockAlert
}

// StockMovement is one entry in a product's stock ledger.
type StockMovement struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID           `gorm:"type:uuid;not null;index" json:"business_id"`
	ProductID  uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	BillID     *uuid.UUID          `gorm:"type:uuid;index" json:"bill_id,omitempty"`
	Direction  enum.EntryDirection `gorm:"default:0" json:"direction"`
	Quantity   float64             `gorm:"not null" json:"quantity"`
	Note       *string             `gorm:"type:text" json:"note,omitempty"`
	Date       time.Time           `gorm:"type:date;not null" json:"date"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
