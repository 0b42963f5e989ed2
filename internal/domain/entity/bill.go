package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill represents a sale or purchase transaction. The party identity is
// snapshotted onto the bill so that later party edits do not rewrite
// historical documents. Totals are never stored: they are recomputed from the
// line items, charges and discounts on every read.
type Bill struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID     `gorm:"type:uuid;not null;index" json:"business_id"`
	UserID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type       enum.BillType `gorm:"default:0" json:"type"`
	BillNo     string        `gorm:"size:100;not null;index" json:"bill_no"`

	PartyID      uuid.UUID `gorm:"type:uuid;not null;index" json:"party_id"`
	PartyName    string    `gorm:"size:255;not null" json:"party_name"`
	PartyPhone   string    `gorm:"size:50;not null" json:"party_phone"`
	PartyAddress *string   `gorm:"type:text" json:"party_address,omitempty"`
	PartyGSTIN   *string   `gorm:"size:50" json:"party_gstin,omitempty"`

	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Date          *time.Time         `gorm:"type:date" json:"date,omitempty"`
	DueDate       *time.Time         `gorm:"type:date" json:"due_date,omitempty"`

	// Optional caller-supplied overrides; displayed amount falls back to the
	// computed final total when absent.
	BalanceDue  *float64 `json:"balance_due,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`

	Notes  *string  `gorm:"type:text" json:"notes,omitempty"`
	Terms  *string  `gorm:"type:text" json:"terms,omitempty"`
	Photos []string `gorm:"serializer:json" json:"photos,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business  Business       `gorm:"foreignKey:BusinessID" json:"-"`
	Party     *Party         `gorm:"foreignKey:PartyID" json:"party,omitempty"`
	Items     []BillItem     `gorm:"foreignKey:BillID" json:"items,omitempty"`
	Charges   []BillCharge   `gorm:"foreignKey:BillID" json:"charges,omitempty"`
	Discounts []BillDiscount `gorm:"foreignKey:BillID" json:"discounts,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one product/quantity/price line on a bill. Items keep their
// insertion order through Position.
type BillItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	ProductID *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Quantity  float64        `gorm:"not null" json:"quantity"`
	UnitPrice float64        `gorm:"not null" json:"unit_price"`
	Unit      *string        `gorm:"size:50" json:"unit,omitempty"`
	Position  int            `gorm:"default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// BillCharge is one additional charge (packing, delivery, ...) on a bill.
type BillCharge struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Amount    float64        `gorm:"not null" json:"amount"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill charge
func (c *BillCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillCharge model
func (BillCharge) TableName() string {
	return "bill_charges"
}

// BillDiscount is one discount on a bill, either a flat amount or a
// percentage of the line-item subtotal.
type BillDiscount struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"bill_id"`
	Kind      enum.DiscountKind `gorm:"default:0" json:"kind"`
	Value     float64           `gorm:"not null" json:"value"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Bill Bill `gorm:"foreignKey:BillID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new bill discount
func (d *BillDiscount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillDiscount model
func (BillDiscount) TableName() string {
	return "bill_discounts"
}
