package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// CashbookEntry is one cash-in or cash-out record in the business cashbook.
type CashbookEntry struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID           `gorm:"type:uuid;not null;index" json:"business_id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	Direction  enum.EntryDirection `gorm:"default:0" json:"direction"`
	Amount     float64             `gorm:"not null" json:"amount"`
	Method     enum.PaymentMethod  `gorm:"default:1" json:"method"`
	Note       *string             `gorm:"type:text" json:"note,omitempty"`
	Date       time.Time           `gorm:"type:date;not null" json:"date"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cashbook entry
func (e *CashbookEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashbookEntry model
func (CashbookEntry) TableName() string {
	return "cashbook_entries"
}
