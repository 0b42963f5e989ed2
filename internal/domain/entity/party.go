package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// Party represents a customer (sales) or supplier (purchases).
type Party struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Type       enum.PartyType `gorm:"default:0" json:"type"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Phone      string         `gorm:"size:50;not null" json:"phone"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	Address    *string        `gorm:"type:text" json:"address,omitempty"`
	GSTIN      *string        `gorm:"size:50" json:"gstin,omitempty"`
	Photo      *string        `gorm:"size:512" json:"photo,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
	Bills    []Bill   `gorm:"foreignKey:PartyID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new party
func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Party model
func (Party) TableName() string {
	return "parties"
}
