package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserPhone extracts the user phone from the Gin context
func GetUserPhone(c *gin.Context) string {
	phone, exists := c.Get("user_phone")
	if !exists {
		return ""
	}
	return phone.(string)
}

// parseBillType parses a bill type query value ("sale" or "purchase")
func parseBillType(s string) *enum.BillType {
	switch s {
	case "sale":
		t := enum.BillTypeSale
		return &t
	case "purchase":
		t := enum.BillTypePurchase
		return &t
	}
	return nil
}

// parsePartyType parses a party type query value ("customer" or "supplier")
func parsePartyType(s string) *enum.PartyType {
	switch s {
	case "customer":
		t := enum.PartyTypeCustomer
		return &t
	case "supplier":
		t := enum.PartyTypeSupplier
		return &t
	}
	return nil
}

// parsePaymentMethod parses a payment method query value
func parsePaymentMethod(s string) *enum.PaymentMethod {
	switch s {
	case "unpaid":
		m := enum.PaymentMethodUnpaid
		return &m
	case "cash":
		m := enum.PaymentMethodCash
		return &m
	case "online":
		m := enum.PaymentMethodOnline
		return &m
	}
	return nil
}

// parseEntryDirection parses a cashbook direction query value ("in" or "out")
func parseEntryDirection(s string) *enum.EntryDirection {
	switch s {
	case "in":
		d := enum.EntryDirectionIn
		return &d
	case "out":
		d := enum.EntryDirectionOut
		return &d
	}
	return nil
}

// parseDate parses a YYYY-MM-DD query value
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
