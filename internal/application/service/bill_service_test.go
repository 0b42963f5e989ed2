package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

func TestValidateBillDetails(t *testing.T) {
	valid := []BillItemInput{{Name: "Notebook", Quantity: 2, UnitPrice: 50}}

	tests := []struct {
		name      string
		items     []BillItemInput
		charges   []BillChargeInput
		discounts []BillDiscountInput
		wantErr   bool
	}{
		{"valid bill", valid, nil, nil, false},
		{"no items", nil, nil, nil, true},
		{"missing item name", []BillItemInput{{Quantity: 1, UnitPrice: 10}}, nil, nil, true},
		{"zero quantity", []BillItemInput{{Name: "Pen", Quantity: 0, UnitPrice: 10}}, nil, nil, true},
		{"negative price", []BillItemInput{{Name: "Pen", Quantity: 1, UnitPrice: -1}}, nil, nil, true},
		{"valid charge", valid, []BillChargeInput{{Name: "Delivery", Amount: 20}}, nil, false},
		{"unnamed charge", valid, []BillChargeInput{{Amount: 20}}, nil, true},
		{"negative charge", valid, []BillChargeInput{{Name: "Delivery", Amount: -5}}, nil, true},
		{"flat discount", valid, nil, []BillDiscountInput{{Kind: enum.DiscountKindFlat, Value: 10}}, false},
		{"percentage at limit", valid, nil, []BillDiscountInput{{Kind: enum.DiscountKindPercentage, Value: 100}}, false},
		{"percentage over limit", valid, nil, []BillDiscountInput{{Kind: enum.DiscountKindPercentage, Value: 101}}, true},
		{"negative discount", valid, nil, []BillDiscountInput{{Kind: enum.DiscountKindFlat, Value: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBillDetails(tt.items, tt.charges, tt.discounts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func saleBill(productID uuid.UUID) *entity.Bill {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Bill{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Type:       enum.BillTypeSale,
		BillNo:     "INV-007",
		Date:       &date,
		Items: []entity.BillItem{
			{ProductID: &productID, Name: "Notebook", Quantity: 3, UnitPrice: 100},
			{Name: "Gift wrap", Quantity: 1, UnitPrice: 10}, // free-form item, no product
		},
	}
}

func TestStockPlanSale(t *testing.T) {
	productID := uuid.New()
	bill := saleBill(productID)

	deltas, movements := stockPlan(bill, false)

	// Only the product-linked item affects stock.
	require.Len(t, deltas, 1)
	assert.Equal(t, -3.0, deltas[productID])

	require.Len(t, movements, 1)
	assert.Equal(t, enum.EntryDirectionOut, movements[0].Direction)
	assert.Equal(t, 3.0, movements[0].Quantity)
	require.NotNil(t, movements[0].Note)
	assert.Equal(t, "INV-007", *movements[0].Note)
	require.NotNil(t, movements[0].BillID)
	assert.Equal(t, bill.ID, *movements[0].BillID)
}

func TestStockPlanPurchase(t *testing.T) {
	productID := uuid.New()
	bill := saleBill(productID)
	bill.Type = enum.BillTypePurchase
	bill.BillNo = "PUR-002"

	deltas, movements := stockPlan(bill, false)

	assert.Equal(t, 3.0, deltas[productID])
	require.Len(t, movements, 1)
	assert.Equal(t, enum.EntryDirectionIn, movements[0].Direction)
}

func TestStockPlanReverse(t *testing.T) {
	productID := uuid.New()
	bill := saleBill(productID)

	deltas, movements := stockPlan(bill, true)

	// Reversing a sale puts stock back.
	assert.Equal(t, 3.0, deltas[productID])
	require.Len(t, movements, 1)
	assert.Equal(t, enum.EntryDirectionIn, movements[0].Direction)
	require.NotNil(t, movements[0].Note)
	assert.Equal(t, "INV-007 (reversed)", *movements[0].Note)
}

func TestStockPlanAccumulatesRepeatedProduct(t *testing.T) {
	productID := uuid.New()
	bill := saleBill(productID)
	bill.Items = append(bill.Items, entity.BillItem{ProductID: &productID, Name: "Notebook", Quantity: 2, UnitPrice: 100})

	deltas, movements := stockPlan(bill, false)

	assert.Equal(t, -5.0, deltas[productID])
	assert.Len(t, movements, 2)
}
