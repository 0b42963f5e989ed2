package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

func TestComputeTotals_EmptyBill(t *testing.T) {
	totals := ComputeTotals(&entity.Bill{})
	assert.Equal(t, Totals{}, totals)

	totals = ComputeTotals(nil)
	assert.Equal(t, Totals{}, totals)
}

func TestComputeTotals_ItemsChargesPercentageDiscount(t *testing.T) {
	// 3 x 100 + 1 x 50 = 350, one flat charge of 20, one 10% discount.
	bill := &entity.Bill{
		Items: []entity.BillItem{
			{Name: "Widget", Quantity: 3, UnitPrice: 100},
			{Name: "Gadget", Quantity: 1, UnitPrice: 50},
		},
		Charges: []entity.BillCharge{
			{Name: "Delivery", Amount: 20},
		},
		Discounts: []entity.BillDiscount{
			{Kind: enum.DiscountKindPercentage, Value: 10},
		},
	}

	totals := ComputeTotals(bill)
	assert.Equal(t, 350.0, totals.LineItemTotal)
	assert.Equal(t, 20.0, totals.ChargesTotal)
	assert.Equal(t, 35.0, totals.DiscountTotal)
	assert.Equal(t, 335.0, totals.FinalTotal)
}

func TestComputeTotals_PercentageIgnoresCharges(t *testing.T) {
	// 10% of 100 = 10, never 10% of 100+500.
	bill := &entity.Bill{
		Items:     []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
		Charges:   []entity.BillCharge{{Name: "Freight", Amount: 500}},
		Discounts: []entity.BillDiscount{{Kind: enum.DiscountKindPercentage, Value: 10}},
	}

	totals := ComputeTotals(bill)
	assert.Equal(t, 10.0, totals.DiscountTotal)
	assert.Equal(t, 590.0, totals.FinalTotal)
}

func TestComputeTotals_FlatAndPercentageCombined(t *testing.T) {
	bill := &entity.Bill{
		Items: []entity.BillItem{{Quantity: 2, UnitPrice: 200}},
		Discounts: []entity.BillDiscount{
			{Kind: enum.DiscountKindFlat, Value: 50},
			{Kind: enum.DiscountKindPercentage, Value: 25},
		},
	}

	totals := ComputeTotals(bill)
	assert.Equal(t, 400.0, totals.LineItemTotal)
	assert.Equal(t, 150.0, totals.DiscountTotal)
	assert.Equal(t, 250.0, totals.FinalTotal)
}

func TestComputeTotals_FinalTotalClampedAtZero(t *testing.T) {
	bill := &entity.Bill{
		Items:     []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
		Discounts: []entity.BillDiscount{{Kind: enum.DiscountKindFlat, Value: 500}},
	}

	totals := ComputeTotals(bill)
	assert.Equal(t, 0.0, totals.FinalTotal)
	assert.Equal(t, 500.0, totals.DiscountTotal)
}

func TestComputeTotals_MalformedNumbersDegradeToZero(t *testing.T) {
	bill := &entity.Bill{
		Items: []entity.BillItem{
			{Quantity: math.NaN(), UnitPrice: 100},
			{Quantity: 2, UnitPrice: math.Inf(1)},
			{Quantity: 1, UnitPrice: 40},
		},
		Charges: []entity.BillCharge{{Amount: math.NaN()}},
	}

	totals := ComputeTotals(bill)
	assert.Equal(t, 40.0, totals.LineItemTotal)
	assert.Equal(t, 0.0, totals.ChargesTotal)
	assert.Equal(t, 40.0, totals.FinalTotal)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := &entity.Bill{Items: []entity.BillItem{
		{Quantity: 3, UnitPrice: 9.5},
		{Quantity: 7, UnitPrice: 1.25},
		{Quantity: 2, UnitPrice: 100},
	}}
	b := &entity.Bill{Items: []entity.BillItem{
		{Quantity: 2, UnitPrice: 100},
		{Quantity: 3, UnitPrice: 9.5},
		{Quantity: 7, UnitPrice: 1.25},
	}}

	assert.Equal(t, ComputeTotals(a).LineItemTotal, ComputeTotals(b).LineItemTotal)
}

func TestDisplayAmount(t *testing.T) {
	override := 120.0

	tests := []struct {
		name string
		bill *entity.Bill
		want float64
	}{
		{
			name: "unpaid without override falls back to final total",
			bill: &entity.Bill{
				PaymentMethod: enum.PaymentMethodUnpaid,
				Items:         []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
			},
			want: 100,
		},
		{
			name: "unpaid with explicit balance due",
			bill: &entity.Bill{
				PaymentMethod: enum.PaymentMethodUnpaid,
				BalanceDue:    &override,
				Items:         []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
			},
			want: 120,
		},
		{
			name: "paid with explicit total amount",
			bill: &entity.Bill{
				PaymentMethod: enum.PaymentMethodCash,
				TotalAmount:   &override,
				Items:         []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
			},
			want: 120,
		},
		{
			name: "paid without override falls back to final total",
			bill: &entity.Bill{
				PaymentMethod: enum.PaymentMethodOnline,
				Items:         []entity.BillItem{{Quantity: 1, UnitPrice: 100}},
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.bill)
			assert.Equal(t, tt.want, DisplayAmount(tt.bill, totals))
		})
	}
}
