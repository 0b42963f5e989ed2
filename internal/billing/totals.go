// Package billing holds the pure bill arithmetic shared by the billing
// endpoints and the invoice renderer. Everything here is a function of its
// inputs: no storage, no caching, no ambient state.
package billing

import (
	"math"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

// Totals is the derived numeric summary of a bill. It is recomputed from the
// bill on every read and never persisted.
type Totals struct {
	LineItemTotal float64 `json:"line_item_total"`
	ChargesTotal  float64 `json:"charges_total"`
	DiscountTotal float64 `json:"discount_total"`
	FinalTotal    float64 `json:"final_total"`
}

// ComputeTotals derives the totals for a bill. It never fails: missing or
// malformed numeric fields (NaN, Inf, negatives where only non-negatives make
// sense) degrade to zero so a partially-filled draft still produces a usable
// summary. Percentage discounts apply to the line-item subtotal only, never
// to additional charges. The final total is clamped at zero.
func ComputeTotals(bill *entity.Bill) Totals {
	var t Totals
	if bill == nil {
		return t
	}

	for _, item := range bill.Items {
		t.LineItemTotal += num(item.Quantity) * num(item.UnitPrice)
	}

	for _, charge := range bill.Charges {
		t.ChargesTotal += num(charge.Amount)
	}

	for _, d := range bill.Discounts {
		v := num(d.Value)
		if d.Kind == enum.DiscountKindPercentage {
			t.DiscountTotal += t.LineItemTotal * v / 100
		} else {
			t.DiscountTotal += v
		}
	}

	t.FinalTotal = t.LineItemTotal + t.ChargesTotal - t.DiscountTotal
	if t.FinalTotal < 0 {
		t.FinalTotal = 0
	}
	return t
}

// DisplayAmount returns the amount a bill should present to the user: the
// outstanding balance for unpaid bills, the settled total otherwise. Explicit
// overrides on the bill win over the computed final total.
func DisplayAmount(bill *entity.Bill, totals Totals) float64 {
	if bill == nil {
		return totals.FinalTotal
	}
	if bill.PaymentMethod == enum.PaymentMethodUnpaid {
		if bill.BalanceDue != nil {
			return num(*bill.BalanceDue)
		}
		return totals.FinalTotal
	}
	if bill.TotalAmount != nil {
		return num(*bill.TotalAmount)
	}
	return totals.FinalTotal
}

// num coerces NaN/Inf and negative garbage to zero. Quantities and amounts on
// a well-formed bill are already non-negative; drafts may not be.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
