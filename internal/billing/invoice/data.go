package invoice

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kuldeephumbal/BMS-sub001/internal/billing"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/pkg/words"
)

// BusinessInfo is the issuing business identity shown on every invoice.
// It is passed in explicitly; the renderer never reads ambient state.
type BusinessInfo struct {
	Name    string
	Phone   string
	Address string
	GSTIN   string
	Logo    string
}

// Data is the complete input to a renderer: the bill, its computed totals and
// the issuing business. Build one with NewData so the totals always match the
// bill they were derived from.
type Data struct {
	Business BusinessInfo
	Bill     *entity.Bill
	Totals   billing.Totals
}

// NewData computes the totals for a bill and bundles the renderer input.
func NewData(bill *entity.Bill, business BusinessInfo) *Data {
	return &Data{
		Business: business,
		Bill:     bill,
		Totals:   billing.ComputeTotals(bill),
	}
}

// DisplayAmount is the headline amount for the bill: outstanding balance for
// unpaid bills, settled total otherwise.
func (d *Data) DisplayAmount() float64 {
	return billing.DisplayAmount(d.Bill, d.Totals)
}

// AmountInWords spells out the final total, e.g.
// "Three Hundred Thirty Five rupees only".
func (d *Data) AmountInWords() string {
	return words.AmountInWords(int(math.Floor(d.Totals.FinalTotal))) + " rupees only"
}

// DocTitle is the document heading: "Invoice" for sales, "Purchase Bill" for
// purchases.
func (d *Data) DocTitle() string {
	if d.Bill.Type == enum.BillTypePurchase {
		return "Purchase Bill"
	}
	return "Invoice"
}

// BillDate returns the date shown on the document: the due date for unpaid
// bills, the transaction date otherwise.
func (d *Data) BillDate() (label string, value time.Time) {
	if d.Bill.PaymentMethod == enum.PaymentMethodUnpaid && d.Bill.DueDate != nil {
		return "Due Date", *d.Bill.DueDate
	}
	if d.Bill.Date != nil {
		return "Date", *d.Bill.Date
	}
	return "Date", d.Bill.CreatedAt
}

// AmountLabel is the caption for the headline amount.
func (d *Data) AmountLabel() string {
	if d.Bill.PaymentMethod == enum.PaymentMethodUnpaid {
		return "Balance Due"
	}
	return "Total Amount"
}

// FormatAmount renders an amount with the Indian digit grouping used across
// all themes, e.g. "Rs 1,23,456.78". Presentation only: formatted strings are
// never fed back into arithmetic.
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := int64(math.Round((v - float64(whole)) * 100))
	if frac == 100 { // rounding carried over
		whole++
		frac = 0
	}

	s := groupIndian(whole)
	out := fmt.Sprintf("Rs %s.%02d", s, frac)
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian applies Indian digit grouping: last three digits, then pairs
// (12,34,567).
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}

// formatQty trims trailing zeros from a quantity ("2", "1.5").
func formatQty(q float64) string {
	return fmt.Sprintf("%g", q)
}

// itemUnit appends the unit label when present ("2 kg").
func itemUnit(item *entity.BillItem) string {
	if item.Unit != nil && *item.Unit != "" {
		return formatQty(item.Quantity) + " " + *item.Unit
	}
	return formatQty(item.Quantity)
}
