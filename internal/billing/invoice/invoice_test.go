package invoice

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

func sampleData(t *testing.T) *Data {
	t.Helper()

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	bill := &entity.Bill{
		Type:          enum.BillTypeSale,
		BillNo:        "INV-042",
		PartyName:     "Sharma Traders",
		PartyPhone:    "9876543210",
		PaymentMethod: enum.PaymentMethodCash,
		Date:          &date,
		Items: []entity.BillItem{
			{Name: "Notebook", Quantity: 3, UnitPrice: 100, Position: 0},
			{Name: "Pen", Quantity: 1, UnitPrice: 50, Position: 1},
		},
		Charges:   []entity.BillCharge{{Name: "Delivery", Amount: 20}},
		Discounts: []entity.BillDiscount{{Kind: enum.DiscountKindPercentage, Value: 10}},
	}
	return NewData(bill, BusinessInfo{
		Name:  "Gupta General Store",
		Phone: "022-2345678",
		GSTIN: "27AAPFU0939F1ZV",
	})
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input   string
		want    Theme
		wantErr bool
	}{
		{"detailed", ThemeDetailed, false},
		{"receipt", ThemeReceipt, false},
		{"minimal", ThemeMinimal, false},
		{"", ThemeDetailed, false},
		{"RECEIPT", ThemeReceipt, false},
		{"fancy", ThemeDetailed, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestForTheme(t *testing.T) {
	for _, theme := range []Theme{ThemeDetailed, ThemeReceipt, ThemeMinimal} {
		r := ForTheme(theme)
		require.NotNil(t, r)
		assert.Equal(t, theme, r.Theme())
	}
}

// Switching themes must never change the computed amounts, only the layout.
func TestThemesAgreeOnAmounts(t *testing.T) {
	d := sampleData(t)

	// 3x100 + 1x50 = 350, +20 delivery, -10% of 350 = 335
	assert.InDelta(t, 335.0, d.Totals.FinalTotal, 1e-9)
	want := FormatAmount(d.DisplayAmount())

	for _, theme := range []Theme{ThemeDetailed, ThemeReceipt, ThemeMinimal} {
		text := ForTheme(theme).RenderText(d)
		assert.Contains(t, text, want, "theme %s", theme)
		assert.Contains(t, text, "INV-042", "theme %s", theme)
		assert.Contains(t, text, "Sharma Traders", "theme %s", theme)
	}
}

func TestRenderPDFProducesIndependentArtifacts(t *testing.T) {
	d := sampleData(t)

	for _, theme := range []Theme{ThemeDetailed, ThemeReceipt, ThemeMinimal} {
		r := ForTheme(theme)

		first, err := r.RenderPDF(d)
		require.NoError(t, err, "theme %s", theme)
		second, err := r.RenderPDF(d)
		require.NoError(t, err, "theme %s", theme)

		assert.True(t, bytes.HasPrefix(first, []byte("%PDF")), "theme %s", theme)
		assert.True(t, bytes.HasPrefix(second, []byte("%PDF")), "theme %s", theme)

		// Each export is a fresh artifact, not a shared buffer.
		if len(first) > 0 && len(second) > 0 {
			assert.NotSame(t, &first[0], &second[0], "theme %s", theme)
		}
	}
}

func TestReceiptTextLayout(t *testing.T) {
	d := sampleData(t)
	text := ForTheme(ThemeReceipt).RenderText(d)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 32, "line %q overflows receipt width", line)
	}
	assert.Contains(t, text, "Gupta General Store")
	assert.Contains(t, text, "Discount 10%:")
	assert.Contains(t, text, "-35.00")
	assert.Contains(t, text, "Thank you for your business!")
}

func TestReceiptTextLayoutNonASCIINames(t *testing.T) {
	d := sampleData(t)
	d.Business.Name = "शर्मा किराना"
	d.Bill.PartyName = "Müller & Söhne"
	d.Bill.Items[0].Name = "चाय पत्ती"

	text := ForTheme(ThemeReceipt).RenderText(d)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 32, "line %q overflows receipt width", line)
	}

	// Right-aligned values still land on the last column.
	for _, line := range lines {
		if strings.HasPrefix(line, "Party:") {
			assert.Equal(t, 32, utf8.RuneCountInString(line), "party line %q is not padded to full width", line)
		}
	}
	assert.Contains(t, text, "Müller & Söhne")
	assert.Contains(t, text, "चाय पत्ती")
}

func TestESCPOS(t *testing.T) {
	d := sampleData(t)
	raw := ESCPOS(d)

	require.NotEmpty(t, raw)
	// Initialize, then eventually a partial cut.
	assert.True(t, bytes.HasPrefix(raw, []byte{0x1B, '@'}))
	assert.True(t, bytes.HasSuffix(raw, []byte{0x1D, 'V', 0x01}))
	assert.Contains(t, string(raw), "Gupta General Store")
	assert.Contains(t, string(raw), "3x Notebook")
}

func TestShareSummary(t *testing.T) {
	d := sampleData(t)
	msg := ShareSummary(d)

	assert.Contains(t, msg, "Invoice INV-042 from Gupta General Store")
	assert.Contains(t, msg, "To: Sharma Traders")
	assert.Contains(t, msg, "Total Amount: "+FormatAmount(335))
	assert.NotContains(t, msg, "Notebook", "share summary carries no line items")
}

func TestShareSummaryUnpaidShowsBalanceDue(t *testing.T) {
	d := sampleData(t)
	d.Bill.PaymentMethod = enum.PaymentMethodUnpaid
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	d.Bill.DueDate = &due

	msg := ShareSummary(d)
	assert.Contains(t, msg, "Balance Due: "+FormatAmount(335))
	assert.Contains(t, msg, "Due Date: 01 Apr 2026")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0.00"},
		{335, "Rs 335.00"},
		{1234.5, "Rs 1,234.50"},
		{123456.78, "Rs 1,23,456.78"},
		{10000000, "Rs 1,00,00,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in), "amount %v", tt.in)
	}
}

func TestAmountInWordsSuffix(t *testing.T) {
	d := sampleData(t)
	assert.Equal(t, "Three Hundred Thirty Five rupees only", d.AmountInWords())
}
