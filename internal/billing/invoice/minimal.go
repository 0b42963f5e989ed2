package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

// minimalRenderer is the stripped-down layout: a short header and a dotted
// label/value list, no item table grid.
type minimalRenderer struct {
	width int
}

func (r *minimalRenderer) Theme() Theme {
	return ThemeMinimal
}

func (r *minimalRenderer) lines(d *Data) []string {
	w := r.width
	var out []string

	out = append(out, d.Business.Name)
	out = append(out, d.DocTitle()+" "+d.Bill.BillNo)
	out = append(out, strings.Repeat(".", w))

	dateLabel, dateValue := d.BillDate()
	out = append(out,
		kvLine(dateLabel, dateValue.Format("02 Jan 2006"), w, '.'),
		kvLine("Party", d.Bill.PartyName, w, '.'),
		kvLine("Payment", d.Bill.PaymentMethod.String(), w, '.'),
		"",
	)

	for i := range d.Bill.Items {
		item := &d.Bill.Items[i]
		label := fmt.Sprintf("%s x %s", item.Name, formatQty(item.Quantity))
		out = append(out, kvLine(label, fmt.Sprintf("%.2f", item.Quantity*item.UnitPrice), w, '.'))
	}
	out = append(out, "")

	out = append(out, kvLine("Subtotal", fmt.Sprintf("%.2f", d.Totals.LineItemTotal), w, '.'))
	for _, c := range d.Bill.Charges {
		out = append(out, kvLine(c.Name, fmt.Sprintf("%.2f", c.Amount), w, '.'))
	}
	for _, disc := range d.Bill.Discounts {
		label := "Discount"
		amount := disc.Value
		if disc.Kind == enum.DiscountKindPercentage {
			label = fmt.Sprintf("Discount (%g%%)", disc.Value)
			amount = d.Totals.LineItemTotal * disc.Value / 100
		}
		out = append(out, kvLine(label, fmt.Sprintf("-%.2f", amount), w, '.'))
	}
	out = append(out,
		kvLine("Total", FormatAmount(d.Totals.FinalTotal), w, '.'),
		kvLine(d.AmountLabel(), FormatAmount(d.DisplayAmount()), w, '.'),
		"",
	)
	out = append(out, wrapText(d.AmountInWords(), w)...)

	return out
}

func (r *minimalRenderer) RenderText(d *Data) string {
	return strings.Join(r.lines(d), "\n") + "\n"
}

func (r *minimalRenderer) RenderPDF(d *Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, d.Business.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, d.DocTitle()+" "+d.Bill.BillNo, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Courier", "", 9)
	for _, line := range r.lines(d)[3:] {
		pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: minimal render failed: %w", err)
	}
	return buf.Bytes(), nil
}
