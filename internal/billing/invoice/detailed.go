package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
)

// detailedRenderer produces the full tabular A4 layout with a business
// header, an items table and a totals block.
type detailedRenderer struct{}

func (r *detailedRenderer) Theme() Theme {
	return ThemeDetailed
}

func (r *detailedRenderer) RenderPDF(d *Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Page breaks are purely height-driven; content that passes the bottom
	// margin flows onto the next page wherever it happens to be.
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header: business identity left, document title right
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(120, 8, d.Business.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, d.DocTitle(), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(90, 90, 90)
	if d.Business.Phone != "" {
		pdf.CellFormat(0, 5, d.Business.Phone, "", 1, "L", false, 0, "")
	}
	if d.Business.Address != "" {
		pdf.CellFormat(0, 5, d.Business.Address, "", 1, "L", false, 0, "")
	}
	if d.Business.GSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+d.Business.GSTIN, "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(2)
	pdf.SetDrawColor(160, 160, 160)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(3)

	// Bill meta and party block
	dateLabel, dateValue := d.BillDate()
	pdf.SetFont("Arial", "B", 10)
	partyLabel := "Bill To"
	if d.Bill.Type == enum.BillTypePurchase {
		partyLabel = "Supplier"
	}
	pdf.CellFormat(120, 6, partyLabel, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Bill No: %s", d.Bill.BillNo), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(120, 5, d.Bill.PartyName, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("%s: %s", dateLabel, dateValue.Format("02 Jan 2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 5, d.Bill.PartyPhone, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Payment: %s", d.Bill.PaymentMethod.String()), "", 1, "R", false, 0, "")
	if d.Bill.PartyAddress != nil && *d.Bill.PartyAddress != "" {
		pdf.CellFormat(0, 5, *d.Bill.PartyAddress, "", 1, "L", false, 0, "")
	}
	if d.Bill.PartyGSTIN != nil && *d.Bill.PartyGSTIN != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+*d.Bill.PartyGSTIN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(12, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(88, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i := range d.Bill.Items {
		item := &d.Bill.Items[i]
		rowTotal := item.Quantity * item.UnitPrice
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(88, 7, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, itemUnit(item), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, FormatAmount(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, FormatAmount(rowTotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals block, right aligned
	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(115, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, value, "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal", FormatAmount(d.Totals.LineItemTotal), false)
	for _, c := range d.Bill.Charges {
		writeTotal(c.Name, FormatAmount(c.Amount), false)
	}
	for _, disc := range d.Bill.Discounts {
		label := "Discount"
		amount := disc.Value
		if disc.Kind == enum.DiscountKindPercentage {
			label = fmt.Sprintf("Discount (%g%%)", disc.Value)
			amount = d.Totals.LineItemTotal * disc.Value / 100
		}
		writeTotal(label, "-"+FormatAmount(amount), false)
	}
	writeTotal("Total", FormatAmount(d.Totals.FinalTotal), true)
	writeTotal(d.AmountLabel(), FormatAmount(d.DisplayAmount()), true)

	pdf.Ln(2)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, "Amount in words: "+d.AmountInWords(), "", 1, "L", false, 0, "")

	if d.Bill.Terms != nil && *d.Bill.Terms != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, *d.Bill.Terms, "", "L", false)
	}
	if d.Bill.Notes != nil && *d.Bill.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, *d.Bill.Notes, "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: detailed render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *detailedRenderer) RenderText(d *Data) string {
	const width = 64
	var b strings.Builder

	b.WriteString(padCenter(d.Business.Name, width) + "\n")
	if d.Business.Phone != "" {
		b.WriteString(padCenter(d.Business.Phone, width) + "\n")
	}
	if d.Business.Address != "" {
		b.WriteString(padCenter(d.Business.Address, width) + "\n")
	}
	b.WriteString(padCenter(d.DocTitle(), width) + "\n")
	b.WriteString(strings.Repeat("=", width) + "\n")

	dateLabel, dateValue := d.BillDate()
	b.WriteString(kvLine("Bill No: "+d.Bill.BillNo, dateLabel+": "+dateValue.Format("02 Jan 2006"), width, ' ') + "\n")
	b.WriteString(kvLine("Party: "+d.Bill.PartyName, "Payment: "+d.Bill.PaymentMethod.String(), width, ' ') + "\n")
	b.WriteString(strings.Repeat("-", width) + "\n")

	b.WriteString(fmt.Sprintf("%-34s %8s %9s %10s\n", "Item", "Qty", "Rate", "Amount"))
	b.WriteString(strings.Repeat("-", width) + "\n")
	for i := range d.Bill.Items {
		item := &d.Bill.Items[i]
		name := item.Name
		if r := []rune(name); len(r) > 34 {
			name = string(r[:34])
		}
		b.WriteString(fmt.Sprintf("%-34s %8s %9.2f %10.2f\n",
			name, itemUnit(item), item.UnitPrice, item.Quantity*item.UnitPrice))
	}
	b.WriteString(strings.Repeat("-", width) + "\n")

	b.WriteString(kvLine("Subtotal", FormatAmount(d.Totals.LineItemTotal), width, ' ') + "\n")
	for _, c := range d.Bill.Charges {
		b.WriteString(kvLine(c.Name, FormatAmount(c.Amount), width, ' ') + "\n")
	}
	for _, disc := range d.Bill.Discounts {
		label := "Discount"
		amount := disc.Value
		if disc.Kind == enum.DiscountKindPercentage {
			label = fmt.Sprintf("Discount (%g%%)", disc.Value)
			amount = d.Totals.LineItemTotal * disc.Value / 100
		}
		b.WriteString(kvLine(label, "-"+FormatAmount(amount), width, ' ') + "\n")
	}
	b.WriteString(kvLine("TOTAL", FormatAmount(d.Totals.FinalTotal), width, ' ') + "\n")
	b.WriteString(kvLine(d.AmountLabel(), FormatAmount(d.DisplayAmount()), width, ' ') + "\n")
	b.WriteString(strings.Repeat("=", width) + "\n")

	for _, line := range wrapText("Amount in words: "+d.AmountInWords(), width) {
		b.WriteString(line + "\n")
	}
	if d.Bill.Terms != nil && *d.Bill.Terms != "" {
		b.WriteString("\nTerms & Conditions\n")
		for _, line := range wrapText(*d.Bill.Terms, width) {
			b.WriteString(line + "\n")
		}
	}
	if d.Bill.Notes != nil && *d.Bill.Notes != "" {
		b.WriteString("\nNotes\n")
		for _, line := range wrapText(*d.Bill.Notes, width) {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
