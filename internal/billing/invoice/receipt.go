package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/enum"
	"github.com/kuldeephumbal/BMS-sub001/pkg/printer"
)

// receiptRenderer produces the narrow thermal-receipt layout. The same line
// layout is used for plain text, for the PDF artifact and for the ESC/POS
// byte stream sent to a physical printer.
type receiptRenderer struct {
	width int
}

func (r *receiptRenderer) Theme() Theme {
	return ThemeReceipt
}

// lines builds the receipt body as fixed-width text lines.
func (r *receiptRenderer) lines(d *Data) []string {
	w := r.width
	var out []string

	out = append(out, padCenter(d.Business.Name, w))
	if d.Business.Phone != "" {
		out = append(out, padCenter(d.Business.Phone, w))
	}
	if d.Business.GSTIN != "" {
		out = append(out, padCenter("GSTIN: "+d.Business.GSTIN, w))
	}
	out = append(out, strings.Repeat("-", w))

	dateLabel, dateValue := d.BillDate()
	out = append(out,
		kvLine("Bill:", d.Bill.BillNo, w, ' '),
		kvLine(dateLabel+":", dateValue.Format("02/01/2006"), w, ' '),
		kvLine("Party:", d.Bill.PartyName, w, ' '),
		kvLine("Payment:", d.Bill.PaymentMethod.String(), w, ' '),
		strings.Repeat("-", w),
	)

	for i := range d.Bill.Items {
		item := &d.Bill.Items[i]
		prefix := fmt.Sprintf("%sx %s", formatQty(item.Quantity), item.Name)
		out = append(out, kvLine(prefix, fmt.Sprintf("%.2f", item.Quantity*item.UnitPrice), w, ' '))
		if item.Quantity != 1 {
			out = append(out, fmt.Sprintf("  @ %.2f each", item.UnitPrice))
		}
	}
	out = append(out, strings.Repeat("-", w))

	out = append(out, kvLine("Subtotal:", fmt.Sprintf("%.2f", d.Totals.LineItemTotal), w, ' '))
	for _, c := range d.Bill.Charges {
		out = append(out, kvLine(c.Name+":", fmt.Sprintf("%.2f", c.Amount), w, ' '))
	}
	for _, disc := range d.Bill.Discounts {
		label := "Discount:"
		amount := disc.Value
		if disc.Kind == enum.DiscountKindPercentage {
			label = fmt.Sprintf("Discount %g%%:", disc.Value)
			amount = d.Totals.LineItemTotal * disc.Value / 100
		}
		out = append(out, kvLine(label, fmt.Sprintf("-%.2f", amount), w, ' '))
	}
	out = append(out, kvLine("TOTAL:", FormatAmount(d.Totals.FinalTotal), w, ' '))
	out = append(out, kvLine(d.AmountLabel()+":", FormatAmount(d.DisplayAmount()), w, ' '))
	out = append(out, strings.Repeat("-", w))

	out = append(out, wrapText(d.AmountInWords(), w)...)
	if d.Bill.Terms != nil && *d.Bill.Terms != "" {
		out = append(out, "")
		out = append(out, wrapText(*d.Bill.Terms, w)...)
	}
	out = append(out, "", padCenter("Thank you for your business!", w))

	return out
}

func (r *receiptRenderer) RenderText(d *Data) string {
	return strings.Join(r.lines(d), "\n") + "\n"
}

func (r *receiptRenderer) RenderPDF(d *Data) ([]byte, error) {
	// 80mm receipt roll; height grows with content, breaks are height-driven.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 80, Ht: 297},
	})
	pdf.SetMargins(4, 6, 4)
	pdf.SetAutoPageBreak(true, 6)
	pdf.AddPage()
	pdf.SetFont("Courier", "", 8)

	for _, line := range r.lines(d) {
		pdf.CellFormat(0, 3.6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: receipt render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// ESCPOS converts the invoice into an ESC/POS byte stream for a thermal
// printer (58mm paper, 32 characters).
func ESCPOS(d *Data) []byte {
	doc := printer.NewDocument(32)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(d.Business.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if d.Business.Phone != "" {
		doc.Text(d.Business.Phone)
	}
	if d.Business.Address != "" {
		doc.WrappedText(d.Business.Address)
	}
	if d.Business.GSTIN != "" {
		doc.TextF("GSTIN: %s", d.Business.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	dateLabel, dateValue := d.BillDate()
	doc.KeyValue("Bill:", d.Bill.BillNo).
		KeyValue(dateLabel+":", dateValue.Format("02/01/2006")).
		KeyValue("Party:", d.Bill.PartyName).
		KeyValue("Payment:", d.Bill.PaymentMethod.String())

	doc.Separator('-')

	for i := range d.Bill.Items {
		item := &d.Bill.Items[i]
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Quantity*item.UnitPrice))
		if item.Quantity != 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", d.Totals.LineItemTotal))
	for _, c := range d.Bill.Charges {
		doc.KeyValue(c.Name+":", fmt.Sprintf("%.2f", c.Amount))
	}
	for _, disc := range d.Bill.Discounts {
		label := "Discount:"
		amount := disc.Value
		if disc.Kind == enum.DiscountKindPercentage {
			label = fmt.Sprintf("Discount %g%%:", disc.Value)
			amount = d.Totals.LineItemTotal * disc.Value / 100
		}
		doc.KeyValue(label, fmt.Sprintf("-%.2f", amount))
	}

	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", d.Totals.FinalTotal)).
		SetBold(false).
		KeyValue(d.AmountLabel()+":", fmt.Sprintf("%.2f", d.DisplayAmount()))

	doc.Separator('-').
		WrappedText(d.AmountInWords())

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
