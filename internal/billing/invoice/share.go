package invoice

import (
	"fmt"
	"strings"
)

// ShareSummary builds the short plain-text message used when a bill is
// shared over messaging apps. It carries the document title, bill number,
// party and amount but none of the line-item detail.
func ShareSummary(d *Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s from %s\n", d.DocTitle(), d.Bill.BillNo, d.Business.Name)
	fmt.Fprintf(&b, "To: %s\n", d.Bill.PartyName)

	dateLabel, dateValue := d.BillDate()
	fmt.Fprintf(&b, "%s: %s\n", dateLabel, dateValue.Format("02 Jan 2006"))
	fmt.Fprintf(&b, "%s: %s\n", d.AmountLabel(), FormatAmount(d.DisplayAmount()))

	if d.Business.Phone != "" {
		fmt.Fprintf(&b, "Contact: %s\n", d.Business.Phone)
	}

	return b.String()
}
