// Package invoice renders a bill into printable and downloadable documents.
// Three visual themes share the same inputs and the same arithmetic; only the
// layout differs between them.
package invoice

import (
	"fmt"
	"strings"
)

// Theme is the closed set of invoice layouts.
type Theme int

const (
	// ThemeDetailed is a full A4 tabular layout with header and footer.
	ThemeDetailed Theme = 0
	// ThemeReceipt is a narrow thermal-receipt style layout.
	ThemeReceipt Theme = 1
	// ThemeMinimal is a dotted-line minimal list layout.
	ThemeMinimal Theme = 2
)

func (t Theme) String() string {
	names := [...]string{"detailed", "receipt", "minimal"}
	if int(t) < 0 || int(t) >= len(names) {
		return "detailed"
	}
	return names[t]
}

// ParseTheme resolves a theme name, ignoring case. An empty string selects
// the detailed theme; unknown names are an error so callers can reject bad
// input.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(s) {
	case "", "detailed":
		return ThemeDetailed, nil
	case "receipt":
		return ThemeReceipt, nil
	case "minimal":
		return ThemeMinimal, nil
	default:
		return ThemeDetailed, fmt.Errorf("invoice: unknown theme %q", s)
	}
}

// Renderer turns invoice data into rendered artifacts. Rendering is pure:
// calling it twice with the same data produces two independent, identical
// artifacts and switching renderers never changes any computed amount.
type Renderer interface {
	// Theme identifies the layout this renderer produces.
	Theme() Theme
	// RenderPDF renders the invoice as a PDF document.
	RenderPDF(d *Data) ([]byte, error)
	// RenderText renders the invoice as monospace plain text.
	RenderText(d *Data) string
}

// ForTheme returns the renderer for a theme.
func ForTheme(t Theme) Renderer {
	switch t {
	case ThemeReceipt:
		return &receiptRenderer{width: 32}
	case ThemeMinimal:
		return &minimalRenderer{width: 40}
	default:
		return &detailedRenderer{}
	}
}
