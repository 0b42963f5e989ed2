package invoice

import (
	"strings"
	"unicode/utf8"
)

// Fixed-width text helpers shared by the receipt and minimal themes. Widths
// are measured in runes so non-ASCII names line up on the printed receipt.

// padCenter centers s within width characters.
func padCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// kvLine lays out key left-aligned and value right-aligned on one line,
// padding the middle with fill.
func kvLine(key, value string, width int, fill byte) string {
	gap := width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if gap < 1 {
		gap = 1
	}
	return key + strings.Repeat(string(fill), gap) + value
}

// wrapText breaks s into width-sized lines on word boundaries where possible.
func wrapText(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			switch {
			case line == "":
				line = word
			case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" || para == "" {
			lines = append(lines, line)
		}
	}
	return lines
}
