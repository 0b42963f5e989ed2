// Package words converts rupee amounts into English words for invoice
// rendering ("Three Hundred Thirty Five rupees only").
package words

import "strconv"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// AmountInWords spells out a non-negative integer amount in English words,
// grouping by thousands. Amounts of 100,000 and above are returned as the
// raw numeral string: the formatter has no lakh/crore grouping, and callers
// depend on that fallback rather than an error.
func AmountInWords(n int) string {
	if n < 0 {
		n = 0
	}
	if n == 0 {
		return "Zero"
	}
	if n >= 100000 {
		return strconv.Itoa(n)
	}
	return spell(n)
}

func spell(n int) string {
	switch {
	case n < 20:
		return ones[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	case n < 1000:
		s := ones[n/100] + " Hundred"
		if n%100 != 0 {
			s += " " + spell(n%100)
		}
		return s
	default:
		s := spell(n/1000) + " Thousand"
		if n%1000 != 0 {
			s += " " + spell(n%1000)
		}
		return s
	}
}
