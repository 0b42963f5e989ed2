package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{"zero", 0, "Zero"},
		{"single digit", 7, "Seven"},
		{"irregular teen", 19, "Nineteen"},
		{"round tens", 40, "Forty"},
		{"tens with ones", 42, "Forty Two"},
		{"round hundred", 100, "One Hundred"},
		{"hundred with remainder", 335, "Three Hundred Thirty Five"},
		{"round thousand", 1000, "One Thousand"},
		{"thousand with remainder", 1001, "One Thousand One"},
		{"thousands of hundreds", 25050, "Twenty Five Thousand Fifty"},
		{"upper bound spelled out", 99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{"fallback to numeral", 100000, "100000"},
		{"fallback above bound", 250000, "250000"},
		{"negative clamps to zero", -5, "Zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(tt.in))
		})
	}
}
