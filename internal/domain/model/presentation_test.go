package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBillions(t *testing.T) {
	tests := []struct {
		name     string
		usd      float64
		expected string
	}{
		{"default scenario", 1_299_775_950, "$1.30B"},
		{"zero", 0, "$0.00B"},
		{"negative zero", math.Copysign(0, -1), "$0.00B"},
		{"tiny negative keeps its sign", -1_000_000, "-$0.00B"},
		{"small cost increase", -353_320, "-$0.00B"},
		{"tiny positive", 4_999_999, "$0.00B"},
		{"negative", -31_533_810, "-$0.03B"},
		{"large negative", -525_563_500, "-$0.53B"},
		{"maximum", 4_774_236_500, "$4.77B"},
		{"rounds half up", 1_235_000_000, "$1.24B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBillions(tt.usd))
		})
	}
}

func TestHeadlineLabel(t *testing.T) {
	assert.Equal(t, LabelSavings, HeadlineLabel(1))
	assert.Equal(t, LabelSavings, HeadlineLabel(0))
	assert.Equal(t, LabelCostIncrease, HeadlineLabel(-1))
}

func TestSummarySentence(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		cost     int
		expected string
	}{
		{"default", 0.03, 15, "By reducing AP drug rate from 22.6% to 3.0% at $15/day drug cost"},
		{"one decimal", 0.125, 3, "By reducing AP drug rate from 22.6% to 12.5% at $3/day drug cost"},
		{"at current rate", CurrentApRate, 50, "By reducing AP drug rate from 22.6% to 22.6% at $50/day drug cost"},
		{"above current rate", 0.25, 3, "By raising AP drug rate from 22.6% to 25.0% at $3/day drug cost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SummarySentence(tt.rate, tt.cost))
		})
	}
}
