package model

import (
	"fmt"
	"math"
)

// Headline labels shown above the formatted amount.
const (
	LabelSavings      = "Potential Annual Savings"
	LabelCostIncrease = "Projected Annual Cost Increase"
)

// FormatBillions renders a USD amount as "$X.XXB" with two decimals.
// Negative amounts carry a leading minus sign, including those that round to zero,
// so a small cost increase reads "-$0.00B".
func FormatBillions(usd float64) string {
	billions := usd / 1e9
	rounded := math.Round(billions*100) / 100
	if rounded == 0 {
		if usd < 0 {
			return "-$0.00B"
		}
		return "$0.00B"
	}
	if rounded < 0 {
		return fmt.Sprintf("-$%.2fB", -rounded)
	}
	return fmt.Sprintf("$%.2fB", rounded)
}

// FormatPercent renders a fraction as a percentage with one decimal, e.g. 0.2262 -> "22.6%".
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// HeadlineLabel returns the caption for an annual savings figure.
func HeadlineLabel(annualSavingsUSD float64) string {
	if annualSavingsUSD < 0 {
		return LabelCostIncrease
	}
	return LabelSavings
}

// SummarySentence describes the scenario behind an estimate.
func SummarySentence(targetApRate float64, costPerDay int) string {
	verb := "reducing"
	if targetApRate > CurrentApRate {
		verb = "raising"
	}
	return fmt.Sprintf("By %s AP drug rate from %s to %s at $%d/day drug cost",
		verb, FormatPercent(CurrentApRate), FormatPercent(targetApRate), costPerDay)
}

// AboutTheData lists the sources behind the fixed constants, shown below the calculator.
var AboutTheData = []string{
	"Based on Q3 2024 MDS data showing 22.6% of nursing home residents receive antipsychotics.",
	"Assumes 1.21 million total nursing home residents.",
	"Drug costs range from $3/day (generic) to $50/day (brand name).",
	"A 3% target rate is based on clinical guidelines for appropriate use.",
}
