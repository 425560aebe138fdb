// Package model defines the core domain entities for the savings service.
package model

import (
	"fmt"
	"math"
)

const (
	// TotalResidents is the national nursing home resident population.
	TotalResidents = 1_210_000
	// CurrentApRate is the share of residents currently receiving antipsychotics (Q3 2024 MDS).
	CurrentApRate = 0.2262
	// DaysPerYear is the number of drug-days billed per resident per year.
	DaysPerYear = 365
)

const (
	// DefaultTargetApRate is the clinically appropriate AP rate used as the initial slider value.
	DefaultTargetApRate = 0.03
	// DefaultCostPerDay is the mid-range daily drug cost used as the initial slider value.
	DefaultCostPerDay = 15
)

// InputDomain describes the range and granularity of one input control.
//
// @Description Slider range and step for one calculator input
type InputDomain struct {
	Min  float64 `json:"min" example:"0.01"`
	Max  float64 `json:"max" example:"0.25"`
	Step float64 `json:"step" example:"0.001"`
}

var (
	// TargetApRateDomain is the accepted range for the target AP rate (a fraction).
	TargetApRateDomain = InputDomain{Min: 0.01, Max: 0.25, Step: 0.001}
	// CostPerDayDomain is the accepted range for the daily drug cost in USD.
	CostPerDayDomain = InputDomain{Min: 1, Max: 50, Step: 1}
)

// Contains reports whether v lies inside the closed range [Min, Max].
// NaN is never contained.
func (d InputDomain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Clamp snaps v to the nearest step and then limits it to [Min, Max].
// NaN maps to Min.
func (d InputDomain) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return d.Min
	}
	if d.Step > 0 && !math.IsInf(v, 0) {
		// Dividing by the integer step count keeps results identical to the decimal literals.
		v = math.Round(v/d.Step) / math.Round(1/d.Step)
	}
	return math.Max(d.Min, math.Min(d.Max, v))
}

// check returns a DomainError when v is outside the domain.
func (d InputDomain) check(field string, v float64) error {
	if d.Contains(v) {
		return nil
	}
	return &DomainError{Field: field, Value: v, Min: d.Min, Max: d.Max}
}

// DomainError reports an input outside its documented domain.
// It is a caller contract violation, not a runtime condition to recover from.
type DomainError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %g is outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

// SavingsInput holds the two user-controlled calculator inputs.
type SavingsInput struct {
	TargetApRate float64 `json:"target_ap_rate"`
	CostPerDay   int     `json:"cost_per_day"`
}

// DefaultSavingsInput returns the inputs shown when the page first loads.
func DefaultSavingsInput() SavingsInput {
	return SavingsInput{TargetApRate: DefaultTargetApRate, CostPerDay: DefaultCostPerDay}
}

// Validate checks both inputs against their domains.
func (in SavingsInput) Validate() error {
	if err := TargetApRateDomain.check("target_ap_rate", in.TargetApRate); err != nil {
		return err
	}
	return CostPerDayDomain.check("cost_per_day", float64(in.CostPerDay))
}

// Clamp converts raw control values into a valid SavingsInput the way a slider would.
func Clamp(targetApRate, costPerDay float64) SavingsInput {
	return SavingsInput{
		TargetApRate: TargetApRateDomain.Clamp(targetApRate),
		CostPerDay:   int(CostPerDayDomain.Clamp(costPerDay)),
	}
}

// SavingsEstimate is the result of one savings calculation together with its display strings.
// Numeric fields are unrounded; Headline and Summary are derived for presentation only.
//
// @Description Annual savings estimate for a target AP rate and daily drug cost
type SavingsEstimate struct {
	TargetApRate       float64 `json:"target_ap_rate" example:"0.03"`
	CostPerDay         int     `json:"cost_per_day" example:"15"`
	CurrentApRate      float64 `json:"current_ap_rate" example:"0.2262"`
	CurrentApResidents float64 `json:"current_ap_residents" example:"273702"`
	TargetApResidents  float64 `json:"target_ap_residents" example:"36300"`
	ReducedResidents   float64 `json:"reduced_residents" example:"237402"`
	AnnualSavingsUSD   float64 `json:"annual_savings_usd" example:"1299775950"`
	SavingsBillions    float64 `json:"savings_billions" example:"1.29977595"`
	IsCostIncrease     bool    `json:"is_cost_increase" example:"false"`
	Label              string  `json:"label" example:"Potential Annual Savings"`
	Headline           string  `json:"headline" example:"$1.30B"`
	Summary            string  `json:"summary" example:"By reducing AP drug rate from 22.6% to 3.0% at $15/day drug cost"`
} // @name SavingsEstimate

// CostPreset is a named daily drug cost tier.
//
// @Description Named daily drug cost tier
type CostPreset struct {
	Name        string `json:"name" yaml:"name" example:"Generic"`
	CostPerDay  int    `json:"cost_per_day" yaml:"cost_per_day" example:"3"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultCostPresets returns the generic, mid-range and brand-name cost tiers.
func DefaultCostPresets() []CostPreset {
	return []CostPreset{
		{Name: "Generic", CostPerDay: 3, Description: "Generic antipsychotic"},
		{Name: "Mid-range", CostPerDay: 15, Description: "Mid-range antipsychotic"},
		{Name: "Brand Name", CostPerDay: 50, Description: "Brand-name antipsychotic"},
	}
}

// ValidatePresets checks that every preset has a name and a cost inside CostPerDayDomain.
func ValidatePresets(presets []CostPreset) error {
	for i, p := range presets {
		if p.Name == "" {
			return fmt.Errorf("cost preset %d: name is required", i)
		}
		if err := CostPerDayDomain.check("cost_per_day", float64(p.CostPerDay)); err != nil {
			return fmt.Errorf("cost preset %q: %w", p.Name, err)
		}
	}
	return nil
}
