// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// EstimateRequest carries the two calculator inputs, from a JSON body or a query string.
// Range checks are left to the estimator so that every path reports the same DomainError.
//
// @Description Calculator inputs
type EstimateRequest struct {
	// TargetApRate is a fraction in [0.01, 0.25].
	TargetApRate *float64 `json:"target_ap_rate" form:"target_ap_rate" binding:"required" example:"0.03"`
	// CostPerDay is a whole number of dollars in [1, 50].
	CostPerDay *int `json:"cost_per_day" form:"cost_per_day" binding:"required" example:"15"`
} // @name EstimateRequest

// ToInput converts the request into estimator input. Callers must bind first.
func (r EstimateRequest) ToInput() model.SavingsInput {
	var in model.SavingsInput
	if r.TargetApRate != nil {
		in.TargetApRate = *r.TargetApRate
	}
	if r.CostPerDay != nil {
		in.CostPerDay = *r.CostPerDay
	}
	return in
}

// CompareRequest selects the target rate for a cost-tier comparison.
type CompareRequest struct {
	TargetApRate *float64 `form:"target_ap_rate" binding:"required" example:"0.03"`
}

// PageQuery holds the optional, unvalidated slider positions of the calculator page.
type PageQuery struct {
	TargetApRate *float64 `form:"target_ap_rate"`
	CostPerDay   *float64 `form:"cost_per_day"`
}

// ParametersResponse describes the fixed constants, input domains and presets.
//
// @Description Calculator constants, slider domains, defaults and cost presets
type ParametersResponse struct {
	TotalResidents      int                `json:"total_residents" example:"1210000"`
	CurrentApRate       float64            `json:"current_ap_rate" example:"0.2262"`
	DaysPerYear         int                `json:"days_per_year" example:"365"`
	TargetApRateDomain  model.InputDomain  `json:"target_ap_rate_domain"`
	CostPerDayDomain    model.InputDomain  `json:"cost_per_day_domain"`
	DefaultTargetApRate float64            `json:"default_target_ap_rate" example:"0.03"`
	DefaultCostPerDay   int                `json:"default_cost_per_day" example:"15"`
	CostPresets         []model.CostPreset `json:"cost_presets"`
	AboutTheData        []string           `json:"about_the_data"`
} // @name ParametersResponse

// NewParametersResponse builds the parameters body from the configured defaults and presets.
func NewParametersResponse(defaults model.SavingsInput, presets []model.CostPreset) ParametersResponse {
	return ParametersResponse{
		TotalResidents:      model.TotalResidents,
		CurrentApRate:       model.CurrentApRate,
		DaysPerYear:         model.DaysPerYear,
		TargetApRateDomain:  model.TargetApRateDomain,
		CostPerDayDomain:    model.CostPerDayDomain,
		DefaultTargetApRate: defaults.TargetApRate,
		DefaultCostPerDay:   defaults.CostPerDay,
		CostPresets:         presets,
		AboutTheData:        model.AboutTheData,
	}
}

// TierEstimate pairs a cost preset with its estimate.
type TierEstimate struct {
	Preset   model.CostPreset      `json:"preset"`
	Estimate model.SavingsEstimate `json:"estimate"`
} // @name TierEstimate

// ComparisonResponse lists one estimate per cost preset for a single target rate.
//
// @Description Savings estimates for each cost preset at one target rate
type ComparisonResponse struct {
	TargetApRate float64        `json:"target_ap_rate" example:"0.03"`
	Tiers        []TierEstimate `json:"tiers"`
} // @name ComparisonResponse

// NewComparisonResponse zips presets with their estimates; both slices share an order.
func NewComparisonResponse(targetApRate float64, presets []model.CostPreset, estimates []model.SavingsEstimate) ComparisonResponse {
	n := len(presets)
	if len(estimates) < n {
		n = len(estimates)
	}
	tiers := make([]TierEstimate, n)
	for i := 0; i < n; i++ {
		tiers[i] = TierEstimate{Preset: presets[i], Estimate: estimates[i]}
	}
	return ComparisonResponse{TargetApRate: targetApRate, Tiers: tiers}
}
