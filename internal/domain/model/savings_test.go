package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputDomain_Contains(t *testing.T) {
	tests := []struct {
		name     string
		domain   InputDomain
		value    float64
		expected bool
	}{
		{"rate at min", TargetApRateDomain, 0.01, true},
		{"rate at max", TargetApRateDomain, 0.25, true},
		{"rate below min", TargetApRateDomain, 0.009, false},
		{"rate above max", TargetApRateDomain, 0.2501, false},
		{"rate NaN", TargetApRateDomain, math.NaN(), false},
		{"cost at min", CostPerDayDomain, 1, true},
		{"cost at max", CostPerDayDomain, 50, true},
		{"cost zero", CostPerDayDomain, 0, false},
		{"cost above max", CostPerDayDomain, 51, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.domain.Contains(tt.value))
		})
	}
}

func TestInputDomain_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		domain   InputDomain
		value    float64
		expected float64
	}{
		{"rate on step is unchanged", TargetApRateDomain, 0.03, 0.03},
		{"rate snaps to nearest step", TargetApRateDomain, 0.0304, 0.03},
		{"rate rounds up to step", TargetApRateDomain, 0.1236, 0.124},
		{"rate below min", TargetApRateDomain, -1, 0.01},
		{"rate above max", TargetApRateDomain, 0.9, 0.25},
		{"rate NaN", TargetApRateDomain, math.NaN(), 0.01},
		{"rate +Inf", TargetApRateDomain, math.Inf(1), 0.25},
		{"cost fractional", CostPerDayDomain, 14.6, 15},
		{"cost zero", CostPerDayDomain, 0, 1},
		{"cost above max", CostPerDayDomain, 1000, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.domain.Clamp(tt.value))
		})
	}
}

func TestSavingsInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     SavingsInput
		wantField string
	}{
		{name: "defaults", input: DefaultSavingsInput()},
		{name: "bounds low", input: SavingsInput{TargetApRate: 0.01, CostPerDay: 1}},
		{name: "bounds high", input: SavingsInput{TargetApRate: 0.25, CostPerDay: 50}},
		{name: "rate too low", input: SavingsInput{TargetApRate: 0.001, CostPerDay: 15}, wantField: "target_ap_rate"},
		{name: "rate too high", input: SavingsInput{TargetApRate: 0.3, CostPerDay: 15}, wantField: "target_ap_rate"},
		{name: "cost too low", input: SavingsInput{TargetApRate: 0.03, CostPerDay: 0}, wantField: "cost_per_day"},
		{name: "cost too high", input: SavingsInput{TargetApRate: 0.03, CostPerDay: 51}, wantField: "cost_per_day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, tt.wantField, domainErr.Field)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestClamp(t *testing.T) {
	in := Clamp(0.5, 0.2)
	assert.Equal(t, SavingsInput{TargetApRate: 0.25, CostPerDay: 1}, in)
	assert.NoError(t, in.Validate())
}

func TestDefaultCostPresets(t *testing.T) {
	presets := DefaultCostPresets()

	require.Len(t, presets, 3)
	assert.Equal(t, "Generic", presets[0].Name)
	assert.Equal(t, 3, presets[0].CostPerDay)
	assert.Equal(t, "Mid-range", presets[1].Name)
	assert.Equal(t, 15, presets[1].CostPerDay)
	assert.Equal(t, "Brand Name", presets[2].Name)
	assert.Equal(t, 50, presets[2].CostPerDay)
	assert.NoError(t, ValidatePresets(presets))
}

func TestValidatePresets(t *testing.T) {
	assert.NoError(t, ValidatePresets(nil))
	assert.Error(t, ValidatePresets([]CostPreset{{Name: "", CostPerDay: 3}}))

	err := ValidatePresets([]CostPreset{{Name: "Specialty", CostPerDay: 120}})
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, 120.0, domainErr.Value)
	assert.Contains(t, err.Error(), "Specialty")
}
