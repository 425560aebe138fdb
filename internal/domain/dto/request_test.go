package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

func TestEstimateRequest_ToInput(t *testing.T) {
	rate, cost := 0.05, 20

	tests := []struct {
		name     string
		req      EstimateRequest
		expected model.SavingsInput
	}{
		{"both set", EstimateRequest{TargetApRate: &rate, CostPerDay: &cost}, model.SavingsInput{TargetApRate: 0.05, CostPerDay: 20}},
		{"nil fields become zero", EstimateRequest{}, model.SavingsInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ToInput())
		})
	}
}

func TestNewParametersResponse(t *testing.T) {
	presets := model.DefaultCostPresets()
	resp := NewParametersResponse(model.DefaultSavingsInput(), presets)

	assert.Equal(t, 1_210_000, resp.TotalResidents)
	assert.Equal(t, 0.2262, resp.CurrentApRate)
	assert.Equal(t, 365, resp.DaysPerYear)
	assert.Equal(t, model.InputDomain{Min: 0.01, Max: 0.25, Step: 0.001}, resp.TargetApRateDomain)
	assert.Equal(t, model.InputDomain{Min: 1, Max: 50, Step: 1}, resp.CostPerDayDomain)
	assert.Equal(t, 0.03, resp.DefaultTargetApRate)
	assert.Equal(t, 15, resp.DefaultCostPerDay)
	assert.Equal(t, presets, resp.CostPresets)
	assert.Len(t, resp.AboutTheData, 4)
}

func TestNewComparisonResponse(t *testing.T) {
	presets := model.DefaultCostPresets()
	estimates := []model.SavingsEstimate{{CostPerDay: 3}, {CostPerDay: 15}, {CostPerDay: 50}}

	resp := NewComparisonResponse(0.03, presets, estimates)
	require.Len(t, resp.Tiers, 3)
	assert.Equal(t, 0.03, resp.TargetApRate)
	for i, tier := range resp.Tiers {
		assert.Equal(t, presets[i].CostPerDay, tier.Estimate.CostPerDay)
		assert.Equal(t, presets[i].Name, tier.Preset.Name)
	}

	short := NewComparisonResponse(0.03, presets, estimates[:1])
	assert.Len(t, short.Tiers, 1)
}
