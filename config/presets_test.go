package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

func TestLoadCostPresets(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		presets, err := LoadCostPresets("")
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCostPresets(), presets)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		content := `presets:
  - name: Generic
    cost_per_day: 3
  - name: Specialty
    cost_per_day: 42
    description: Long-acting injectable
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		presets, err := LoadCostPresets(path)
		require.NoError(t, err)
		assert.Equal(t, []model.CostPreset{
			{Name: "Generic", CostPerDay: 3},
			{Name: "Specialty", CostPerDay: 42, Description: "Long-acting injectable"},
		}, presets)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCostPresets(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseCostPresets(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "presets: [", "failed to parse presets"},
		{"no presets", "presets: []", "defines no presets"},
		{"cost above domain", "presets:\n  - name: Gold\n    cost_per_day: 80\n", "cost_per_day"},
		{"cost below domain", "presets:\n  - name: Free\n    cost_per_day: 0\n", "cost_per_day"},
		{"missing name", "presets:\n  - cost_per_day: 5\n", "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCostPresets([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("out of domain cost is a domain error", func(t *testing.T) {
		_, err := ParseCostPresets([]byte("presets:\n  - name: Gold\n    cost_per_day: 80\n"))
		var domainErr *model.DomainError
		assert.ErrorAs(t, err, &domainErr)
	})
}
