package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// presetsFile is the YAML layout of PRESETS_FILE:
//
//	presets:
//	  - name: Generic
//	    cost_per_day: 3
type presetsFile struct {
	Presets []model.CostPreset `yaml:"presets"`
}

// LoadCostPresets reads cost presets from a YAML file. An empty path yields the
// built-in presets. Every preset must have a name and a cost inside the cost domain.
func LoadCostPresets(path string) ([]model.CostPreset, error) {
	if path == "" {
		return model.DefaultCostPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	return ParseCostPresets(data)
}

// ParseCostPresets decodes and validates YAML cost presets.
func ParseCostPresets(data []byte) ([]model.CostPreset, error) {
	var file presetsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("presets file defines no presets")
	}
	if err := model.ValidatePresets(file.Presets); err != nil {
		return nil, err
	}
	return file.Presets, nil
}
