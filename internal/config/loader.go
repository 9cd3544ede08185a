package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFruit loads the configuration of a game variant.
// Search order: customPath -> ~/.fruitgravity/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// Every candidate is validated. A broken custom file is an error; broken user or
// local files fall through to the next candidate.
func LoadFruit(customPath, variant string) (FruitConfig, error) {
	if variant == "" {
		variant = VariantFruit
	}
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FruitConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFruit(data, variant)
		if err != nil {
			return FruitConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFruit(data, variant); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parseFruit(data, variant); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFruit(embeddedYAML(variant), variant)
	if err != nil {
		return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFruit decodes YAML over the variant's defaults, so partial files only
// override the keys they name, then validates the result.
func parseFruit(data []byte, variant string) (FruitConfig, error) {
	cfg := DefaultFor(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FruitConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FruitConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruitgravity", "configs", filename)
}

// ApplyFruitPreset modifies the config based on a difficulty preset.
func ApplyFruitPreset(cfg *FruitConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust hit radii based on difficulty
	var factor float64
	switch preset {
	case DifficultyEasy:
		factor = 1 + cfg.Difficulty.Scaling.RadiusBonus
	case DifficultyHard:
		factor = 1 - cfg.Difficulty.Scaling.RadiusBonus/2
	default:
		return
	}
	if factor <= 0 {
		return
	}
	kinds := make([]KindConfig, len(cfg.Objects.Kinds))
	copy(kinds, cfg.Objects.Kinds)
	for i := range kinds {
		if !kinds[i].Hazard {
			kinds[i].HitRadius *= factor
		}
	}
	cfg.Objects.Kinds = kinds
}
