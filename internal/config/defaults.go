package config

import (
	_ "embed"
)

// Game variants shipped with embedded defaults.
const (
	VariantFruit   = "fruit"
	VariantClassic = "fruit_classic"
)

//go:embed defaults/fruit.yaml
var defaultFruitYAML []byte

//go:embed defaults/fruit_classic.yaml
var defaultClassicYAML []byte

// embeddedYAML returns the embedded default for a variant.
func embeddedYAML(variant string) []byte {
	if variant == VariantClassic {
		return defaultClassicYAML
	}
	return defaultFruitYAML
}

// DefaultFor returns the hard-coded default for a variant.
func DefaultFor(variant string) FruitConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultFruitConfig()
}

// DefaultFruitConfig returns the default configuration with five fruit kinds and a bomb.
func DefaultFruitConfig() FruitConfig {
	return FruitConfig{
		Physics: FruitPhysics{
			Gravity:        25,
			SplitGravity:   35,
			LaunchHeight:   -10,
			SplitSpeed:     4,
			SpinRate:       30,
			DebrisSpinRate: 20,
		},
		Spawn: FruitSpawn{
			WaveTimer:    Range{Min: 2, Max: 4},
			RestTimer:    Range{Min: 2, Max: 5},
			BurstTimer:   Range{Min: 0.5, Max: 1.5},
			BurstWindow:  0.1,
			FirstWave:    6,
			FirstRest:    2,
			FirstBurst:   1,
			CountWeights: []float64{7.5, 1, 1, 0.5},
			SpawnX:       Range{Min: -22, Max: 22},
			PeakX:        Range{Min: -10, Max: 10},
			PeakY:        Range{Min: 8, Max: 16},
		},
		Objects: FruitObjects{
			LifetimeMS: 5000,
			Kinds: []KindConfig{
				{Name: "apple", Weight: 16, HitRadius: 1.0, Scale: [3]float64{1, 1, 1}, Glyph: "●", Color: "bright_red"},
				{Name: "peach", Weight: 16, HitRadius: 1.0, Scale: [3]float64{1, 1, 1}, Glyph: "●", Color: "orange"},
				{Name: "watermelon", Weight: 16, HitRadius: 2.2, Scale: [3]float64{2, 2.5, 2}, Glyph: "●", Color: "green"},
				{Name: "orange", Weight: 16, HitRadius: 1.0, Scale: [3]float64{1, 1, 1}, Glyph: "●", Color: "bright_yellow"},
				{Name: "mango", Weight: 16, HitRadius: 1.1, Scale: [3]float64{1.5, 1.2, 1.2}, Glyph: "●", Color: "yellow"},
				{Name: "bomb", Weight: 20, Hazard: true, HitRadius: 1.1, Scale: [3]float64{1, 1, 1}, Glyph: "✹", Color: "gray"},
			},
		},
		Playfield: FruitPlayfield{
			Left:   -23,
			Right:  23,
			Top:    23,
			Bottom: -3,
			Depth:  0,
		},
		Camera: FruitCamera{
			ViewTranslation: [3]float64{0, -10, -30},
			FOVDegrees:      45,
			Near:            1,
			Far:             100,
		},
		HitTest: HitTestDistance,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				PaceReduction: 0.5,
				RadiusBonus:   0.2,
			},
		},
	}
}

// DefaultClassicConfig returns the simplified variant: one fruit kind, a bomb,
// and oriented-box ray picking.
func DefaultClassicConfig() FruitConfig {
	cfg := DefaultFruitConfig()
	cfg.Objects.Kinds = []KindConfig{
		{Name: "fruit", Weight: 80, HitRadius: 1.0, Scale: [3]float64{1, 1, 1}, Glyph: "■", Color: "bright_green"},
		{Name: "bomb", Weight: 20, Hazard: true, HitRadius: 1.0, Scale: [3]float64{1, 1, 1}, Glyph: "✹", Color: "gray"},
	}
	cfg.HitTest = HitTestRay
	return cfg
}
