package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	for _, variant := range []string{VariantFruit, VariantClassic} {
		if err := DefaultFor(variant).Validate(); err != nil {
			t.Errorf("DefaultFor(%q).Validate() = %v, expected nil", variant, err)
		}
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	tests := []struct {
		variant string
		kinds   int
		hitTest string
	}{
		{VariantFruit, 6, HitTestDistance},
		{VariantClassic, 2, HitTestRay},
	}

	for _, tt := range tests {
		cfg, err := parseFruit(embeddedYAML(tt.variant), tt.variant)
		if err != nil {
			t.Fatalf("parseFruit(embedded %s) error = %v", tt.variant, err)
		}
		if len(cfg.Objects.Kinds) != tt.kinds {
			t.Errorf("%s kinds = %d, expected %d", tt.variant, len(cfg.Objects.Kinds), tt.kinds)
		}
		if cfg.HitTest != tt.hitTest {
			t.Errorf("%s hit_test = %q, expected %q", tt.variant, cfg.HitTest, tt.hitTest)
		}
		def := DefaultFor(tt.variant)
		if cfg.Physics != def.Physics {
			t.Errorf("%s physics = %+v, expected %+v", tt.variant, cfg.Physics, def.Physics)
		}
		if cfg.Objects.LifetimeMS != 5000 {
			t.Errorf("%s lifetime_ms = %d, expected 5000", tt.variant, cfg.Objects.LifetimeMS)
		}
		for i, k := range cfg.Objects.Kinds {
			if k != def.Objects.Kinds[i] {
				t.Errorf("%s kind[%d] = %+v, expected %+v", tt.variant, i, k, def.Objects.Kinds[i])
			}
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FruitConfig)
	}{
		{"zero gravity", func(c *FruitConfig) { c.Physics.Gravity = 0 }},
		{"negative gravity", func(c *FruitConfig) { c.Physics.Gravity = -1 }},
		{"zero split gravity", func(c *FruitConfig) { c.Physics.SplitGravity = 0 }},
		{"inverted wave timer", func(c *FruitConfig) { c.Spawn.WaveTimer = Range{Min: 4, Max: 2} }},
		{"negative rest timer", func(c *FruitConfig) { c.Spawn.RestTimer = Range{Min: -1, Max: 2} }},
		{"inverted peak x", func(c *FruitConfig) { c.Spawn.PeakX = Range{Min: 10, Max: -10} }},
		{"peak below launch", func(c *FruitConfig) { c.Spawn.PeakY = Range{Min: -20, Max: 16} }},
		{"zero burst window", func(c *FruitConfig) { c.Spawn.BurstWindow = 0 }},
		{"empty count weights", func(c *FruitConfig) { c.Spawn.CountWeights = nil }},
		{"zero count weights", func(c *FruitConfig) { c.Spawn.CountWeights = []float64{0, 0} }},
		{"zero lifetime", func(c *FruitConfig) { c.Objects.LifetimeMS = 0 }},
		{"no kinds", func(c *FruitConfig) { c.Objects.Kinds = nil }},
		{"zero radius", func(c *FruitConfig) { c.Objects.Kinds[0].HitRadius = 0 }},
		{"zero scale", func(c *FruitConfig) { c.Objects.Kinds[0].Scale[1] = 0 }},
		{"duplicate kind", func(c *FruitConfig) { c.Objects.Kinds[1].Name = c.Objects.Kinds[0].Name }},
		{"negative kind weight", func(c *FruitConfig) { c.Objects.Kinds[0].Weight = -1 }},
		{"fov out of range", func(c *FruitConfig) { c.Camera.FOVDegrees = 180 }},
		{"near after far", func(c *FruitConfig) { c.Camera.Near = 200 }},
		{"empty playfield", func(c *FruitConfig) { c.Playfield.Right = c.Playfield.Left }},
		{"unknown hit test", func(c *FruitConfig) { c.HitTest = "sphere" }},
		{"unknown progression", func(c *FruitConfig) { c.Difficulty.Progression.Type = "random" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFruitConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected to wrap ErrInvalid", err)
			}
		})
	}
}

func TestLoadFruitCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 40\nhit_test: ray\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFruit(path, VariantFruit)
	if err != nil {
		t.Fatalf("LoadFruit() error = %v", err)
	}
	if cfg.Physics.Gravity != 40 {
		t.Errorf("Gravity = %v, expected 40", cfg.Physics.Gravity)
	}
	if cfg.Physics.SplitGravity != 35 {
		t.Errorf("SplitGravity = %v, expected default 35", cfg.Physics.SplitGravity)
	}
	if cfg.HitTest != HitTestRay {
		t.Errorf("HitTest = %q, expected %q", cfg.HitTest, HitTestRay)
	}
}

func TestLoadFruitCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFruit(filepath.Join(dir, "missing.yaml"), VariantFruit); err == nil {
		t.Error("LoadFruit(missing) = nil error, expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  gravity: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFruit(bad, VariantFruit)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadFruit(gravity 0) error = %v, expected ErrInvalid", err)
	}

	garbled := filepath.Join(dir, "garbled.yaml")
	if err := os.WriteFile(garbled, []byte("physics: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFruit(garbled, VariantFruit); err == nil {
		t.Error("LoadFruit(garbled) = nil error, expected error")
	}
}

func TestApplyFruitPreset(t *testing.T) {
	base := DefaultFruitConfig()

	easy := DefaultFruitConfig()
	ApplyFruitPreset(&easy, DifficultyEasy)
	hard := DefaultFruitConfig()
	ApplyFruitPreset(&hard, DifficultyHard)
	fixed := DefaultFruitConfig()
	ApplyFruitPreset(&fixed, DifficultyFixed)

	for i, k := range base.Objects.Kinds {
		e, h := easy.Objects.Kinds[i].HitRadius, hard.Objects.Kinds[i].HitRadius
		if k.Hazard {
			if e != k.HitRadius || h != k.HitRadius {
				t.Errorf("hazard %s radius changed: easy=%v hard=%v", k.Name, e, h)
			}
			continue
		}
		if e <= k.HitRadius {
			t.Errorf("easy %s radius = %v, expected > %v", k.Name, e, k.HitRadius)
		}
		if h >= k.HitRadius {
			t.Errorf("hard %s radius = %v, expected < %v", k.Name, h, k.HitRadius)
		}
	}

	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard InitialLevel = %v, expected 0.7", hard.Difficulty.InitialLevel)
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy.Validate() = %v", err)
	}
}

func TestDifficultyPace(t *testing.T) {
	cfg := DefaultFruitConfig().Difficulty
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.0},
		{75, 0.75},
		{150, 0.5},
		{1000, 0.5},
	}

	for _, tt := range tests {
		got := d.Pace(tt.score, 0)
		if diff := got - tt.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Pace(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	d.SetEnabled(false)
	d.SetInitialLevel(0.4)
	if got := d.Pace(1000, 0); got != 0.8 {
		t.Errorf("Pace() with progression disabled = %v, expected 0.8", got)
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: 2, Max: 4}
	if got := r.Lerp(0.5); got != 3 {
		t.Errorf("Lerp(0.5) = %v, expected 3", got)
	}
	if got := r.Mid(); got != 3 {
		t.Errorf("Mid() = %v, expected 3", got)
	}
	if !r.Contains(2) || !r.Contains(4) || r.Contains(4.01) {
		t.Error("Contains() boundary mismatch")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) mismatch")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset(insane) should be empty")
	}
}
