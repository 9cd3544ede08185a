// Package config provides YAML-based game configuration loading, validation
// and difficulty management for Fruit Gravity.
package config

import "time"

// Hit test strategies.
const (
	HitTestDistance = "distance" // planar distance against a per-kind radius
	HitTestRay      = "ray"      // pick ray against each object's oriented box
)

// FruitConfig contains all tunables of one game variant.
type FruitConfig struct {
	Physics    FruitPhysics     `yaml:"physics"`
	Spawn      FruitSpawn       `yaml:"spawn"`
	Objects    FruitObjects     `yaml:"objects"`
	Playfield  FruitPlayfield   `yaml:"playfield"`
	Camera     FruitCamera      `yaml:"camera"`
	HitTest    string           `yaml:"hit_test"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FruitPhysics defines the ballistic constants.
type FruitPhysics struct {
	Gravity        float64 `yaml:"gravity"`          // downward acceleration of whole objects
	SplitGravity   float64 `yaml:"split_gravity"`    // downward acceleration of debris
	LaunchHeight   float64 `yaml:"launch_height"`    // y of every launch, below the visible area
	SplitSpeed     float64 `yaml:"split_speed"`      // horizontal speed of each debris half
	SpinRate       float64 `yaml:"spin_rate"`        // rotation in radians over a whole lifetime
	DebrisSpinRate float64 `yaml:"debris_spin_rate"` // rotation of debris over a whole lifetime
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lerp maps t in [0, 1) onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Mid returns the center of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// FruitSpawn defines the wave/rest scheduler. Durations are in seconds.
type FruitSpawn struct {
	WaveTimer   Range   `yaml:"wave_timer"`
	RestTimer   Range   `yaml:"rest_timer"`
	BurstTimer  Range   `yaml:"burst_timer"`
	BurstWindow float64 `yaml:"burst_window"`

	// Timers used for the first cycle after a run starts.
	FirstWave  float64 `yaml:"first_wave"`
	FirstRest  float64 `yaml:"first_rest"`
	FirstBurst float64 `yaml:"first_burst"`

	// CountWeights[i] is the relative weight of a burst of i+1 objects.
	CountWeights []float64 `yaml:"count_weights"`

	SpawnX Range `yaml:"spawn_x"` // launch x
	PeakX  Range `yaml:"peak_x"`  // apex x
	PeakY  Range `yaml:"peak_y"`  // apex y
}

// FruitObjects defines object lifetime and the kind table.
type FruitObjects struct {
	LifetimeMS int          `yaml:"lifetime_ms"`
	Kinds      []KindConfig `yaml:"kinds"`
}

// Lifetime returns the fixed lifetime of a launched object.
func (o FruitObjects) Lifetime() time.Duration {
	return time.Duration(o.LifetimeMS) * time.Millisecond
}

// KindConfig describes one object kind.
type KindConfig struct {
	Name      string     `yaml:"name"`
	Weight    float64    `yaml:"weight"`
	Hazard    bool       `yaml:"hazard"`
	HitRadius float64    `yaml:"hit_radius"`
	Scale     [3]float64 `yaml:"scale"`
	Glyph     string     `yaml:"glyph"`
	Color     string     `yaml:"color"`
}

// FruitPlayfield defines the visible playfield in world units.
type FruitPlayfield struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Depth  float64 `yaml:"depth"` // z of the plane objects move in
}

// FruitCamera defines the view and perspective projection.
type FruitCamera struct {
	ViewTranslation [3]float64 `yaml:"view_translation"` // world -> eye translation
	FOVDegrees      float64    `yaml:"fov_degrees"`
	Near            float64    `yaml:"near"`
	Far             float64    `yaml:"far"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	PaceReduction float64 `yaml:"pace_reduction"` // fraction removed from rest and burst timers at max difficulty
	RadiusBonus   float64 `yaml:"radius_bonus"`   // hit radius multiplier delta applied by the easy preset
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
