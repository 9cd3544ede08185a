package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate checks the invariants the simulation relies on.
// All violations are reported together.
func (c FruitConfig) Validate() error {
	var errs []error

	p := c.Physics
	if p.Gravity <= 0 {
		errs = append(errs, invalid("physics.gravity must be > 0, got %v", p.Gravity))
	}
	if p.SplitGravity <= 0 {
		errs = append(errs, invalid("physics.split_gravity must be > 0, got %v", p.SplitGravity))
	}

	s := c.Spawn
	for _, r := range []struct {
		name string
		r    Range
		min  float64
	}{
		{"spawn.wave_timer", s.WaveTimer, 0},
		{"spawn.rest_timer", s.RestTimer, 0},
		{"spawn.burst_timer", s.BurstTimer, 0},
	} {
		if r.r.Min < r.min || r.r.Max < r.r.Min {
			errs = append(errs, invalid("%s must satisfy %v <= min <= max, got [%v, %v]", r.name, r.min, r.r.Min, r.r.Max))
		}
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"spawn.spawn_x", s.SpawnX},
		{"spawn.peak_x", s.PeakX},
		{"spawn.peak_y", s.PeakY},
	} {
		if r.r.Max < r.r.Min {
			errs = append(errs, invalid("%s has min > max: [%v, %v]", r.name, r.r.Min, r.r.Max))
		}
	}
	if s.PeakY.Min <= p.LaunchHeight {
		errs = append(errs, invalid("spawn.peak_y.min (%v) must be above physics.launch_height (%v)", s.PeakY.Min, p.LaunchHeight))
	}
	if s.BurstWindow <= 0 {
		errs = append(errs, invalid("spawn.burst_window must be > 0, got %v", s.BurstWindow))
	}
	if s.FirstWave < 0 || s.FirstRest < 0 || s.FirstBurst < 0 {
		errs = append(errs, invalid("spawn.first_* timers must be >= 0"))
	}
	if err := validateWeights("spawn.count_weights", s.CountWeights); err != nil {
		errs = append(errs, err)
	}

	o := c.Objects
	if o.LifetimeMS <= 0 {
		errs = append(errs, invalid("objects.lifetime_ms must be > 0, got %d", o.LifetimeMS))
	}
	if len(o.Kinds) == 0 {
		errs = append(errs, invalid("objects.kinds must not be empty"))
	}
	weights := make([]float64, 0, len(o.Kinds))
	seen := make(map[string]bool, len(o.Kinds))
	for i, k := range o.Kinds {
		if k.Name == "" {
			errs = append(errs, invalid("objects.kinds[%d].name is empty", i))
		} else if seen[k.Name] {
			errs = append(errs, invalid("objects.kinds[%d].name %q is duplicated", i, k.Name))
		}
		seen[k.Name] = true
		if k.HitRadius <= 0 {
			errs = append(errs, invalid("objects.kinds[%d] (%s) hit_radius must be > 0, got %v", i, k.Name, k.HitRadius))
		}
		for axis, v := range k.Scale {
			if v <= 0 {
				errs = append(errs, invalid("objects.kinds[%d] (%s) scale[%d] must be > 0, got %v", i, k.Name, axis, v))
			}
		}
		weights = append(weights, k.Weight)
	}
	if len(o.Kinds) > 0 {
		if err := validateWeights("objects.kinds weights", weights); err != nil {
			errs = append(errs, err)
		}
	}

	cam := c.Camera
	if cam.FOVDegrees <= 0 || cam.FOVDegrees >= 180 {
		errs = append(errs, invalid("camera.fov_degrees must be in (0, 180), got %v", cam.FOVDegrees))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		errs = append(errs, invalid("camera requires 0 < near < far, got near=%v far=%v", cam.Near, cam.Far))
	}

	pf := c.Playfield
	if pf.Right <= pf.Left || pf.Top <= pf.Bottom {
		errs = append(errs, invalid("playfield bounds are empty: left=%v right=%v bottom=%v top=%v", pf.Left, pf.Right, pf.Bottom, pf.Top))
	}

	switch c.HitTest {
	case HitTestDistance, HitTestRay:
	default:
		errs = append(errs, invalid("hit_test must be %q or %q, got %q", HitTestDistance, HitTestRay, c.HitTest))
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, invalid("difficulty.progression.type %q is unknown", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

func validateWeights(name string, weights []float64) error {
	if len(weights) == 0 {
		return invalid("%s must not be empty", name)
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return invalid("%s[%d] is negative: %v", name, i, w)
		}
		total += w
	}
	if total <= 0 {
		return invalid("%s must have a positive total", name)
	}
	return nil
}
