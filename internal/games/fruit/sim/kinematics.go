package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Trajectory is a ballistic path with constant horizontal velocity.
// Motion is confined to the plane z = Origin.Z.
type Trajectory struct {
	Origin     mgl64.Vec3
	Horizontal float64 // initial horizontal velocity, units/s
	Vertical   float64 // initial vertical velocity, units/s
	Gravity    float64 // downward acceleration, units/s²
}

// Position returns the position t seconds after launch.
func (p Trajectory) Position(t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		p.Origin.X() + p.Horizontal*t,
		p.Origin.Y() + p.Vertical*t - 0.5*p.Gravity*t*t,
		p.Origin.Z(),
	}
}

// VerticalVelocityAt returns the vertical velocity t seconds after launch.
func (p Trajectory) VerticalVelocityAt(t float64) float64 {
	return p.Vertical - p.Gravity*t
}

// Apex returns the time to the highest point and the position there.
// A path without gravity or with a falling start peaks at launch.
func (p Trajectory) Apex() (float64, mgl64.Vec3) {
	if p.Gravity <= 0 || p.Vertical <= 0 {
		return 0, p.Origin
	}
	t := p.Vertical / p.Gravity
	return t, p.Position(t)
}

// PlanLaunch returns the trajectory from (x0, launchY) whose apex is exactly
// (peakX, peakY) under gravity g. g must be positive. A peak at or below the
// launch height yields a path with no initial velocity.
func PlanLaunch(x0, launchY, peakX, peakY, g float64) Trajectory {
	p := Trajectory{
		Origin:  mgl64.Vec3{x0, launchY, 0},
		Gravity: g,
	}
	if peakY <= launchY || g <= 0 {
		return p
	}
	p.Vertical = math.Sqrt(2 * g * (peakY - launchY))
	tPeak := p.Vertical / g
	p.Horizontal = (peakX - x0) / tPeak
	return p
}
