package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// Split cuts parent at now into a left and a right half.
//
// The halves leave the parent's position with horizontal velocities -k and +k
// and vertical velocities d·vy and -d·vy, where d is one random sign shared by
// both. They spin in opposite directions, fall under split gravity, and expire
// at the parent's end time. IDs are left for the caller to assign.
func Split(parent *Object, now time.Duration, phys config.FruitPhysics, rng Rand) [2]*Object {
	d := sign(rng)
	r := sign(rng)
	k := phys.SplitSpeed
	vy := parent.VerticalVelocity
	origin := mgl64.Vec3{parent.Position.X(), parent.Position.Y(), parent.Position.Z()}

	half := func(h Half, hv, vv, spin float64) *Object {
		o := &Object{
			Kind: parent.Kind,
			Path: Trajectory{
				Origin:     origin,
				Horizontal: hv,
				Vertical:   vv,
				Gravity:    phys.SplitGravity,
			},
			Start:        now,
			End:          parent.End,
			Half:         h,
			Spin:         spin,
			BaseRotation: parent.Rotation,
			SpinRate:     phys.DebrisSpinRate,
		}
		o.Update(now)
		return o
	}

	return [2]*Object{
		half(HalfLeft, -k, d*vy, r),
		half(HalfRight, k, -d*vy, -r),
	}
}
