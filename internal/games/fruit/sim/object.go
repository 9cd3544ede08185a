package sim

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// SpinAxis is the fixed axis every object rotates around. Renderers normalize it.
var SpinAxis = mgl64.Vec3{0.3, 0.6, 0.2}

// DebrisScale is applied on top of the kind scale when drawing a half.
var DebrisScale = mgl64.Vec3{0.5, 1, 1}

// Half identifies which part of a cut object a debris is.
type Half int

const (
	Whole Half = iota
	HalfLeft
	HalfRight
)

func (h Half) String() string {
	switch h {
	case HalfLeft:
		return "left"
	case HalfRight:
		return "right"
	default:
		return "whole"
	}
}

// Object is a launched object or one half of a cut object.
// Position, VerticalVelocity and Rotation are derived by Update.
type Object struct {
	ID   uint64
	Kind Kind
	Path Trajectory

	Start time.Duration
	End   time.Duration

	Position         mgl64.Vec3
	VerticalVelocity float64
	Rotation         float64

	// Debris only.
	Half         Half
	Spin         float64 // ±1
	BaseRotation float64

	SpinRate float64 // radians over the whole lifetime

	removed bool
}

// NewLaunch creates a whole object starting at now.
func NewLaunch(kind Kind, path Trajectory, now, lifetime time.Duration, spinRate float64) *Object {
	o := &Object{
		Kind:     kind,
		Path:     path,
		Start:    now,
		End:      now + lifetime,
		SpinRate: spinRate,
	}
	o.Update(now)
	return o
}

// Debris reports whether o is half of a cut object.
func (o *Object) Debris() bool {
	return o.Half != Whole
}

// Alive reports whether o is updated and drawn at now.
func (o *Object) Alive(now time.Duration) bool {
	return now >= o.Start && now <= o.End
}

// Expired reports whether o is past its end time.
func (o *Object) Expired(now time.Duration) bool {
	return now > o.End
}

// Progress returns the fraction of the lifetime elapsed at now.
func (o *Object) Progress(now time.Duration) float64 {
	span := o.End - o.Start
	if span <= 0 {
		return 1
	}
	return float64(now-o.Start) / float64(span)
}

// Update recomputes the derived fields at now.
func (o *Object) Update(now time.Duration) {
	t := (now - o.Start).Seconds()
	o.Position = o.Path.Position(t)
	o.VerticalVelocity = o.Path.VerticalVelocityAt(t)

	progress := o.Progress(now)
	if o.Half == Whole {
		o.Rotation = progress * o.SpinRate
	} else {
		o.Rotation = o.Spin*progress*o.SpinRate + o.BaseRotation
	}
}
