package sim

import "github.com/go-gl/mathgl/mgl64"

// Sound identifies a fire-and-forget sound effect.
type Sound string

const (
	SoundCut       Sound = "cut"
	SoundExplosion Sound = "explosion"
	SoundMusic     Sound = "music"
)

// Effects receives the controller's audio and display side effects.
// Nothing is read back.
type Effects interface {
	PlaySound(s Sound)
	StopSound(s Sound)
	SetScore(score int)
	SetGameOver(over bool)
}

// NopEffects discards every effect.
type NopEffects struct{}

func (NopEffects) PlaySound(Sound) {}
func (NopEffects) StopSound(Sound) {}
func (NopEffects) SetScore(int) {}
func (NopEffects) SetGameOver(bool) {}

// DrawCall describes one object to draw.
type DrawCall struct {
	ID       uint64
	Kind     Kind
	Spec     KindSpec
	Position mgl64.Vec3
	Rotation float64
	Axis     mgl64.Vec3
	Scale    mgl64.Vec3
	Half     Half
}

// Bounds is an axis-aligned rectangle in the playfield plane.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// Border is the static playfield decoration: the apex target area and the
// visible field.
type Border struct {
	Peak  Bounds
	Field Bounds
	Depth float64
}

// Renderer draws the scene. Calls arrive in draw order.
type Renderer interface {
	DrawObject(call DrawCall)
	DrawBorder(border Border)
}
