package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// DefaultAspect is the width/height ratio used before a frontend reports its size.
const DefaultAspect = 1.8

// Camera holds the view and projection used both to draw and to pick.
type Camera struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4

	cfg      config.FruitCamera
	aspect   float64
	viewProj mgl64.Mat4
	inverse  mgl64.Mat4
}

// NewCamera builds a camera for the given aspect ratio.
func NewCamera(cfg config.FruitCamera, aspect float64) *Camera {
	t := cfg.ViewTranslation
	c := &Camera{
		View: mgl64.Translate3D(t[0], t[1], t[2]),
		cfg:  cfg,
	}
	c.SetAspect(aspect)
	return c
}

// Aspect returns the current width/height ratio.
func (c *Camera) Aspect() float64 {
	return c.aspect
}

// SetAspect rebuilds the projection for a resized surface.
func (c *Camera) SetAspect(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = DefaultAspect
	}
	c.aspect = aspect
	c.Projection = mgl64.Perspective(mgl64.DegToRad(c.cfg.FOVDegrees), aspect, c.cfg.Near, c.cfg.Far)
	c.viewProj = c.Projection.Mul4(c.View)
	c.inverse = c.viewProj.Inv()
}

// Ray is a pick ray between the near and far clip planes.
type Ray struct {
	Near mgl64.Vec3
	Far  mgl64.Vec3
}

// Direction returns Far - Near.
func (r Ray) Direction() mgl64.Vec3 {
	return r.Far.Sub(r.Near)
}

// AtDepth returns the point where the ray crosses the plane z = depth.
// A ray parallel to the plane yields its near point.
func (r Ray) AtDepth(depth float64) mgl64.Vec3 {
	dir := r.Direction()
	if math.Abs(dir.Z()) < 1e-12 {
		return r.Near
	}
	t := (depth - r.Near.Z()) / dir.Z()
	return r.Near.Add(dir.Mul(t))
}

// Unproject maps a point in normalized device coordinates (x right, y up,
// both in [-1, 1] on screen) to the world-space pick ray through it.
// Points off screen are unprojected the same way.
func (c *Camera) Unproject(ndc mgl64.Vec2) Ray {
	return Ray{
		Near: c.unprojectAt(ndc, -1),
		Far:  c.unprojectAt(ndc, 1),
	}
}

func (c *Camera) unprojectAt(ndc mgl64.Vec2, z float64) mgl64.Vec3 {
	p := c.inverse.Mul4x1(mgl64.Vec4{ndc.X(), ndc.Y(), z, 1})
	if p.W() == 0 {
		return p.Vec3()
	}
	return p.Vec3().Mul(1 / p.W())
}

// Project maps a world point to normalized device coordinates. ok is false
// for points behind the camera.
func (c *Camera) Project(world mgl64.Vec3) (mgl64.Vec2, bool) {
	clip := c.viewProj.Mul4x1(world.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}, true
}
