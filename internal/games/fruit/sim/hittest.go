package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HitTester decides whether a pick ray strikes an object.
type HitTester interface {
	Hit(ray Ray, obj *Object, spec KindSpec) bool
}

// DistanceHitTester intersects the ray with the playfield plane and compares
// the planar distance to the object against the kind's hit radius.
// A point exactly on the radius is a hit.
type DistanceHitTester struct {
	Depth float64
}

func (h DistanceHitTester) Hit(ray Ray, obj *Object, spec KindSpec) bool {
	p := ray.AtDepth(h.Depth)
	dx := obj.Position.X() - p.X()
	dy := obj.Position.Y() - p.Y()
	return math.Hypot(dx, dy) <= spec.HitRadius
}

// RayHitTester casts the full ray against the object's oriented box: the unit
// cube [-1, 1]³ under its translation, rotation and kind scale.
type RayHitTester struct{}

func (RayHitTester) Hit(ray Ray, obj *Object, spec KindSpec) bool {
	model := ModelMatrix(obj, spec)
	inv := model.Inv()
	o := inv.Mul4x1(ray.Near.Vec4(1)).Vec3()
	f := inv.Mul4x1(ray.Far.Vec4(1)).Vec3()
	return segmentHitsUnitBox(o, f.Sub(o))
}

// ModelMatrix returns the object-to-world transform used for drawing and picking.
func ModelMatrix(obj *Object, spec KindSpec) mgl64.Mat4 {
	scale := objectScale(obj, spec)
	p := obj.Position
	return mgl64.Translate3D(p.X(), p.Y(), p.Z()).
		Mul4(mgl64.HomogRotate3D(obj.Rotation, SpinAxis.Normalize())).
		Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// objectScale returns the kind scale, halved along x for debris.
func objectScale(obj *Object, spec KindSpec) mgl64.Vec3 {
	s := spec.Scale
	if obj.Debris() {
		return mgl64.Vec3{s[0] * DebrisScale[0], s[1] * DebrisScale[1], s[2] * DebrisScale[2]}
	}
	return s
}

// segmentHitsUnitBox runs the slab test for o + t·d, t in [0, 1].
func segmentHitsUnitBox(o, d mgl64.Vec3) bool {
	tmin, tmax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < -1 || o[i] > 1 {
				return false
			}
			continue
		}
		t1 := (-1 - o[i]) / d[i]
		t2 := (1 - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}
