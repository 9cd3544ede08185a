package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// straightRay crosses z=0 at (x, y) perpendicular to the playfield.
func straightRay(x, y float64) Ray {
	return Ray{Near: mgl64.Vec3{x, y, 10}, Far: mgl64.Vec3{x, y, -10}}
}

func TestDistanceHitTesterBoundary(t *testing.T) {
	table := NewKindTable(config.DefaultFruitConfig().Objects.Kinds)
	apple, _ := table.Spec("apple")
	melon, _ := table.Spec("watermelon")

	tests := []struct {
		name     string
		pos      mgl64.Vec3
		spec     KindSpec
		expected bool
	}{
		{"center", mgl64.Vec3{0, 0, 0}, apple, true},
		{"exactly on radius x", mgl64.Vec3{1, 0, 0}, apple, true},
		{"exactly on radius y", mgl64.Vec3{0, -1, 0}, apple, true},
		{"just outside", mgl64.Vec3{1.0000001, 0, 0}, apple, false},
		{"depth ignored", mgl64.Vec3{0.5, 0.5, 7}, apple, true},
		{"larger kind", mgl64.Vec3{2.2, 0, 0}, melon, true},
		{"larger kind outside", mgl64.Vec3{2.3, 0, 0}, melon, false},
	}

	h := DistanceHitTester{}
	for _, tt := range tests {
		obj := &Object{Kind: tt.spec.Kind, Position: tt.pos}
		if got := h.Hit(straightRay(0, 0), obj, tt.spec); got != tt.expected {
			t.Errorf("%s: Hit() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestRayHitTester(t *testing.T) {
	table := NewKindTable(config.DefaultFruitConfig().Objects.Kinds)
	apple, _ := table.Spec("apple")
	melon, _ := table.Spec("watermelon")

	obj := &Object{Position: mgl64.Vec3{0, 10, 0}}
	h := RayHitTester{}

	tests := []struct {
		name     string
		ray      Ray
		spec     KindSpec
		expected bool
	}{
		{"center", straightRay(0, 10), apple, true},
		{"inside box corner", straightRay(0.9, 10.9), apple, true},
		{"outside unit box", straightRay(1.5, 10), apple, false},
		{"inside scaled box", straightRay(1.5, 10), melon, true},
		{"outside scaled box", straightRay(2.5, 10), melon, false},
		{"segment stops short", Ray{Near: mgl64.Vec3{0, 10, 10}, Far: mgl64.Vec3{0, 10, 5}}, apple, false},
	}

	for _, tt := range tests {
		if got := h.Hit(tt.ray, obj, tt.spec); got != tt.expected {
			t.Errorf("%s: Hit() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestRayHitTesterRotated(t *testing.T) {
	spec := KindSpec{Kind: "fruit", HitRadius: 1, Scale: mgl64.Vec3{1, 1, 1}}
	obj := &Object{Position: mgl64.Vec3{0, 0, 0}, Rotation: 0.8}

	if !(RayHitTester{}).Hit(straightRay(0, 0), obj, spec) {
		t.Error("rotated box should still contain its center")
	}
	if (RayHitTester{}).Hit(straightRay(2, 2), obj, spec) {
		t.Error("rotated unit box should not reach (2, 2)")
	}
}

func TestRayHitTesterThroughCamera(t *testing.T) {
	cam := NewCamera(config.DefaultFruitConfig().Camera, DefaultAspect)
	spec := KindSpec{Kind: "fruit", HitRadius: 1, Scale: mgl64.Vec3{1, 1, 1}}
	obj := &Object{Position: mgl64.Vec3{-6, 12, 0}}

	ndc, _ := cam.Project(obj.Position)
	if !(RayHitTester{}).Hit(cam.Unproject(ndc), obj, spec) {
		t.Error("ray through the projected center should hit")
	}
	if (RayHitTester{}).Hit(cam.Unproject(mgl64.Vec2{0.9, -0.9}), obj, spec) {
		t.Error("ray through a far corner should miss")
	}
}
