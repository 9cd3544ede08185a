package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

func TestCameraRoundTrip(t *testing.T) {
	for _, aspect := range []float64{1, 1.8, 3.2} {
		cam := NewCamera(config.DefaultFruitConfig().Camera, aspect)

		points := []mgl64.Vec3{
			{0, 10, 0},
			{-10, 8, 0},
			{10, 16, 0},
			{-20, -2, 0},
			{7.5, 21, 0},
		}
		for _, p := range points {
			ndc, ok := cam.Project(p)
			if !ok {
				t.Fatalf("Project(%v) not visible at aspect %v", p, aspect)
			}
			got := cam.Unproject(ndc).AtDepth(0)
			if !approxVec(got, p, 1e-6) {
				t.Errorf("aspect %v: Unproject(Project(%v)) = %v", aspect, p, got)
			}
		}
	}
}

func TestCameraCenterRay(t *testing.T) {
	cam := NewCamera(config.DefaultFruitConfig().Camera, DefaultAspect)
	ray := cam.Unproject(mgl64.Vec2{0, 0})

	// The eye sits at (0, 10, 30) looking down -z.
	if got := ray.AtDepth(0); !approxVec(got, mgl64.Vec3{0, 10, 0}, 1e-9) {
		t.Errorf("center ray at z=0 = %v, expected (0, 10, 0)", got)
	}
	if ray.Near.Z() <= ray.Far.Z() {
		t.Errorf("near %v should be in front of far %v", ray.Near, ray.Far)
	}
	if !approx(ray.Near.Z(), 29) {
		t.Errorf("near plane z = %v, expected 29", ray.Near.Z())
	}
}

func TestCameraOffscreenTolerated(t *testing.T) {
	cam := NewCamera(config.DefaultFruitConfig().Camera, DefaultAspect)
	ray := cam.Unproject(mgl64.Vec2{3, -5})
	p := ray.AtDepth(0)
	if p.X() <= 0 || p.Y() >= 10 {
		t.Errorf("off-screen point = %v, expected right of and below center", p)
	}
}

func TestCameraSetAspect(t *testing.T) {
	cam := NewCamera(config.DefaultFruitConfig().Camera, 0)
	if cam.Aspect() != DefaultAspect {
		t.Errorf("Aspect() = %v, expected default %v", cam.Aspect(), DefaultAspect)
	}

	p := mgl64.Vec3{10, 10, 0}
	wide, _ := cam.Project(p)
	cam.SetAspect(4)
	narrow, _ := cam.Project(p)
	if narrow.X() >= wide.X() {
		t.Errorf("wider aspect should pull x toward center: %v vs %v", narrow.X(), wide.X())
	}
}

func TestRayAtDepthParallel(t *testing.T) {
	r := Ray{Near: mgl64.Vec3{1, 2, 3}, Far: mgl64.Vec3{4, 5, 3}}
	if got := r.AtDepth(0); got != r.Near {
		t.Errorf("AtDepth() on parallel ray = %v, expected near %v", got, r.Near)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(config.DefaultFruitConfig().Camera, DefaultAspect)
	if _, ok := cam.Project(mgl64.Vec3{0, 10, 40}); ok {
		t.Error("Project() of a point behind the eye should not be visible")
	}
}
