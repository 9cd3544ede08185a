package sim

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

func TestSplit(t *testing.T) {
	phys := config.DefaultFruitConfig().Physics
	now := 2 * time.Second

	parent := &Object{
		ID:               7,
		Kind:             "peach",
		Start:            0,
		End:              5 * time.Second,
		Position:         mgl64.Vec3{3, 4, 0},
		VerticalVelocity: 6,
		Rotation:         1.25,
	}

	tests := []struct {
		name     string
		rand     []float64
		vertical [2]float64
		spin     [2]float64
	}{
		{"down-up", []float64{0.2, 0.7}, [2]float64{-6, 6}, [2]float64{1, -1}},
		{"up-down", []float64{0.9, 0.1}, [2]float64{6, -6}, [2]float64{-1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			halves := Split(parent, now, phys, &seqRand{vals: tt.rand})

			for i, h := range halves {
				if h.Half != [2]Half{HalfLeft, HalfRight}[i] {
					t.Errorf("half[%d] = %v", i, h.Half)
				}
				if h.Kind != parent.Kind {
					t.Errorf("half[%d].Kind = %q, expected %q", i, h.Kind, parent.Kind)
				}
				if h.Start != now || h.End != parent.End {
					t.Errorf("half[%d] window = [%v, %v], expected [%v, %v]", i, h.Start, h.End, now, parent.End)
				}
				if h.Path.Origin != parent.Position {
					t.Errorf("half[%d] origin = %v, expected %v", i, h.Path.Origin, parent.Position)
				}
				if h.Position != parent.Position {
					t.Errorf("half[%d] position at split = %v, expected %v", i, h.Position, parent.Position)
				}
				if h.Path.Gravity != phys.SplitGravity {
					t.Errorf("half[%d] gravity = %v, expected %v", i, h.Path.Gravity, phys.SplitGravity)
				}
				if h.Path.Vertical != tt.vertical[i] {
					t.Errorf("half[%d] vertical = %v, expected %v", i, h.Path.Vertical, tt.vertical[i])
				}
				if h.Spin != tt.spin[i] {
					t.Errorf("half[%d] spin = %v, expected %v", i, h.Spin, tt.spin[i])
				}
				if h.BaseRotation != parent.Rotation || h.Rotation != parent.Rotation {
					t.Errorf("half[%d] rotation = %v/%v, expected %v", i, h.BaseRotation, h.Rotation, parent.Rotation)
				}
			}

			if halves[0].Path.Horizontal != -phys.SplitSpeed || halves[1].Path.Horizontal != phys.SplitSpeed {
				t.Errorf("horizontal = %v, %v, expected ∓%v", halves[0].Path.Horizontal, halves[1].Path.Horizontal, phys.SplitSpeed)
			}
			if halves[0].Path.Vertical != -halves[1].Path.Vertical {
				t.Error("vertical velocities are not additive inverses")
			}
		})
	}
}

func TestSplitDeterministic(t *testing.T) {
	phys := config.DefaultFruitConfig().Physics
	parent := NewLaunch("apple", PlanLaunch(0, -10, 4, 12, 25), 0, 5*time.Second, 30)
	parent.Update(700 * time.Millisecond)

	a := Split(parent, 700*time.Millisecond, phys, &seqRand{vals: []float64{0.3, 0.6}})
	b := Split(parent, 700*time.Millisecond, phys, &seqRand{vals: []float64{0.3, 0.6}})
	for i := range a {
		if a[i].Path != b[i].Path || a[i].Spin != b[i].Spin {
			t.Errorf("half[%d] differs: %+v vs %+v", i, a[i].Path, b[i].Path)
		}
	}
}
