package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// seqRand returns vals in order, cycling.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *seqRand {
	return &seqRand{vals: []float64{v}}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return a.ApproxEqualThreshold(b, tol)
}
