package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// Kind names an object variant, e.g. "watermelon" or "bomb".
type Kind string

// KindSpec is the resolved configuration of one kind.
type KindSpec struct {
	Kind      Kind
	Weight    float64
	Hazard    bool
	HitRadius float64
	Scale     mgl64.Vec3
	Glyph     string
	Color     string
}

// KindTable is the weighted categorical distribution over kinds.
type KindTable struct {
	specs   []KindSpec
	weights []float64
	total   float64
	index   map[Kind]int
}

// NewKindTable builds a table from configured kinds, preserving their order.
func NewKindTable(kinds []config.KindConfig) *KindTable {
	t := &KindTable{
		specs:   make([]KindSpec, 0, len(kinds)),
		weights: make([]float64, 0, len(kinds)),
		index:   make(map[Kind]int, len(kinds)),
	}
	for _, k := range kinds {
		spec := KindSpec{
			Kind:      Kind(k.Name),
			Weight:    k.Weight,
			Hazard:    k.Hazard,
			HitRadius: k.HitRadius,
			Scale:     mgl64.Vec3(k.Scale),
			Glyph:     k.Glyph,
			Color:     k.Color,
		}
		t.index[spec.Kind] = len(t.specs)
		t.specs = append(t.specs, spec)
		t.weights = append(t.weights, k.Weight)
	}
	t.total = sumWeights(t.weights)
	return t
}

// Pick draws one kind.
func (t *KindTable) Pick(r Rand) Kind {
	if len(t.specs) == 0 {
		return ""
	}
	return t.specs[pickWeighted(t.weights, t.total, r.Float64())].Kind
}

// Spec returns the configuration of k.
func (t *KindTable) Spec(k Kind) (KindSpec, bool) {
	i, ok := t.index[k]
	if !ok {
		return KindSpec{}, false
	}
	return t.specs[i], true
}

// Specs returns all kinds in configuration order.
func (t *KindTable) Specs() []KindSpec {
	return t.specs
}

// IsHazard reports whether hitting k ends the game.
func (t *KindTable) IsHazard(k Kind) bool {
	spec, _ := t.Spec(k)
	return spec.Hazard
}

// HitRadius returns the hit radius of k, or 0 for unknown kinds.
func (t *KindTable) HitRadius(k Kind) float64 {
	spec, _ := t.Spec(k)
	return spec.HitRadius
}
