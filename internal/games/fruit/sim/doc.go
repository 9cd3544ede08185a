// Package sim is the Fruit Gravity simulation core: closed-form projectile
// kinematics, the wave/rest spawn scheduler, the active and debris object
// stores, pointer unprojection and hit testing, and the game state controller.
//
// The package has no terminal, audio or window dependencies. Time is a
// session-relative time.Duration supplied by the caller, randomness comes from
// an injected Rand, and side effects leave through the Renderer and Effects
// interfaces.
package sim

// Rand is the random source used for spawns and splits.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// pickWeighted returns the index selected by u in [0, 1) over weights.
// Entries with zero weight are never selected.
func pickWeighted(weights []float64, total, u float64) int {
	roll := u * total
	cum := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		last = i
		if roll < cum {
			return i
		}
	}
	return last
}

func sumWeights(weights []float64) float64 {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	return total
}

// sign draws -1 or +1 with equal probability.
func sign(r Rand) float64 {
	if int(r.Float64()*2) == 0 {
		return -1
	}
	return 1
}
