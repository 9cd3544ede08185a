package fruit

import "math"

// Snapshot contains the observable game state for replay comparison.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   uint64
	Score  int
	Status string
	Paused bool
	Phase  string

	// Active objects, 6 values each: ID, X, Y, VY, Rotation, End (ms).
	// Floats are stored as IEEE-754 bits.
	ActiveCount int
	ActiveData  []uint64

	// Debris, 5 values each: ID, X, Y, Half, End (ms).
	DebrisCount int
	DebrisData  []uint64

	Launched int
	Cut      int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{}
	}

	active := g.ctrl.Active()
	activeData := make([]uint64, 0, len(active)*6)
	for _, o := range active {
		activeData = append(activeData,
			o.ID,
			math.Float64bits(o.Position.X()),
			math.Float64bits(o.Position.Y()),
			math.Float64bits(o.VerticalVelocity),
			math.Float64bits(o.Rotation),
			uint64(o.End.Milliseconds()), //#nosec G115 -- session time is never negative
		)
	}

	debris := g.ctrl.Debris()
	debrisData := make([]uint64, 0, len(debris)*5)
	for _, o := range debris {
		debrisData = append(debrisData,
			o.ID,
			math.Float64bits(o.Position.X()),
			math.Float64bits(o.Position.Y()),
			uint64(o.Half),               //#nosec G115 -- small enum
			uint64(o.End.Milliseconds()), //#nosec G115 -- session time is never negative
		)
	}

	stats := g.ctrl.Stats()
	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:       g.ctrl.Score(),
		Status:      g.ctrl.Status().String(),
		Paused:      g.paused,
		Phase:       g.ctrl.Scheduler().Phase().String(),
		ActiveCount: len(active),
		ActiveData:  activeData,
		DebrisCount: len(debris),
		DebrisData:  debrisData,
		Launched:    stats.Launched,
		Cut:         stats.Cut,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActiveCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DebrisCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Launched)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cut)         //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.Status)
	h = h*31 + hashString(snap.Phase)
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.ActiveData {
		h = h*31 + v
	}
	for _, v := range snap.DebrisData {
		h = h*31 + v
	}

	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
