package sim

import (
	"time"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// Phase is the state of the spawn scheduler.
type Phase int

const (
	PhaseWave Phase = iota // bursts may spawn
	PhaseRest              // nothing spawns
)

func (p Phase) String() string {
	if p == PhaseRest {
		return "rest"
	}
	return "wave"
}

// Launch is one object the scheduler wants spawned.
type Launch struct {
	Kind Kind
	Path Trajectory
}

// Scheduler decides when, how many and along which paths objects launch.
//
// It alternates between a wave, during which bursts of 1 to N objects are
// released at random intervals, and a rest, during which nothing spawns.
// All timers are seconds of session time.
type Scheduler struct {
	cfg     config.FruitSpawn
	launchY float64
	gravity float64
	kinds   *KindTable
	rng     Rand

	phase      Phase
	cycleStart float64
	waveTimer  float64
	restTimer  float64
	burstStart float64
	burstTimer float64
	pending    int

	countTotal float64
	pace       float64
}

// NewScheduler creates a scheduler. Call Reset before the first Tick.
func NewScheduler(spawn config.FruitSpawn, phys config.FruitPhysics, kinds *KindTable, rng Rand) *Scheduler {
	s := &Scheduler{
		cfg:        spawn,
		launchY:    phys.LaunchHeight,
		gravity:    phys.Gravity,
		kinds:      kinds,
		rng:        rng,
		countTotal: sumWeights(spawn.CountWeights),
		pace:       1,
	}
	s.Reset(0)
	return s
}

// Reset puts the scheduler at the start of its first wave at now.
func (s *Scheduler) Reset(now time.Duration) {
	sec := now.Seconds()
	s.phase = PhaseWave
	s.cycleStart = sec
	s.burstStart = sec
	s.waveTimer = s.cfg.FirstWave
	s.restTimer = s.cfg.FirstRest
	s.burstTimer = s.cfg.FirstBurst
	s.pending = 1
}

// SetPace scales rest and burst timers drawn from now on.
// 1 keeps the configured bounds; smaller values spawn more often.
func (s *Scheduler) SetPace(p float64) {
	if p <= 0 {
		p = 1
	}
	s.pace = p
}

// Pace returns the current timer multiplier.
func (s *Scheduler) Pace() float64 {
	return s.pace
}

// Phase returns the current phase.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Timers returns the current wave and rest durations in seconds.
func (s *Scheduler) Timers() (wave, rest float64) {
	return s.waveTimer, s.restTimer
}

// Pending returns the number of launches queued for the current burst.
func (s *Scheduler) Pending() int {
	return s.pending
}

// Tick advances the state machine to now and returns the launches to spawn.
func (s *Scheduler) Tick(now time.Duration) []Launch {
	sec := now.Seconds()
	elapsed := sec - s.cycleStart

	switch s.phase {
	case PhaseWave:
		if elapsed >= 0 && elapsed < s.waveTimer {
			return s.burst(sec)
		}
		s.phase = PhaseRest
	case PhaseRest:
		if elapsed > s.waveTimer+s.restTimer {
			s.phase = PhaseWave
			s.cycleStart = sec
			s.waveTimer = s.cfg.WaveTimer.Lerp(s.rng.Float64())
			s.restTimer = s.cfg.RestTimer.Lerp(s.rng.Float64()) * s.pace
		}
	}
	return nil
}

// burst releases the pending launches inside the burst window, or rolls the
// next burst once its timer is about to run out.
func (s *Scheduler) burst(sec float64) []Launch {
	since := sec - s.burstStart
	window := s.cfg.BurstWindow

	if since < window {
		if s.pending == 0 {
			return nil
		}
		launches := make([]Launch, 0, s.pending)
		for ; s.pending > 0; s.pending-- {
			launches = append(launches, s.launch())
		}
		return launches
	}

	if s.burstTimer-since < window {
		s.pending = pickWeighted(s.cfg.CountWeights, s.countTotal, s.rng.Float64()) + 1
		s.burstStart = sec
		s.burstTimer = s.cfg.BurstTimer.Lerp(s.rng.Float64()) * s.pace
	}
	return nil
}

// launch draws one object's start, apex and kind.
func (s *Scheduler) launch() Launch {
	x0 := s.cfg.SpawnX.Lerp(s.rng.Float64())
	peakX := s.cfg.PeakX.Lerp(s.rng.Float64())
	peakY := s.cfg.PeakY.Lerp(s.rng.Float64())
	return Launch{
		Path: PlanLaunch(x0, s.launchY, peakX, peakY, s.gravity),
		Kind: s.kinds.Pick(s.rng),
	}
}
