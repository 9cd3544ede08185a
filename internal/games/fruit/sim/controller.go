package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

// Status is the game state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "not_started"
	}
}

// Stats summarizes the current or last run.
type Stats struct {
	Launched      int
	Cut           int
	Missed        int // whole non-hazard objects that expired
	HazardsDodged int // hazards that expired without being hit
	Duration      time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand injects the random source used for spawns and splits.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithEffects sets the sink for sounds and display updates.
func WithEffects(fx Effects) Option {
	return func(c *Controller) { c.fx = fx }
}

// WithHitTester overrides the strategy chosen by the config.
func WithHitTester(h HitTester) Option {
	return func(c *Controller) { c.hit = h }
}

// WithAspect sets the initial width/height ratio of the camera.
func WithAspect(aspect float64) Option {
	return func(c *Controller) { c.aspect = aspect }
}

// Controller owns the game state and both object stores and runs the
// per-frame order of operations.
type Controller struct {
	cfg      config.FruitConfig
	lifetime time.Duration

	kinds  *KindTable
	sched  *Scheduler
	camera *Camera
	hit    HitTester
	rng    Rand
	fx     Effects
	aspect float64

	active *Store
	debris *Store

	status  Status
	score   int
	nextID  uint64
	started time.Duration
	now     time.Duration
	stats   Stats
}

// NewController validates cfg and builds a controller in StatusNotStarted.
func NewController(cfg config.FruitConfig, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	c := &Controller{
		cfg:      cfg,
		lifetime: cfg.Objects.Lifetime(),
		kinds:    NewKindTable(cfg.Objects.Kinds),
		fx:       NopEffects{},
		aspect:   DefaultAspect,
		active:   NewStore(),
		debris:   NewStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1)) //#nosec G404 -- game randomness
	}
	if c.fx == nil {
		c.fx = NopEffects{}
	}
	if c.hit == nil {
		c.hit = hitTesterFor(cfg)
	}

	c.camera = NewCamera(cfg.Camera, c.aspect)
	c.sched = NewScheduler(cfg.Spawn, cfg.Physics, c.kinds, c.rng)
	return c, nil
}

func hitTesterFor(cfg config.FruitConfig) HitTester {
	if cfg.HitTest == config.HitTestRay {
		return RayHitTester{}
	}
	return DistanceHitTester{Depth: cfg.Playfield.Depth}
}

// Start begins a new run at now, from either NOT_STARTED or GAME_OVER.
func (c *Controller) Start(now time.Duration) {
	c.active.Clear()
	c.debris.Clear()
	c.sched.Reset(now)
	c.status = StatusPlaying
	c.score = 0
	c.stats = Stats{}
	c.started = now
	c.now = now

	c.fx.SetScore(0)
	c.fx.SetGameOver(false)
	c.fx.PlaySound(SoundMusic)
}

// Tick advances the simulation to now: spawn, update, then expire.
// It does nothing unless the game is playing.
func (c *Controller) Tick(now time.Duration) {
	if c.status != StatusPlaying {
		return
	}
	c.now = now
	c.stats.Duration = now - c.started

	for _, l := range c.sched.Tick(now) {
		obj := NewLaunch(l.Kind, l.Path, now, c.lifetime, c.cfg.Physics.SpinRate)
		c.nextID++
		obj.ID = c.nextID
		c.active.Append(obj)
		c.stats.Launched++
	}

	c.active.Update(now)
	c.debris.Update(now)

	for _, obj := range c.active.Sweep(now) {
		if c.kinds.IsHazard(obj.Kind) {
			c.stats.HazardsDodged++
		} else {
			c.stats.Missed++
		}
	}
	c.debris.Sweep(now)
}

// PointerDown resolves a pointer press at ndc against every live active
// object and returns the number of objects hit. Ordinary hits score and split;
// a hazard hit ends the game. Presses outside PLAYING are ignored.
func (c *Controller) PointerDown(ndc mgl64.Vec2) int {
	if c.status != StatusPlaying {
		return 0
	}

	ray := c.camera.Unproject(ndc)
	hits := 0
	hazard := false
	for _, obj := range c.active.Objects() {
		if !obj.Alive(c.now) {
			continue
		}
		spec, ok := c.kinds.Spec(obj.Kind)
		if !ok || !c.hit.Hit(ray, obj, spec) {
			continue
		}
		hits++
		c.active.Mark(obj)

		if spec.Hazard {
			c.fx.PlaySound(SoundExplosion)
			hazard = true
			continue
		}

		c.score++
		c.stats.Cut++
		c.fx.PlaySound(SoundCut)
		c.fx.SetScore(c.score)
		for _, half := range Split(obj, c.now, c.cfg.Physics, c.rng) {
			c.nextID++
			half.ID = c.nextID
			c.debris.Append(half)
		}
	}
	c.active.Compact()

	if hazard {
		c.status = StatusGameOver
		c.stats.Duration = c.now - c.started
		c.fx.StopSound(SoundMusic)
		c.fx.SetGameOver(true)
	}
	return hits
}

// Render draws live active objects, then live debris, then the border.
func (c *Controller) Render(r Renderer) {
	for _, obj := range c.active.Objects() {
		if obj.Alive(c.now) {
			r.DrawObject(c.drawCall(obj))
		}
	}
	for _, obj := range c.debris.Objects() {
		if obj.Alive(c.now) {
			r.DrawObject(c.drawCall(obj))
		}
	}
	r.DrawBorder(c.Border())
}

func (c *Controller) drawCall(obj *Object) DrawCall {
	spec, _ := c.kinds.Spec(obj.Kind)
	return DrawCall{
		ID:       obj.ID,
		Kind:     obj.Kind,
		Spec:     spec,
		Position: obj.Position,
		Rotation: obj.Rotation,
		Axis:     SpinAxis,
		Scale:    objectScale(obj, spec),
		Half:     obj.Half,
	}
}

// Border returns the apex target rectangle and the playfield bounds.
func (c *Controller) Border() Border {
	s, pf := c.cfg.Spawn, c.cfg.Playfield
	return Border{
		Peak:  Bounds{Left: s.PeakX.Min, Right: s.PeakX.Max, Bottom: s.PeakY.Min, Top: s.PeakY.Max},
		Field: Bounds{Left: pf.Left, Right: pf.Right, Bottom: pf.Bottom, Top: pf.Top},
		Depth: pf.Depth,
	}
}

// SetAspect updates the camera after a resize.
func (c *Controller) SetAspect(aspect float64) {
	c.camera.SetAspect(aspect)
}

// SetPace forwards a difficulty pace to the scheduler.
func (c *Controller) SetPace(p float64) {
	c.sched.SetPace(p)
}

func (c *Controller) Status() Status { return c.status }
func (c *Controller) Score() int { return c.score }
func (c *Controller) Now() time.Duration { return c.now }
func (c *Controller) Stats() Stats { return c.stats }
func (c *Controller) Camera() *Camera { return c.camera }
func (c *Controller) Kinds() *KindTable { return c.kinds }
func (c *Controller) Scheduler() *Scheduler { return c.sched }

// Active returns the intact objects in launch order.
func (c *Controller) Active() []*Object { return c.active.Objects() }

// Debris returns the cut halves in creation order.
func (c *Controller) Debris() []*Object { return c.debris.Objects() }
