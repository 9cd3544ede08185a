package sim

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
)

type recordedEffects struct {
	played    []Sound
	stopped   []Sound
	score     int
	over      bool
	overCalls int
}

func (r *recordedEffects) PlaySound(s Sound) { r.played = append(r.played, s) }
func (r *recordedEffects) StopSound(s Sound) { r.stopped = append(r.stopped, s) }
func (r *recordedEffects) SetScore(v int) { r.score = v }
func (r *recordedEffects) SetGameOver(over bool) {
	r.over = over
	r.overCalls++
}

func (r *recordedEffects) count(s Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

type recordedRenderer struct {
	calls   []DrawCall
	borders []Border
}

func (r *recordedRenderer) DrawObject(c DrawCall) { r.calls = append(r.calls, c) }
func (r *recordedRenderer) DrawBorder(b Border) { r.borders = append(r.borders, b) }

func newTestController(t *testing.T, fx Effects) *Controller {
	t.Helper()
	c, err := NewController(config.DefaultFruitConfig(),
		WithRand(rand.New(rand.NewSource(42))),
		WithEffects(fx),
	)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

// place appends a motionless object at pos and returns the NDC that points at it.
func place(t *testing.T, c *Controller, kind Kind, pos mgl64.Vec3) mgl64.Vec2 {
	t.Helper()
	path := Trajectory{Origin: pos}
	obj := NewLaunch(kind, path, c.Now(), c.lifetime, c.cfg.Physics.SpinRate)
	c.nextID++
	obj.ID = c.nextID
	c.active.Append(obj)
	ndc, ok := c.Camera().Project(pos)
	if !ok {
		t.Fatalf("Project(%v) not visible", pos)
	}
	return ndc
}

func TestNewControllerRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFruitConfig()
	cfg.Physics.Gravity = 0

	c, err := NewController(cfg)
	if err == nil {
		t.Fatal("NewController(gravity 0) error = nil, expected error")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewController() error = %v, expected ErrInvalid", err)
	}
	if c != nil {
		t.Error("NewController() should return nil on error")
	}
}

func TestControllerHitTesterFromConfig(t *testing.T) {
	c, err := NewController(config.DefaultClassicConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.hit.(RayHitTester); !ok {
		t.Errorf("classic hit tester = %T, expected RayHitTester", c.hit)
	}
	c = newTestController(t, nil)
	if _, ok := c.hit.(DistanceHitTester); !ok {
		t.Errorf("default hit tester = %T, expected DistanceHitTester", c.hit)
	}
}

func TestControllerStart(t *testing.T) {
	fx := &recordedEffects{}
	c := newTestController(t, fx)

	if c.Status() != StatusNotStarted {
		t.Fatalf("Status() = %v, expected %v", c.Status(), StatusNotStarted)
	}
	if hits := c.PointerDown(mgl64.Vec2{0, 0}); hits != 0 {
		t.Errorf("PointerDown before start = %d, expected 0", hits)
	}
	c.Tick(time.Second)
	if len(c.Active()) != 0 {
		t.Error("Tick before start should not spawn")
	}

	c.Start(0)
	if c.Status() != StatusPlaying {
		t.Errorf("Status() after Start = %v, expected %v", c.Status(), StatusPlaying)
	}
	if fx.count(SoundMusic) != 1 {
		t.Errorf("music played %d times, expected 1", fx.count(SoundMusic))
	}
	if fx.over {
		t.Error("SetGameOver(false) expected on start")
	}

	c.Tick(0)
	if len(c.Active()) != 1 {
		t.Errorf("Active() after first tick = %d, expected 1", len(c.Active()))
	}
	if c.Stats().Launched != 1 {
		t.Errorf("Stats().Launched = %d, expected 1", c.Stats().Launched)
	}
}

func TestControllerCut(t *testing.T) {
	fx := &recordedEffects{}
	c := newTestController(t, fx)
	c.Start(0)

	ndc := place(t, c, "apple", mgl64.Vec3{-5, 12, 0})
	place(t, c, "mango", mgl64.Vec3{15, 3, 0})

	if hits := c.PointerDown(ndc); hits != 1 {
		t.Fatalf("PointerDown() = %d, expected 1", hits)
	}
	if c.Score() != 1 || fx.score != 1 {
		t.Errorf("score = %d (display %d), expected 1", c.Score(), fx.score)
	}
	if fx.count(SoundCut) != 1 {
		t.Errorf("cut sound played %d times, expected 1", fx.count(SoundCut))
	}
	if len(c.Active()) != 1 || c.Active()[0].Kind != "mango" {
		t.Errorf("Active() = %d objects, expected only the mango", len(c.Active()))
	}
	debris := c.Debris()
	if len(debris) != 2 {
		t.Fatalf("Debris() = %d, expected 2", len(debris))
	}
	if debris[0].Kind != "apple" || debris[0].Half != HalfLeft || debris[1].Half != HalfRight {
		t.Errorf("debris = %v/%v %v", debris[0].Kind, debris[0].Half, debris[1].Half)
	}
	if debris[0].ID == debris[1].ID {
		t.Error("debris halves share an ID")
	}
}

func TestControllerSimultaneousHits(t *testing.T) {
	c := newTestController(t, nil)
	c.Start(0)

	ndc := place(t, c, "apple", mgl64.Vec3{0, 10, 0})
	place(t, c, "peach", mgl64.Vec3{0.5, 10, 0})
	place(t, c, "orange", mgl64.Vec3{0, 10.5, 0})

	if hits := c.PointerDown(ndc); hits != 3 {
		t.Errorf("PointerDown() = %d, expected 3", hits)
	}
	if c.Score() != 3 {
		t.Errorf("Score() = %d, expected 3", c.Score())
	}
	if len(c.Active()) != 0 || len(c.Debris()) != 6 {
		t.Errorf("active %d debris %d, expected 0 and 6", len(c.Active()), len(c.Debris()))
	}
}

func TestControllerHazardEndsGame(t *testing.T) {
	fx := &recordedEffects{}
	c := newTestController(t, fx)
	c.Start(0)
	c.Tick(100 * time.Millisecond)

	ndc := place(t, c, "bomb", mgl64.Vec3{8, 6, 0})
	before := len(c.Debris())

	if hits := c.PointerDown(ndc); hits != 1 {
		t.Fatalf("PointerDown() = %d, expected 1", hits)
	}
	if c.Status() != StatusGameOver {
		t.Fatalf("Status() = %v, expected %v", c.Status(), StatusGameOver)
	}
	if fx.count(SoundExplosion) != 1 {
		t.Errorf("explosion played %d times, expected 1", fx.count(SoundExplosion))
	}
	if len(fx.stopped) != 1 || fx.stopped[0] != SoundMusic {
		t.Errorf("stopped = %v, expected [music]", fx.stopped)
	}
	if !fx.over {
		t.Error("SetGameOver(true) expected")
	}
	if len(c.Debris()) != before {
		t.Error("a hazard must not split")
	}
	for _, o := range c.Active() {
		if o.Kind == "bomb" {
			t.Error("hit bomb still active")
		}
	}

	// Irreversible without Start.
	c.Tick(10 * time.Second)
	if c.Status() != StatusGameOver {
		t.Error("Tick left GAME_OVER")
	}
	if hits := c.PointerDown(mgl64.Vec2{0, 0}); hits != 0 {
		t.Errorf("PointerDown after game over = %d, expected 0", hits)
	}
}

func TestControllerScoreKeptUntilRestart(t *testing.T) {
	fx := &recordedEffects{}
	c := newTestController(t, fx)
	c.Start(0)

	c.PointerDown(place(t, c, "apple", mgl64.Vec3{-10, 10, 0}))
	c.PointerDown(place(t, c, "peach", mgl64.Vec3{10, 10, 0}))
	c.PointerDown(place(t, c, "bomb", mgl64.Vec3{0, 4, 0}))

	if c.Status() != StatusGameOver || c.Score() != 2 {
		t.Fatalf("after bomb: status %v score %d, expected game over with 2", c.Status(), c.Score())
	}

	c.Start(20 * time.Second)
	if c.Score() != 0 || fx.score != 0 {
		t.Errorf("Score() after restart = %d (display %d), expected 0", c.Score(), fx.score)
	}
	if c.Status() != StatusPlaying || len(c.Active()) != 0 || len(c.Debris()) != 0 {
		t.Error("restart should clear both stores and resume playing")
	}
	if c.Stats() != (Stats{}) {
		t.Errorf("Stats() after restart = %+v, expected zero", c.Stats())
	}
}

func TestControllerExpiry(t *testing.T) {
	c := newTestController(t, nil)
	c.Start(0)

	place(t, c, "apple", mgl64.Vec3{0, 10, 0})
	place(t, c, "bomb", mgl64.Vec3{5, 10, 0})

	c.Tick(5 * time.Second)
	found := 0
	for _, o := range c.Active() {
		if o.Start == 0 {
			found++
		}
	}
	if found < 2 {
		t.Fatalf("objects removed at their end time, found %d", found)
	}

	c.Tick(5*time.Second + time.Millisecond)
	for _, o := range c.Active() {
		if o.Expired(c.Now()) {
			t.Errorf("expired object %d still active", o.ID)
		}
	}
	stats := c.Stats()
	if stats.HazardsDodged < 1 || stats.Missed < 1 {
		t.Errorf("Stats() = %+v, expected a missed fruit and a dodged hazard", stats)
	}
}

func TestControllerDebrisExpireWithParent(t *testing.T) {
	c := newTestController(t, nil)
	c.Start(0)

	ndc := place(t, c, "apple", mgl64.Vec3{0, 10, 0})
	c.Tick(2 * time.Second)
	// The placed apple is motionless, so the NDC still points at it.
	c.PointerDown(ndc)

	if len(c.Debris()) != 2 {
		t.Fatalf("Debris() = %d, expected 2", len(c.Debris()))
	}
	end := c.Debris()[0].End
	if end != 5*time.Second {
		t.Errorf("debris End = %v, expected parent end 5s", end)
	}

	c.Tick(end)
	if len(c.Debris()) != 2 {
		t.Errorf("debris removed at their end time")
	}
	c.Tick(end + time.Millisecond)
	if len(c.Debris()) != 0 {
		t.Errorf("Debris() after end = %d, expected 0", len(c.Debris()))
	}
}

func TestControllerRender(t *testing.T) {
	c := newTestController(t, nil)
	c.Start(0)

	ndc := place(t, c, "watermelon", mgl64.Vec3{0, 10, 0})
	place(t, c, "apple", mgl64.Vec3{-15, 10, 0})
	c.PointerDown(ndc)

	r := &recordedRenderer{}
	c.Render(r)

	if len(r.calls) != 3 {
		t.Fatalf("draw calls = %d, expected 3", len(r.calls))
	}
	if r.calls[0].Kind != "apple" || r.calls[0].Half != Whole {
		t.Errorf("first call = %v %v, expected whole apple", r.calls[0].Kind, r.calls[0].Half)
	}
	for _, call := range r.calls[1:] {
		if call.Kind != "watermelon" || call.Half == Whole {
			t.Errorf("debris call = %v %v", call.Kind, call.Half)
		}
		if call.Scale != (mgl64.Vec3{1, 2.5, 2}) {
			t.Errorf("debris scale = %v, expected (1, 2.5, 2)", call.Scale)
		}
		if call.Axis != SpinAxis {
			t.Errorf("axis = %v, expected %v", call.Axis, SpinAxis)
		}
	}

	if len(r.borders) != 1 {
		t.Fatalf("borders = %d, expected 1", len(r.borders))
	}
	b := r.borders[0]
	if b.Peak != (Bounds{Left: -10, Right: 10, Bottom: 8, Top: 16}) {
		t.Errorf("peak border = %+v", b.Peak)
	}
	if b.Field != (Bounds{Left: -23, Right: 23, Bottom: -3, Top: 23}) {
		t.Errorf("field border = %+v", b.Field)
	}
}

func TestControllerDeterministic(t *testing.T) {
	run := func() (int, []uint64, []mgl64.Vec3) {
		c := newTestController(t, nil)
		c.Start(0)
		for tick := 0; tick < 60*20; tick++ {
			now := time.Duration(tick) * time.Second / 60
			if tick%7 == 0 {
				c.PointerDown(mgl64.Vec2{float64(tick%11)/5 - 1, float64(tick%13)/6 - 1})
			}
			c.Tick(now)
		}
		var ids []uint64
		var pos []mgl64.Vec3
		for _, o := range c.Active() {
			ids = append(ids, o.ID)
			pos = append(pos, o.Position)
		}
		return c.Score(), ids, pos
	}

	s1, ids1, pos1 := run()
	s2, ids2, pos2 := run()
	if s1 != s2 {
		t.Errorf("scores differ: %d vs %d", s1, s2)
	}
	if !equalIDs(ids1, ids2) {
		t.Errorf("active IDs differ: %v vs %v", ids1, ids2)
	}
	for i := range pos1 {
		if pos1[i] != pos2[i] {
			t.Errorf("position %d differs: %v vs %v", i, pos1[i], pos2[i])
		}
	}
}
