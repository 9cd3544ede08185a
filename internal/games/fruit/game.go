// Package fruit implements Fruit Gravity on the arcade platform.
// Fruit is launched from below the playfield; the player clicks it to cut it
// and score, and clicking a bomb ends the run.
//
// The simulation lives in package sim. This package adapts it to the
// registry.Game interface: it derives session time from the tick counter,
// routes pointer presses, applies difficulty, and draws into a core.Screen.
package fruit

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/config"
	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit/sim"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
)

// Game IDs.
const (
	IDFruit   = "fruit"
	IDClassic = "fruit_classic"
)

// SoundPlayer plays the game's sound effects. Implemented by the audio package.
type SoundPlayer interface {
	Play(s sim.Sound)
	Stop(s sim.Sound)
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var soundPlayer SoundPlayer

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// variants lists the config variant behind each game ID.
var variants = []struct{ id, variant string }{
	{IDFruit, config.VariantFruit},
	{IDClassic, config.VariantClassic},
}

// CheckConfig loads the config file at path for the variant of gameID, or for
// every variant when gameID is empty, and returns the first error. Games
// fall back to the defaults on a bad file, so commands check it up front.
func CheckConfig(path, gameID string) error {
	if path == "" {
		return nil
	}
	for _, v := range variants {
		if gameID != "" && gameID != v.id {
			continue
		}
		if _, err := config.LoadFruit(path, v.variant); err != nil {
			return err
		}
	}
	return nil
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetSoundPlayer routes sound effects of games created afterwards to p.
// nil mutes them.
func SetSoundPlayer(p SoundPlayer) {
	soundPlayer = p
}

// Game implements registry.Game for one Fruit Gravity variant.
type Game struct {
	id      string
	title   string
	variant string

	runtime    core.RuntimeConfig
	cfg        config.FruitConfig
	ctrl       *sim.Controller
	difficulty *config.DifficultyManager
	fx         *display

	preset    config.DifficultyPreset // per-game override of difficultyPreset
	hasPreset bool

	tickCount int  // ticks of session time; frozen while paused or not playing
	paused    bool // whether the run is paused
	lastHits  int  // pointer hits resolved in the last step

	configErr error // load error from the last Reset, if the defaults were used
}

// New creates the full game with five fruit kinds and a bomb.
func New() *Game {
	return &Game{id: IDFruit, title: "Fruit Gravity", variant: config.VariantFruit}
}

// NewClassic creates the simplified variant: one fruit kind, a bomb, box picking.
func NewClassic() *Game {
	return &Game{id: IDClassic, title: "Fruit Gravity Classic", variant: config.VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and builds a fresh controller.
// Resetting after a run has started begins the next run immediately.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	restart := g.ctrl != nil && g.ctrl.Status() != sim.StatusNotStarted
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	cfg, err := config.LoadFruit(configPath, g.variant)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultFor(g.variant)
	}
	preset := difficultyPreset
	if g.hasPreset {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyFruitPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.fx = &display{sound: soundPlayer}

	rng := rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- deterministic game RNG
	g.ctrl, err = sim.NewController(cfg,
		sim.WithRand(rng),
		sim.WithEffects(g.fx),
		sim.WithAspect(runtime.Aspect()),
	)
	if err != nil {
		// A config that passed loading but fails after presets; the defaults always validate.
		g.cfg = config.DefaultFor(g.variant)
		g.ctrl, _ = sim.NewController(g.cfg, sim.WithRand(rng), sim.WithEffects(g.fx), sim.WithAspect(runtime.Aspect()))
	}

	g.tickCount = 0
	g.paused = false
	g.lastHits = 0

	if restart {
		g.start()
	}
}

// ConfigErr returns the error that made the last Reset fall back to the
// default config, or nil.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// SetDifficulty overrides the package-wide preset for this game from the
// next Reset on. An empty or unknown name uses the config file's difficulty.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
	g.hasPreset = true
}

// Resize adapts the camera to a new surface without interrupting the run.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = g.runtime.TickRate
	}
	g.runtime = runtime
	if g.ctrl != nil {
		g.ctrl.SetAspect(runtime.Aspect())
	}
}

// now converts the tick counter to session time.
func (g *Game) now() time.Duration {
	return time.Duration(g.tickCount) * time.Second / time.Duration(g.runtime.TickRate)
}

func (g *Game) start() {
	g.tickCount = 0
	g.paused = false
	g.ctrl.Start(g.now())
}

// Step advances the game by one tick. Pointer presses are resolved against
// the scene as last drawn, before time advances.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		g.Reset(core.DefaultConfig())
	}
	g.lastHits = 0

	switch g.ctrl.Status() {
	case sim.StatusNotStarted:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) || len(in.Pointers) > 0 {
			g.start()
		}
		return core.StepResult{State: g.State()}

	case sim.StatusGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || len(in.Pointers) > 0 {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Pointers {
		g.lastHits += g.ctrl.PointerDown(mgl64.Vec2{p.X, p.Y})
	}

	if g.ctrl.Status() == sim.StatusPlaying {
		g.tickCount++
		g.ctrl.SetPace(g.difficulty.Pace(g.ctrl.Score(), g.tickCount))
		g.ctrl.Tick(g.now())
	}

	return core.StepResult{State: g.State(), Hits: g.lastHits}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	status := g.ctrl.Status()
	return core.GameState{
		Score:    g.ctrl.Score(),
		GameOver: status == sim.StatusGameOver,
		Paused:   g.paused,
		Started:  status != sim.StatusNotStarted,
	}
}

// RunStats reports the current or last run.
func (g *Game) RunStats() core.RunStats {
	if g.ctrl == nil {
		return core.RunStats{}
	}
	s := g.ctrl.Stats()
	return core.RunStats{
		Score:         g.ctrl.Score(),
		Launched:      s.Launched,
		Cut:           s.Cut,
		Missed:        s.Missed,
		HazardsDodged: s.HazardsDodged,
		Duration:      s.Duration,
	}
}

// Controller exposes the simulation for frontends that draw it themselves.
func (g *Game) Controller() *sim.Controller {
	return g.ctrl
}

// Config returns the configuration in use.
func (g *Game) Config() config.FruitConfig {
	return g.cfg
}

// Level returns the current difficulty level in [0, 1].
func (g *Game) Level() float64 {
	if g.ctrl == nil {
		return 0
	}
	return g.difficulty.Level(g.ctrl.Score(), g.tickCount)
}

// Display returns the last values the controller pushed to the score and
// game-over displays.
func (g *Game) Display() (score int, over bool) {
	if g.fx == nil {
		return 0, false
	}
	return g.fx.score, g.fx.over
}

// display is the sim.Effects sink: it records display values and forwards sounds.
type display struct {
	sound SoundPlayer
	score int
	over  bool
}

func (d *display) PlaySound(s sim.Sound) {
	if d.sound != nil {
		d.sound.Play(s)
	}
}

func (d *display) StopSound(s sim.Sound) {
	if d.sound != nil {
		d.sound.Stop(s)
	}
}

func (d *display) SetScore(score int) {
	d.score = score
}

func (d *display) SetGameOver(over bool) {
	d.over = over
}

// Register the game variants with the registry
func init() {
	registry.Register(IDFruit, func() registry.Game {
		return New()
	})
	registry.Register(IDClassic, func() registry.Game {
		return NewClassic()
	})
}
