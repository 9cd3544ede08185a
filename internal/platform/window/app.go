// Package window runs a game in a desktop window with Ebitengine.
// Pointer presses come from the mouse in pixels and are mapped to the same
// normalized device coordinates the terminal frontend produces.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fruit-gravity/internal/audio"
	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit/sim"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
	"github.com/vovakirdan/fruit-gravity/internal/settings"
	"github.com/vovakirdan/fruit-gravity/internal/storage"
)

var background = color.RGBA{R: 24, G: 20, B: 28, A: 255}

// Scene is a game that exposes its simulation for drawing.
type Scene interface {
	registry.Game
	registry.Resizer
	Controller() *sim.Controller
}

// Options configures an App. Every field is optional.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Settings *settings.Manager
	Player   *audio.Player
	Width    int
	Height   int
	TickRate int
	Seed     int64
}

// App adapts a Scene to ebiten.Game.
type App struct {
	scene   Scene
	store   *storage.Store
	logger  *log.Logger
	prefs   *settings.Manager
	player  *audio.Player
	runtime core.RuntimeConfig

	frame core.InputFrame
	state core.GameState
	saved bool
}

// NewApp creates an App and resets the scene for the initial surface.
func NewApp(scene Scene, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.TickRate <= 0 {
		opts.TickRate = ebiten.DefaultTPS
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	a := &App{
		scene:  scene,
		store:  opts.Store,
		logger: opts.Logger,
		prefs:  opts.Settings,
		player: opts.Player,
		runtime: core.RuntimeConfig{
			ScreenW:   opts.Width,
			ScreenH:   opts.Height,
			TickRate:  opts.TickRate,
			Seed:      opts.Seed,
			CellRatio: 1,
		},
		frame: core.NewInputFrame(),
	}
	scene.Reset(a.runtime)
	a.state = scene.State()
	return a
}

// Update reads input and advances the game by one tick.
func (a *App) Update() error {
	if quit := a.readInput(); quit {
		return ebiten.Termination
	}

	result := a.scene.Step(a.frame)
	a.frame.Clear()
	a.state = result.State

	if !a.state.GameOver {
		a.saved = false
	}
	if a.state.GameOver && !a.saved {
		a.saveRun()
		a.saved = true
	}
	return nil
}

// readInput fills the frame for this tick. It reports whether to quit.
func (a *App) readInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Esc pauses a running game and leaves a stopped one.
		if !a.state.Started || a.state.GameOver || a.state.Paused {
			return true
		}
		a.frame.Set(core.ActionPause)
	}

	keys := []struct {
		key    ebiten.Key
		action core.Action
	}{
		{ebiten.KeyEnter, core.ActionConfirm},
		{ebiten.KeySpace, core.ActionJump},
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyR, core.ActionRestart},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			a.frame.Set(k.action)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		a.toggleFullscreen()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.toggleSound()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if InSurface(x, y, a.runtime.ScreenW, a.runtime.ScreenH) {
			a.frame.Point(PixelToNDC(x, y, a.runtime.ScreenW, a.runtime.ScreenH))
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if InSurface(x, y, a.runtime.ScreenW, a.runtime.ScreenH) {
			a.frame.Point(PixelToNDC(x, y, a.runtime.ScreenW, a.runtime.ScreenH))
		}
	}
	return false
}

func (a *App) toggleFullscreen() {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	if a.prefs != nil {
		a.prefs.Update(func(s *settings.Settings) { s.Fullscreen = on })
	}
}

func (a *App) toggleSound() {
	if a.prefs == nil {
		return
	}
	s := a.prefs.Update(func(s *settings.Settings) {
		on := !(s.SoundEnabled || s.MusicEnabled)
		s.SoundEnabled, s.MusicEnabled = on, on
	})
	if a.player != nil {
		a.player.SetConfig(s.Audio())
	}
}

// saveRun records the finished run once. Storage errors never stop the game.
func (a *App) saveRun() {
	if a.store == nil || a.state.Score <= 0 {
		return
	}
	var err error
	if rr, ok := a.scene.(registry.RunReporter); ok {
		_, err = a.store.SaveRun(a.scene.ID(), rr.RunStats())
	} else {
		_, err = a.store.SaveScore(a.scene.ID(), a.state.Score)
	}
	if err != nil {
		a.logger.Warn("could not save run", "game", a.scene.ID(), "error", err)
		return
	}
	a.logger.Debug("run saved", "game", a.scene.ID(), "score", a.state.Score)
}

// Draw renders the scene and the overlays.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	ctrl := a.scene.Controller()
	if ctrl == nil {
		return
	}
	ctrl.Render(NewVectorRenderer(screen, ctrl.Camera()))

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", a.state.Score), 12, 10)

	var title, hint string
	switch {
	case !a.state.Started:
		title, hint = a.scene.Title(), "Click, Enter or Space to start"
	case a.state.Paused:
		title, hint = "PAUSED", "Press P to resume, Esc to leave"
	case a.state.GameOver:
		title, hint = "GAME OVER", fmt.Sprintf("Score: %d  -  Click or R to restart", a.state.Score)
	default:
		return
	}
	w, h := a.runtime.ScreenW, a.runtime.ScreenH
	ebitenutil.DebugPrintAt(screen, title, w/2-len(title)*3, h/2-20)
	ebitenutil.DebugPrintAt(screen, hint, w/2-len(hint)*3, h/2)
}

// Layout follows the window size; the scene's camera adapts in place.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.runtime.ScreenW || outsideHeight != a.runtime.ScreenH) {
		a.runtime.ScreenW, a.runtime.ScreenH = outsideWidth, outsideHeight
		a.scene.Resize(a.runtime)
	}
	return a.runtime.ScreenW, a.runtime.ScreenH
}

// State returns the game state as of the last tick.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed.
func Run(a *App, fullscreen bool) error {
	ebiten.SetWindowSize(a.runtime.ScreenW, a.runtime.ScreenH)
	ebiten.SetWindowTitle(a.scene.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(fullscreen)
	ebiten.SetTPS(a.runtime.TickRate)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
