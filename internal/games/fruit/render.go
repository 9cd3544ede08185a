package fruit

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit/sim"
)

// Visual characters for rendering
const (
	FillChar      = '█'
	LeftHalfChar  = '◐'
	RightHalfChar = '◑'
	DefaultGlyph  = '●'
	BorderDot     = '·'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		rt := g.runtime
		rt.ScreenW, rt.ScreenH = dst.Width(), dst.Height()
		g.Resize(rt)
	}

	g.ctrl.Render(NewScreenRenderer(dst, g.ctrl.Camera()))
	g.drawHUD(dst)

	switch {
	case g.ctrl.Status() == sim.StatusNotStarted:
		g.drawCenteredMessage(dst, g.title, "Click, Enter or Space to start")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.ctrl.Status() == sim.StatusGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Click or R to restart", g.ctrl.Score()))
	}
}

// drawHUD draws the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	score, _ := g.Display()
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", score), core.ColorBrightWhite)

	if g.difficulty != nil && g.difficulty.IsEnabled() {
		level := fmt.Sprintf(" Level: %d%% ", int(math.Round(g.Level()*100)))
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(level)-2, 0, level, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	// Calculate box dimensions
	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}

// ScreenRenderer draws the scene into a character grid by projecting world
// positions through the camera. Objects become filled ellipses the size of
// their projected scale; debris are drawn as the matching half.
type ScreenRenderer struct {
	dst *core.Screen
	cam *sim.Camera
}

// NewScreenRenderer creates a renderer for dst seen through cam.
func NewScreenRenderer(dst *core.Screen, cam *sim.Camera) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, cam: cam}
}

// cell projects a world point to fractional cell coordinates.
func (r *ScreenRenderer) cell(p mgl64.Vec3) (float64, float64, bool) {
	ndc, ok := r.cam.Project(p)
	if !ok {
		return 0, 0, false
	}
	w, h := float64(r.dst.Width()), float64(r.dst.Height())
	return (ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h, true
}

// Cell returns the cell containing the projection of p.
func (r *ScreenRenderer) Cell(p mgl64.Vec3) (int, int, bool) {
	ndc, ok := r.cam.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y := core.NDCToCell(core.Pointer{X: ndc.X(), Y: ndc.Y()}, r.dst.Width(), r.dst.Height())
	return x, y, true
}

// DrawObject draws one whole object or half.
func (r *ScreenRenderer) DrawObject(call sim.DrawCall) {
	cx, cy, ok := r.cell(call.Position)
	if !ok {
		return
	}
	ex, _, _ := r.cell(call.Position.Add(mgl64.Vec3{call.Scale.X(), 0, 0}))
	_, ey, _ := r.cell(call.Position.Add(mgl64.Vec3{0, call.Scale.Y(), 0}))
	rx := math.Abs(ex - cx)
	ry := math.Abs(ey - cy)

	color, ok := core.ParseColor(call.Spec.Color)
	if !ok {
		color = core.ColorDefault
	}

	fill := FillChar
	if call.Spec.Hazard {
		fill = glyphOf(call.Spec.Glyph)
	}

	x0, x1 := int(math.Floor(cx-rx)), int(math.Floor(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Floor(cy+ry))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			if rx > 0 && ry > 0 {
				dx, dy := (px-cx)/rx, (py-cy)/ry
				if dx*dx+dy*dy > 1 {
					continue
				}
			}
			if call.Half == sim.HalfLeft && px > cx {
				continue
			}
			if call.Half == sim.HalfRight && px < cx {
				continue
			}
			r.dst.SetColored(x, y, fill, color)
		}
	}

	// The center cell always shows the kind's glyph.
	glyph := glyphOf(call.Spec.Glyph)
	switch call.Half {
	case sim.HalfLeft:
		glyph = LeftHalfChar
	case sim.HalfRight:
		glyph = RightHalfChar
	}
	r.dst.SetColored(int(math.Floor(cx)), int(math.Floor(cy)), glyph, color)
}

// DrawBorder draws the apex target rectangle as a dotted outline.
func (r *ScreenRenderer) DrawBorder(b sim.Border) {
	x0, y0, ok0 := r.Cell(mgl64.Vec3{b.Peak.Left, b.Peak.Top, b.Depth})
	x1, y1, ok1 := r.Cell(mgl64.Vec3{b.Peak.Right, b.Peak.Bottom, b.Depth})
	if !ok0 || !ok1 {
		return
	}
	rect := core.RectFromCorners(x0, y0, x1, y1)
	for x := rect.X; x < rect.Right(); x++ {
		r.dot(x, rect.Y)
		r.dot(x, rect.Bottom()-1)
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		r.dot(rect.X, y)
		r.dot(rect.Right()-1, y)
	}
}

// dot marks a border cell without covering objects.
func (r *ScreenRenderer) dot(x, y int) {
	if r.dst.Get(x, y) == ' ' {
		r.dst.SetColored(x, y, BorderDot, core.ColorGray)
	}
}

func glyphOf(s string) rune {
	if s == "" {
		return DefaultGlyph
	}
	g, _ := utf8.DecodeRuneInString(s)
	return g
}
