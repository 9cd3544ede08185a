package window

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit/sim"
)

// ellipseSegments is the rim resolution of a full object.
const ellipseSegments = 32

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solid returns a 1x1 white source image for untextured triangles.
func solid() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// VectorRenderer draws the scene into an ebiten image through the camera the
// pointer mapping uses, so what is drawn is what can be hit.
type VectorRenderer struct {
	dst  *ebiten.Image
	cam  *sim.Camera
	w, h int
}

// NewVectorRenderer creates a renderer for dst seen through cam.
func NewVectorRenderer(dst *ebiten.Image, cam *sim.Camera) *VectorRenderer {
	b := dst.Bounds()
	return &VectorRenderer{dst: dst, cam: cam, w: b.Dx(), h: b.Dy()}
}

func (r *VectorRenderer) pixel(p mgl64.Vec3) (float64, float64, bool) {
	ndc, ok := r.cam.Project(p)
	if !ok {
		return 0, 0, false
	}
	x, y := NDCToPixel(core.Pointer{X: ndc.X(), Y: ndc.Y()}, r.w, r.h)
	return x, y, true
}

// DrawObject fills the projected ellipse of an object, or its half for debris.
// A rim marker turns with the object's spin.
func (r *VectorRenderer) DrawObject(call sim.DrawCall) {
	cx, cy, ok := r.pixel(call.Position)
	if !ok {
		return
	}
	ex, _, _ := r.pixel(call.Position.Add(mgl64.Vec3{call.Scale.X(), 0, 0}))
	_, ey, _ := r.pixel(call.Position.Add(mgl64.Vec3{0, call.Scale.Y(), 0}))
	rx, ry := math.Abs(ex-cx), math.Abs(ey-cy)
	if rx < 1 || ry < 1 {
		rx, ry = math.Max(rx, 1), math.Max(ry, 1)
	}

	clr := ColorFor(call.Spec.Color)
	from, to := halfArc(call.Half)
	vs, is := ellipseFan(cx, cy, rx, ry, from, to, ellipseSegments, clr)
	r.dst.DrawTriangles(vs, is, solid(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	if call.Half != sim.Whole {
		// Cut face.
		vector.StrokeLine(r.dst, float32(cx), float32(cy-ry), float32(cx), float32(cy+ry), 2, shade(clr, 0.4), true)
		return
	}

	mx := cx + rx*0.7*math.Cos(call.Rotation)
	my := cy + ry*0.7*math.Sin(call.Rotation)
	marker := shade(clr, 0.5)
	if call.Spec.Hazard {
		marker = palette[core.ColorBrightYellow]
	}
	vector.DrawFilledCircle(r.dst, float32(mx), float32(my), float32(math.Max(2, math.Min(rx, ry)*0.15)), marker, true)
}

// DrawBorder outlines the apex target area.
func (r *VectorRenderer) DrawBorder(b sim.Border) {
	x0, y0, ok0 := r.pixel(mgl64.Vec3{b.Peak.Left, b.Peak.Top, b.Depth})
	x1, y1, ok1 := r.pixel(mgl64.Vec3{b.Peak.Right, b.Peak.Bottom, b.Depth})
	if !ok0 || !ok1 {
		return
	}
	gray := palette[core.ColorGray]
	gray.A = 160
	vector.StrokeRect(r.dst, float32(math.Min(x0, x1)), float32(math.Min(y0, y1)),
		float32(math.Abs(x1-x0)), float32(math.Abs(y1-y0)), 1, gray, false)
}

// halfArc returns the angle range of a whole object or one half.
// Angles are measured in screen space, so cos < 0 is the left side.
func halfArc(h sim.Half) (from, to float64) {
	switch h {
	case sim.HalfLeft:
		return math.Pi / 2, 3 * math.Pi / 2
	case sim.HalfRight:
		return -math.Pi / 2, math.Pi / 2
	}
	return 0, 2 * math.Pi
}

// ellipseFan builds a triangle fan covering the elliptical sector between
// two angles. Vertex 0 is the center.
func ellipseFan(cx, cy, rx, ry, from, to float64, segments int, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	if segments < 1 {
		segments = 1
	}
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	vs := make([]ebiten.Vertex, 0, segments+2)
	is := make([]uint16, 0, segments*3)
	vs = append(vs, vertex(cx, cy))
	for i := 0; i <= segments; i++ {
		a := from + (to-from)*float64(i)/float64(segments)
		vs = append(vs, vertex(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
		if i > 0 {
			is = append(is, 0, uint16(i), uint16(i+1))
		}
	}
	return vs, is
}
