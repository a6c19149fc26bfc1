package snapmark

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/snapmark/snapmark/internal/raster"
)

// LabelRenderer rasterizes a short text label centered on a point. It is an
// injected collaborator: the engine itself never rasterizes glyphs. The
// label package ships a bitmap-font implementation.
type LabelRenderer interface {
	RenderLabel(dst draw.Image, center image.Point, text string, c color.Color)
}

// RenderOption configures a Render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	labels LabelRenderer
}

// WithLabelRenderer makes sequence markers render their label text through
// the given collaborator instead of the default placeholder dot.
func WithLabelRenderer(r LabelRenderer) RenderOption {
	return func(o *renderOptions) {
		o.labels = r
	}
}

// Render crops the physical window out of src and rasterizes the committed
// annotations onto the crop. origin is the logical minimum of the selection
// and scale the physical/logical ratio; every logical coordinate maps to
// physical = round((logical - origin) * scale), per axis, into the cropped
// buffer's local space.
//
// Render is a pure function: src is read-only, the in-progress entity of ann
// is ignored, and a new pixmap is returned. It is safe to call from another
// goroutine provided ann is frozen (e.g. restored from a Snapshot) for the
// duration of the call. Categories paint back to front in a fixed order -
// highlighters, shapes, polylines, strokes, arrows, markers - so later
// categories always occlude earlier ones regardless of creation order.
// Render never fails: degenerate geometry is skipped and all pixel access is
// bounds-checked.
func Render(src *Pixmap, ann *Annotations, window image.Rectangle, origin Point, scale float64, opts ...RenderOption) *Pixmap {
	var cfg renderOptions
	for _, o := range opts {
		o(&cfg)
	}

	out := src.SubCopy(window)
	cv := raster.New(out.Data(), out.Width(), out.Height())
	m := Mapper{Origin: origin, Scale: scale}

	for _, h := range ann.Highlighters() {
		cv.FillRect(m.PhysicalRect(h.Bounds), rgba(h.Color))
	}
	for _, sh := range ann.Shapes() {
		drawShape(cv, m, sh)
	}
	for _, pl := range ann.Polylines() {
		drawPolyline(cv, m, pl)
	}
	for _, st := range ann.Strokes() {
		drawStroke(cv, m, st)
	}
	for _, ar := range ann.Arrows() {
		drawArrow(cv, m, ar)
	}
	for _, mk := range ann.Markers() {
		drawMarker(cv, out, m, mk, cfg.labels)
	}
	return out
}

// rgba converts the engine color to the rasterizer's color type.
func rgba(c RGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// rasterStyle converts a line style to the rasterizer's step gating.
func rasterStyle(s LineStyle) raster.Style {
	switch s {
	case LineDashed:
		return raster.StyleDashed
	case LineDotted:
		return raster.StyleDotted
	default:
		return raster.StyleSolid
	}
}

// drawSegments connects consecutive points with thick lines, optionally
// closing the last point back to the first.
func drawSegments(cv *raster.Canvas, m Mapper, pts []Point, closed bool, s StrokeSettings) {
	if len(pts) < 2 {
		return
	}
	th := m.ScaleLen(s.Width)
	style := rasterStyle(s.Style)
	col := rgba(s.Color)

	prev := m.ToPhysical(pts[0])
	for _, p := range pts[1:] {
		cur := m.ToPhysical(p)
		cv.ThickLine(prev.X, prev.Y, cur.X, cur.Y, th, style, col)
		prev = cur
	}
	if closed && len(pts) >= 3 {
		first := m.ToPhysical(pts[0])
		cv.ThickLine(prev.X, prev.Y, first.X, first.Y, th, style, col)
	}
}

func drawStroke(cv *raster.Canvas, m Mapper, st Stroke) {
	drawSegments(cv, m, st.Points, false, st.Settings)
}

func drawPolyline(cv *raster.Canvas, m Mapper, pl Polyline) {
	drawSegments(cv, m, pl.Points, pl.Closed, pl.Settings)
}

func drawShape(cv *raster.Canvas, m Mapper, sh Shape) {
	r := m.PhysicalRect(sh.Bounds)
	th := m.ScaleLen(sh.Settings.Width)
	style := rasterStyle(sh.Settings.Style)
	col := rgba(sh.Settings.Color)

	switch sh.Kind {
	case ShapeEllipse:
		cx := (r.Min.X + r.Max.X) / 2
		cy := (r.Min.Y + r.Max.Y) / 2
		rx := float64(r.Dx()) / 2
		ry := float64(r.Dy()) / 2
		if sh.Fill == FillSolid {
			cv.FillEllipse(cx, cy, rx, ry, col)
		} else {
			cv.StrokeEllipse(cx, cy, rx, ry, th, style, col)
		}
	default:
		if sh.Fill == FillSolid {
			cv.FillRect(r, col)
		} else {
			cv.StrokeRect(r, th, style, col)
		}
	}
}

// Arrowhead proportions: the head is a quarter of the shaft, capped at 20
// physical pixels, with a half-width of 60% of its length.
const (
	arrowHeadFraction = 0.25
	arrowHeadMax      = 20.0
	arrowHeadHalfW    = 0.6
)

func drawArrow(cv *raster.Canvas, m Mapper, ar Arrow) {
	start := m.ToPhysical(ar.Start)
	end := m.ToPhysical(ar.End)
	col := rgba(ar.Settings.Color)

	cv.ThickLine(start.X, start.Y, end.X, end.Y,
		m.ScaleLen(ar.Settings.Width), rasterStyle(ar.Settings.Style), col)

	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	shaft := math.Hypot(dx, dy)
	if shaft == 0 {
		return
	}
	headLen := arrowHeadFraction * shaft
	if headLen > arrowHeadMax {
		headLen = arrowHeadMax
	}
	halfW := arrowHeadHalfW * headLen

	ux, uy := dx/shaft, dy/shaft
	// back of the head, headLen behind the tip along the shaft
	bx := float64(end.X) - ux*headLen
	by := float64(end.Y) - uy*headLen
	// perpendicular to the shaft
	px, py := -uy, ux

	tip := end
	left := image.Pt(int(math.Round(bx+px*halfW)), int(math.Round(by+py*halfW)))
	right := image.Pt(int(math.Round(bx-px*halfW)), int(math.Round(by-py*halfW)))
	cv.FillTriangle(tip, left, right, col)
}

func drawMarker(cv *raster.Canvas, dst draw.Image, m Mapper, mk SequenceMarker, labels LabelRenderer) {
	c := m.ToPhysical(mk.Center)
	r := m.ScaleLen(mk.Radius)
	cv.FillDisc(c.X, c.Y, r, rgba(mk.Color))

	if labels != nil {
		labels.RenderLabel(dst, c, mk.Label(), color.White)
		return
	}
	// Placeholder for the numeral glyph: a small white dot.
	inner := r / 3
	if inner < 1 {
		inner = 1
	}
	cv.FillDisc(c.X, c.Y, inner, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
