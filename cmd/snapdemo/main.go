// Command snapdemo runs a scripted capture-annotate-export session to
// demonstrate the snapmark engine without a windowing system.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/snapmark/snapmark"
	"github.com/snapmark/snapmark/capture"
	"github.com/snapmark/snapmark/config"
	"github.com/snapmark/snapmark/export"
	"github.com/snapmark/snapmark/label"
	"github.com/snapmark/snapmark/palette"
)

func main() {
	var (
		output  = flag.String("output", "snapdemo.png", "output file name")
		width   = flag.Int("width", 800, "synthetic frame width (logical px)")
		height  = flag.Int("height", 600, "synthetic frame height (logical px)")
		scale   = flag.Float64("scale", 1.0, "display scale factor")
		grab    = flag.Bool("grab", false, "capture the primary display instead of a synthetic frame")
		shadow  = flag.Bool("shadow", false, "apply a drop shadow on export")
		cfgPath = flag.String("config", "", "optional yaml config file")
		verbose = flag.Bool("v", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		snapmark.SetLogger(slog.Default())
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	var source snapmark.FrameSource
	if *grab {
		source = &capture.Screen{Scale: *scale}
	} else {
		source = &capture.Static{Frame: syntheticFrame(*width, *height, *scale)}
	}

	saved := ""
	outPath := filepath.Join(cfg.OutputDir, *output)
	tb := &demoToolbar{}
	mode, err := snapmark.NewMode(source,
		snapmark.WithToolbar(tb),
		snapmark.WithAction("save", func(ctx snapmark.ActionContext) snapmark.ActionResult {
			r, ok := rectOf(ctx)
			if !ok {
				return snapmark.ActionResult{Status: snapmark.ActionFailure, Message: "no selection"}
			}
			out := snapmark.Render(ctx.Frame, ctx.Annotations, ctx.Selection, r.Min, ctx.Scale,
				snapmark.WithLabelRenderer(label.NewBasic()))
			if err := writeOutput(outPath, out, *shadow, cfg); err != nil {
				return snapmark.ActionResult{Status: snapmark.ActionFailure, Message: err.Error()}
			}
			saved = outPath
			return snapmark.ActionResult{Status: snapmark.ActionExit}
		}),
	)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	frame := mode.Frame()
	w, h := frame.Width, frame.Height

	// Drag a selection covering the middle of the frame.
	mode.Press(snapmark.Pt(w*0.1, h*0.1))
	mode.Move(snapmark.Pt(w*0.5, h*0.5))
	mode.Release(snapmark.Pt(w*0.9, h*0.9))

	annotate(mode.Annotations(), w, h, cfg)

	// Click the toolbar's save button.
	mode.Press(tb.buttonCenter("save"))

	if !mode.ShouldExit() {
		log.Fatal("session did not exit after save")
	}
	if saved != "" {
		log.Printf("saved %s", saved)
	}
}

// annotate replays a drawing session over the selected region.
func annotate(ann *snapmark.Annotations, w, h float64, cfg *config.Config) {
	pen := cfg.StrokeSettings()
	colors := palette.Default()

	ann.BeginHighlight(snapmark.Pt(w*0.15, h*0.15), cfg.Highlight())
	ann.UpdateCursor(snapmark.Pt(w*0.45, h*0.25))
	ann.Finish()

	ann.BeginShape(snapmark.Pt(w*0.2, h*0.3), snapmark.ShapeRectangle, snapmark.FillOutline, pen)
	ann.UpdateCursor(snapmark.Pt(w*0.4, h*0.45))
	ann.Finish()

	ann.BeginShape(snapmark.Pt(w*0.5, h*0.3), snapmark.ShapeEllipse, snapmark.FillSolid,
		pen.WithColor(colors[4].WithAlpha(160)))
	ann.UpdateCursor(snapmark.Pt(w*0.7, h*0.45))
	ann.Finish()

	ann.BeginPolyline(snapmark.Pt(w*0.2, h*0.55), pen.WithStyle(snapmark.LineDashed))
	ann.AddPolylineVertex(snapmark.Pt(w*0.3, h*0.65))
	ann.AddPolylineVertex(snapmark.Pt(w*0.4, h*0.55))
	ann.UpdateCursor(snapmark.Pt(w*0.5, h*0.65))
	ann.Finish()

	ann.BeginStroke(snapmark.Pt(w*0.55, h*0.6), pen.WithColor(colors[3]))
	for i := 1; i <= 10; i++ {
		t := float64(i) / 10
		ann.UpdateCursor(snapmark.Pt(w*(0.55+0.2*t), h*(0.6+0.05*t*t)))
	}
	ann.Finish()

	ann.BeginArrow(snapmark.Pt(w*0.25, h*0.8), pen.WithWidth(pen.Width+1))
	ann.UpdateCursor(snapmark.Pt(w*0.6, h*0.75))
	ann.SnapActiveArrow()
	ann.Finish()

	ann.SetLabelStyle(cfg.LabelStyle())
	radius, markerColor := cfg.Marker()
	for i := 0; i < 3; i++ {
		ann.BeginMarker(snapmark.Pt(w*(0.3+0.15*float64(i)), h*0.2), radius, markerColor)
		ann.Finish()
	}
}

// writeOutput saves the composited pixmap, with an optional drop shadow.
func writeOutput(path string, pm *snapmark.Pixmap, withShadow bool, cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if !withShadow {
		return export.Save(path, pm)
	}
	opts := export.ShadowOptions{
		Radius:  cfg.Shadow.Radius,
		Opacity: cfg.Shadow.Opacity,
		Offset:  image.Pt(4, 4),
	}
	if opts.Radius == 0 {
		opts.Radius = 12
	}
	if opts.Opacity == 0 {
		opts.Opacity = 0.4
	}
	shadowed := export.Shadow(pm.ToImage(), opts)
	return export.Save(path, snapmark.FromImage(shadowed))
}

func rectOf(ctx snapmark.ActionContext) (snapmark.Rect, bool) {
	r := ctx.SelectionLogical
	if r.Width() == 0 || r.Height() == 0 {
		return snapmark.Rect{}, false
	}
	return r, true
}

// syntheticFrame builds a gradient background to annotate when no screen
// capture is wanted.
func syntheticFrame(width, height int, scale float64) snapmark.Frame {
	if scale <= 0 {
		scale = 1
	}
	pw := int(float64(width) * scale)
	ph := int(float64(height) * scale)
	pm := snapmark.NewPixmap(pw, ph)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			t := float64(y) / float64(ph)
			pm.SetPixel(x, y, snapmark.RGBA{
				R: uint8(30 + 60*t),
				G: uint8(45 + 80*t),
				B: uint8(80 + 100*t),
				A: 255,
			})
		}
	}
	return snapmark.Frame{
		Pixmap: pm,
		Width:  float64(width),
		Height: float64(height),
		Scale:  scale,
	}
}

// demoToolbar is a minimal hit-testable toolbar: a row of fixed-size
// buttons just below the finalized selection.
type demoToolbar struct {
	bound   bool
	origin  snapmark.Point
	actions []string
}

const (
	buttonW = 60.0
	buttonH = 24.0
)

func (t *demoToolbar) Show(sel snapmark.Rect) {
	t.bound = true
	t.origin = snapmark.Pt(sel.Min.X, sel.Max.Y+8)
	t.actions = []string{"save", "cancel"}
}

func (t *demoToolbar) Hide() {
	t.bound = false
}

func (t *demoToolbar) Contains(pos snapmark.Point) bool {
	if !t.bound {
		return false
	}
	w := buttonW * float64(len(t.actions))
	return pos.X >= t.origin.X && pos.X < t.origin.X+w &&
		pos.Y >= t.origin.Y && pos.Y < t.origin.Y+buttonH
}

func (t *demoToolbar) ActionAt(pos snapmark.Point) (string, bool) {
	if !t.Contains(pos) {
		return "", false
	}
	i := int((pos.X - t.origin.X) / buttonW)
	if i < 0 || i >= len(t.actions) {
		return "", false
	}
	return t.actions[i], true
}

func (t *demoToolbar) buttonCenter(id string) snapmark.Point {
	for i, a := range t.actions {
		if a == id {
			return snapmark.Pt(t.origin.X+buttonW*(float64(i)+0.5), t.origin.Y+buttonH/2)
		}
	}
	return snapmark.Point{}
}
