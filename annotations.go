package snapmark

// activeTool is the single in-progress slot of an Annotations container.
// Exactly one tool can be mid-creation at any time; the tagged implementations
// below are the only way to occupy the slot, which makes the "one current
// entity" rule structural rather than documented.
type activeTool interface {
	// update moves the live endpoint of the entity under the cursor.
	update(pos Point)
	// commit appends the entity to its committed list when it meets the
	// size thresholds, and silently discards it otherwise.
	commit(a *Annotations)
}

// Annotations holds the committed annotation entities of a capture session
// plus at most one entity mid-creation. The zero value is not ready for use;
// call NewAnnotations.
type Annotations struct {
	strokes      []Stroke
	polylines    []Polyline
	arrows       []Arrow
	shapes       []Shape
	highlighters []Highlighter
	markers      []SequenceMarker

	active     activeTool
	nextNumber int
	labelStyle LabelStyle
}

// NewAnnotations creates an empty container with the marker counter at 1.
func NewAnnotations() *Annotations {
	return &Annotations{nextNumber: 1}
}

// Committed entity accessors. The returned slices are the container's own
// backing storage; treat them as read-only.

// Strokes returns the committed freehand strokes.
func (a *Annotations) Strokes() []Stroke { return a.strokes }

// Polylines returns the committed polylines.
func (a *Annotations) Polylines() []Polyline { return a.polylines }

// Arrows returns the committed arrows.
func (a *Annotations) Arrows() []Arrow { return a.arrows }

// Shapes returns the committed shapes.
func (a *Annotations) Shapes() []Shape { return a.shapes }

// Highlighters returns the committed highlighters.
func (a *Annotations) Highlighters() []Highlighter { return a.highlighters }

// Markers returns the committed sequence markers.
func (a *Annotations) Markers() []SequenceMarker { return a.markers }

// IsDrawing reports whether any tool is mid-creation. Callers use this to
// gate conflicting input (e.g. starting a new selection drag).
func (a *Annotations) IsDrawing() bool {
	return a.active != nil
}

// UpdateCursor moves the live endpoint of the in-progress entity.
// No-op when no tool is active.
func (a *Annotations) UpdateCursor(pos Point) {
	if a.active != nil {
		a.active.update(pos)
	}
}

// Finish commits the in-progress entity if it meets its size threshold and
// clears the slot. Sub-threshold geometry is silently discarded; this is the
// documented policy, not an error. No-op when no tool is active.
func (a *Annotations) Finish() {
	if a.active == nil {
		return
	}
	t := a.active
	a.active = nil
	t.commit(a)
}

// Discard drops the in-progress entity without committing it.
func (a *Annotations) Discard() {
	a.active = nil
}

// begin installs a new active tool, finishing any previous one first so the
// single-slot invariant holds even for misbehaving callers.
func (a *Annotations) begin(t activeTool) {
	if a.active != nil {
		a.Finish()
	}
	a.active = t
}

// activeStroke accumulates freehand points while the pointer moves.
type activeStroke struct{ s Stroke }

func (t *activeStroke) update(pos Point) { t.s.Points = append(t.s.Points, pos) }

func (t *activeStroke) commit(a *Annotations) {
	if len(t.s.Points) >= minStrokePoints {
		a.strokes = append(a.strokes, t.s)
	}
}

// BeginStroke starts a freehand stroke at pos.
func (a *Annotations) BeginStroke(pos Point, settings StrokeSettings) {
	a.begin(&activeStroke{s: Stroke{Points: []Point{pos}, Settings: settings}})
}

// activePolyline holds straight segments; update moves the floating last
// vertex, AddVertex pins it and floats a new one.
type activePolyline struct{ p Polyline }

func (t *activePolyline) update(pos Point) {
	t.p.Points[len(t.p.Points)-1] = pos
}

func (t *activePolyline) commit(a *Annotations) {
	if len(t.p.Points) >= minStrokePoints {
		a.polylines = append(a.polylines, t.p)
	}
}

// BeginPolyline starts a polyline at pos with a floating second vertex.
func (a *Annotations) BeginPolyline(pos Point, settings StrokeSettings) {
	a.begin(&activePolyline{p: Polyline{Points: []Point{pos, pos}, Settings: settings}})
}

// AddPolylineVertex pins the floating vertex of the active polyline and
// floats a new one at pos. No-op when no polyline is active.
func (a *Annotations) AddPolylineVertex(pos Point) {
	if t, ok := a.active.(*activePolyline); ok {
		t.p.Points[len(t.p.Points)-1] = pos
		t.p.Points = append(t.p.Points, pos)
	}
}

// CloseActivePolyline marks the active polyline as closed, connecting its
// last vertex back to the first when rendered.
func (a *Annotations) CloseActivePolyline() {
	if t, ok := a.active.(*activePolyline); ok {
		t.p.Closed = true
	}
}

type activeArrow struct{ ar Arrow }

func (t *activeArrow) update(pos Point) { t.ar.End = pos }

func (t *activeArrow) commit(a *Annotations) {
	if t.ar.Length() > minArrowLength {
		a.arrows = append(a.arrows, t.ar)
	}
}

// BeginArrow starts an arrow anchored at pos.
func (a *Annotations) BeginArrow(pos Point, settings StrokeSettings) {
	a.begin(&activeArrow{ar: Arrow{Start: pos, End: pos, Settings: settings}})
}

// SnapActiveArrow rounds the active arrow's direction to the nearest
// 45 degree increment, preserving its length. Applied while a modifier key
// is held during the drag.
func (a *Annotations) SnapActiveArrow() {
	if t, ok := a.active.(*activeArrow); ok {
		t.ar = t.ar.SnapAngle()
	}
}

type activeShape struct {
	anchor Point
	sh     Shape
}

func (t *activeShape) update(pos Point) { t.sh.Bounds = RectFromPoints(t.anchor, pos) }

func (t *activeShape) commit(a *Annotations) {
	if t.sh.Bounds.Width() > minShapeExtent && t.sh.Bounds.Height() > minShapeExtent {
		a.shapes = append(a.shapes, t.sh)
	}
}

// BeginShape starts a rectangle or ellipse anchored at pos.
func (a *Annotations) BeginShape(pos Point, kind ShapeKind, fill FillMode, settings StrokeSettings) {
	a.begin(&activeShape{
		anchor: pos,
		sh:     Shape{Bounds: Rect{Min: pos, Max: pos}, Kind: kind, Fill: fill, Settings: settings},
	})
}

type activeHighlight struct {
	anchor Point
	h      Highlighter
}

func (t *activeHighlight) update(pos Point) { t.h.Bounds = RectFromPoints(t.anchor, pos) }

func (t *activeHighlight) commit(a *Annotations) {
	if t.h.Bounds.Width() > minHighlightExtent && t.h.Bounds.Height() > minHighlightExtent {
		a.highlighters = append(a.highlighters, t.h)
	}
}

// BeginHighlight starts a highlighter rectangle anchored at pos.
// The color is expected to be semi-transparent.
func (a *Annotations) BeginHighlight(pos Point, color RGBA) {
	a.begin(&activeHighlight{anchor: pos, h: Highlighter{Bounds: Rect{Min: pos, Max: pos}, Color: color}})
}

type activeMarker struct{ m SequenceMarker }

func (t *activeMarker) update(pos Point) { t.m.Center = pos }

func (t *activeMarker) commit(a *Annotations) {
	a.markers = append(a.markers, t.m)
	a.nextNumber = t.m.Number + 1
}

// BeginMarker places a sequence marker at pos carrying the next number and
// the container's active label style.
func (a *Annotations) BeginMarker(pos Point, radius float64, color RGBA) {
	a.begin(&activeMarker{m: SequenceMarker{
		Center: pos,
		Number: a.nextNumber,
		Radius: radius,
		Color:  color,
		Style:  a.labelStyle,
	}})
}

// NextNumber returns the number the next sequence marker will carry.
func (a *Annotations) NextNumber() int { return a.nextNumber }

// SetNextNumber sets the next marker number, clamping to a minimum of 1.
func (a *Annotations) SetNextNumber(n int) {
	if n < 1 {
		n = 1
	}
	a.nextNumber = n
}

// DecrementNumber decreases the next marker number, saturating at 1.
func (a *Annotations) DecrementNumber() {
	if a.nextNumber > 1 {
		a.nextNumber--
	}
}

// LabelStyle returns the label style applied to new markers.
func (a *Annotations) LabelStyle() LabelStyle { return a.labelStyle }

// SetLabelStyle sets the label style applied to new markers.
func (a *Annotations) SetLabelStyle(s LabelStyle) { a.labelStyle = s }
