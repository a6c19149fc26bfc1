package snapmark

// Snapshot is an immutable copy of the committed annotation state: every
// completed entity list plus the marker counter and label style. An entity
// mid-creation is never part of a snapshot.
type Snapshot struct {
	Strokes      []Stroke
	Polylines    []Polyline
	Arrows       []Arrow
	Shapes       []Shape
	Highlighters []Highlighter
	Markers      []SequenceMarker
	NextNumber   int
	LabelStyle   LabelStyle
}

func cloneStrokes(in []Stroke) []Stroke {
	if in == nil {
		return nil
	}
	out := make([]Stroke, len(in))
	for i, s := range in {
		s.Points = append([]Point(nil), s.Points...)
		out[i] = s
	}
	return out
}

func clonePolylines(in []Polyline) []Polyline {
	if in == nil {
		return nil
	}
	out := make([]Polyline, len(in))
	for i, p := range in {
		p.Points = append([]Point(nil), p.Points...)
		out[i] = p
	}
	return out
}

// Snapshot captures the committed state for undo/redo.
// Point slices are deep-copied so later edits cannot leak into the snapshot.
func (a *Annotations) Snapshot() Snapshot {
	return Snapshot{
		Strokes:      cloneStrokes(a.strokes),
		Polylines:    clonePolylines(a.polylines),
		Arrows:       append([]Arrow(nil), a.arrows...),
		Shapes:       append([]Shape(nil), a.shapes...),
		Highlighters: append([]Highlighter(nil), a.highlighters...),
		Markers:      append([]SequenceMarker(nil), a.markers...),
		NextNumber:   a.nextNumber,
		LabelStyle:   a.labelStyle,
	}
}

// Restore replaces the committed state with the snapshot's and
// unconditionally clears the in-progress slot, even if a tool was active.
func (a *Annotations) Restore(s Snapshot) {
	a.strokes = cloneStrokes(s.Strokes)
	a.polylines = clonePolylines(s.Polylines)
	a.arrows = append([]Arrow(nil), s.Arrows...)
	a.shapes = append([]Shape(nil), s.Shapes...)
	a.highlighters = append([]Highlighter(nil), s.Highlighters...)
	a.markers = append([]SequenceMarker(nil), s.Markers...)
	a.nextNumber = s.NextNumber
	if a.nextNumber < 1 {
		a.nextNumber = 1
	}
	a.labelStyle = s.LabelStyle
	a.active = nil
}

// History is a bounded undo/redo stack of snapshots.
//
// Usage: call Push with a snapshot taken before each mutation. Undo hands
// back the most recent snapshot and remembers the current state for Redo;
// any Push clears the redo stack.
type History struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

// NewHistory creates a history keeping at most limit undo steps.
// A non-positive limit defaults to 64.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 64
	}
	return &History{limit: limit}
}

// Push records a snapshot as the new undo point and clears the redo stack.
// The oldest entry is dropped once the limit is reached.
func (h *History) Push(s Snapshot) {
	h.undo = append(h.undo, s)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = h.redo[:0]
}

// Undo returns the snapshot to restore and records current for Redo.
// ok is false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (s Snapshot, ok bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	s = h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return s, true
}

// Redo returns the snapshot to restore and records current for Undo.
// ok is false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (s Snapshot, ok bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	s = h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return s, true
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
