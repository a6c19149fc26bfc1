package snapmark

import "testing"

func TestStrokeCommitThreshold(t *testing.T) {
	tests := []struct {
		name   string
		moves  []Point
		commit bool
	}{
		{name: "no movement discards", moves: nil, commit: false},
		{name: "one move commits", moves: []Point{Pt(5, 5)}, commit: true},
		{name: "many moves commit", moves: []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, commit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnnotations()
			a.BeginStroke(Pt(0, 0), DefaultStrokeSettings())
			for _, p := range tt.moves {
				a.UpdateCursor(p)
			}
			a.Finish()

			if got := len(a.Strokes()) == 1; got != tt.commit {
				t.Errorf("committed = %v, want %v", got, tt.commit)
			}
			if a.IsDrawing() {
				t.Error("IsDrawing() = true after Finish")
			}
		})
	}
}

func TestArrowCommitThreshold(t *testing.T) {
	tests := []struct {
		name   string
		end    Point
		commit bool
	}{
		{name: "zero length discards", end: Pt(0, 0), commit: false},
		{name: "exactly five discards", end: Pt(5, 0), commit: false},
		{name: "above five commits", end: Pt(6, 0), commit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnnotations()
			a.BeginArrow(Pt(0, 0), DefaultStrokeSettings())
			a.UpdateCursor(tt.end)
			a.Finish()

			if got := len(a.Arrows()) == 1; got != tt.commit {
				t.Errorf("committed = %v, want %v", got, tt.commit)
			}
		})
	}
}

func TestShapeCommitThreshold(t *testing.T) {
	tests := []struct {
		name   string
		corner Point
		commit bool
	}{
		{name: "tiny discards", corner: Pt(3, 3), commit: false},
		{name: "thin discards", corner: Pt(50, 5), commit: false},
		{name: "large commits", corner: Pt(6, 6), commit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnnotations()
			a.BeginShape(Pt(0, 0), ShapeRectangle, FillOutline, DefaultStrokeSettings())
			a.UpdateCursor(tt.corner)
			a.Finish()

			if got := len(a.Shapes()) == 1; got != tt.commit {
				t.Errorf("committed = %v, want %v", got, tt.commit)
			}
		})
	}
}

func TestHighlightCommitThreshold(t *testing.T) {
	tests := []struct {
		name   string
		corner Point
		commit bool
	}{
		{name: "tiny discards", corner: Pt(2, 2), commit: false},
		{name: "above two commits", corner: Pt(3, 3), commit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnnotations()
			a.BeginHighlight(Pt(0, 0), Yellow.WithAlpha(128))
			a.UpdateCursor(tt.corner)
			a.Finish()

			if got := len(a.Highlighters()) == 1; got != tt.commit {
				t.Errorf("committed = %v, want %v", got, tt.commit)
			}
		})
	}
}

func TestPolylineVertices(t *testing.T) {
	a := NewAnnotations()
	a.BeginPolyline(Pt(0, 0), DefaultStrokeSettings())
	a.AddPolylineVertex(Pt(10, 0))
	a.AddPolylineVertex(Pt(10, 10))
	a.UpdateCursor(Pt(0, 10))
	a.CloseActivePolyline()
	a.Finish()

	pls := a.Polylines()
	if len(pls) != 1 {
		t.Fatalf("polylines = %d, want 1", len(pls))
	}
	pl := pls[0]
	if !pl.Closed {
		t.Error("Closed = false, want true")
	}
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	if len(pl.Points) != len(want) {
		t.Fatalf("points = %v, want %v", pl.Points, want)
	}
	for i := range want {
		if pl.Points[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pl.Points[i], want[i])
		}
	}
}

func TestSingleActiveSlot(t *testing.T) {
	a := NewAnnotations()

	// Starting a second tool finishes the first one.
	a.BeginStroke(Pt(0, 0), DefaultStrokeSettings())
	a.UpdateCursor(Pt(10, 10))
	a.BeginArrow(Pt(0, 0), DefaultStrokeSettings())

	if len(a.Strokes()) != 1 {
		t.Errorf("strokes = %d, want 1 (auto-finished on tool switch)", len(a.Strokes()))
	}
	if !a.IsDrawing() {
		t.Error("IsDrawing() = false while arrow active")
	}

	a.Discard()
	if a.IsDrawing() {
		t.Error("IsDrawing() = true after Discard")
	}
	a.Finish() // no-op on empty slot
	if len(a.Arrows()) != 0 {
		t.Errorf("arrows = %d, want 0", len(a.Arrows()))
	}
}

func TestMarkerNumbering(t *testing.T) {
	a := NewAnnotations()
	a.SetLabelStyle(LabelRoman)

	for i := 0; i < 3; i++ {
		a.BeginMarker(Pt(float64(i*10), 0), 12, Red)
		a.Finish()
	}

	ms := a.Markers()
	if len(ms) != 3 {
		t.Fatalf("markers = %d, want 3", len(ms))
	}
	for i, m := range ms {
		if m.Number != i+1 {
			t.Errorf("marker %d number = %d, want %d", i, m.Number, i+1)
		}
		if m.Style != LabelRoman {
			t.Errorf("marker %d style = %v, want roman", i, m.Style)
		}
	}
	if a.NextNumber() != 4 {
		t.Errorf("NextNumber() = %d, want 4", a.NextNumber())
	}
}

func TestMarkerCounterSaturation(t *testing.T) {
	a := NewAnnotations()
	a.DecrementNumber()
	a.DecrementNumber()
	if a.NextNumber() != 1 {
		t.Errorf("NextNumber() = %d, want 1 (saturating)", a.NextNumber())
	}

	a.SetNextNumber(5)
	a.DecrementNumber()
	if a.NextNumber() != 4 {
		t.Errorf("NextNumber() = %d, want 4", a.NextNumber())
	}

	a.SetNextNumber(-3)
	if a.NextNumber() != 1 {
		t.Errorf("SetNextNumber(-3): NextNumber() = %d, want 1", a.NextNumber())
	}
}

func TestMarkerPreviewFollowsCursor(t *testing.T) {
	a := NewAnnotations()
	a.BeginMarker(Pt(0, 0), 10, Red)
	a.UpdateCursor(Pt(25, 30))
	a.Finish()

	ms := a.Markers()
	if len(ms) != 1 {
		t.Fatalf("markers = %d, want 1", len(ms))
	}
	if ms[0].Center != Pt(25, 30) {
		t.Errorf("center = %v, want (25, 30)", ms[0].Center)
	}
}
