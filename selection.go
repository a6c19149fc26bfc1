package snapmark

// SelectionPhase is the lifecycle stage of a drag selection.
type SelectionPhase int

const (
	// SelectionNone means no selection exists.
	SelectionNone SelectionPhase = iota
	// SelectionDragging means the rect is being dragged and is mutable.
	SelectionDragging
	// SelectionFinal means the rect is finalized and immutable.
	SelectionFinal
)

// Selection tracks a drag rectangle from pointer-down to its finalized or
// reset end state. The zero value is an empty selection.
type Selection struct {
	phase  SelectionPhase
	anchor Point
	rect   Rect
}

// Phase returns the current lifecycle stage.
func (s *Selection) Phase() SelectionPhase { return s.phase }

// Begin anchors a new drag at pos, discarding any previous selection.
func (s *Selection) Begin(pos Point) {
	s.phase = SelectionDragging
	s.anchor = pos
	s.rect = Rect{Min: pos, Max: pos}
}

// Drag updates the rectangle to span the anchor and pos.
// No-op unless a drag is in progress.
func (s *Selection) Drag(pos Point) {
	if s.phase != SelectionDragging {
		return
	}
	s.rect = RectFromPoints(s.anchor, pos)
}

// Finish ends the drag. When both extents exceed minExtent the rect becomes
// final and Finish reports true; otherwise the selection resets and Finish
// reports false.
func (s *Selection) Finish(minExtent float64) bool {
	if s.phase != SelectionDragging {
		return false
	}
	if s.rect.Width() > minExtent && s.rect.Height() > minExtent {
		s.phase = SelectionFinal
		return true
	}
	s.Reset()
	return false
}

// Reset discards the selection.
func (s *Selection) Reset() {
	*s = Selection{}
}

// Rect returns the selection rectangle. ok is false while no selection
// exists; the rect is only immutable once the phase is SelectionFinal.
func (s *Selection) Rect() (r Rect, ok bool) {
	if s.phase == SelectionNone {
		return Rect{}, false
	}
	return s.rect, true
}
