package snapmark

import (
	"errors"
	"fmt"
	"image"
)

// ErrCaptureUnavailable is returned by NewMode when the initial screen
// capture fails (no displays, capture error, empty frame). It is fatal to
// mode construction and distinct from per-action failures, which are logged
// and never corrupt session state.
var ErrCaptureUnavailable = errors.New("snapmark: capture unavailable")

// CancelAction is the action id whose successful invocation resets the
// session back to Idle instead of keeping the toolbar visible.
const CancelAction = "cancel"

// State is a node of the capture-session state machine.
type State int

const (
	// StateIdle means no selection is in progress.
	StateIdle State = iota
	// StateSelecting means a selection rect is being dragged.
	StateSelecting
	// StateToolbarVisible means a finalized selection has a toolbar bound.
	StateToolbarVisible
	// StateExiting is terminal; the caller tears down the capture surface.
	StateExiting
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateToolbarVisible:
		return "toolbar"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Frame is a captured screen image together with its logical size and the
// physical/logical scale factor of the display it came from.
type Frame struct {
	Pixmap *Pixmap
	Width  float64 // logical
	Height float64 // logical
	Scale  float64
}

// FrameSource supplies the initial screen capture for a session.
// The capture package provides implementations; tests use in-memory ones.
type FrameSource interface {
	Grab() (Frame, error)
}

// ActionStatus is the outcome class of a toolbar action.
type ActionStatus int

const (
	// ActionContinue keeps the toolbar visible.
	ActionContinue ActionStatus = iota
	// ActionSuccess is a completed action; the toolbar stays visible.
	ActionSuccess
	// ActionExit ends the capture session.
	ActionExit
	// ActionFailure is a failed action; it is logged and otherwise ignored.
	ActionFailure
)

// ActionResult is what a toolbar action reports back to the state machine.
type ActionResult struct {
	Status  ActionStatus
	Message string // set for ActionFailure
}

// ActionContext is handed to an action when it is invoked.
type ActionContext struct {
	// Selection is the finalized selection window in physical pixels.
	Selection image.Rectangle
	// SelectionLogical is the finalized selection in logical pixels.
	SelectionLogical Rect
	// Frame is the captured screen buffer, read-only.
	Frame *Pixmap
	// Scale is the physical/logical scale factor.
	Scale float64
	// Annotations is the session's annotation state.
	Annotations *Annotations
}

// ActionFunc executes a toolbar action. The engine is agnostic to what
// actions do; it only interprets the returned status. Actions may do their
// work asynchronously as long as the callback itself returns synchronously.
type ActionFunc func(ActionContext) ActionResult

// Toolbar is the hit-testable surface a collaborator binds to a finalized
// selection. The engine never renders the toolbar itself.
type Toolbar interface {
	// Show binds the toolbar to the finalized logical selection rect.
	Show(sel Rect)
	// Hide releases the toolbar.
	Hide()
	// Contains reports whether pos hits the toolbar surface.
	Contains(pos Point) bool
	// ActionAt returns the id of the enabled action under pos.
	ActionAt(pos Point) (id string, ok bool)
}

// Mode orchestrates one capture session: a selection drag, a toolbar bound
// to the finalized rect, and dispatch of toolbar actions. All methods run on
// the thread that owns the interaction loop; Mode does no locking.
type Mode struct {
	state   State
	sel     Selection
	ann     *Annotations
	frame   Frame
	toolbar Toolbar
	actions map[string]ActionFunc
	minSel  float64
}

// NewMode captures the initial screen through source and starts a session
// in StateIdle. A capture failure is fatal and reported as
// ErrCaptureUnavailable.
func NewMode(source FrameSource, opts ...Option) (*Mode, error) {
	cfg := defaultModeOptions()
	for _, o := range opts {
		o(&cfg)
	}

	frame, err := source.Grab()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptureUnavailable, err)
	}
	if frame.Pixmap == nil || frame.Pixmap.Width() == 0 || frame.Pixmap.Height() == 0 {
		return nil, fmt.Errorf("%w: empty frame", ErrCaptureUnavailable)
	}
	if frame.Scale <= 0 {
		frame.Scale = 1
	}

	m := &Mode{
		state:   StateIdle,
		ann:     NewAnnotations(),
		frame:   frame,
		toolbar: cfg.toolbar,
		actions: cfg.actions,
		minSel:  cfg.minSelection,
	}
	Logger().Info("capture session started",
		"width", frame.Width, "height", frame.Height, "scale", frame.Scale)
	return m, nil
}

// State returns the current state.
func (m *Mode) State() State { return m.state }

// ShouldExit reports whether the session reached the terminal state.
func (m *Mode) ShouldExit() bool { return m.state == StateExiting }

// Frame returns the captured frame the session operates on.
func (m *Mode) Frame() Frame { return m.frame }

// Annotations returns the session's annotation state.
func (m *Mode) Annotations() *Annotations { return m.ann }

// SelectionRect returns the current logical selection rect, if any.
func (m *Mode) SelectionRect() (Rect, bool) { return m.sel.Rect() }

// PhysicalSelection returns the finalized selection window in physical
// pixels, or the zero rectangle when no selection is finalized.
func (m *Mode) PhysicalSelection() image.Rectangle {
	if m.sel.Phase() != SelectionFinal {
		return image.Rectangle{}
	}
	r, _ := m.sel.Rect()
	return Mapper{Scale: m.frame.Scale}.PhysicalRect(r)
}

// Press handles a pointer-down at a logical position.
func (m *Mode) Press(pos Point) {
	switch m.state {
	case StateIdle:
		m.sel.Begin(pos)
		m.state = StateSelecting
	case StateToolbarVisible:
		if m.toolbar != nil && m.toolbar.Contains(pos) {
			if id, ok := m.toolbar.ActionAt(pos); ok {
				m.runAction(id)
			}
			return
		}
		m.resetToIdle()
	}
}

// Move handles a pointer move at a logical position.
func (m *Mode) Move(pos Point) {
	if m.state == StateSelecting {
		m.sel.Drag(pos)
	}
}

// Release handles a pointer-up at a logical position. A drag larger than
// the minimum selection extent finalizes the rect and binds the toolbar;
// anything smaller resets to Idle.
func (m *Mode) Release(pos Point) {
	if m.state != StateSelecting {
		return
	}
	m.sel.Drag(pos)
	if !m.sel.Finish(m.minSel) {
		m.state = StateIdle
		return
	}
	m.state = StateToolbarVisible
	if m.toolbar != nil {
		r, _ := m.sel.Rect()
		m.toolbar.Show(r)
	}
}

// Escape ends the session from any state.
func (m *Mode) Escape() {
	if m.state == StateExiting {
		return
	}
	m.state = StateExiting
	if m.toolbar != nil {
		m.toolbar.Hide()
	}
	Logger().Info("capture session exiting")
}

// resetToIdle discards the selection and hides the toolbar.
func (m *Mode) resetToIdle() {
	m.sel.Reset()
	if m.toolbar != nil {
		m.toolbar.Hide()
	}
	m.state = StateIdle
}

// runAction invokes a registered action and applies its result to the state
// machine. Failures are logged only; session state is untouched.
func (m *Mode) runAction(id string) {
	fn, ok := m.actions[id]
	if !ok {
		Logger().Warn("unknown action", "id", id)
		return
	}

	selLogical, _ := m.sel.Rect()
	res := fn(ActionContext{
		Selection:        m.PhysicalSelection(),
		SelectionLogical: selLogical,
		Frame:            m.frame.Pixmap,
		Scale:            m.frame.Scale,
		Annotations:      m.ann,
	})

	switch res.Status {
	case ActionExit:
		m.state = StateExiting
		if m.toolbar != nil {
			m.toolbar.Hide()
		}
	case ActionFailure:
		Logger().Warn("action failed", "id", id, "message", res.Message)
	default: // ActionContinue, ActionSuccess
		if id == CancelAction {
			m.resetToIdle()
		}
	}
}
