// Package snapmark implements a screenshot annotation and compositing engine.
//
// # Overview
//
// snapmark provides the in-memory core of a screen capture tool: a selection
// state machine ([Mode]), a two-phase annotation model with undo/redo
// ([Annotations], [Snapshot]), and a software compositor ([Render]) that
// rasterizes committed annotations onto a cropped region of the captured
// frame.
//
// # Quick Start
//
//	import "github.com/snapmark/snapmark"
//
//	mode, err := snapmark.NewMode(source)
//	if err != nil {
//	    // capture is unavailable, the session cannot start
//	}
//
//	mode.Press(snapmark.Pt(10, 10))
//	mode.Move(snapmark.Pt(200, 150))
//	mode.Release(snapmark.Pt(200, 150))
//
//	ann := mode.Annotations()
//	ann.BeginArrow(snapmark.Pt(20, 20), snapmark.DefaultStrokeSettings())
//	ann.UpdateCursor(snapmark.Pt(120, 80))
//	ann.Finish()
//
//	out := snapmark.Render(mode.Frame().Pixmap, ann, mode.PhysicalSelection(),
//	    snapmark.Pt(10, 10), mode.Frame().Scale)
//
// # Coordinate System
//
// All interaction happens in logical pixels, independent of display density.
// The compositor maps logical coordinates to physical framebuffer pixels with
// physical = round((logical - selectionMin) * scale), applied per axis.
// Origin (0,0) is top-left, X increases right, Y increases down.
//
// # Collaborators
//
// Screen capture, the live preview renderer, toolbars and the actions they
// trigger are external collaborators injected through small interfaces
// ([FrameSource], [Toolbar], [ActionFunc], [LabelRenderer]). The engine never
// touches platform APIs directly. See the capture, export, label, palette and
// config packages for ready-made implementations.
package snapmark
