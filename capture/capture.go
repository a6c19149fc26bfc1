// Package capture supplies the initial screen frame for a snapmark session.
//
// Screen grabs a display through the platform capture library; Static wraps
// an in-memory frame for tests and scripted sessions. Both satisfy
// snapmark.FrameSource.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/snapmark/snapmark"
)

// ErrNoDisplay is returned when no display is available to capture.
// snapmark.NewMode wraps it into ErrCaptureUnavailable.
var ErrNoDisplay = errors.New("capture: no active display")

// Display describes one attached display.
type Display struct {
	Index  int
	Bounds image.Rectangle // physical pixels, in the virtual screen space
}

// Displays lists the active displays.
func Displays() []Display {
	n := screenshot.NumActiveDisplays()
	out := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Display{Index: i, Bounds: screenshot.GetDisplayBounds(i)})
	}
	return out
}

// Screen grabs a single display. The capture library reports physical
// pixels only, so the caller supplies the display's scale factor; zero
// means an unscaled (1:1) display.
type Screen struct {
	Display int
	Scale   float64
}

// Grab captures the display and returns it as a frame with logical size
// derived from the scale factor.
func (s *Screen) Grab() (snapmark.Frame, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return snapmark.Frame{}, ErrNoDisplay
	}
	if s.Display < 0 || s.Display >= n {
		return snapmark.Frame{}, fmt.Errorf("capture: display %d out of range, %d active", s.Display, n)
	}

	img, err := screenshot.CaptureDisplay(s.Display)
	if err != nil {
		return snapmark.Frame{}, fmt.Errorf("capture: %w", err)
	}

	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	pm := snapmark.FromImage(img)
	return snapmark.Frame{
		Pixmap: pm,
		Width:  float64(pm.Width()) / scale,
		Height: float64(pm.Height()) / scale,
		Scale:  scale,
	}, nil
}

// Static serves a fixed in-memory frame.
type Static struct {
	Frame snapmark.Frame
}

// Grab returns the stored frame, or ErrNoDisplay when it has no pixels.
func (s *Static) Grab() (snapmark.Frame, error) {
	if s.Frame.Pixmap == nil {
		return snapmark.Frame{}, ErrNoDisplay
	}
	return s.Frame, nil
}
