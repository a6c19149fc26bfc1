// Package export encodes composited pixmaps to files and streams.
//
// The engine hands its output buffer to an external encoder; this package is
// that collaborator for the common cases: save-by-extension, stream
// encoding, thumbnails and an optional drop shadow.
package export

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/snapmark/snapmark"
)

// Save encodes the pixmap to path, choosing the format from the file
// extension (png, jpg, gif, tif, bmp).
func Save(path string, pm *snapmark.Pixmap) error {
	return imaging.Save(pm.ToImage(), path)
}

// Encode writes the pixmap to w in the given format.
func Encode(w io.Writer, pm *snapmark.Pixmap, format imaging.Format) error {
	return imaging.Encode(w, pm.ToImage(), format)
}

// Thumbnail scales the pixmap down to fit within maxEdge on both axes,
// preserving aspect ratio. Images already within the bound are returned at
// their original size.
func Thumbnail(pm *snapmark.Pixmap, maxEdge int) *image.NRGBA {
	return imaging.Fit(pm.ToImage(), maxEdge, maxEdge, imaging.Lanczos)
}
