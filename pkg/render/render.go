// Package render rasterizes the stopwatch display into an RGBA image:
// four seven-segment digits and a colon, laid out as the physical
// panel is, most significant digit leftmost.
package render

import (
	"image"
	"image/color"

	"github.com/faiface/pixel"

	"github.com/Joshua-Ball1/Stopwatch/pkg/stopwatch"
)

// base geometry of one digit cell, y growing downwards. Segment order
// matches the drive pattern bits: A, B, C, D, E, F, G.
var segmentRects = [7]pixel.Rect{
	pixel.R(2, 0, 10, 2),    // A  top
	pixel.R(10, 2, 12, 9),   // B  top right
	pixel.R(10, 11, 12, 18), // C  bottom right
	pixel.R(2, 18, 10, 20),  // D  bottom
	pixel.R(0, 11, 2, 18),   // E  bottom left
	pixel.R(0, 2, 2, 9),     // F  top left
	pixel.R(2, 9, 10, 11),   // G  middle
}

// the colon is two dots in its own narrow cell
var separatorRects = [2]pixel.Rect{
	pixel.R(2, 5, 4, 7),
	pixel.R(2, 13, 4, 15),
}

const (
	cellWidth  = 12
	cellHeight = 20
	sepWidth   = 6
	gap        = 4
	margin     = 4
)

// cellOrigins maps a Frame position (0 = rightmost digit, 3 = leftmost
// digit, 4 = separator) to the top-left corner of its cell. Panel
// order left to right is digit3, digit2, colon, digit1, digit0.
var cellOrigins = [5]pixel.Vec{
	pixel.V(margin+3*(cellWidth+gap)+sepWidth+gap, margin), // digit0
	pixel.V(margin+2*(cellWidth+gap)+sepWidth+gap, margin), // digit1
	pixel.V(margin+cellWidth+gap, margin),                  // digit2
	pixel.V(margin, margin),                                // digit3
	pixel.V(margin+2*(cellWidth+gap), margin),              // separator
}

var (
	colorBackground = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	colorUnlit      = color.RGBA{R: 44, G: 10, B: 10, A: 255}
	colorLit        = color.RGBA{R: 235, G: 45, B: 45, A: 255}
)

// Bounds is the base (unscaled) panel resolution.
func Bounds() image.Rectangle {
	width := margin + 4*(cellWidth+gap) + sepWidth + margin
	return image.Rect(0, 0, width, cellHeight+2*margin)
}

// Draw rasterizes a display frame at base resolution. Callers scale
// the result to their window size.
func Draw(frame stopwatch.Frame) *image.RGBA {
	buffer := image.NewRGBA(Bounds())
	fill(buffer, Bounds(), colorBackground)

	for position := 0; position < 4; position++ {
		origin := cellOrigins[position]
		for segment := uint(0); segment < 7; segment++ {
			c := colorUnlit
			if frame.Lit(position, segment) {
				c = colorLit
			}
			fill(buffer, cellRect(segmentRects[segment], origin), c)
		}
	}

	origin := cellOrigins[4]
	for _, dot := range separatorRects {
		c := colorUnlit
		if frame.Lit(4, 7) {
			c = colorLit
		}
		fill(buffer, cellRect(dot, origin), c)
	}

	return buffer
}

// cellRect translates a cell-local rect to panel coordinates.
func cellRect(r pixel.Rect, origin pixel.Vec) image.Rectangle {
	moved := r.Moved(origin)
	return image.Rect(int(moved.Min.X), int(moved.Min.Y), int(moved.Max.X), int(moved.Max.Y))
}

func fill(buffer *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buffer.Set(x, y, c)
		}
	}
}
