// Package layout lays out an invoice on fixed-size pages.
package layout

import "io"

// Font styles understood by a Renderer.
const (
	StyleRegular = ""
	StyleBold    = "B"
)

// Renderer exposes the drawing primitives the layout engine needs.
// Coordinates are millimetres from the top-left corner of the page; y is
// the text baseline.
type Renderer interface {
	SetFont(style string, size float64)
	Text(x, y float64, text string)
	TextRight(x, y float64, text string)
	Line(x1, y1, x2, y2 float64)
	AddPage()
	// Finish writes the completed document to w.
	Finish(w io.Writer) error
}
