package layout

// Cursor tracks the vertical drawing position on the current page.
// Y grows downward from the top edge.
type Cursor struct {
	Y          float64
	Margin     float64
	PageHeight float64
}

// NewCursor returns a cursor placed at the top margin.
func NewCursor(margin, pageHeight float64) Cursor {
	return Cursor{
		Y:          margin,
		Margin:     margin,
		PageHeight: pageHeight,
	}
}

// Advance moves the cursor down by dy.
func (c *Cursor) Advance(dy float64) {
	c.Y += dy
}

// MoveTo places the cursor at an absolute position.
func (c *Cursor) MoveTo(y float64) {
	c.Y = y
}

// Reset moves the cursor back to the top margin.
func (c *Cursor) Reset() {
	c.Y = c.Margin
}

// Remaining returns the space left above the bottom margin.
func (c Cursor) Remaining() float64 {
	return c.PageHeight - c.Margin - c.Y
}
