package graphics

// Canvas is the drawing surface supplied by the host for one frame.
//
// Transform operations act on a matrix stack in the host's GUI space, where
// Z points out of the screen. Rotations are expressed in degrees.
type Canvas interface {
	// Push saves the current transform.
	Push()
	// Pop restores the most recently pushed transform.
	Pop()
	Translate(x, y, z float64)
	Scale(x, y, z float64)
	RotateX(degrees float64)
	RotateY(degrees float64)

	// FillRect fills rect with a solid color.
	FillRect(rect Rect, color Color)
	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(text string, x, y int, color Color)
	// EnableScissor restricts drawing to rect until DisableScissor is called.
	EnableScissor(rect Rect)
	DisableScissor()
}

// DrawContext carries the per-frame drawing state handed to components.
type DrawContext struct {
	Canvas Canvas

	scissors []Rect
}

// NewDrawContext wraps a host canvas.
func NewDrawContext(canvas Canvas) *DrawContext {
	return &DrawContext{Canvas: canvas}
}

// FillRect fills a rectangle on the underlying canvas.
func (c *DrawContext) FillRect(rect Rect, color Color) {
	if c == nil || c.Canvas == nil {
		return
	}
	c.Canvas.FillRect(rect, color)
}

// PushScissor clips drawing to rect intersected with the current clip.
func (c *DrawContext) PushScissor(rect Rect) {
	if c == nil || c.Canvas == nil {
		return
	}
	if n := len(c.scissors); n > 0 {
		rect = c.scissors[n-1].Intersect(rect)
	}
	c.scissors = append(c.scissors, rect)
	c.Canvas.EnableScissor(rect)
}

// PopScissor restores the clip that was active before the matching PushScissor.
func (c *DrawContext) PopScissor() {
	if c == nil || c.Canvas == nil || len(c.scissors) == 0 {
		return
	}
	c.scissors = c.scissors[:len(c.scissors)-1]
	if n := len(c.scissors); n > 0 {
		c.Canvas.EnableScissor(c.scissors[n-1])
		return
	}
	c.Canvas.DisableScissor()
}

// DrawTooltip draws a tooltip box anchored to the pointer, above everything
// drawn before it. Text may span several lines.
func (c *DrawContext) DrawTooltip(text string, mouseX, mouseY int) {
	if c == nil || c.Canvas == nil || text == "" {
		return
	}
	const pad = 3
	tl := LayoutText(text, 0)
	box := Rect{
		X:      mouseX + 12,
		Y:      mouseY - 12,
		Width:  tl.Size.Width + 2*pad,
		Height: tl.Size.Height + 2*pad,
	}
	c.Canvas.Push()
	c.Canvas.Translate(0, 0, 400)
	c.Canvas.FillRect(box, ColorTooltip)
	tl.Draw(c.Canvas, box.X+pad, box.Y+pad, tl.Size.Width, TextAlignLeft, ColorWhite)
	c.Canvas.Pop()
}
