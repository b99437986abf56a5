package graphics

// Point is a position in integer screen pixels.
type Point struct {
	X int
	Y int
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle given by its top-left corner and extent.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromPointSize constructs a Rect from a position and a size.
func RectFromPointSize(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether (x, y) lies inside the rectangle. Points on the
// right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.X) && x < float64(r.Right()) &&
		y >= float64(r.Y) && y < float64(r.Bottom())
}

// Deflate shrinks the rectangle by the given insets, never below zero extent.
func (r Rect) Deflate(in Insets) Rect {
	out := Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Horizontal(),
		Height: r.Height - in.Vertical(),
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Insets describes spacing on each edge of a box, used for margins and padding.
type Insets struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// InsetsAll returns insets with the same value on every edge.
func InsetsAll(v int) Insets {
	return Insets{Top: v, Bottom: v, Left: v, Right: v}
}

// InsetsSymmetric returns insets with equal vertical and equal horizontal edges.
func InsetsSymmetric(vertical, horizontal int) Insets {
	return Insets{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Vertical returns Top + Bottom.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// Inflate grows a size by the insets.
func (i Insets) Inflate(s Size) Size {
	return Size{Width: s.Width + i.Horizontal(), Height: s.Height + i.Vertical()}
}

// Intersect returns the overlap of two rectangles, or an empty rect at r's
// origin when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.X, other.X)
	top := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
