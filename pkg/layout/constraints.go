package layout

import "github.com/go-owo/owo/pkg/graphics"

// Unbounded marks an axis with no upper limit, as handed to content-sized
// children by their parents.
const Unbounded = 1 << 30

// Constraints bound the size a component may choose during Measure.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Tight returns constraints that only admit the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints that admit any size up to the given one.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether only a single size satisfies the constraints.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Max returns the largest admitted size.
func (c Constraints) Max() graphics.Size {
	return graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// Constrain clamps a size into the admitted range.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clampInt(size.Width, c.MinWidth, c.MaxWidth),
		Height: clampInt(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Deflate removes insets from both bounds, keeping them non-negative.
func (c Constraints) Deflate(in graphics.Insets) Constraints {
	return Constraints{
		MinWidth:  max(0, c.MinWidth-in.Horizontal()),
		MaxWidth:  deflateMax(c.MaxWidth, in.Horizontal()),
		MinHeight: max(0, c.MinHeight-in.Vertical()),
		MaxHeight: deflateMax(c.MaxHeight, in.Vertical()),
	}
}

func deflateMax(v, by int) int {
	if v >= Unbounded {
		return Unbounded
	}
	return max(0, v-by)
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
