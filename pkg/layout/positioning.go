package layout

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/go-owo/owo/pkg/graphics"
)

// PositioningType selects who decides where a component goes.
type PositioningType int

const (
	// PositioningLayout defers to the parent's layout algorithm.
	PositioningLayout PositioningType = iota
	// PositioningAbsolute places the component at X, Y pixels from the
	// parent's content origin.
	PositioningAbsolute
	// PositioningRelative places the component at X, Y percent of the free
	// space inside the parent's content box.
	PositioningRelative
)

func (t PositioningType) String() string {
	switch t {
	case PositioningLayout:
		return "layout"
	case PositioningAbsolute:
		return "absolute"
	case PositioningRelative:
		return "relative"
	default:
		return fmt.Sprintf("PositioningType(%d)", int(t))
	}
}

// Positioning describes how a component is placed inside its parent.
// The zero value is layout positioning.
type Positioning struct {
	Type PositioningType
	X    int
	Y    int
}

// Layout defers placement to the parent's flow.
func Layout() Positioning {
	return Positioning{Type: PositioningLayout}
}

// Absolute places a component at fixed pixel offsets.
func Absolute(x, y int) Positioning {
	return Positioning{Type: PositioningAbsolute, X: x, Y: y}
}

// Relative places a component at percentages of the parent's free space.
func Relative(xPercent, yPercent int) Positioning {
	return Positioning{Type: PositioningRelative, X: xPercent, Y: yPercent}
}

// BypassesFlow reports whether the parent's layout algorithm ignores the component.
func (p Positioning) BypassesFlow() bool {
	return p.Type != PositioningLayout
}

// Validate checks relative percentages are within [0, 100].
func (p Positioning) Validate() error {
	relative := p.Type == PositioningRelative
	return validation.ValidateStruct(&p,
		validation.Field(&p.Type, validation.In(PositioningLayout, PositioningAbsolute, PositioningRelative)),
		validation.Field(&p.X, validation.When(relative, validation.Min(0), validation.Max(100))),
		validation.Field(&p.Y, validation.When(relative, validation.Min(0), validation.Max(100))),
	)
}

// Resolve returns the top-left corner of a child of the given full size
// (margins included) inside content. Layout positioning returns the content
// origin; the parent's flow overrides it.
func (p Positioning) Resolve(content graphics.Rect, child graphics.Size) graphics.Point {
	switch p.Type {
	case PositioningAbsolute:
		return graphics.Point{X: content.X + p.X, Y: content.Y + p.Y}
	case PositioningRelative:
		return graphics.Point{
			X: content.X + (content.Width-child.Width)*p.X/100,
			Y: content.Y + (content.Height-child.Height)*p.Y/100,
		}
	default:
		return content.Position()
	}
}

// String renders the positioning in markup shorthand, e.g. "absolute(4, 8)".
func (p Positioning) String() string {
	if p.Type == PositioningLayout {
		return "layout"
	}
	return fmt.Sprintf("%s(%d, %d)", p.Type, p.X, p.Y)
}
