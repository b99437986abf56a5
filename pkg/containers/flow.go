package containers

import (
	"errors"
	"fmt"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

// Direction is the main axis of a FlowLayout.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FlowLayout places its children one after another along its direction,
// separated by Gap pixels. Children with fill sizing on the main axis split
// whatever main-axis space the others leave, in proportion to their weights.
type FlowLayout struct {
	container

	direction Direction
	gap       int
}

// NewFlowLayout creates a flow layout. It panics if the sizing pair is
// invalid, which is a programming error.
func NewFlowLayout(direction Direction, horizontal, vertical layout.Sizing) *FlowLayout {
	f := &FlowLayout{direction: direction}
	f.SetSelf(f)
	mustSize(f, horizontal, vertical)
	return f
}

// VerticalFlow creates a top-to-bottom flow layout.
func VerticalFlow(horizontal, vertical layout.Sizing) *FlowLayout {
	return NewFlowLayout(Vertical, horizontal, vertical)
}

// HorizontalFlow creates a left-to-right flow layout.
func HorizontalFlow(horizontal, vertical layout.Sizing) *FlowLayout {
	return NewFlowLayout(Horizontal, horizontal, vertical)
}

func mustSize(c core.Component, horizontal, vertical layout.Sizing) {
	if err := c.SetSizing(horizontal, vertical); err != nil {
		panic(fmt.Sprintf("containers: invalid sizing: %v", err))
	}
}

// Direction returns the main axis.
func (f *FlowLayout) Direction() Direction { return f.direction }

// Gap returns the spacing between consecutive children.
func (f *FlowLayout) Gap() int { return f.gap }

// SetGap sets the spacing between consecutive children.
func (f *FlowLayout) SetGap(gap int) {
	if f.gap == gap {
		return
	}
	f.gap = gap
	f.MarkNeedsLayout()
}

// main and cross pick the main and cross components of a size.
func (f *FlowLayout) main(s graphics.Size) int {
	if f.direction == Horizontal {
		return s.Width
	}
	return s.Height
}

func (f *FlowLayout) cross(s graphics.Size) int {
	if f.direction == Horizontal {
		return s.Height
	}
	return s.Width
}

func (f *FlowLayout) size(main, cross int) graphics.Size {
	if f.direction == Horizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

// mainSizing returns the child's sizing along the main axis.
func (f *FlowLayout) mainSizing(child core.Component) layout.Sizing {
	h, v := child.Sizing()
	if f.direction == Horizontal {
		return h
	}
	return v
}

func (f *FlowLayout) gaps(n int) int {
	if n < 2 {
		return 0
	}
	return f.gap * (n - 1)
}

// ContentSize sums the children along the main axis. Fill children only
// contribute their margins since a content-sized flow has no space to share.
func (f *FlowLayout) ContentSize(space graphics.Size) graphics.Size {
	inner := layout.Loose(space).Deflate(f.Padding())
	var mainTotal, crossMax, count int
	for _, child := range f.Children() {
		if child.Positioning().BypassesFlow() {
			continue
		}
		count++
		margins := child.Margins()
		var full graphics.Size
		if f.mainSizing(child).IsFill() {
			full = margins.Inflate(graphics.Size{})
		} else {
			full = margins.Inflate(child.Measure(inner.Deflate(margins)))
		}
		mainTotal += f.main(full)
		crossMax = max(crossMax, f.cross(full))
	}
	return f.Padding().Inflate(f.size(mainTotal+f.gaps(count), crossMax))
}

// ArrangeFlow measures fixed and content children first, shares the
// remaining main-axis space between fill children, then places everything
// in order honoring the alignment.
func (f *FlowLayout) ArrangeFlow(content graphics.Rect, children []core.Component) {
	space := content.Size()
	sizes := make([]graphics.Size, len(children))
	var weights []float64
	var fillIndex []int
	used := f.gaps(len(children))

	for i, child := range children {
		margins := child.Margins()
		if s := f.mainSizing(child); s.IsFill() {
			weights = append(weights, s.Weight)
			fillIndex = append(fillIndex, i)
			used += f.main(margins.Inflate(graphics.Size{}))
			continue
		}
		sizes[i] = child.Measure(layout.Loose(space).Deflate(margins))
		used += f.main(margins.Inflate(sizes[i]))
	}

	shares := layout.DistributeFill(f.main(space)-used, weights)
	for k, i := range fillIndex {
		child := children[i]
		margins := child.Margins()
		offer := f.size(shares[k]+f.main(margins.Inflate(graphics.Size{})), f.cross(space))
		sizes[i] = child.Measure(layout.Loose(offer).Deflate(margins))
	}

	total := f.gaps(len(children))
	for i, child := range children {
		total += f.main(child.Margins().Inflate(sizes[i]))
	}

	var cursor int
	if f.direction == Horizontal {
		cursor = content.X + f.horizontalAlignment.offset(space.Width, total)
	} else {
		cursor = content.Y + f.verticalAlignment.offset(space.Height, total)
	}

	for i, child := range children {
		margins := child.Margins()
		full := margins.Inflate(sizes[i])
		var origin graphics.Point
		if f.direction == Horizontal {
			origin = graphics.Point{
				X: cursor,
				Y: content.Y + f.verticalAlignment.offset(space.Height, full.Height),
			}
		} else {
			origin = graphics.Point{
				X: content.X + f.horizontalAlignment.offset(space.Width, full.Width),
				Y: cursor,
			}
		}
		child.Arrange(graphics.Rect{
			X:      origin.X + margins.Left,
			Y:      origin.Y + margins.Top,
			Width:  sizes[i].Width,
			Height: sizes[i].Height,
		})
		cursor += f.main(full) + f.gap
	}
}

var errInvalidDirection = errors.New("want vertical or horizontal")

var directionNames = map[string]Direction{
	"vertical":   Vertical,
	"horizontal": Horizontal,
}

func parseFlowLayout(el *parsing.Element) (core.Component, error) {
	if err := parsing.ExpectAttributes(el, "direction"); err != nil {
		return nil, err
	}
	raw, _ := el.Attribute("direction")
	direction, ok := directionNames[raw]
	if !ok {
		return nil, parsing.AttributeError(el, "direction", raw, errInvalidDirection)
	}
	return NewFlowLayout(direction, layout.Content(), layout.Content()), nil
}

// ParseProperties reads gap plus the common container properties.
func (f *FlowLayout) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	if err := parsing.Apply(children, "gap", parsing.ParseInt, f.SetGap); err != nil {
		return err
	}
	return f.parseCommon(model, children)
}

func init() {
	parsing.Register("flow-layout", parseFlowLayout)
}
