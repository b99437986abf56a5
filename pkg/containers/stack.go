package containers

import (
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

// StackLayout draws its children on top of each other, each aligned inside
// the content box. The last child is drawn last and receives input first.
type StackLayout struct {
	container
}

// NewStackLayout creates a stack layout. It panics if the sizing pair is invalid.
func NewStackLayout(horizontal, vertical layout.Sizing) *StackLayout {
	s := &StackLayout{}
	s.SetSelf(s)
	mustSize(s, horizontal, vertical)
	return s
}

// ArrangeFlow aligns each child inside the content box.
func (s *StackLayout) ArrangeFlow(content graphics.Rect, children []core.Component) {
	for _, child := range children {
		margins := child.Margins()
		size := child.Measure(layout.Loose(content.Size()).Deflate(margins))
		origin := s.alignedOrigin(content, margins.Inflate(size))
		child.Arrange(graphics.Rect{
			X:      origin.X + margins.Left,
			Y:      origin.Y + margins.Top,
			Width:  size.Width,
			Height: size.Height,
		})
	}
}

// ParseProperties reads the common container properties.
func (s *StackLayout) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	return s.parseCommon(model, children)
}

func init() {
	parsing.Register("stack-layout", func(el *parsing.Element) (core.Component, error) {
		return NewStackLayout(layout.Content(), layout.Content()), nil
	})
}
