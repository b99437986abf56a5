// Package containers provides the parent components that arrange children:
// FlowLayout stacks them along one axis and StackLayout layers them.
package containers

import (
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/parsing"
)

// Alignment places content along one axis of a larger space.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// offset returns where an extent of size starts inside space.
func (a Alignment) offset(space, size int) int {
	switch a {
	case AlignCenter:
		return (space - size) / 2
	case AlignEnd:
		return space - size
	default:
		return 0
	}
}

var alignmentNames = map[string]Alignment{
	"start":  AlignStart,
	"left":   AlignStart,
	"top":    AlignStart,
	"center": AlignCenter,
	"end":    AlignEnd,
	"right":  AlignEnd,
	"bottom": AlignEnd,
}

// container is the state FlowLayout and StackLayout share.
type container struct {
	core.BaseParent

	horizontalAlignment Alignment
	verticalAlignment   Alignment
}

// Alignment returns the horizontal and vertical alignment of the children.
func (c *container) Alignment() (horizontal, vertical Alignment) {
	return c.horizontalAlignment, c.verticalAlignment
}

// SetAlignment changes how children are aligned inside the content box.
func (c *container) SetAlignment(horizontal, vertical Alignment) {
	if c.horizontalAlignment == horizontal && c.verticalAlignment == vertical {
		return
	}
	c.horizontalAlignment, c.verticalAlignment = horizontal, vertical
	c.MarkNeedsLayout()
}

// parseCommon applies the properties every container understands.
func (c *container) parseCommon(model *parsing.Model, children map[string]*parsing.Element) error {
	if err := parsing.Apply(children, "padding", parsing.ParseInsets, c.SetPadding); err != nil {
		return err
	}
	if err := parsing.Apply(children, "surface", parsing.ParseColor, c.SetSurface); err != nil {
		return err
	}
	if err := parsing.Apply(children, "allow-overflow", parsing.ParseBool, c.SetAllowOverflow); err != nil {
		return err
	}
	alignment := parsing.EnumParser(alignmentNames)
	if err := parsing.Apply(children, "horizontal-alignment", alignment, func(a Alignment) {
		c.SetAlignment(a, c.verticalAlignment)
	}); err != nil {
		return err
	}
	if err := parsing.Apply(children, "vertical-alignment", alignment, func(a Alignment) {
		c.SetAlignment(c.horizontalAlignment, a)
	}); err != nil {
		return err
	}

	parsed, err := model.ParseChildren(children["children"])
	if err != nil {
		return err
	}
	c.AddChildren(parsed...)
	return nil
}

// alignedOrigin returns the origin of a child of full size inside content.
func (c *container) alignedOrigin(content graphics.Rect, full graphics.Size) graphics.Point {
	return graphics.Point{
		X: content.X + c.horizontalAlignment.offset(content.Width, full.Width),
		Y: content.Y + c.verticalAlignment.offset(content.Height, full.Height),
	}
}
