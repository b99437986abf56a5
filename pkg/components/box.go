package components

import (
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

// Box fills its bounds with a color, optionally drawing a one pixel outline
// instead.
type Box struct {
	core.BaseComponent

	color   graphics.Color
	outline bool
}

// NewBox returns a box. It panics if the sizing pair is invalid.
func NewBox(horizontal, vertical layout.Sizing, color graphics.Color) *Box {
	b := &Box{color: color}
	b.SetSelf(b)
	if err := b.SetSizing(horizontal, vertical); err != nil {
		panic("components: invalid sizing: " + err.Error())
	}
	return b
}

func (b *Box) Color() graphics.Color { return b.color }

func (b *Box) SetColor(color graphics.Color) { b.color = color }

func (b *Box) SetOutline(outline bool) { b.outline = outline }

func (b *Box) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	rect := b.Bounds()
	if !b.outline {
		ctx.FillRect(rect, b.color)
		return
	}
	ctx.FillRect(graphics.Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: 1}, b.color)
	ctx.FillRect(graphics.Rect{X: rect.X, Y: rect.Bottom() - 1, Width: rect.Width, Height: 1}, b.color)
	ctx.FillRect(graphics.Rect{X: rect.X, Y: rect.Y + 1, Width: 1, Height: rect.Height - 2}, b.color)
	ctx.FillRect(graphics.Rect{X: rect.Right() - 1, Y: rect.Y + 1, Width: 1, Height: rect.Height - 2}, b.color)
}

// ParseProperties reads color and outline.
func (b *Box) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	if err := parsing.Apply(children, "color", parsing.ParseColor, b.SetColor); err != nil {
		return err
	}
	return parsing.Apply(children, "outline", parsing.ParseBool, b.SetOutline)
}

func init() {
	parsing.Register("box", func(el *parsing.Element) (core.Component, error) {
		return NewBox(layout.Content(), layout.Content(), graphics.ColorWhite), nil
	})
}
