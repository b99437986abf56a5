package components

import (
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

// Label draws text, wrapped to its width when it is not content sized.
type Label struct {
	core.BaseComponent

	text     string
	color    graphics.Color
	align    graphics.TextAlign
	maxWidth int
}

// NewLabel returns a content-sized white label.
func NewLabel(text string) *Label {
	l := &Label{text: text, color: graphics.ColorWhite}
	l.SetSelf(l)
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.MarkNeedsLayout()
}

func (l *Label) Color() graphics.Color { return l.color }

func (l *Label) SetColor(color graphics.Color) { l.color = color }

func (l *Label) SetAlign(align graphics.TextAlign) { l.align = align }

// SetMaxWidth wraps lines longer than width pixels. Zero disables it.
func (l *Label) SetMaxWidth(width int) {
	if l.maxWidth == width {
		return
	}
	l.maxWidth = width
	l.MarkNeedsLayout()
}

func (l *Label) wrapWidth(available int) int {
	w := l.maxWidth
	if available > 0 && available < layout.Unbounded && (w == 0 || available < w) {
		w = available
	}
	return w
}

func (l *Label) ContentSize(space graphics.Size) graphics.Size {
	return graphics.LayoutText(l.text, l.wrapWidth(space.Width)).Size
}

func (l *Label) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	if ctx == nil || ctx.Canvas == nil {
		return
	}
	rect := l.Bounds()
	graphics.LayoutText(l.text, l.wrapWidth(rect.Width)).Draw(ctx.Canvas, rect.X, rect.Y, rect.Width, l.align, l.color)
}

var textAlignNames = map[string]graphics.TextAlign{
	"left":   graphics.TextAlignLeft,
	"center": graphics.TextAlignCenter,
	"right":  graphics.TextAlignRight,
}

// ParseProperties reads text, color, text-align and max-width. The text is
// required.
func (l *Label) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	if err := parsing.ExpectChildren(el, "text"); err != nil {
		return err
	}
	if err := parsing.Apply(children, "text", parsing.ParseText, l.SetText); err != nil {
		return err
	}
	if err := parsing.Apply(children, "color", parsing.ParseColor, l.SetColor); err != nil {
		return err
	}
	if err := parsing.Apply(children, "text-align", parsing.EnumParser(textAlignNames), l.SetAlign); err != nil {
		return err
	}
	return parsing.Apply(children, "max-width", parsing.ParseInt, l.SetMaxWidth)
}

func init() {
	parsing.Register("label", func(el *parsing.Element) (core.Component, error) {
		return NewLabel(""), nil
	})
}
