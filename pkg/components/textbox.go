package components

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

const textBoxHeight = 20

// TextBox is a single-line text field whose value is observable.
type TextBox struct {
	core.BaseComponent

	value     *core.Observable[string]
	maxLength int
}

// NewTextBox returns an empty text box of fixed height.
func NewTextBox(horizontal layout.Sizing) *TextBox {
	t := &TextBox{value: core.NewObservable(""), maxLength: 32}
	t.SetSelf(t)
	t.value.Observe(func(string) { t.MarkNeedsLayout() })
	if err := t.SetSizing(horizontal, layout.Fixed(textBoxHeight)); err != nil {
		panic("components: invalid sizing: " + err.Error())
	}
	return t
}

// TextValue exposes the observable value.
func (t *TextBox) TextValue() *core.Observable[string] { return t.value }

func (t *TextBox) Text() string { return t.value.Get() }

// SetText replaces the text, truncated to the maximum length.
func (t *TextBox) SetText(text string) {
	t.value.Set(t.clamp(text))
}

// OnChanged is the hook the host text field calls after every edit. Text
// beyond the maximum length is cut off and reported.
func (t *TextBox) OnChanged(text string) {
	clamped := t.clamp(text)
	if clamped != text {
		errors.Report(&errors.OwoError{
			Op:   "components.TextBox.OnChanged",
			Kind: errors.KindValidation,
			Err:  fmt.Errorf("text of %d runes exceeds max length %d", utf8.RuneCountInString(text), t.maxLength),
		})
	}
	t.value.Set(clamped)
}

func (t *TextBox) clamp(text string) string {
	if utf8.RuneCountInString(text) > t.maxLength {
		return string([]rune(text)[:t.maxLength])
	}
	return text
}

// Observe registers fn for text changes.
func (t *TextBox) Observe(fn func(string)) { t.value.Observe(fn) }

func (t *TextBox) MaxLength() int { return t.maxLength }

// SetMaxLength limits the text to n runes, truncating the current text.
func (t *TextBox) SetMaxLength(n int) {
	t.maxLength = max(0, n)
	t.SetText(t.Text())
}

func (t *TextBox) CanFocus(source core.FocusSource) bool { return true }

// OnMouseDown consumes left clicks, which focus the box.
func (t *TextBox) OnMouseDown(mouseX, mouseY float64, button int) bool {
	return button == core.MouseButtonLeft
}

func (t *TextBox) OnCharTyped(ch rune, modifiers int) bool {
	if !t.Focused() {
		return false
	}
	if utf8.RuneCountInString(t.Text()) >= t.maxLength {
		return true
	}
	t.OnChanged(t.Text() + string(ch))
	return true
}

func (t *TextBox) OnKeyPress(keyCode, scanCode, modifiers int) bool {
	if !t.Focused() || keyCode != core.KeyBackspace {
		return false
	}
	text := []rune(t.Text())
	if len(text) > 0 {
		t.OnChanged(string(text[:len(text)-1]))
	}
	return true
}

func (t *TextBox) ContentSize(space graphics.Size) graphics.Size {
	return graphics.Size{Width: graphics.TextWidth(t.Text()) + 8, Height: graphics.LineHeight() + 8}
}

func (t *TextBox) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	rect := t.Bounds()
	border := graphics.RGB(0xA0, 0xA0, 0xA0)
	if t.Focused() {
		border = graphics.ColorWhite
	}
	ctx.FillRect(rect, border)
	ctx.FillRect(rect.Deflate(graphics.InsetsAll(1)), graphics.ColorBlack)
	if ctx == nil || ctx.Canvas == nil {
		return
	}
	ctx.PushScissor(rect)
	ctx.Canvas.DrawText(t.Text(), rect.X+4, rect.Y+(rect.Height-graphics.LineHeight())/2, graphics.RGB(0xE0, 0xE0, 0xE0))
	ctx.PopScissor()
}

// ParseProperties reads text and max-length.
func (t *TextBox) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	if err := parsing.Apply(children, "max-length", parsing.ParseInt, t.SetMaxLength); err != nil {
		return err
	}
	return parsing.Apply(children, "text", parsing.ParseText, t.SetText)
}

func init() {
	parsing.Register("text-box", func(el *parsing.Element) (core.Component, error) {
		return NewTextBox(layout.Fill(1)), nil
	})
}
