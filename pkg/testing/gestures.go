package testing

import (
	"fmt"

	"github.com/go-owo/owo/pkg/core"
)

// center returns the middle of c's arranged rectangle.
func center(c core.Component) (float64, float64) {
	b := c.Bounds()
	return float64(b.X) + float64(b.Width)/2, float64(b.Y) + float64(b.Height)/2
}

func (t *UITester) first(finder Finder) (core.Component, error) {
	c := t.Find(finder).FirstOrNil()
	if c == nil {
		return nil, fmt.Errorf("click target not found: %s", finder.Description())
	}
	return c, nil
}

// Click presses and releases the left button over the center of the first
// component matching finder. It reports whether the press was consumed.
func (t *UITester) Click(finder Finder) (bool, error) {
	c, err := t.first(finder)
	if err != nil {
		return false, err
	}
	x, y := center(c)
	return t.ClickAt(x, y), nil
}

// ClickAt presses and releases the left button at (x, y).
func (t *UITester) ClickAt(x, y float64) bool {
	if t.adapter == nil {
		return false
	}
	t.Hover(x, y)
	consumed := t.adapter.MouseClicked(x, y, core.MouseButtonLeft)
	t.adapter.MouseReleased(x, y, core.MouseButtonLeft)
	return consumed
}

// Hover moves the pointer used by the next Pump.
func (t *UITester) Hover(x, y float64) {
	t.mouseX, t.mouseY = int(x), int(y)
}

// Drag presses over the center of the first component matching finder and
// drags by (dx, dy) in one step.
func (t *UITester) Drag(finder Finder, dx, dy float64) error {
	c, err := t.first(finder)
	if err != nil {
		return err
	}
	if t.adapter == nil {
		return nil
	}
	x, y := center(c)
	t.adapter.MouseClicked(x, y, core.MouseButtonLeft)
	t.adapter.MouseDragged(x+dx, y+dy, dx, dy, core.MouseButtonLeft)
	t.adapter.MouseReleased(x+dx, y+dy, core.MouseButtonLeft)
	return nil
}

// Type sends each rune of text to the focused component.
func (t *UITester) Type(text string) {
	if t.adapter == nil {
		return
	}
	for _, r := range text {
		t.adapter.CharTyped(r, 0)
	}
}

// PressKey sends a key press with modifiers.
func (t *UITester) PressKey(keyCode, modifiers int) bool {
	if t.adapter == nil {
		return false
	}
	return t.adapter.KeyPressed(keyCode, 0, modifiers)
}
