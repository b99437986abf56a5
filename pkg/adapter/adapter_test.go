package adapter_test

import (
	"errors"
	"testing"

	"github.com/go-owo/owo/pkg/adapter"
	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/containers"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	owotest "github.com/go-owo/owo/pkg/testing"
)

type fixture struct {
	adapter *adapter.Adapter[*containers.FlowLayout]
	first   *components.TextBox
	second  *components.TextBox
	box     *components.Box
}

// newFixture lays out two text boxes and a 50x30 box stacked vertically in a
// 200x100 viewport at the origin.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		first:  components.NewTextBox(layout.Fill(1)),
		second: components.NewTextBox(layout.Fill(1)),
		box:    components.NewBox(layout.Fixed(50), layout.Fixed(30), graphics.ColorWhite),
	}
	f.box.SetTooltipText("hint")

	a, err := adapter.Create(0, 0, 200, 100, func(h, v layout.Sizing) *containers.FlowLayout {
		root := containers.VerticalFlow(h, v)
		root.AddChildren(f.first, f.second, f.box)
		return root
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	f.adapter = a
	return f
}

func TestCreateRejectsNilRoot(t *testing.T) {
	_, err := adapter.Create(0, 0, 10, 10, func(h, v layout.Sizing) *containers.FlowLayout {
		return nil
	})
	if !errors.Is(err, adapter.ErrNilRoot) {
		t.Fatalf("err = %v, want ErrNilRoot", err)
	}
}

func TestCreateLaysOutRoot(t *testing.T) {
	f := newFixture(t)

	if got := f.adapter.State(); got != adapter.StateLaidOut {
		t.Errorf("State() = %v, want laid_out", got)
	}
	if got, want := f.adapter.Root().Bounds(), (graphics.Rect{Width: 200, Height: 100}); got != want {
		t.Errorf("root bounds = %+v, want %+v", got, want)
	}
	if got, want := f.second.Bounds(), (graphics.Rect{Y: 20, Width: 200, Height: 20}); got != want {
		t.Errorf("second bounds = %+v, want %+v", got, want)
	}
}

func TestMoveAndResizeIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.adapter.MoveAndResize(10, 5, 120, 60)
	first := f.box.Bounds()
	f.adapter.MoveAndResize(10, 5, 120, 60)

	if got := f.box.Bounds(); got != first {
		t.Errorf("second resize moved box: %+v, want %+v", got, first)
	}
	if got, want := first, (graphics.Rect{X: 10, Y: 45, Width: 50, Height: 30}); got != want {
		t.Errorf("box bounds = %+v, want %+v", got, want)
	}
	if got, want := f.adapter.Viewport(), (graphics.Rect{X: 10, Y: 5, Width: 120, Height: 60}); got != want {
		t.Errorf("Viewport() = %+v, want %+v", got, want)
	}
}

func TestClickFocusesAndTypingReachesFocused(t *testing.T) {
	f := newFixture(t)

	f.adapter.MouseClicked(5, 25, 0)
	if got := f.adapter.Focus().Focused(); got != f.second {
		t.Fatalf("focused = %v, want second text box", got)
	}
	if !f.adapter.CharTyped('x', 0) {
		t.Error("CharTyped not consumed")
	}
	if f.second.Text() != "x" || f.first.Text() != "" {
		t.Errorf("texts = %q, %q", f.first.Text(), f.second.Text())
	}

	f.adapter.MouseClicked(5, 50, 0)
	if got := f.adapter.Focus().Focused(); got != nil {
		t.Errorf("clicking an unfocusable box kept focus on %v", got)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	f := newFixture(t)

	f.adapter.KeyPressed(core.KeyTab, 0, 0)
	if f.adapter.Focus().Focused() != f.first {
		t.Fatal("first tab should focus the first text box")
	}
	f.adapter.KeyPressed(core.KeyTab, 0, 0)
	if f.adapter.Focus().Focused() != f.second {
		t.Fatal("second tab should focus the second text box")
	}
	f.adapter.KeyPressed(core.KeyTab, 0, core.ModShift)
	if f.adapter.Focus().Focused() != f.first {
		t.Fatal("shift+tab should move focus back")
	}
}

func TestFocusDroppedWhenComponentRemoved(t *testing.T) {
	f := newFixture(t)
	f.adapter.Focus().Focus(f.first, core.FocusMouseClick)

	f.adapter.Root().RemoveChild(f.first)

	if got := f.adapter.Focus().Focused(); got != nil {
		t.Errorf("focused = %v, want nil after removal", got)
	}
	if f.adapter.CharTyped('a', 0) {
		t.Error("CharTyped consumed with nothing focused")
	}
}

func TestRenderRelayoutsAndDrawsTooltip(t *testing.T) {
	f := newFixture(t)
	f.adapter.Root().RemoveChild(f.first)
	canvas := owotest.NewRecordingCanvas()

	f.adapter.Render(canvas.Context(), 10, 30, 0, 0)

	if got, want := f.box.Bounds().Y, 20; got != want {
		t.Errorf("box y after relayout = %d, want %d", got, want)
	}
	var tooltip bool
	for _, op := range canvas.OpsNamed("drawText") {
		if op.Params["text"] == "hint" {
			tooltip = true
		}
	}
	if !tooltip {
		t.Errorf("tooltip not drawn, ops: %v", canvas.Names())
	}
	if canvas.Depth() != 0 {
		t.Errorf("unbalanced push/pop, depth %d", canvas.Depth())
	}
}

func TestDisposeMakesAdapterInert(t *testing.T) {
	f := newFixture(t)
	f.adapter.Focus().Focus(f.first, core.FocusMouseClick)
	token := f.first.Token()

	f.adapter.Dispose()
	f.adapter.Dispose()

	if got := f.adapter.State(); got != adapter.StateDisposed {
		t.Errorf("State() = %v, want disposed", got)
	}
	if token.Alive() {
		t.Error("child token still alive after dispose")
	}
	if f.adapter.Focus().Focused() != nil {
		t.Error("focus survived dispose")
	}
	if f.adapter.MouseClicked(5, 5, 0) || f.adapter.KeyPressed(core.KeyTab, 0, 0) || f.adapter.CharTyped('a', 0) {
		t.Error("input dispatched after dispose")
	}

	canvas := owotest.NewRecordingCanvas()
	f.adapter.Render(canvas.Context(), 0, 0, 0, 0)
	if len(canvas.Ops()) != 0 {
		t.Errorf("Render drew after dispose: %v", canvas.Names())
	}
}
