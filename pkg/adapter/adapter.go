// Package adapter connects a component tree to a rectangle of a host screen.
//
// An Adapter owns the root component. It runs layout passes when the
// viewport changes or the tree asks for one, draws the tree, and routes
// host input to the right component.
package adapter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/focus"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/logging"
)

// Sentinel errors for adapter operations.
var (
	// ErrNilRoot is returned by Create when the root factory returns nil.
	ErrNilRoot = errors.New("adapter: root factory returned nil")

	// ErrDisposed is returned when operating on a disposed adapter.
	ErrDisposed = errors.New("adapter: disposed")
)

// State is the lifecycle state of an Adapter.
type State int

const (
	StateUninitialized State = iota
	StateLaidOut
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLaidOut:
		return "laid_out"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RootFactory builds the root component with the sizing the adapter wants
// it to have.
type RootFactory[R core.ParentComponent] func(horizontal, vertical layout.Sizing) R

// Option configures an Adapter.
type Option func(*options)

type options struct {
	logger logging.Logger
	focus  *focus.Handler
}

// WithLogger sets the logger. Defaults to the "adapter" package logger.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithFocusHandler shares a focus handler instead of creating one. The
// adapter points it at its root.
func WithFocusHandler(h *focus.Handler) Option {
	return func(o *options) { o.focus = h }
}

// Adapter drives one component tree inside a viewport.
//
// All methods must be called from the host's render thread. Once disposed,
// every method is a no-op.
type Adapter[R core.ParentComponent] struct {
	root     R
	viewport graphics.Rect
	state    State
	focus    *focus.Handler
	logger   logging.Logger
}

// Create builds the root with fill sizing on both axes and lays it out in
// the viewport (x, y, width, height).
func Create[R core.ParentComponent](x, y, width, height int, rootFactory RootFactory[R], opts ...Option) (*Adapter[R], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Get("adapter")
	}
	if rootFactory == nil {
		return nil, ErrNilRoot
	}
	root := rootFactory(layout.Fill(1), layout.Fill(1))
	if isNil(root) {
		return nil, ErrNilRoot
	}
	if o.focus == nil {
		o.focus = focus.NewHandler(root)
	} else {
		o.focus.SetRoot(root)
	}

	a := &Adapter[R]{
		root:   root,
		state:  StateUninitialized,
		focus:  o.focus,
		logger: o.logger,
	}
	a.MoveAndResize(x, y, width, height)
	return a, nil
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Root returns the root component.
func (a *Adapter[R]) Root() R { return a.root }

// State returns the lifecycle state.
func (a *Adapter[R]) State() State { return a.state }

// Disposed reports whether Dispose was called.
func (a *Adapter[R]) Disposed() bool { return a.state == StateDisposed }

// Viewport returns the rectangle the root is laid out in.
func (a *Adapter[R]) Viewport() graphics.Rect { return a.viewport }

// Focus returns the focus handler of the tree.
func (a *Adapter[R]) Focus() *focus.Handler { return a.focus }

// MoveAndResize changes the viewport and runs a full layout pass.
func (a *Adapter[R]) MoveAndResize(x, y, width, height int) {
	if a.Disposed() {
		return
	}
	a.viewport = graphics.Rect{X: x, Y: y, Width: max(0, width), Height: max(0, height)}
	a.logger.Debug("adapter viewport changed", "x", x, "y", y, "width", width, "height", height)
	a.Inflate()
}

// Inflate runs a full layout pass in the current viewport.
func (a *Adapter[R]) Inflate() {
	if a.Disposed() {
		return
	}
	a.root.Measure(layout.Tight(a.viewport.Size()))
	a.root.Arrange(a.viewport)
	a.state = StateLaidOut
}

// Render draws the tree, re-running layout first when a component asked for
// it, then the tooltip of the hovered component.
func (a *Adapter[R]) Render(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	if a.Disposed() {
		return
	}
	if a.root.NeedsLayout() {
		a.Inflate()
	}
	a.root.Draw(ctx, mouseX, mouseY, partialTicks, delta)

	if tooltip := a.tooltipAt(float64(mouseX), float64(mouseY)); tooltip != "" {
		ctx.DrawTooltip(tooltip, mouseX, mouseY)
	}
}

func (a *Adapter[R]) tooltipAt(x, y float64) string {
	for c := a.hit(x, y); c != nil; c = parentOf(c) {
		if text := c.TooltipText(); text != "" {
			return text
		}
	}
	return ""
}

// hit returns the deepest component under (x, y), the root when no child
// contains the point, or nil outside the viewport.
func (a *Adapter[R]) hit(x, y float64) core.Component {
	if !a.root.IsInBoundingBox(x, y) {
		return nil
	}
	if c := a.root.ChildAt(x, y); c != nil {
		return c
	}
	return a.root
}

func parentOf(c core.Component) core.Component {
	if p := c.Parent(); p != nil {
		return p
	}
	return nil
}

// bubble offers an event to c and then its ancestors until one consumes it.
// Coordinates are translated to each component's top-left corner.
func bubble(c core.Component, x, y float64, handle func(c core.Component, x, y float64) bool) bool {
	for ; c != nil; c = parentOf(c) {
		b := c.Bounds()
		if handle(c, x-float64(b.X), y-float64(b.Y)) {
			return true
		}
	}
	return false
}

// MouseClicked updates click focus and dispatches a press.
func (a *Adapter[R]) MouseClicked(mouseX, mouseY float64, button int) bool {
	if a.Disposed() {
		return false
	}
	target := a.hit(mouseX, mouseY)
	a.focus.UpdateClickFocus(target)
	return bubble(target, mouseX, mouseY, func(c core.Component, x, y float64) bool {
		return c.OnMouseDown(x, y, button)
	})
}

// MouseReleased dispatches a release to the component under the pointer.
func (a *Adapter[R]) MouseReleased(mouseX, mouseY float64, button int) bool {
	if a.Disposed() {
		return false
	}
	return bubble(a.hit(mouseX, mouseY), mouseX, mouseY, func(c core.Component, x, y float64) bool {
		return c.OnMouseUp(x, y, button)
	})
}

// MouseDragged dispatches a drag to the focused component, which keeps
// receiving it when the pointer leaves its bounds, or else to the component
// under the pointer.
func (a *Adapter[R]) MouseDragged(mouseX, mouseY, deltaX, deltaY float64, button int) bool {
	if a.Disposed() {
		return false
	}
	target := a.focus.Focused()
	if target == nil {
		target = a.hit(mouseX, mouseY)
	}
	return bubble(target, mouseX, mouseY, func(c core.Component, x, y float64) bool {
		return c.OnMouseDrag(x, y, deltaX, deltaY, button)
	})
}

// MouseScrolled dispatches a scroll to the component under the pointer.
func (a *Adapter[R]) MouseScrolled(mouseX, mouseY, amount float64) bool {
	if a.Disposed() {
		return false
	}
	return bubble(a.hit(mouseX, mouseY), mouseX, mouseY, func(c core.Component, x, y float64) bool {
		return c.OnMouseScroll(x, y, amount)
	})
}

// KeyPressed cycles focus on Tab (backwards with Shift) and otherwise hands
// the key to the focused component.
func (a *Adapter[R]) KeyPressed(keyCode, scanCode, modifiers int) bool {
	if a.Disposed() {
		return false
	}
	if keyCode == core.KeyTab {
		return a.focus.Cycle(modifiers&core.ModShift == 0)
	}
	focused := a.focus.Focused()
	if focused == nil {
		return false
	}
	return focused.OnKeyPress(keyCode, scanCode, modifiers)
}

// CharTyped hands a typed character to the focused component.
func (a *Adapter[R]) CharTyped(ch rune, modifiers int) bool {
	if a.Disposed() {
		return false
	}
	focused := a.focus.Focused()
	if focused == nil {
		return false
	}
	return focused.OnCharTyped(ch, modifiers)
}

// Dispose clears focus and dismounts the tree. Later calls do nothing.
func (a *Adapter[R]) Dispose() {
	if a.Disposed() {
		return
	}
	a.focus.Clear()
	a.root.Dismount(core.DismountDisposed)
	a.state = StateDisposed
	a.logger.Debug("adapter disposed")
}
