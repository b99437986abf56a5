// Package layers attaches owo component trees to screens owned by the host.
//
// A Layer describes an overlay: how to build its root component and how to
// populate it once the screen exists. Every time a matching screen opens the
// layer spawns an Instance bound to that screen. Instances can pin
// components to host widgets; those positions are recomputed from the
// widget's current rectangle because the host lays its widgets out on its
// own schedule.
package layers

import (
	"fmt"

	"github.com/go-owo/owo/pkg/adapter"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/logging"
)

// Element is anything the host lists as a child of a screen. Elements that
// implement Widget or Wrapper take part in widget queries.
type Element = any

// Screen is the host screen an Instance is attached to. The instance never
// controls its lifetime.
type Screen interface {
	Width() int
	Height() int
	Children() []Element
}

// Widget is a host element with a rectangle. It is only read.
type Widget interface {
	X() int
	Y() int
	Width() int
	Height() int
}

// Wrapper is a host element that groups other elements.
type Wrapper interface {
	WrappedElements() []Element
}

// AnchorSide is the edge of a host widget a component is pinned to.
type AnchorSide int

const (
	AnchorTop AnchorSide = iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

func (s AnchorSide) String() string {
	switch s {
	case AnchorTop:
		return "top"
	case AnchorBottom:
		return "bottom"
	case AnchorLeft:
		return "left"
	case AnchorRight:
		return "right"
	default:
		return fmt.Sprintf("AnchorSide(%d)", int(s))
	}
}

// Layer describes an overlay for screens of type S with a root of type R.
// It holds no per-screen state and may be shared.
type Layer[S Screen, R core.ParentComponent] struct {
	rootMaker   adapter.RootFactory[R]
	initializer func(*Instance[S, R])
}

// New returns a layer building its root with rootMaker and populating each
// instance with initializer.
func New[S Screen, R core.ParentComponent](rootMaker adapter.RootFactory[R], initializer func(*Instance[S, R])) *Layer[S, R] {
	return &Layer[S, R]{rootMaker: rootMaker, initializer: initializer}
}

// Instantiate attaches the layer to screen. The adapter covers the whole
// screen and the initializer runs exactly once before Instantiate returns.
func (l *Layer[S, R]) Instantiate(screen S) (*Instance[S, R], error) {
	a, err := adapter.Create(0, 0, screen.Width(), screen.Height(), l.rootMaker)
	if err != nil {
		return nil, fmt.Errorf("layers: instantiate: %w", err)
	}
	inst := &Instance[S, R]{
		Screen:         screen,
		Adapter:        a,
		positionsStale: true,
		logger:         logging.Get("layers"),
	}
	if l.initializer != nil {
		l.initializer(inst)
	}
	return inst, nil
}

// Instance is one layer attached to one screen.
type Instance[S Screen, R core.ParentComponent] struct {
	// Screen is the host screen this instance is attached to.
	Screen S
	// Adapter drives the instance's component tree. Build the UI under
	// Adapter.Root().
	Adapter *adapter.Adapter[R]
	// AggressivePositioning re-runs the widget anchoring every frame instead
	// of only after the screen opened or resized. Set it when the target
	// widgets move on their own.
	AggressivePositioning bool

	layoutUpdaters []func()
	positionsStale bool
	logger         logging.Logger
}

// Resize moves the adapter viewport to cover a screen of the new size.
func (i *Instance[S, R]) Resize(width, height int) {
	i.Adapter.MoveAndResize(0, 0, width, height)
	i.positionsStale = true
}

// QueryWidget returns the first widget on the screen matching locator,
// walking wrapper elements depth first, or nil.
func (i *Instance[S, R]) QueryWidget(locator func(Widget) bool) Widget {
	if locator == nil {
		return nil
	}
	var widgets []Widget
	for _, element := range i.Screen.Children() {
		widgets = collectWidgets(element, widgets)
	}
	for _, w := range widgets {
		if locator(w) {
			return w
		}
	}
	return nil
}

func collectWidgets(element Element, into []Widget) []Widget {
	if w, ok := element.(Widget); ok {
		into = append(into, w)
	}
	if wrapper, ok := element.(Wrapper); ok {
		for _, child := range wrapper.WrappedElements() {
			into = collectWidgets(child, into)
		}
	}
	return into
}

// AlignComponentToWidget pins component to the anchor side of the widget
// matched by locator. Justification moves the component along that side:
// 0 aligns with the widget's left (or top) edge and 1 with its right (or
// bottom) edge. The position is computed on every DispatchLayoutUpdates; when
// no widget matches the component goes to the instance origin.
func (i *Instance[S, R]) AlignComponentToWidget(locator func(Widget) bool, anchor AnchorSide, justification float64, component core.Component) {
	i.layoutUpdaters = append(i.layoutUpdaters, func() {
		widget := i.QueryWidget(locator)
		if widget == nil {
			component.SetPositioning(layout.Absolute(0, 0))
			return
		}
		component.SetPositioning(anchorPositioning(widget, anchor, justification, component.FullSize()))
	})
}

func anchorPositioning(w Widget, anchor AnchorSide, justification float64, size graphics.Size) layout.Positioning {
	alongX := int(float64(w.X()) + float64(w.Width()-size.Width)*justification)
	alongY := int(float64(w.Y()) + float64(w.Height()-size.Height)*justification)
	switch anchor {
	case AnchorTop:
		return layout.Absolute(alongX, w.Y()-size.Height)
	case AnchorBottom:
		return layout.Absolute(alongX, w.Y()+w.Height())
	case AnchorLeft:
		return layout.Absolute(w.X()-size.Width, alongY)
	case AnchorRight:
		return layout.Absolute(w.X()+w.Width(), alongY)
	default:
		return layout.Absolute(0, 0)
	}
}

// DispatchLayoutUpdates runs every registered anchoring updater in
// registration order.
func (i *Instance[S, R]) DispatchLayoutUpdates() {
	for _, update := range i.layoutUpdaters {
		update()
	}
}

// frame runs the anchoring updaters when they are due and draws the tree.
// Components must have their size before they can be anchored, so a pending
// layout pass runs first.
func (i *Instance[S, R]) frame(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	if i.Adapter.Disposed() {
		return
	}
	if i.AggressivePositioning || i.positionsStale {
		if i.Adapter.Root().NeedsLayout() {
			i.Adapter.Inflate()
		}
		i.DispatchLayoutUpdates()
		i.positionsStale = false
	}
	i.Adapter.Render(ctx, mouseX, mouseY, partialTicks, delta)
}

func (i *Instance[S, R]) input() inputTarget { return i.Adapter }

func (i *Instance[S, R]) close() {
	i.Adapter.Dispose()
	i.logger.Debug("layer instance closed", "updaters", len(i.layoutUpdaters))
}
