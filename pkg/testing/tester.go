package testing

import (
	"testing"

	"github.com/go-owo/owo/pkg/adapter"
	"github.com/go-owo/owo/pkg/containers"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

const (
	// DefaultTestWidth is the default width of the test viewport.
	DefaultTestWidth = 320
	// DefaultTestHeight is the default height of the test viewport.
	DefaultTestHeight = 240
)

// UITester drives a component tree through an adapter without a host. The
// tree under test is mounted in a stack root that fills the viewport, and
// frames are drawn into a RecordingCanvas.
type UITester struct {
	adapter *adapter.Adapter[*containers.StackLayout]
	canvas  *RecordingCanvas
	size    graphics.Size
	mouseX  int
	mouseY  int
}

// NewUITester creates a tester with the default viewport. Call Cleanup when
// done, or use NewUITesterWithT.
func NewUITester() *UITester {
	return &UITester{
		canvas: NewRecordingCanvas(),
		size:   graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// NewUITesterWithT creates a tester that is cleaned up with t.
func NewUITesterWithT(t *testing.T) *UITester {
	tester := NewUITester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the adapter, dismounting the tree.
func (t *UITester) Cleanup() {
	if t.adapter != nil {
		t.adapter.Dispose()
		t.adapter = nil
	}
}

// SetSize changes the viewport, relaying out a mounted tree.
func (t *UITester) SetSize(size graphics.Size) {
	t.size = size
	if t.adapter != nil {
		t.adapter.MoveAndResize(0, 0, size.Width, size.Height)
	}
}

// Mount replaces the tree under test with c and lays it out.
func (t *UITester) Mount(c core.Component) error {
	t.Cleanup()
	a, err := adapter.Create(0, 0, t.size.Width, t.size.Height, func(h, v layout.Sizing) *containers.StackLayout {
		root := containers.NewStackLayout(h, v)
		root.AddChild(c)
		return root
	})
	if err != nil {
		return err
	}
	t.adapter = a
	return nil
}

// Adapter returns the adapter driving the tree, or nil before Mount.
func (t *UITester) Adapter() *adapter.Adapter[*containers.StackLayout] {
	return t.adapter
}

// Root returns the stack root holding the mounted component.
func (t *UITester) Root() core.Component {
	if t.adapter == nil {
		return nil
	}
	return t.adapter.Root()
}

// Pump draws one frame at the last pointer position and returns the ops it
// produced. Pending layout runs first.
func (t *UITester) Pump() []DisplayOp {
	t.canvas.Reset()
	if t.adapter != nil {
		t.adapter.Render(t.canvas.Context(), t.mouseX, t.mouseY, 0, 0)
	}
	return t.canvas.Ops()
}

// Canvas returns the canvas frames are drawn into.
func (t *UITester) Canvas() *RecordingCanvas {
	return t.canvas
}

// Find evaluates a finder against the mounted tree.
func (t *UITester) Find(finder Finder) FinderResult {
	return Find(t.Root(), finder)
}

// Focused returns the focused component, or nil.
func (t *UITester) Focused() core.Component {
	if t.adapter == nil {
		return nil
	}
	return t.adapter.Focus().Focused()
}
