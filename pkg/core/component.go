package core

import (
	"fmt"

	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

// Mouse buttons as reported by the host.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// Key codes and modifier bits as reported by the host (GLFW values).
const (
	KeyTab       = 258
	KeyBackspace = 259
	KeyDelete    = 261

	ModShift   = 0x1
	ModControl = 0x2
)

// FocusSource describes how a component is about to acquire focus.
type FocusSource int

const (
	// FocusMouseClick is focus acquired by clicking the component.
	FocusMouseClick FocusSource = iota
	// FocusKeyboardCycle is focus acquired through tab navigation.
	FocusKeyboardCycle
)

func (s FocusSource) String() string {
	switch s {
	case FocusMouseClick:
		return "mouse_click"
	case FocusKeyboardCycle:
		return "keyboard_cycle"
	default:
		return fmt.Sprintf("FocusSource(%d)", int(s))
	}
}

// DismountReason tells a component why it left the tree.
type DismountReason int

const (
	// DismountRemoved means the parent dropped the component.
	DismountRemoved DismountReason = iota
	// DismountDisposed means the whole tree is being torn down.
	DismountDisposed
)

// Component is a node of the retained UI tree.
//
// A layout pass calls Measure with the space the parent offers and then
// Arrange with the final rectangle (margins excluded). Input hooks receive
// coordinates relative to the component's top-left corner and report whether
// they consumed the event.
type Component interface {
	Measure(constraints layout.Constraints) graphics.Size
	Arrange(rect graphics.Rect)
	Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64)

	OnMouseDown(mouseX, mouseY float64, button int) bool
	OnMouseUp(mouseX, mouseY float64, button int) bool
	OnMouseDrag(mouseX, mouseY, deltaX, deltaY float64, button int) bool
	OnMouseScroll(mouseX, mouseY, amount float64) bool
	OnKeyPress(keyCode, scanCode, modifiers int) bool
	OnCharTyped(ch rune, modifiers int) bool
	CanFocus(source FocusSource) bool
	OnFocusGained(source FocusSource)
	OnFocusLost()

	ID() string
	SetID(id string)
	Sizing() (horizontal, vertical layout.Sizing)
	SetSizing(horizontal, vertical layout.Sizing) error
	Positioning() layout.Positioning
	SetPositioning(positioning layout.Positioning)
	Margins() graphics.Insets
	SetMargins(margins graphics.Insets)
	TooltipText() string
	SetTooltipText(text string)

	// Bounds is the arranged rectangle, margins excluded.
	Bounds() graphics.Rect
	// FullSize is the arranged size including margins.
	FullSize() graphics.Size
	IsInBoundingBox(x, y float64) bool

	Parent() ParentComponent
	Mount(parent ParentComponent)
	Dismount(reason DismountReason)
	Mounted() bool
	// Token is cancelled when the component leaves the tree.
	Token() *LifecycleToken

	NeedsLayout() bool
	MarkNeedsLayout()
}

// ParentComponent is a Component that owns an ordered list of children.
type ParentComponent interface {
	Component

	Children() []Component
	AddChild(child Component)
	RemoveChild(child Component)
	DetachChild(child Component) bool
	ClearChildren()
	// ChildAt returns the deepest descendant containing (x, y), topmost
	// child first, or nil when no child does.
	ChildAt(x, y float64) Component
	Padding() graphics.Insets
	SetPadding(padding graphics.Insets)
}

// ContentSizer is implemented by components with intrinsic content. It is
// consulted for content-sized axes with the space available to the content.
type ContentSizer interface {
	ContentSize(space graphics.Size) graphics.Size
}

// FlowArranger is implemented by containers that place layout-positioned
// children. Children with absolute or relative positioning never reach it.
type FlowArranger interface {
	ArrangeFlow(content graphics.Rect, children []Component)
}

// DismountListener is implemented by components owning host resources that
// must be released when they leave the tree.
type DismountListener interface {
	OnDismount(reason DismountReason)
}

// Walk visits root and its descendants depth first in child order. Returning
// false from visit skips the component's children.
func Walk(root Component, visit func(Component) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	parent, ok := root.(ParentComponent)
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		Walk(child, visit)
	}
}

// IsAttached reports whether c is root or a descendant of root.
func IsAttached(c Component, root Component) bool {
	if c == nil || root == nil {
		return false
	}
	for node := c; node != nil; {
		if node == root {
			return true
		}
		parent := node.Parent()
		if parent == nil {
			return false
		}
		node = parent
	}
	return false
}

// FindByID returns the first component in root's subtree with the given id.
func FindByID(root Component, id string) Component {
	var found Component
	Walk(root, func(c Component) bool {
		if found != nil {
			return false
		}
		if c.ID() == id {
			found = c
			return false
		}
		return true
	})
	return found
}
