package core

import (
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

// BaseComponent provides the shared state and default behavior of leaf
// components. Embed it and call SetSelf with the concrete component so the
// base can reach overridden hooks (ContentSize, PerformLayout, OnDismount).
type BaseComponent struct {
	self   Component
	parent ParentComponent
	token  *LifecycleToken

	id          string
	horizontal  layout.Sizing
	vertical    layout.Sizing
	positioning layout.Positioning
	margins     graphics.Insets
	tooltip     string

	rect        graphics.Rect
	mounted     bool
	needsLayout bool
	focused     bool
}

// SetSelf registers the concrete component.
func (b *BaseComponent) SetSelf(self Component) {
	b.self = self
	b.token = NewLifecycleToken()
	b.needsLayout = true
}

// Self returns the concrete component registered via SetSelf.
func (b *BaseComponent) Self() Component {
	return b.self
}

// Measure resolves the sizing policy of both axes within constraints.
func (b *BaseComponent) Measure(constraints layout.Constraints) graphics.Size {
	var content func(graphics.Size) graphics.Size
	if sizer, ok := b.self.(ContentSizer); ok {
		content = sizer.ContentSize
	}
	return layout.ResolveSize(b.horizontal, b.vertical, constraints, content)
}

// Arrange stores the final rectangle and lets the concrete component place
// its children. Arranging twice with the same rectangle yields the same state.
func (b *BaseComponent) Arrange(rect graphics.Rect) {
	b.rect = rect
	b.needsLayout = false
	if performer, ok := b.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// Draw is a no-op for components without visuals.
func (b *BaseComponent) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
}

func (b *BaseComponent) OnMouseDown(mouseX, mouseY float64, button int) bool { return false }
func (b *BaseComponent) OnMouseUp(mouseX, mouseY float64, button int) bool   { return false }
func (b *BaseComponent) OnMouseDrag(mouseX, mouseY, deltaX, deltaY float64, button int) bool {
	return false
}
func (b *BaseComponent) OnMouseScroll(mouseX, mouseY, amount float64) bool { return false }
func (b *BaseComponent) OnKeyPress(keyCode, scanCode, modifiers int) bool  { return false }
func (b *BaseComponent) OnCharTyped(ch rune, modifiers int) bool           { return false }

// CanFocus reports false; focusable components override it.
func (b *BaseComponent) CanFocus(source FocusSource) bool { return false }

func (b *BaseComponent) OnFocusGained(source FocusSource) { b.focused = true }
func (b *BaseComponent) OnFocusLost()                     { b.focused = false }

// Focused reports whether the component currently holds focus.
func (b *BaseComponent) Focused() bool { return b.focused }

func (b *BaseComponent) ID() string      { return b.id }
func (b *BaseComponent) SetID(id string) { b.id = id }

// Sizing returns the horizontal and vertical sizing policies.
func (b *BaseComponent) Sizing() (horizontal, vertical layout.Sizing) {
	return b.horizontal, b.vertical
}

// SetSizing validates and applies new sizing policies. Invalid policies
// leave the current ones untouched.
func (b *BaseComponent) SetSizing(horizontal, vertical layout.Sizing) error {
	if err := layout.ValidatePair(horizontal, vertical); err != nil {
		return err
	}
	if b.horizontal == horizontal && b.vertical == vertical {
		return nil
	}
	b.horizontal, b.vertical = horizontal, vertical
	b.MarkNeedsLayout()
	return nil
}

func (b *BaseComponent) Positioning() layout.Positioning { return b.positioning }

// SetPositioning applies a new positioning and schedules a layout pass when
// it changed.
func (b *BaseComponent) SetPositioning(positioning layout.Positioning) {
	if b.positioning == positioning {
		return
	}
	b.positioning = positioning
	b.MarkNeedsLayout()
}

func (b *BaseComponent) Margins() graphics.Insets { return b.margins }

func (b *BaseComponent) SetMargins(margins graphics.Insets) {
	if b.margins == margins {
		return
	}
	b.margins = margins
	b.MarkNeedsLayout()
}

func (b *BaseComponent) TooltipText() string        { return b.tooltip }
func (b *BaseComponent) SetTooltipText(text string) { b.tooltip = text }

func (b *BaseComponent) Bounds() graphics.Rect { return b.rect }

// X returns the arranged left edge.
func (b *BaseComponent) X() int { return b.rect.X }

// Y returns the arranged top edge.
func (b *BaseComponent) Y() int { return b.rect.Y }

// Width returns the arranged width.
func (b *BaseComponent) Width() int { return b.rect.Width }

// Height returns the arranged height.
func (b *BaseComponent) Height() int { return b.rect.Height }

func (b *BaseComponent) FullSize() graphics.Size {
	return b.margins.Inflate(b.rect.Size())
}

func (b *BaseComponent) IsInBoundingBox(x, y float64) bool {
	return b.rect.Contains(x, y)
}

func (b *BaseComponent) Parent() ParentComponent { return b.parent }

// Mount attaches the component under parent. A component that was dismounted
// earlier receives a fresh lifecycle token.
func (b *BaseComponent) Mount(parent ParentComponent) {
	b.parent = parent
	b.mounted = true
	if !b.token.Alive() {
		b.token = NewLifecycleToken()
	}
	b.needsLayout = true
}

// Dismount detaches the component and cancels its lifecycle token, so
// pending asynchronous callbacks holding it become no-ops.
func (b *BaseComponent) Dismount(reason DismountReason) {
	b.parent = nil
	b.mounted = false
	b.focused = false
	b.token.Cancel()
	if listener, ok := b.self.(DismountListener); ok {
		listener.OnDismount(reason)
	}
}

func (b *BaseComponent) Mounted() bool { return b.mounted }

func (b *BaseComponent) Token() *LifecycleToken { return b.token }

func (b *BaseComponent) NeedsLayout() bool { return b.needsLayout }

// MarkNeedsLayout flags the component and its ancestors for the next layout pass.
func (b *BaseComponent) MarkNeedsLayout() {
	if b.needsLayout {
		return
	}
	b.needsLayout = true
	if b.parent != nil {
		b.parent.MarkNeedsLayout()
	}
}
