package core

import (
	"slices"

	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

// BaseParent provides child ownership, overlay placement and child drawing
// for containers. Containers embed it, call SetSelf, and implement
// FlowArranger (and usually ContentSizer) for their flow algorithm.
type BaseParent struct {
	BaseComponent

	children      []Component
	padding       graphics.Insets
	surface       graphics.Color
	allowOverflow bool
}

// Children returns the children in insertion order. The slice must not be modified.
func (p *BaseParent) Children() []Component {
	return p.children
}

// AddChild appends child. A child that already has a parent is moved
// without being dismounted, so it keeps its token and host resources.
func (p *BaseParent) AddChild(child Component) {
	if child == nil {
		return
	}
	if old := child.Parent(); old != nil {
		old.DetachChild(child)
	}
	p.children = append(p.children, child)
	child.Mount(p.parentSelf())
	p.MarkNeedsLayout()
}

// AddChildren appends each child in order.
func (p *BaseParent) AddChildren(children ...Component) {
	for _, child := range children {
		p.AddChild(child)
	}
}

// RemoveChild drops child and dismounts it. Unknown children are ignored.
func (p *BaseParent) RemoveChild(child Component) {
	idx := slices.Index(p.children, child)
	if idx < 0 {
		return
	}
	p.children = slices.Delete(p.children, idx, idx+1)
	child.Dismount(DismountRemoved)
	p.MarkNeedsLayout()
}

// DetachChild drops child without dismounting it and reports whether it was
// a child. The caller is expected to mount it elsewhere.
func (p *BaseParent) DetachChild(child Component) bool {
	idx := slices.Index(p.children, child)
	if idx < 0 {
		return false
	}
	p.children = slices.Delete(p.children, idx, idx+1)
	p.MarkNeedsLayout()
	return true
}

// ClearChildren removes every child.
func (p *BaseParent) ClearChildren() {
	children := p.children
	p.children = nil
	for _, child := range children {
		child.Dismount(DismountRemoved)
	}
	p.MarkNeedsLayout()
}

func (p *BaseParent) Padding() graphics.Insets { return p.padding }

func (p *BaseParent) SetPadding(padding graphics.Insets) {
	if p.padding == padding {
		return
	}
	p.padding = padding
	p.MarkNeedsLayout()
}

// Surface returns the background color filled behind the children.
func (p *BaseParent) Surface() graphics.Color { return p.surface }

// SetSurface sets the background color. Transparent draws nothing.
func (p *BaseParent) SetSurface(color graphics.Color) { p.surface = color }

// AllowOverflow reports whether children may draw outside the parent.
func (p *BaseParent) AllowOverflow() bool { return p.allowOverflow }

// SetAllowOverflow toggles clipping of children to the parent's bounds.
func (p *BaseParent) SetAllowOverflow(allow bool) { p.allowOverflow = allow }

// ContentRect is the arranged rectangle minus padding.
func (p *BaseParent) ContentRect() graphics.Rect {
	return p.rect.Deflate(p.padding)
}

// Mount attaches the parent and re-attaches its children, which were
// detached by an earlier Dismount.
func (p *BaseParent) Mount(parent ParentComponent) {
	p.BaseComponent.Mount(parent)
	self := p.parentSelf()
	for _, child := range p.children {
		if child.Parent() != self {
			child.Mount(self)
		}
	}
}

// Dismount detaches the parent and its whole subtree.
func (p *BaseParent) Dismount(reason DismountReason) {
	for _, child := range p.children {
		child.Dismount(reason)
	}
	p.BaseComponent.Dismount(reason)
}

// ContentSize defaults to the bounding box of the flow children stacked at
// the content origin.
func (p *BaseParent) ContentSize(space graphics.Size) graphics.Size {
	inner := layout.Loose(space).Deflate(p.padding)
	var size graphics.Size
	for _, child := range p.children {
		if child.Positioning().BypassesFlow() {
			continue
		}
		margins := child.Margins()
		full := margins.Inflate(child.Measure(inner.Deflate(margins)))
		size.Width = max(size.Width, full.Width)
		size.Height = max(size.Height, full.Height)
	}
	return p.padding.Inflate(size)
}

// PerformLayout splits children into flow and overlay children, hands the
// flow children to the concrete container and places the overlays itself.
func (p *BaseParent) PerformLayout() {
	content := p.ContentRect()

	flow := make([]Component, 0, len(p.children))
	for _, child := range p.children {
		if !child.Positioning().BypassesFlow() {
			flow = append(flow, child)
		}
	}
	if arranger, ok := p.self.(FlowArranger); ok {
		arranger.ArrangeFlow(content, flow)
	} else {
		for _, child := range flow {
			ArrangeAt(child, content, content.Position())
		}
	}

	for _, child := range p.children {
		if child.Positioning().BypassesFlow() {
			p.arrangeOverlay(child, content)
		}
	}
}

func (p *BaseParent) arrangeOverlay(child Component, content graphics.Rect) {
	margins := child.Margins()
	size := child.Measure(layout.Loose(content.Size()).Deflate(margins))
	origin := child.Positioning().Resolve(content, margins.Inflate(size))
	child.Arrange(graphics.Rect{
		X:      origin.X + margins.Left,
		Y:      origin.Y + margins.Top,
		Width:  size.Width,
		Height: size.Height,
	})
}

// ArrangeAt measures child against the space left in content from origin
// and arranges it there, honoring its margins. It returns the full size.
func ArrangeAt(child Component, content graphics.Rect, origin graphics.Point) graphics.Size {
	margins := child.Margins()
	space := graphics.Size{
		Width:  content.Right() - origin.X,
		Height: content.Bottom() - origin.Y,
	}
	size := child.Measure(layout.Loose(space).Deflate(margins))
	child.Arrange(graphics.Rect{
		X:      origin.X + margins.Left,
		Y:      origin.Y + margins.Top,
		Width:  size.Width,
		Height: size.Height,
	})
	return margins.Inflate(size)
}

// Draw fills the surface and draws the children in order, clipped to the
// parent's bounds unless overflow is allowed.
func (p *BaseParent) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	if p.surface != graphics.ColorTransparent {
		ctx.FillRect(p.rect, p.surface)
	}
	if !p.allowOverflow {
		ctx.PushScissor(p.rect)
		defer ctx.PopScissor()
	}
	for _, child := range p.children {
		child.Draw(ctx, mouseX, mouseY, partialTicks, delta)
	}
}

// ChildAt returns the deepest descendant under (x, y), topmost child first.
// Children outside a clipping parent's bounds cannot be hit; children
// overflowing a parent that allows overflow can.
func (p *BaseParent) ChildAt(x, y float64) Component {
	if !p.allowOverflow && !p.rect.Contains(x, y) {
		return nil
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		child := p.children[i]
		if parent, ok := child.(ParentComponent); ok {
			if deeper := parent.ChildAt(x, y); deeper != nil {
				return deeper
			}
		}
		if child.IsInBoundingBox(x, y) {
			return child
		}
	}
	return nil
}

func (p *BaseParent) parentSelf() ParentComponent {
	if self, ok := p.self.(ParentComponent); ok {
		return self
	}
	return p
}
