package core

import (
	"testing"

	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
)

type testLeaf struct {
	BaseComponent
	content    graphics.Size
	dismounted []DismountReason
}

func newTestLeaf(h, v layout.Sizing) *testLeaf {
	l := &testLeaf{content: graphics.Size{Width: 12, Height: 6}}
	l.SetSelf(l)
	if err := l.SetSizing(h, v); err != nil {
		panic(err)
	}
	return l
}

func (l *testLeaf) ContentSize(space graphics.Size) graphics.Size { return l.content }

func (l *testLeaf) OnDismount(reason DismountReason) {
	l.dismounted = append(l.dismounted, reason)
}

type testStack struct {
	BaseParent
}

func newTestStack(h, v layout.Sizing) *testStack {
	s := &testStack{}
	s.SetSelf(s)
	_ = s.SetSizing(h, v)
	return s
}

func layoutRoot(root Component, rect graphics.Rect) {
	root.Measure(layout.Tight(rect.Size()))
	root.Arrange(rect)
}

func TestMeasureUsesContentHook(t *testing.T) {
	leaf := newTestLeaf(layout.Content(), layout.ContentPadded(2))
	got := leaf.Measure(layout.Loose(graphics.Size{Width: 100, Height: 100}))
	if got != (graphics.Size{Width: 12, Height: 10}) {
		t.Fatalf("Measure() = %+v, want 12x10", got)
	}
}

func TestArrangeIsIdempotent(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	leaf := newTestLeaf(layout.Fixed(10), layout.Fill(1))
	overlay := newTestLeaf(layout.Fixed(4), layout.Fixed(4))
	overlay.SetPositioning(layout.Relative(50, 100))
	root.AddChildren(leaf, overlay)

	rect := graphics.Rect{X: 3, Y: 4, Width: 80, Height: 60}
	layoutRoot(root, rect)
	first := []graphics.Rect{root.Bounds(), leaf.Bounds(), overlay.Bounds()}
	layoutRoot(root, rect)
	second := []graphics.Rect{root.Bounds(), leaf.Bounds(), overlay.Bounds()}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rect %d changed between passes: %+v -> %+v", i, first[i], second[i])
		}
	}
	if root.Bounds() != rect {
		t.Errorf("root bounds = %+v, want %+v", root.Bounds(), rect)
	}
}

func TestAbsoluteChildBypassesFlow(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	root.SetPadding(graphics.InsetsAll(2))
	child := newTestLeaf(layout.Fixed(5), layout.Fixed(5))
	child.SetMargins(graphics.Insets{Left: 1, Top: 1})
	child.SetPositioning(layout.Absolute(10, 20))
	root.AddChild(child)

	layoutRoot(root, graphics.Rect{Width: 100, Height: 100})

	want := graphics.Rect{X: 13, Y: 23, Width: 5, Height: 5}
	if child.Bounds() != want {
		t.Fatalf("child bounds = %+v, want %+v", child.Bounds(), want)
	}
	if child.FullSize() != (graphics.Size{Width: 6, Height: 6}) {
		t.Fatalf("FullSize() = %+v, want 6x6", child.FullSize())
	}
}

func TestSetSizingRejectsInvalidWeight(t *testing.T) {
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	if err := leaf.SetSizing(layout.Fill(0), layout.Fixed(1)); err == nil {
		t.Fatal("expected zero fill weight to be rejected")
	}
	h, _ := leaf.Sizing()
	if h != layout.Fixed(1) {
		t.Fatalf("sizing changed after rejected update: %v", h)
	}
}

func TestRemoveChildDismountsAndCancelsToken(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	root.AddChild(leaf)
	token := leaf.Token()

	if !leaf.Mounted() || leaf.Parent() != root {
		t.Fatal("expected leaf to be mounted under root")
	}

	root.RemoveChild(leaf)

	if leaf.Mounted() || leaf.Parent() != nil {
		t.Fatal("expected leaf to be detached")
	}
	if token.Alive() {
		t.Fatal("expected token to be cancelled on removal")
	}
	if len(leaf.dismounted) != 1 || leaf.dismounted[0] != DismountRemoved {
		t.Fatalf("dismount reasons = %v", leaf.dismounted)
	}

	root.AddChild(leaf)
	if !leaf.Token().Alive() {
		t.Fatal("expected a fresh token after remounting")
	}
	if token.Alive() {
		t.Fatal("old token must stay cancelled")
	}
}

func TestAddChildMovesWithoutDismount(t *testing.T) {
	a := newTestStack(layout.Fill(1), layout.Fill(1))
	b := newTestStack(layout.Fill(1), layout.Fill(1))
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	a.AddChild(leaf)
	token := leaf.Token()

	b.AddChild(leaf)

	if len(a.Children()) != 0 || len(b.Children()) != 1 {
		t.Fatalf("children: a %d, b %d", len(a.Children()), len(b.Children()))
	}
	if leaf.Parent() != b || !leaf.Mounted() {
		t.Fatal("expected leaf to be mounted under b")
	}
	if !token.Alive() || len(leaf.dismounted) != 0 {
		t.Fatalf("moved leaf was dismounted: %v", leaf.dismounted)
	}
	if a.DetachChild(leaf) {
		t.Fatal("DetachChild reported a child that was already moved")
	}
}

func TestDismountCascadesAndMountRestores(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	inner := newTestStack(layout.Content(), layout.Content())
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	inner.AddChild(leaf)
	root.AddChild(inner)

	root.RemoveChild(inner)
	if leaf.Token().Alive() {
		t.Fatal("expected descendants to be dismounted with their parent")
	}
	if IsAttached(leaf, root) {
		t.Fatal("leaf should no longer be attached to root")
	}

	root.AddChild(inner)
	if leaf.Parent() != inner {
		t.Fatal("expected descendant to be re-mounted under its parent")
	}
	if !IsAttached(leaf, root) {
		t.Fatal("leaf should be attached again")
	}
}

func TestMarkNeedsLayoutPropagates(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	root.AddChild(leaf)
	layoutRoot(root, graphics.Rect{Width: 10, Height: 10})

	if root.NeedsLayout() || leaf.NeedsLayout() {
		t.Fatal("expected clean tree after layout")
	}
	leaf.SetPositioning(layout.Absolute(2, 2))
	if !root.NeedsLayout() {
		t.Fatal("expected positioning change to dirty the root")
	}
}

func TestChildAtReturnsDeepestTopmost(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	bottom := newTestLeaf(layout.Fill(1), layout.Fill(1))
	panel := newTestStack(layout.Fixed(20), layout.Fixed(20))
	inner := newTestLeaf(layout.Fixed(5), layout.Fixed(5))
	panel.AddChild(inner)
	root.AddChildren(bottom, panel)
	layoutRoot(root, graphics.Rect{Width: 50, Height: 50})

	if got := root.ChildAt(2, 2); got != inner {
		t.Errorf("ChildAt(2,2) = %T, want inner leaf", got)
	}
	if got := root.ChildAt(10, 10); got != panel {
		t.Errorf("ChildAt(10,10) = %T, want panel", got)
	}
	if got := root.ChildAt(40, 40); got != bottom {
		t.Errorf("ChildAt(40,40) = %T, want bottom leaf", got)
	}
	if got := root.ChildAt(60, 60); got != nil {
		t.Errorf("ChildAt outside = %T, want nil", got)
	}
}

func TestChildAtRespectsClipping(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	panel := newTestStack(layout.Fixed(20), layout.Fixed(20))
	leaf := newTestLeaf(layout.Fixed(10), layout.Fixed(10))
	panel.AddChild(leaf)
	root.AddChild(panel)
	layoutRoot(root, graphics.Rect{Width: 100, Height: 100})
	// Push the leaf outside its panel.
	leaf.Arrange(graphics.Rect{X: 40, Y: 40, Width: 10, Height: 10})

	if got := root.ChildAt(45, 45); got != nil {
		t.Errorf("ChildAt on clipped leaf = %T, want nil", got)
	}
	if got := root.ChildAt(5, 5); got != panel {
		t.Errorf("ChildAt(5,5) = %T, want panel", got)
	}

	panel.SetAllowOverflow(true)
	if got := root.ChildAt(45, 45); got != leaf {
		t.Errorf("ChildAt on overflowing leaf = %T, want leaf", got)
	}
}

func TestFindByID(t *testing.T) {
	root := newTestStack(layout.Fill(1), layout.Fill(1))
	leaf := newTestLeaf(layout.Fixed(1), layout.Fixed(1))
	leaf.SetID("target")
	root.AddChild(leaf)

	if got := FindByID(root, "target"); got != leaf {
		t.Fatalf("FindByID() = %v, want leaf", got)
	}
	if got := FindByID(root, "missing"); got != nil {
		t.Fatalf("FindByID(missing) = %v, want nil", got)
	}
}
