package focus

import (
	"testing"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/layout"
)

type field struct {
	core.BaseComponent
	keyboard bool
	gained   []core.FocusSource
	lost     int
}

func newField(keyboard bool) *field {
	f := &field{keyboard: keyboard}
	f.SetSelf(f)
	_ = f.SetSizing(layout.Fixed(10), layout.Fixed(10))
	return f
}

func (f *field) CanFocus(source core.FocusSource) bool {
	return source == core.FocusMouseClick || f.keyboard
}

func (f *field) OnFocusGained(source core.FocusSource) {
	f.BaseComponent.OnFocusGained(source)
	f.gained = append(f.gained, source)
}

func (f *field) OnFocusLost() {
	f.BaseComponent.OnFocusLost()
	f.lost++
}

type panel struct {
	core.BaseParent
}

func newPanel() *panel {
	p := &panel{}
	p.SetSelf(p)
	return p
}

func TestFocusNotifiesBothSides(t *testing.T) {
	root := newPanel()
	a, b := newField(true), newField(true)
	root.AddChildren(a, b)
	h := NewHandler(root)

	if !h.Focus(a, core.FocusMouseClick) {
		t.Fatal("expected a to accept focus")
	}
	if !h.Focus(b, core.FocusKeyboardCycle) {
		t.Fatal("expected b to accept focus")
	}
	if a.lost != 1 || a.Focused() {
		t.Errorf("a.lost = %d, focused = %v", a.lost, a.Focused())
	}
	if len(b.gained) != 1 || b.gained[0] != core.FocusKeyboardCycle {
		t.Errorf("b.gained = %v", b.gained)
	}
}

func TestFocusRejectedBySource(t *testing.T) {
	root := newPanel()
	mouseOnly := newField(false)
	root.AddChild(mouseOnly)
	h := NewHandler(root)

	if h.Focus(mouseOnly, core.FocusKeyboardCycle) {
		t.Fatal("mouse-only component accepted keyboard focus")
	}
	if h.Focused() != nil {
		t.Fatal("focus changed after rejection")
	}
}

func TestFocusClearedWhenDetached(t *testing.T) {
	root := newPanel()
	a := newField(true)
	root.AddChild(a)
	h := NewHandler(root)
	h.Focus(a, core.FocusMouseClick)

	root.RemoveChild(a)

	if h.Focused() != nil {
		t.Fatal("expected detached component to lose focus")
	}
	if a.Focused() {
		t.Fatal("dismounted component still reports focus")
	}
}

func TestUpdateClickFocusWalksAncestors(t *testing.T) {
	root := newPanel()
	a := newField(false)
	root.AddChild(a)
	h := NewHandler(root)

	h.UpdateClickFocus(a)
	if h.Focused() != a {
		t.Fatal("expected clicked component to gain focus")
	}
	h.UpdateClickFocus(nil)
	if h.Focused() != nil {
		t.Fatal("expected click on empty space to clear focus")
	}
}

func TestCycleWrapsInTreeOrder(t *testing.T) {
	root := newPanel()
	a, skipped, b := newField(true), newField(false), newField(true)
	root.AddChildren(a, skipped, b)
	h := NewHandler(root)

	steps := []struct {
		forward bool
		want    core.Component
	}{
		{true, a},
		{true, b},
		{true, a},
		{false, b},
	}
	for i, step := range steps {
		if !h.Cycle(step.forward) {
			t.Fatalf("step %d: Cycle reported no movement", i)
		}
		if h.Focused() != step.want {
			t.Fatalf("step %d: focused wrong component", i)
		}
	}
}

func TestCycleWithoutCandidates(t *testing.T) {
	root := newPanel()
	root.AddChild(newField(false))
	if NewHandler(root).Cycle(true) {
		t.Fatal("expected no focus movement")
	}
}
