// Package focus tracks which component of a tree receives keyboard input.
package focus

import "github.com/go-owo/owo/pkg/core"

// Handler holds the focused component of one component tree.
//
// Focus is validated lazily: a component that left the tree since it was
// focused is dropped the next time the handler is consulted.
type Handler struct {
	root    core.Component
	focused core.Component
}

// NewHandler returns a handler for the tree rooted at root.
func NewHandler(root core.Component) *Handler {
	return &Handler{root: root}
}

// SetRoot changes the tree the handler serves and drops the current focus
// if it is not part of the new tree.
func (h *Handler) SetRoot(root core.Component) {
	h.root = root
	h.Focused()
}

// Root returns the tree root the handler validates against.
func (h *Handler) Root() core.Component {
	return h.root
}

// Focused returns the focused component, or nil. A focused component that is
// no longer attached to the root loses focus here.
func (h *Handler) Focused() core.Component {
	if h.focused != nil && !core.IsAttached(h.focused, h.root) {
		h.focused = nil
	}
	return h.focused
}

// Focus moves focus to c. A nil component clears focus. Components refusing
// focus for the given source leave the current focus untouched.
func (h *Handler) Focus(c core.Component, source core.FocusSource) bool {
	current := h.Focused()
	if c == current {
		return c != nil
	}
	if c != nil && (!c.CanFocus(source) || !core.IsAttached(c, h.root)) {
		return false
	}
	h.focused = c
	if current != nil {
		current.OnFocusLost()
	}
	if c != nil {
		c.OnFocusGained(source)
	}
	return true
}

// Clear drops the current focus.
func (h *Handler) Clear() {
	h.Focus(nil, core.FocusMouseClick)
}

// UpdateClickFocus is called with the component under a mouse press. The
// deepest focusable ancestor-or-self of target gains focus; clicking empty
// space or an unfocusable region clears it.
func (h *Handler) UpdateClickFocus(target core.Component) {
	for c := target; c != nil; {
		if c.CanFocus(core.FocusMouseClick) {
			h.Focus(c, core.FocusMouseClick)
			return
		}
		parent := c.Parent()
		if parent == nil {
			break
		}
		c = parent
	}
	h.Clear()
}

// Cycle moves focus to the next (or previous) component accepting keyboard
// focus, in tree order, wrapping around. It reports whether focus moved.
func (h *Handler) Cycle(forward bool) bool {
	var candidates []core.Component
	core.Walk(h.root, func(c core.Component) bool {
		if c.CanFocus(core.FocusKeyboardCycle) {
			candidates = append(candidates, c)
		}
		return true
	})
	count := len(candidates)
	if count == 0 {
		return false
	}

	current := -1
	if focused := h.Focused(); focused != nil {
		for i, c := range candidates {
			if c == focused {
				current = i
				break
			}
		}
	}

	delta := 1
	if !forward {
		delta = -1
	}
	if current < 0 && !forward {
		current = 0
	}
	next := candidates[wrapIndex(current+delta, count)]
	if next == h.focused {
		return false
	}
	return h.Focus(next, core.FocusKeyboardCycle)
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
