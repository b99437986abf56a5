package layers

import (
	"fmt"
	"sync"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/logging"
)

// Hooks is the surface a host calls into for its screens. Hosts forward
// their screen lifecycle and input here instead of patching owo into their
// own screen classes. Input methods report whether a layer consumed the
// event.
type Hooks interface {
	ScreenInit(screen Screen)
	ScreenResized(screen Screen, width, height int)
	Render(screen Screen, ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64)
	MouseClicked(screen Screen, mouseX, mouseY float64, button int) bool
	MouseReleased(screen Screen, mouseX, mouseY float64, button int) bool
	MouseDragged(screen Screen, mouseX, mouseY, deltaX, deltaY float64, button int) bool
	MouseScrolled(screen Screen, mouseX, mouseY, amount float64) bool
	KeyPressed(screen Screen, keyCode, scanCode, modifiers int) bool
	CharTyped(screen Screen, ch rune, modifiers int) bool
	ScreenClosed(screen Screen)
}

type inputTarget interface {
	MouseClicked(mouseX, mouseY float64, button int) bool
	MouseReleased(mouseX, mouseY float64, button int) bool
	MouseDragged(mouseX, mouseY, deltaX, deltaY float64, button int) bool
	MouseScrolled(mouseX, mouseY, amount float64) bool
	KeyPressed(keyCode, scanCode, modifiers int) bool
	CharTyped(ch rune, modifiers int) bool
}

// attachment is the type-erased view of an Instance the registry drives.
type attachment interface {
	Resize(width, height int)
	frame(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64)
	input() inputTarget
	close()
}

type registration struct {
	name   string
	attach func(screen Screen) (attachment, bool, error)
}

// Registry keeps the registered layers and the instances attached to open
// screens. Screens are used as map keys and must be comparable, which host
// screens passed by pointer always are.
type Registry struct {
	mu     sync.Mutex
	layers []registration
	active map[Screen][]attachment
	logger logging.Logger
}

var _ Hooks = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		active: make(map[Screen][]attachment),
		logger: logging.Get("layers"),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Add registers layer for every screen of type S. Layers attach in
// registration order.
func Add[S Screen, R core.ParentComponent](r *Registry, layer *Layer[S, R]) {
	var zero S
	reg := registration{
		name: fmt.Sprintf("%T", zero),
		attach: func(screen Screen) (attachment, bool, error) {
			s, ok := screen.(S)
			if !ok {
				return nil, false, nil
			}
			inst, err := layer.Instantiate(s)
			if err != nil {
				return nil, true, err
			}
			return inst, true, nil
		},
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = append(r.layers, reg)
}

// Len returns the number of instances attached to screen.
func (r *Registry) Len(screen Screen) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active[screen])
}

func (r *Registry) instances(screen Screen) []attachment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active[screen]
}

// ScreenInit attaches every matching layer to a newly opened screen.
// A layer that fails to attach is reported and skipped. Initializing a
// screen that already has instances resizes them to the screen instead.
func (r *Registry) ScreenInit(screen Screen) {
	r.mu.Lock()
	existing, initialized := r.active[screen]
	layers := append([]registration(nil), r.layers...)
	r.mu.Unlock()

	if initialized {
		r.logger.Debug("screen initialized again", "instances", len(existing))
		r.ScreenResized(screen, screen.Width(), screen.Height())
		return
	}

	var attached []attachment
	for _, reg := range layers {
		inst, matched, err := reg.attach(screen)
		if !matched {
			continue
		}
		if err != nil {
			errors.Report(&errors.OwoError{Op: "layers.ScreenInit", Kind: errors.KindHost, Err: err})
			continue
		}
		attached = append(attached, inst)
		r.logger.Debug("layer attached", "screen", reg.name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(attached) > 0 {
		r.active[screen] = append(r.active[screen], attached...)
	}
}

// ScreenResized resizes every instance attached to screen.
func (r *Registry) ScreenResized(screen Screen, width, height int) {
	for _, inst := range r.instances(screen) {
		func() {
			defer errors.Recover("layers.ScreenResized")
			inst.Resize(width, height)
		}()
	}
}

// Render runs due layout updates and draws every instance attached to
// screen, after the host has drawn the screen itself.
func (r *Registry) Render(screen Screen, ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	for _, inst := range r.instances(screen) {
		func() {
			defer errors.Recover("layers.Render")
			inst.frame(ctx, mouseX, mouseY, partialTicks, delta)
		}()
	}
}

// dispatch offers an event to each instance in order until one consumes it.
func (r *Registry) dispatch(op string, screen Screen, event func(inputTarget) bool) bool {
	for _, inst := range r.instances(screen) {
		consumed := func() (consumed bool) {
			defer errors.Recover(op)
			return event(inst.input())
		}()
		if consumed {
			return true
		}
	}
	return false
}

func (r *Registry) MouseClicked(screen Screen, mouseX, mouseY float64, button int) bool {
	return r.dispatch("layers.MouseClicked", screen, func(t inputTarget) bool {
		return t.MouseClicked(mouseX, mouseY, button)
	})
}

func (r *Registry) MouseReleased(screen Screen, mouseX, mouseY float64, button int) bool {
	return r.dispatch("layers.MouseReleased", screen, func(t inputTarget) bool {
		return t.MouseReleased(mouseX, mouseY, button)
	})
}

func (r *Registry) MouseDragged(screen Screen, mouseX, mouseY, deltaX, deltaY float64, button int) bool {
	return r.dispatch("layers.MouseDragged", screen, func(t inputTarget) bool {
		return t.MouseDragged(mouseX, mouseY, deltaX, deltaY, button)
	})
}

func (r *Registry) MouseScrolled(screen Screen, mouseX, mouseY, amount float64) bool {
	return r.dispatch("layers.MouseScrolled", screen, func(t inputTarget) bool {
		return t.MouseScrolled(mouseX, mouseY, amount)
	})
}

func (r *Registry) KeyPressed(screen Screen, keyCode, scanCode, modifiers int) bool {
	return r.dispatch("layers.KeyPressed", screen, func(t inputTarget) bool {
		return t.KeyPressed(keyCode, scanCode, modifiers)
	})
}

func (r *Registry) CharTyped(screen Screen, ch rune, modifiers int) bool {
	return r.dispatch("layers.CharTyped", screen, func(t inputTarget) bool {
		return t.CharTyped(ch, modifiers)
	})
}

// ScreenClosed disposes every instance attached to screen and forgets them.
func (r *Registry) ScreenClosed(screen Screen) {
	r.mu.Lock()
	instances := r.active[screen]
	delete(r.active, screen)
	r.mu.Unlock()

	for _, inst := range instances {
		func() {
			defer errors.Recover("layers.ScreenClosed")
			inst.close()
		}()
	}
}
