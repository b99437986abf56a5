package testing

import (
	"sync"

	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layers"
)

// FakeScreen is a host screen with a fixed element list.
type FakeScreen struct {
	W, H     int
	Elements []any
}

func (s *FakeScreen) Width() int      { return s.W }
func (s *FakeScreen) Height() int     { return s.H }
func (s *FakeScreen) Children() []any { return s.Elements }

// FakeWidget is a host widget with a fixed rectangle.
type FakeWidget struct {
	Name string
	Rect graphics.Rect
}

func (w *FakeWidget) X() int      { return w.Rect.X }
func (w *FakeWidget) Y() int      { return w.Rect.Y }
func (w *FakeWidget) Width() int  { return w.Rect.Width }
func (w *FakeWidget) Height() int { return w.Rect.Height }

// FakeWrapper groups elements the way host composite widgets do.
type FakeWrapper struct {
	Name     string
	Elements []any
}

func (w *FakeWrapper) WrappedElements() []any { return w.Elements }

// WidgetNamed returns a predicate matching FakeWidgets by name.
func WidgetNamed(name string) func(layers.Widget) bool {
	return func(e layers.Widget) bool {
		w, ok := e.(*FakeWidget)
		return ok && w.Name == name
	}
}

// FakeEntity is a host entity recording the angles it was given.
type FakeEntity struct {
	W, H float64

	PrevYaw     float64
	PrevPitch   float64
	PrevHeadYaw float64
	Discarded   bool
}

func (e *FakeEntity) Width() float64             { return e.W }
func (e *FakeEntity) Height() float64            { return e.H }
func (e *FakeEntity) SetPrevYaw(yaw float64)     { e.PrevYaw = yaw }
func (e *FakeEntity) SetPrevPitch(pitch float64) { e.PrevPitch = pitch }
func (e *FakeEntity) SetPrevHeadYaw(yaw float64) { e.PrevHeadYaw = yaw }
func (e *FakeEntity) Discard()                   { e.Discarded = true }

// FakeEntityType creates FakeEntities of a fixed size.
type FakeEntityType struct {
	Identifier core.Identifier
	W, H       float64
	Err        error

	Created []*FakeEntity
}

func (t *FakeEntityType) ID() core.Identifier { return t.Identifier }

func (t *FakeEntityType) Create() (components.Entity, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	e := &FakeEntity{W: t.W, H: t.H}
	t.Created = append(t.Created, e)
	return e, nil
}

// FakeRenderer records rendered entities. On a RecordingCanvas it also
// records a "renderEntity" op so its position in the draw sequence is visible.
type FakeRenderer struct {
	Rendered []components.Entity
}

func (r *FakeRenderer) RenderEntity(canvas graphics.Canvas, entity components.Entity) {
	r.Rendered = append(r.Rendered, entity)
	if rc, ok := canvas.(*RecordingCanvas); ok {
		rc.Record("renderEntity")
	}
}

// FakeSkinProvider holds skin requests until the test completes them.
type FakeSkinProvider struct {
	mu       sync.Mutex
	requests []skinRequest
}

type skinRequest struct {
	profile  components.Profile
	callback components.SkinCallback
}

func (p *FakeSkinProvider) LoadSkin(profile components.Profile, callback components.SkinCallback) {
	p.mu.Lock()
	p.requests = append(p.requests, skinRequest{profile: profile, callback: callback})
	p.mu.Unlock()
}

// Pending returns the number of requests not completed yet.
func (p *FakeSkinProvider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Complete delivers a texture to every pending request on a separate
// goroutine, as hosts do, and waits for the callbacks to return.
func (p *FakeSkinProvider) Complete(kind components.TextureKind, texture core.Identifier, metadata map[string]string) {
	p.mu.Lock()
	requests := p.requests
	p.requests = nil
	p.mu.Unlock()

	var wg sync.WaitGroup
	for _, req := range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req.callback(kind, texture, metadata)
		}()
	}
	wg.Wait()
}

// InstallHost installs a host built from the given fakes and returns a
// function restoring the previous host.
func InstallHost(renderer *FakeRenderer, skins *FakeSkinProvider, types ...*FakeEntityType) (restore func()) {
	previous := components.CurrentHost()
	registry := components.NewEntityTypeRegistry()
	for _, t := range types {
		registry.Register(t)
	}
	host := &components.Host{EntityTypes: registry}
	if renderer != nil {
		host.Renderer = renderer
	}
	if skins != nil {
		host.Skins = skins
	}
	components.SetHost(host)
	return func() { components.SetHost(previous) }
}
