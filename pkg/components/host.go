// Package components provides the leaf components: entity previews, labels,
// boxes and text boxes.
//
// Entity previews draw host entities, so the host must install its
// collaborators with SetHost before building them from markup.
package components

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/agnivade/levenshtein"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
)

// Entity is a host entity instance shown by an EntityComponent. Yaw and
// pitch are in degrees.
type Entity interface {
	Width() float64
	Height() float64
	SetPrevYaw(yaw float64)
	SetPrevPitch(pitch float64)
}

// LivingEntity is an entity with a head that turns independently.
type LivingEntity interface {
	Entity
	SetPrevHeadYaw(yaw float64)
}

// Discarder is implemented by entities holding host resources that must be
// released once the component showing them leaves the tree.
type Discarder interface {
	Discard()
}

// EntityType creates entities of one kind.
type EntityType interface {
	ID() core.Identifier
	Create() (Entity, error)
}

// EntityRenderer draws an entity at the canvas origin with the canvas's
// current transform. Shadows and lighting are the renderer's concern.
type EntityRenderer interface {
	RenderEntity(canvas graphics.Canvas, entity Entity)
}

// EntityTypeRegistry indexes entity types by identifier.
type EntityTypeRegistry struct {
	mu    sync.RWMutex
	types map[core.Identifier]EntityType
}

// NewEntityTypeRegistry returns an empty registry.
func NewEntityTypeRegistry() *EntityTypeRegistry {
	return &EntityTypeRegistry{types: make(map[core.Identifier]EntityType)}
}

// Register adds t under its own identifier.
func (r *EntityTypeRegistry) Register(t EntityType) {
	r.mu.Lock()
	r.types[t.ID()] = t
	r.mu.Unlock()
}

// Lookup returns the type registered under id.
func (r *EntityTypeRegistry) Lookup(id core.Identifier) (EntityType, bool) {
	r.mu.RLock()
	t, ok := r.types[id]
	r.mu.RUnlock()
	return t, ok
}

// IDs returns the registered identifiers sorted by their string form.
func (r *EntityTypeRegistry) IDs() []core.Identifier {
	r.mu.RLock()
	ids := make([]core.Identifier, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.SortFunc(ids, func(a, b core.Identifier) int {
		return cmp.Compare(a.String(), b.String())
	})
	return ids
}

// Suggest returns the registered identifier closest to id by edit distance,
// if one is close enough to be a likely typo.
func (r *EntityTypeRegistry) Suggest(id core.Identifier) (core.Identifier, bool) {
	want := id.String()
	best, bestDistance := core.Identifier{}, -1
	for _, candidate := range r.IDs() {
		d := levenshtein.ComputeDistance(want, candidate.String())
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if bestDistance < 0 || bestDistance > max(2, len(want)/3) {
		return core.Identifier{}, false
	}
	return best, true
}

// UnknownEntityTypeError is returned for identifiers with no registered type.
type UnknownEntityTypeError struct {
	ID         core.Identifier
	Suggestion *core.Identifier
}

func (e *UnknownEntityTypeError) Error() string {
	if e.Suggestion != nil {
		return fmt.Sprintf("unknown entity type %s, did you mean %s?", e.ID, *e.Suggestion)
	}
	return fmt.Sprintf("unknown entity type %s", e.ID)
}

// Host bundles the host collaborators components need.
type Host struct {
	EntityTypes *EntityTypeRegistry
	Renderer    EntityRenderer
	Skins       SkinProvider
}

var currentHost atomic.Pointer[Host]

// SetHost installs the host collaborators. Passing nil uninstalls them.
func SetHost(h *Host) {
	currentHost.Store(h)
}

// CurrentHost returns the installed host, or an empty one.
func CurrentHost() *Host {
	if h := currentHost.Load(); h != nil {
		return h
	}
	return &Host{}
}

// CreateEntity creates an entity of the type registered under id.
func (h *Host) CreateEntity(id core.Identifier) (Entity, error) {
	if h.EntityTypes == nil {
		return nil, &UnknownEntityTypeError{ID: id}
	}
	t, ok := h.EntityTypes.Lookup(id)
	if !ok {
		err := &UnknownEntityTypeError{ID: id}
		if suggestion, ok := h.EntityTypes.Suggest(id); ok {
			err.Suggestion = &suggestion
		}
		return nil, err
	}
	return t.Create()
}
