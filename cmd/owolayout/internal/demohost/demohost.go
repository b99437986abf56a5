// Package demohost provides stand-in host collaborators so owolayout can
// build entity previews without a game running.
package demohost

import (
	"math"

	"github.com/go-owo/owo/cmd/owolayout/internal/config"
	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
)

// Entity is an entity with a fixed bounding box.
type Entity struct {
	W, H       float64
	Yaw, Pitch float64
	HeadYaw    float64
}

func (e *Entity) Width() float64             { return e.W }
func (e *Entity) Height() float64            { return e.H }
func (e *Entity) SetPrevYaw(yaw float64)     { e.Yaw = yaw }
func (e *Entity) SetPrevPitch(pitch float64) { e.Pitch = pitch }
func (e *Entity) SetPrevHeadYaw(yaw float64) { e.HeadYaw = yaw }

// EntityType creates Entities of one configured size.
type EntityType struct {
	id   core.Identifier
	w, h float64
}

// NewEntityType builds a type from its config entry.
func NewEntityType(cfg config.EntityConfig) (*EntityType, error) {
	id, err := core.ParseIdentifier(cfg.ID)
	if err != nil {
		return nil, err
	}
	return &EntityType{id: id, w: cfg.Width, h: cfg.Height}, nil
}

func (t *EntityType) ID() core.Identifier { return t.id }

func (t *EntityType) Create() (components.Entity, error) {
	return &Entity{W: t.w, H: t.h}, nil
}

// Renderer draws an entity as its bounding box seen from the front, one
// unit of the current transform per block.
type Renderer struct {
	Color graphics.Color
}

func (r Renderer) RenderEntity(canvas graphics.Canvas, entity components.Entity) {
	w := int(math.Ceil(entity.Width()))
	h := int(math.Ceil(entity.Height()))
	canvas.FillRect(graphics.Rect{X: -w / 2, Y: 0, Width: max(1, w), Height: max(1, h)}, r.Color)
}

// Skins answers every request with the default skin.
type Skins struct{}

func (Skins) LoadSkin(profile components.Profile, callback components.SkinCallback) {
	callback(components.TextureSkin, components.DefaultSkinTexture, map[string]string{"model": components.DefaultPlayerModel})
}

// Install registers the configured entity types as the current host and
// returns a function restoring the previous one. Invalid entries are
// skipped; config validation rejects them earlier.
func Install(entities []config.EntityConfig) (restore func()) {
	registry := components.NewEntityTypeRegistry()
	for _, cfg := range entities {
		t, err := NewEntityType(cfg)
		if err != nil {
			continue
		}
		registry.Register(t)
	}
	previous := components.CurrentHost()
	components.SetHost(&components.Host{
		EntityTypes: registry,
		Renderer:    Renderer{Color: graphics.RGB(0xE0, 0x8F, 0x9A)},
		Skins:       Skins{},
	})
	return func() { components.SetHost(previous) }
}
