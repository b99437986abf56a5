package components

import (
	"sync/atomic"
	"weak"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/layout"
)

// TextureKind identifies a texture slot of a player profile.
type TextureKind int

const (
	TextureSkin TextureKind = iota
	TextureCape
	TextureElytra
)

// Profile identifies a player whose skin is fetched by the host.
type Profile struct {
	ID   string
	Name string
}

// SkinCallback receives a loaded texture. metadata carries the "model" key
// for skins ("default" or "slim").
type SkinCallback func(kind TextureKind, texture core.Identifier, metadata map[string]string)

// SkinProvider loads profile textures asynchronously. The callback may run on
// any goroutine, possibly after the requesting component left the tree.
type SkinProvider interface {
	LoadSkin(profile Profile, callback SkinCallback)
}

const DefaultPlayerModel = "default"

// DefaultSkinTexture is shown until a player's skin has loaded.
var DefaultSkinTexture = core.Identifier{Namespace: core.DefaultNamespace, Path: "textures/entity/player/wide/steve.png"}

type playerSkin struct {
	texture core.Identifier
	model   string
}

// RenderablePlayer is a player entity whose skin arrives through the host's
// SkinProvider. Its skin fields are safe to read while the callback writes them.
type RenderablePlayer struct {
	Entity

	profile Profile
	skin    atomic.Pointer[playerSkin]
}

// NewRenderablePlayer wraps base, the host's player model entity, and starts
// loading the profile's skin. Results arriving after token was cancelled, or
// after the player was collected, are dropped.
func NewRenderablePlayer(base Entity, profile Profile, token *core.LifecycleToken, skins SkinProvider) *RenderablePlayer {
	p := &RenderablePlayer{Entity: base, profile: profile}
	if skins == nil {
		return p
	}
	ref := weak.Make(p)
	skins.LoadSkin(profile, func(kind TextureKind, texture core.Identifier, metadata map[string]string) {
		if kind != TextureSkin || !token.Alive() {
			return
		}
		player := ref.Value()
		if player == nil {
			return
		}
		model := metadata["model"]
		if model == "" {
			model = DefaultPlayerModel
		}
		player.skin.Store(&playerSkin{texture: texture, model: model})
	})
	return p
}

// Profile returns the player's profile.
func (p *RenderablePlayer) Profile() Profile { return p.profile }

// HasSkinTexture reports whether the skin has loaded.
func (p *RenderablePlayer) HasSkinTexture() bool {
	return p.skin.Load() != nil
}

// SkinTexture returns the loaded skin or DefaultSkinTexture.
func (p *RenderablePlayer) SkinTexture() core.Identifier {
	if s := p.skin.Load(); s != nil {
		return s.texture
	}
	return DefaultSkinTexture
}

// Model returns the loaded skin's model or DefaultPlayerModel.
func (p *RenderablePlayer) Model() string {
	if s := p.skin.Load(); s != nil {
		return s.model
	}
	return DefaultPlayerModel
}

// SetPrevHeadYaw turns the base entity's head when it has one.
func (p *RenderablePlayer) SetPrevHeadYaw(yaw float64) {
	if living, ok := p.Entity.(LivingEntity); ok {
		living.SetPrevHeadYaw(yaw)
	}
}

// Discard releases the base entity's host resources.
func (p *RenderablePlayer) Discard() {
	if d, ok := p.Entity.(Discarder); ok {
		d.Discard()
	}
}

// IsPartVisible reports every model part (hat, jacket, sleeves) as shown.
func (p *RenderablePlayer) IsPartVisible(part string) bool { return true }

// NewPlayerComponent previews base as the player described by profile,
// loading the skin through the host's SkinProvider.
func NewPlayerComponent(sizing layout.Sizing, base Entity, profile Profile) *EntityComponent {
	e := NewEntityComponent(sizing, nil)
	e.entity = NewRenderablePlayer(base, profile, e.Token(), CurrentHost().Skins)
	return e
}
