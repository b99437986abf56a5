package components_test

import (
	"math"
	"testing"

	"github.com/go-owo/owo/pkg/components"
	"github.com/go-owo/owo/pkg/containers"
	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	owotest "github.com/go-owo/owo/pkg/testing"
)

var steveSkin = core.Identifier{Namespace: "skins", Path: "abc123"}

func newPlayer(t *testing.T) (*components.EntityComponent, *owotest.FakeSkinProvider) {
	c, skins, _ := newPlayerWithBase(t)
	return c, skins
}

func newPlayerWithBase(t *testing.T) (*components.EntityComponent, *owotest.FakeSkinProvider, *owotest.FakeEntity) {
	t.Helper()
	skins := &owotest.FakeSkinProvider{}
	t.Cleanup(owotest.InstallHost(&owotest.FakeRenderer{}, skins))
	base := &owotest.FakeEntity{W: 0.6, H: 1.8}
	c := components.NewPlayerComponent(layout.Fixed(64), base, components.Profile{Name: "Steve"})
	return c, skins, base
}

func TestPlayerSkinArrivesAsynchronously(t *testing.T) {
	c, skins := newPlayer(t)
	player := c.Entity().(*components.RenderablePlayer)

	if player.HasSkinTexture() || player.SkinTexture() != components.DefaultSkinTexture {
		t.Fatal("expected default skin before loading")
	}
	if skins.Pending() != 1 {
		t.Fatalf("pending requests = %d, want 1", skins.Pending())
	}

	skins.Complete(components.TextureSkin, steveSkin, map[string]string{"model": "slim"})

	if !player.HasSkinTexture() || player.SkinTexture() != steveSkin {
		t.Fatalf("SkinTexture() = %v", player.SkinTexture())
	}
	if player.Model() != "slim" {
		t.Fatalf("Model() = %q, want slim", player.Model())
	}
	if player.Profile().Name != "Steve" || !player.IsPartVisible("hat") {
		t.Fatal("profile or part visibility wrong")
	}
}

func TestPlayerIgnoresOtherTextures(t *testing.T) {
	c, skins := newPlayer(t)
	player := c.Entity().(*components.RenderablePlayer)

	skins.Complete(components.TextureCape, steveSkin, nil)

	if player.HasSkinTexture() {
		t.Fatal("cape texture must not be taken as skin")
	}
}

func TestPlayerModelDefaults(t *testing.T) {
	c, skins := newPlayer(t)
	player := c.Entity().(*components.RenderablePlayer)

	skins.Complete(components.TextureSkin, steveSkin, nil)

	if player.Model() != components.DefaultPlayerModel {
		t.Fatalf("Model() = %q", player.Model())
	}
}

func TestPlayerCallbackAfterRemovalIsIgnored(t *testing.T) {
	c, skins := newPlayer(t)
	player := c.Entity().(*components.RenderablePlayer)
	root := containers.NewStackLayout(layout.Fill(1), layout.Fill(1))
	root.AddChild(c)
	root.RemoveChild(c)

	skins.Complete(components.TextureSkin, steveSkin, nil)

	if player.HasSkinTexture() {
		t.Fatal("skin applied after the component left the tree")
	}
}

func TestPlayerLooksAtCursorWithHead(t *testing.T) {
	c, _, base := newPlayerWithBase(t)
	c.Arrange(graphics.Rect{X: 10, Y: 20, Width: 64, Height: 64})
	c.SetLookAtCursor(true)

	c.Draw(owotest.NewRecordingCanvas().Context(), 42+40, 52, 0, 0)

	if math.Abs(base.PrevYaw+45) > 1e-9 || base.PrevHeadYaw != base.PrevYaw {
		t.Fatalf("PrevYaw = %v, PrevHeadYaw = %v, want both -45", base.PrevYaw, base.PrevHeadYaw)
	}
}

func TestPlayerRemovalDiscardsBase(t *testing.T) {
	c, _, base := newPlayerWithBase(t)
	root := containers.NewStackLayout(layout.Fill(1), layout.Fill(1))
	root.AddChild(c)
	root.RemoveChild(c)

	if !base.Discarded {
		t.Fatal("base entity not discarded on removal")
	}
}
