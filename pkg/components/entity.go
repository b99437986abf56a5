package components

import (
	"math"

	"github.com/go-owo/owo/pkg/core"
	"github.com/go-owo/owo/pkg/errors"
	"github.com/go-owo/owo/pkg/graphics"
	"github.com/go-owo/owo/pkg/layout"
	"github.com/go-owo/owo/pkg/parsing"
)

// EntityComponent previews a host entity, either at a fixed angle the user
// can drag around or turned towards the cursor.
type EntityComponent struct {
	core.BaseComponent

	entity   Entity
	create   func() (Entity, error)
	renderer EntityRenderer

	mouseRotation      float64
	scale              float64
	lookAtCursor       bool
	allowMouseRotation bool
	scaleToFit         bool
	transform          func(graphics.Canvas)
}

// NewEntityComponent shows entity, drawn by the installed host renderer.
// It panics if sizing is invalid.
func NewEntityComponent(sizing layout.Sizing, entity Entity) *EntityComponent {
	e := &EntityComponent{
		entity:   entity,
		renderer: CurrentHost().Renderer,
		scale:    1,
	}
	e.SetSelf(e)
	if err := e.SetSizing(sizing, sizing); err != nil {
		panic("components: invalid sizing: " + err.Error())
	}
	return e
}

// NewEntityComponentOf creates an entity of the given type and shows it.
// The component creates a fresh entity of that type whenever it is mounted
// again after a removal.
func NewEntityComponentOf(sizing layout.Sizing, id core.Identifier) (*EntityComponent, error) {
	create := func() (Entity, error) { return CurrentHost().CreateEntity(id) }
	entity, err := create()
	if err != nil {
		return nil, err
	}
	e := NewEntityComponent(sizing, entity)
	e.create = create
	return e, nil
}

// Entity returns the shown entity, or nil while none is live. An entity
// supplied directly is not recreated once discarded.
func (e *EntityComponent) Entity() Entity { return e.entity }

// SetRenderer overrides the renderer taken from the host.
func (e *EntityComponent) SetRenderer(r EntityRenderer) { e.renderer = r }

func (e *EntityComponent) Scale() float64 { return e.scale }

func (e *EntityComponent) SetScale(scale float64) { e.scale = scale }

func (e *EntityComponent) LookAtCursor() bool { return e.lookAtCursor }

func (e *EntityComponent) SetLookAtCursor(look bool) { e.lookAtCursor = look }

func (e *EntityComponent) AllowMouseRotation() bool { return e.allowMouseRotation }

func (e *EntityComponent) SetAllowMouseRotation(allow bool) { e.allowMouseRotation = allow }

// MouseRotation returns the accumulated drag rotation in degrees.
func (e *EntityComponent) MouseRotation() float64 { return e.mouseRotation }

func (e *EntityComponent) ScaleToFit() bool { return e.scaleToFit }

// SetScaleToFit enables fitting the entity's bounding box into the
// component. Enabling it replaces the current scale.
func (e *EntityComponent) SetScaleToFit(fit bool) {
	e.scaleToFit = fit
	if fit && e.entity != nil {
		e.scale = FitScale(e.entity.Width(), e.entity.Height())
	}
}

// SetTransform installs an extra transform applied before the rotation.
func (e *EntityComponent) SetTransform(transform func(graphics.Canvas)) { e.transform = transform }

// FitScale is the uniform scale that fits a width x height bounding box into
// the preview's reference size on both axes.
func FitScale(width, height float64) float64 {
	return math.Min(0.5/width, 0.5/height)
}

// LookAngles returns the pitch and yaw, in degrees, of an entity centered in
// rect looking at the cursor.
func LookAngles(rect graphics.Rect, mouseX, mouseY int) (pitch, yaw float64) {
	cx := float64(rect.X) + float64(rect.Width)/2
	cy := float64(rect.Y) + float64(rect.Height)/2
	pitch = degrees(math.Atan((float64(mouseY) - cy) / 40))
	yaw = degrees(math.Atan((float64(mouseX) - cx) / 40))
	return pitch, yaw
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func (e *EntityComponent) Draw(ctx *graphics.DrawContext, mouseX, mouseY int, partialTicks, delta float64) {
	if e.entity == nil || e.renderer == nil || ctx == nil || ctx.Canvas == nil {
		return
	}
	canvas := ctx.Canvas
	canvas.Push()
	defer canvas.Pop()

	rect := e.Bounds()
	w, h := float64(rect.Width), float64(rect.Height)
	canvas.Translate(float64(rect.X)+w/2, float64(rect.Y)+h/2, 100)
	canvas.Scale(75*e.scale*w/64, -75*e.scale*h/64, 75*e.scale)
	canvas.Translate(0, -e.entity.Height()/2, 0)

	if e.transform != nil {
		e.transform(canvas)
	}

	if e.lookAtCursor {
		pitch, yaw := LookAngles(rect, mouseX, mouseY)
		if living, ok := e.entity.(LivingEntity); ok {
			living.SetPrevHeadYaw(-yaw)
		}
		e.entity.SetPrevYaw(-yaw)
		e.entity.SetPrevPitch(pitch * 0.65)

		// A pitch of exactly zero breaks the host's lighting.
		if pitch == 0 {
			pitch = 0.1
		}
		canvas.RotateX(pitch * 0.15)
		canvas.RotateY(yaw * 0.15)
	} else {
		canvas.RotateX(35)
		canvas.RotateY(-45 + e.mouseRotation)
	}

	e.renderer.RenderEntity(canvas, e.entity)
}

// OnMouseDrag turns the entity with the left button when mouse rotation is allowed.
func (e *EntityComponent) OnMouseDrag(mouseX, mouseY, deltaX, deltaY float64, button int) bool {
	if e.allowMouseRotation && button == core.MouseButtonLeft {
		e.mouseRotation += deltaX
		return true
	}
	return e.BaseComponent.OnMouseDrag(mouseX, mouseY, deltaX, deltaY, button)
}

// CanFocus accepts focus from clicks only, so drags keep reaching the entity.
func (e *EntityComponent) CanFocus(source core.FocusSource) bool {
	return source == core.FocusMouseClick
}

// Mount attaches the component and recreates a discarded entity when the
// component knows its type.
func (e *EntityComponent) Mount(parent core.ParentComponent) {
	e.BaseComponent.Mount(parent)
	if e.entity != nil || e.create == nil {
		return
	}
	entity, err := e.create()
	if err != nil {
		errors.Report(&errors.OwoError{Op: "components.EntityComponent.Mount", Kind: errors.KindHost, Err: err})
		return
	}
	e.entity = entity
	if e.scaleToFit {
		e.scale = FitScale(entity.Width(), entity.Height())
	}
}

// OnDismount releases the entity's host resources. Moving the component to
// another parent does not dismount it.
func (e *EntityComponent) OnDismount(reason core.DismountReason) {
	if d, ok := e.entity.(Discarder); ok {
		d.Discard()
	}
	e.entity = nil
}

// ParseProperties reads scale, look-at-cursor, mouse-rotation and scale-to-fit.
func (e *EntityComponent) ParseProperties(model *parsing.Model, el *parsing.Element, children map[string]*parsing.Element) error {
	if err := parsing.Apply(children, "scale", parsing.ParseFloat, e.SetScale); err != nil {
		return err
	}
	if err := parsing.Apply(children, "look-at-cursor", parsing.ParseBool, e.SetLookAtCursor); err != nil {
		return err
	}
	if err := parsing.Apply(children, "mouse-rotation", parsing.ParseBool, e.SetAllowMouseRotation); err != nil {
		return err
	}
	return parsing.Apply(children, "scale-to-fit", parsing.ParseBool, e.SetScaleToFit)
}

func parseEntity(el *parsing.Element) (core.Component, error) {
	if err := parsing.ExpectAttributes(el, "type"); err != nil {
		return nil, err
	}
	raw, _ := el.Attribute("type")
	id, err := core.ParseIdentifier(raw)
	if err != nil {
		return nil, parsing.AttributeError(el, "type", raw, err)
	}
	c, err := NewEntityComponentOf(layout.Content(), id)
	if err != nil {
		return nil, el.Wrap(err, "cannot create entity")
	}
	return c, nil
}

func init() {
	parsing.Register("entity", parseEntity)
}
