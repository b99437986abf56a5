// Package core defines the component tree: the Component and
// ParentComponent contracts, the embeddable BaseComponent and BaseParent
// implementations, and the small value types they share.
//
// Concrete components embed a base and register themselves with SetSelf:
//
//	type Swatch struct {
//	    core.BaseComponent
//	    color graphics.Color
//	}
//
//	func NewSwatch(color graphics.Color) *Swatch {
//	    s := &Swatch{color: color}
//	    s.SetSelf(s)
//	    return s
//	}
//
// The base then dispatches to optional hooks on the concrete type:
// ContentSize for content sizing, PerformLayout after arrangement,
// ArrangeFlow for containers and OnDismount for resource cleanup.
package core
