package core

// Observable holds a value and notifies observers when it changes.
type Observable[T comparable] struct {
	value     T
	observers []func(T)
}

// NewObservable creates an observable with an initial value.
func NewObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	return o.value
}

// Set stores v and notifies observers if it differs from the current value.
func (o *Observable[T]) Set(v T) {
	if o.value == v {
		return
	}
	o.value = v
	for _, observer := range o.observers {
		observer(v)
	}
}

// Observe registers fn to be called with every new value.
func (o *Observable[T]) Observe(fn func(T)) {
	if fn == nil {
		return
	}
	o.observers = append(o.observers, fn)
}
