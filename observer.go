package paon

import (
	"github.com/google/uuid"
)

// Observer is a registration handle for a callback. Observables compare
// observers by pointer, so keep the handle returned by NewObserver to remove
// the callback later.
type Observer[T any] struct {
	id string
	fn func(msg T) error
}

// NewObserver wraps fn in a new handle. Each call returns a distinct
// observer, even for the same fn.
func NewObserver[T any](fn func(msg T) error) *Observer[T] {
	return &Observer[T]{
		id: uuid.New().String(),
		fn: fn,
	}
}

// ObserverFunc wraps a callback that cannot fail.
func ObserverFunc[T any](fn func(msg T)) *Observer[T] {
	return NewObserver(func(msg T) error {
		fn(msg)
		return nil
	})
}

// ID returns the identifier assigned by NewObserver, used in log fields.
func (o *Observer[T]) ID() string {
	if o == nil {
		return ""
	}
	return o.id
}

func (o *Observer[T]) notify(msg T) error {
	if o == nil || o.fn == nil {
		return nil
	}
	return o.fn(msg)
}
