package paon

import (
	"sync"

	"github.com/rs/zerolog"
)

// Broker is an Observable guarded by a lock so it can be shared between
// goroutines. Publish still delivers synchronously, in registration order,
// on the publishing goroutine. The zero value is ready to use and logs
// nothing.
type Broker[T any] struct {
	observable Observable[T]
	mu         sync.RWMutex
}

// NewBroker returns an empty Broker that logs subscription changes to logger.
func NewBroker[T any](logger zerolog.Logger) *Broker[T] {
	b := &Broker[T]{}
	b.observable.Logger = logger
	return b
}

// Publish delivers message to the channel's observers. The observer list is
// copied under the read lock and called without holding it, so observers may
// subscribe or unsubscribe on the same Broker.
func (b *Broker[T]) Publish(channel string, message T) error {
	b.mu.RLock()
	observers := b.observable.snapshot(channel)
	b.mu.RUnlock()

	return deliver(observers, message)
}

// Subscribe appends observer to channel, like Observable.AddObserver.
func (b *Broker[T]) Subscribe(channel string, observer *Observer[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observable.AddObserver(channel, observer)
}

// Unsubscribe removes the first registration of observer on channel, like
// Observable.RemoveObserver.
func (b *Broker[T]) Unsubscribe(channel string, observer *Observer[T]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.observable.RemoveObserver(channel, observer)
}

// UnsubscribeAll drops channel and all its observers.
func (b *Broker[T]) UnsubscribeAll(channel string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.observable.RemoveObserversType(channel)
}

// Channels returns the present channel names in sorted order.
func (b *Broker[T]) Channels() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.observable.Channels()
}

// ObserverCount returns the number of registrations on channel.
func (b *Broker[T]) ObserverCount(channel string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.observable.ObserverCount(channel)
}
