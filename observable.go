package paon

import (
	"sort"

	"github.com/gilcrest/diygoapi/errs"
	"github.com/rs/zerolog"
)

// Observable keeps, per channel, the ordered list of observers registered on
// it and delivers messages to them synchronously.
//
// The zero value is an empty Observable that logs nothing. An Observable is
// not safe for concurrent use. Callers sharing one across goroutines must
// serialize access themselves, or use a Broker.
type Observable[T any] struct {
	observers map[string][]*Observer[T]

	Logger zerolog.Logger
}

// New returns an Observable with no channels.
func New[T any]() *Observable[T] {
	return &Observable[T]{
		observers: make(map[string][]*Observer[T]),
		Logger:    zerolog.Nop(),
	}
}

// AddObserver appends o to the end of channel's observers, creating the
// channel on first use. Registering the same observer twice yields two
// deliveries per notification.
func (ob *Observable[T]) AddObserver(channel string, o *Observer[T]) {
	if ob.observers == nil {
		ob.observers = make(map[string][]*Observer[T])
	}
	ob.observers[channel] = append(ob.observers[channel], o)

	ob.Logger.Debug().
		Str("channel", channel).
		Str("observerID", o.ID()).
		Int("observers", len(ob.observers[channel])).
		Msg("Added observer")
}

// RemoveObserver removes the first registration of o on channel. Later
// duplicates of o stay registered. Removing an observer that is not
// registered on an existing channel is a no-op.
//
// A channel that was never added, or was cleared with RemoveObserversType,
// yields an UnknownChannel error (see IsUnknownChannel).
func (ob *Observable[T]) RemoveObserver(channel string, o *Observer[T]) error {
	const op errs.Op = "paon/Observable.RemoveObserver"

	registered, ok := ob.observers[channel]
	if !ok {
		return unknownChannelError(op, channel)
	}

	for i, candidate := range registered {
		if candidate != o {
			continue
		}
		// rebuild rather than splice in place, a notification may still be
		// iterating the old backing array
		remaining := make([]*Observer[T], 0, len(registered)-1)
		remaining = append(remaining, registered[:i]...)
		remaining = append(remaining, registered[i+1:]...)
		ob.observers[channel] = remaining

		ob.Logger.Debug().
			Str("channel", channel).
			Str("observerID", o.ID()).
			Int("observers", len(remaining)).
			Msg("Removed observer")
		return nil
	}

	return nil
}

// RemoveObserversType drops channel and every observer registered on it.
// Dropping an unknown channel is a no-op.
func (ob *Observable[T]) RemoveObserversType(channel string) {
	if _, ok := ob.observers[channel]; !ok {
		return
	}
	delete(ob.observers, channel)

	ob.Logger.Debug().Str("channel", channel).Msg("Removed all channel observers")
}

// NotifyObservers calls every observer of channel, in registration order,
// with msg. Unknown and empty channels are silently skipped.
//
// Delivery happens on the caller's goroutine. The first observer error stops
// delivery to the remaining observers and is returned as is.
func (ob *Observable[T]) NotifyObservers(channel string, msg T) error {
	return deliver(ob.observers[channel], msg)
}

// Signal notifies channel's observers with the zero value of T.
func (ob *Observable[T]) Signal(channel string) error {
	var zero T
	return ob.NotifyObservers(channel, zero)
}

// HasChannel reports whether channel is present, including a channel whose
// observers were all removed one by one.
func (ob *Observable[T]) HasChannel(channel string) bool {
	_, ok := ob.observers[channel]
	return ok
}

// ObserverCount returns the number of registrations on channel.
func (ob *Observable[T]) ObserverCount(channel string) int {
	return len(ob.observers[channel])
}

// Channels returns the present channel names in sorted order.
func (ob *Observable[T]) Channels() []string {
	channels := make([]string, 0, len(ob.observers))
	for channel := range ob.observers {
		channels = append(channels, channel)
	}
	sort.Strings(channels)
	return channels
}

func (ob *Observable[T]) snapshot(channel string) []*Observer[T] {
	return append([]*Observer[T](nil), ob.observers[channel]...)
}

func deliver[T any](observers []*Observer[T], msg T) error {
	for _, o := range observers {
		if err := o.notify(msg); err != nil {
			return err
		}
	}
	return nil
}
