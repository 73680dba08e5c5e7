// Package paon fans messages out to observers registered on named channels.
//
// An Observable holds, per channel, the observers in registration order and
// calls them synchronously on NotifyObservers. A Broker wraps an Observable
// with a lock for use from several goroutines.
package paon
