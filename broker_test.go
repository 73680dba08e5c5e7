package paon

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerPublishInOrder(t *testing.T) {
	var got []string
	b := NewBroker[string](zerolog.Nop())
	b.Subscribe("orders", ObserverFunc(func(msg string) { got = append(got, "a:"+msg) }))
	b.Subscribe("orders", ObserverFunc(func(msg string) { got = append(got, "b:"+msg) }))
	b.Subscribe("refunds", ObserverFunc(func(msg string) { got = append(got, "r:"+msg) }))

	require.NoError(t, b.Publish("orders", "42"))
	require.NoError(t, b.Publish("unknown", "ignored"))

	assert.Equal(t, []string{"a:42", "b:42"}, got)
	assert.Equal(t, []string{"orders", "refunds"}, b.Channels())
}

func TestBrokerUnsubscribe(t *testing.T) {
	calls := 0
	b := NewBroker[int](zerolog.Nop())
	o := ObserverFunc(func(int) { calls++ })

	assert.True(t, IsUnknownChannel(b.Unsubscribe("c", o)))

	b.Subscribe("c", o)
	require.NoError(t, b.Unsubscribe("c", o))
	require.NoError(t, b.Publish("c", 1))
	assert.Zero(t, calls)
	assert.Zero(t, b.ObserverCount("c"))

	b.Subscribe("c", o)
	b.UnsubscribeAll("c")
	require.NoError(t, b.Publish("c", 1))
	assert.Zero(t, calls)
	assert.Empty(t, b.Channels())
}

func TestBrokerPublishReturnsObserverError(t *testing.T) {
	errFull := errors.New("full")
	reached := false
	b := NewBroker[int](zerolog.Nop())
	b.Subscribe("c", NewObserver(func(int) error { return errFull }))
	b.Subscribe("c", ObserverFunc(func(int) { reached = true }))

	assert.ErrorIs(t, b.Publish("c", 1), errFull)
	assert.False(t, reached)
}

func TestBrokerReentrantObserver(t *testing.T) {
	b := NewBroker[string](zerolog.Nop())
	var once *Observer[string]
	once = ObserverFunc(func(string) {
		require.NoError(t, b.Unsubscribe("c", once))
		b.Subscribe("done", ObserverFunc(func(string) {}))
	})
	b.Subscribe("c", once)

	require.NoError(t, b.Publish("c", "go"))

	assert.Zero(t, b.ObserverCount("c"))
	assert.Equal(t, 1, b.ObserverCount("done"))
}

func TestBrokerConcurrentUse(t *testing.T) {
	var delivered atomic.Int64
	b := NewBroker[int](zerolog.Nop())
	b.Subscribe("c", ObserverFunc(func(int) { delivered.Add(1) }))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o := ObserverFunc(func(int) {})
			for j := 0; j < 100; j++ {
				b.Subscribe("churn", o)
				assert.NoError(t, b.Publish("c", j))
				assert.NoError(t, b.Unsubscribe("churn", o))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(800), delivered.Load())
	assert.Zero(t, b.ObserverCount("churn"))
}

func TestZeroValueBroker(t *testing.T) {
	var got []int
	var b Broker[int]
	o := ObserverFunc(func(n int) { got = append(got, n) })

	require.NoError(t, b.Publish("c", 0))
	b.Subscribe("c", o)
	require.NoError(t, b.Publish("c", 3))
	require.NoError(t, b.Unsubscribe("c", o))
	require.NoError(t, b.Publish("c", 4))

	assert.Equal(t, []int{3}, got)
	assert.Equal(t, []string{"c"}, b.Channels())
}
