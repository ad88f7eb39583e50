package spinchan

import (
	"sync"
	"sync/atomic"

	"github.com/aradilov/spinchan/internal/syncutil"
)

// OneShot hands a single value from a producer to a consumer.
//
// It is meant to be used once, but nothing enforces that: Send overwrites
// a value that has not been received yet (last write wins), and a Send
// after Receive fills the slot again.
type OneShot[T any] struct {
	mu    syncutil.Mutex
	ready *sync.Cond
	slot  slot[T] // guarded by mu

	sent     atomic.Uint64
	received atomic.Uint64
	waits    atomic.Uint64
	wakeups  atomic.Uint64
}

// NewOneShot creates an empty OneShot.
func NewOneShot[T any]() *OneShot[T] {
	o := &OneShot[T]{}
	o.ready = sync.NewCond(&o.mu)
	return o
}

// Send stores message and wakes one waiting receiver.
func (o *OneShot[T]) Send(message T) {
	o.mu.Lock()
	o.slot.put(message)
	o.sent.Add(1)
	o.mu.Unlock()
	o.ready.Signal()
}

// Receive takes the stored value, blocking until there is one.
// The slot is empty again afterwards.
func (o *OneShot[T]) Receive() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	for {
		if v, ok := o.slot.take(); ok {
			o.received.Add(1)
			return v
		}
		o.waits.Add(1)
		o.ready.Wait()
		o.wakeups.Add(1)
	}
}

// Full reports whether a sent value is waiting to be received.
func (o *OneShot[T]) Full() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.slot.full
}

// Stats reports OneShot counters. Sent minus Received is the number of
// values lost to overwrites, plus one if a value is pending.
func (o *OneShot[T]) Stats() OneShotStats {
	return OneShotStats{
		Sent:     o.sent.Load(),
		Received: o.received.Load(),
		Waits:    o.waits.Load(),
		Wakeups:  o.wakeups.Load(),
	}
}
