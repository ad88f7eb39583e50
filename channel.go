package spinchan

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/aradilov/spinchan/internal/syncutil"
)

// Channel is an unbounded FIFO queue with blocking receive.
// Send never blocks. Recv parks the calling goroutine until a message
// is available.
//
// There is no close operation: a receiver on a channel that is never sent
// to stays parked forever.
type Channel[T any] struct {
	mu        syncutil.Mutex
	itemReady *sync.Cond
	queue     *queue.Queue // guarded by mu

	sent     atomic.Uint64
	received atomic.Uint64
	waits    atomic.Uint64
	wakeups  atomic.Uint64
}

// NewChannel creates an empty Channel.
func NewChannel[T any]() *Channel[T] {
	c := &Channel[T]{queue: queue.New()}
	c.itemReady = sync.NewCond(&c.mu)
	return c
}

// Send appends message to the back of the queue and wakes one receiver.
// Safe to call concurrently from many goroutines.
func (c *Channel[T]) Send(message T) {
	c.mu.Lock()
	c.queue.Add(message)
	c.sent.Add(1)
	c.mu.Unlock()
	// Each message satisfies exactly one receiver, so Signal is enough.
	c.itemReady.Signal()
}

// Recv pops the front message, blocking until one is available.
// Safe to call concurrently from many goroutines; each message is
// delivered to exactly one of them.
func (c *Channel[T]) Recv() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.queue.Length() == 0 {
		// Spurious or stolen wakeups land back here.
		c.waits.Add(1)
		c.itemReady.Wait()
		c.wakeups.Add(1)
	}
	return c.pop()
}

// TryRecv pops the front message if there is one.
// Returns (zero, false) if the queue is empty.
func (c *Channel[T]) TryRecv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.queue.Length() == 0 {
		var zero T
		return zero, false
	}
	return c.pop(), true
}

// Len returns the number of queued messages.
func (c *Channel[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Length()
}

// Stats reports channel counters.
func (c *Channel[T]) Stats() ChannelStats {
	return ChannelStats{
		Sent:     c.sent.Load(),
		Received: c.received.Load(),
		Waits:    c.waits.Load(),
		Wakeups:  c.wakeups.Load(),
	}
}

// pop must be called with mu held and the queue non-empty.
func (c *Channel[T]) pop() T {
	c.received.Add(1)
	// A nil interface T comes back as nil, so the ok form is required.
	v, _ := c.queue.Remove().(T)
	return v
}
