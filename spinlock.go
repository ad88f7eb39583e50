package spinchan

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

const goschedEvery = 64 // reduce runtime.Gosched() frequency in hot loops

// SpinLock is a busy-wait mutual exclusion lock guarding one value of type T.
// It never parks the calling goroutine, so it only suits very short
// critical sections. There is no fairness: any spinner may win next.
//
// A SpinLock is not re-entrant. Locking it again from the holder spins forever.
// A SpinLock must not be copied after first use.
type SpinLock[T any] struct {
	_      cpu.CacheLinePad
	locked atomic.Bool // true while a Guard is outstanding
	_      cpu.CacheLinePad
	value  T // reachable only through a Guard

	acquisitions atomic.Uint64
	spins        atomic.Uint64
}

// Guard is the exclusive handle returned by Lock. It grants access to the
// protected value until Unlock is called.
type Guard[T any] struct {
	lock *SpinLock[T]
}

// NewSpinLock creates an unlocked SpinLock holding value.
func NewSpinLock[T any](value T) *SpinLock[T] {
	return &SpinLock[T]{value: value}
}

// Lock acquires the lock, spinning until it becomes available.
// The usual pattern is:
//
//	g := l.Lock()
//	defer g.Unlock()
func (l *SpinLock[T]) Lock() *Guard[T] {
	var spins uint32
	// CompareAndSwap is sequentially consistent, so a successful transition
	// observes every write made under the previous Guard.
	for !l.locked.CompareAndSwap(false, true) {
		spins++
		if spins%goschedEvery == 0 {
			runtime.Gosched()
		}
	}
	if spins > 0 {
		l.spins.Add(uint64(spins))
	}
	l.acquisitions.Add(1)
	return &Guard[T]{lock: l}
}

// TryLock makes a single attempt to acquire the lock.
// Returns (nil, false) if the lock is held by someone else.
func (l *SpinLock[T]) TryLock() (*Guard[T], bool) {
	if !l.locked.CompareAndSwap(false, true) {
		l.spins.Add(1)
		return nil, false
	}
	l.acquisitions.Add(1)
	return &Guard[T]{lock: l}, true
}

// With runs fn with exclusive access to the protected value.
// The lock is released on every exit path; a panic in fn propagates
// after the release.
func (l *SpinLock[T]) With(fn func(v *T)) {
	g := l.Lock()
	defer g.Unlock()
	fn(g.Value())
}

// Stats reports lock counters.
func (l *SpinLock[T]) Stats() SpinLockStats {
	return SpinLockStats{
		Acquisitions: l.acquisitions.Load(),
		Spins:        l.spins.Load(),
	}
}

// Value returns a pointer to the protected value.
// The pointer must not be used after Unlock.
func (g *Guard[T]) Value() *T {
	if g.lock == nil {
		panic(ErrGuardReleased)
	}
	return &g.lock.value
}

// Unlock releases the lock. It must be called exactly once per Guard;
// a second call panics with ErrGuardReleased.
func (g *Guard[T]) Unlock() {
	l := g.lock
	if l == nil {
		panic(ErrGuardReleased)
	}
	g.lock = nil
	l.locked.Store(false)
}
