package spinchan

import "fmt"

var (
	// ErrGuardReleased is the panic value of a second Unlock on the same Guard.
	ErrGuardReleased = fmt.Errorf("spinlock: unlock of released guard")
)
