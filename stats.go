package spinchan

// SpinLockStats is a snapshot of SpinLock counters.
type SpinLockStats struct {
	Acquisitions uint64 // successful Lock/TryLock calls
	Spins        uint64 // failed acquisition attempts
}

// ChannelStats is a snapshot of Channel counters.
type ChannelStats struct {
	Sent     uint64
	Received uint64

	// Waits counts how many times a receiver parked on an empty queue.
	Waits uint64
	// Wakeups counts returns from the wait, including ones that found
	// the queue still empty.
	Wakeups uint64
}

// OneShotStats is a snapshot of OneShot counters.
type OneShotStats struct {
	Sent     uint64
	Received uint64

	// Waits and Wakeups count parks on an empty slot and returns from them,
	// as in ChannelStats.
	Waits   uint64
	Wakeups uint64
}
