// Package spinchan provides hand-built goroutine synchronization primitives:
//
//   - SpinLock, a busy-wait lock guarding one value;
//   - Channel, an unbounded FIFO queue with blocking receive;
//   - OneShot, a single-slot mailbox with blocking receive.
//
// None of the blocking calls support timeouts or cancellation, and none of
// the primitives are re-entrant. They synchronize goroutines of one process
// only.
package spinchan
