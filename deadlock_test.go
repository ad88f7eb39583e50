//go:build deadlock

package spinchan

import (
	"bytes"
	"sync"
	"sync/atomic"
	"testing"

	deadlock "github.com/sasha-s/go-deadlock"
	"github.com/stretchr/testify/require"

	"github.com/aradilov/spinchan/internal/syncutil"
)

// reportDeadlocks makes go-deadlock count reports instead of exiting.
func reportDeadlocks(t *testing.T) (*atomic.Int32, *bytes.Buffer) {
	t.Helper()
	require.True(t, syncutil.DeadlockEnabled)

	var (
		reports atomic.Int32
		buf     bytes.Buffer
	)
	onDeadlock, logBuf := deadlock.Opts.OnPotentialDeadlock, deadlock.Opts.LogBuf
	deadlock.Opts.OnPotentialDeadlock = func() { reports.Add(1) }
	deadlock.Opts.LogBuf = &buf
	t.Cleanup(func() {
		deadlock.Opts.OnPotentialDeadlock = onDeadlock
		deadlock.Opts.LogBuf = logBuf
	})

	return &reports, &buf
}

// Send on one goroutine and Recv on another is ordinary contention, not
// recursive locking.
func TestChannelDeadlockDetectorQuiet(t *testing.T) {
	reports, buf := reportDeadlocks(t)

	const (
		N         = 20_000
		senders   = 4
		receivers = 4
	)

	c := NewChannel[int]()
	var wg sync.WaitGroup

	wg.Add(senders + receivers)
	for s := 0; s < senders; s++ {
		go func() {
			defer wg.Done()
			for i := 0; i < N/senders; i++ {
				c.Send(i)
			}
		}()
	}
	for r := 0; r < receivers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < N/receivers; i++ {
				c.Recv()
			}
		}()
	}
	wg.Wait()

	require.Zero(t, reports.Load(), buf.String())
	require.Equal(t, uint64(N), c.Stats().Received)
}

func TestOneShotDeadlockDetectorQuiet(t *testing.T) {
	reports, buf := reportDeadlocks(t)

	for i := 0; i < 1000; i++ {
		o := NewOneShot[int]()
		got := make(chan int, 1)
		go func() {
			got <- o.Receive()
		}()
		o.Send(i)
		require.Equal(t, i, <-got)
	}

	require.Zero(t, reports.Load(), buf.String())
}
