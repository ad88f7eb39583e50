package main

import (
	"log/slog"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/valyala/fastrand"
)

// maxJitter is the largest jitter fastrand.Uint32n can draw in milliseconds.
const maxJitter = time.Duration(math.MaxUint32-1) * time.Millisecond

// producerDelay returns the configured delay plus a random share of jitter.
// Jitter above maxJitter is clamped.
func producerDelay(cmd *cobra.Command) (time.Duration, error) {
	delay, err := cmd.Flags().GetDuration("delay")
	if err != nil {
		return 0, errors.Wrap(err, "reading delay")
	}
	jitter, err := cmd.Flags().GetDuration("jitter")
	if err != nil {
		return 0, errors.Wrap(err, "reading jitter")
	}
	if jitter < 0 {
		return 0, errors.Errorf("negative jitter %s", jitter)
	}

	jitter = min(jitter, maxJitter)
	if ms := uint32(jitter / time.Millisecond); ms > 0 {
		delay += time.Duration(fastrand.Uint32n(ms+1)) * time.Millisecond
	}

	return delay, nil
}

func sleepBeforeSend(d time.Duration) {
	slog.Debug("producer waiting", slog.Duration("delay", d))
	time.Sleep(d)
}

func addJitterFlag(cmd *cobra.Command) {
	cmd.Flags().Duration("jitter", 0, "Random extra producer delay, up to this much")
}
