package main

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aradilov/spinchan"
)

// NewChannelCmd streams consecutive values from a delayed producer to a
// consumer through a Channel.
func NewChannelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Send values through a Channel",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			first, err := cc.Flags().GetUint32("value")
			if err != nil {
				return err
			}
			count, err := cc.Flags().GetInt("count")
			if err != nil {
				return err
			}
			if count < 1 {
				return errors.Errorf("count must be positive, got %d", count)
			}

			delay, err := producerDelay(cc)
			if err != nil {
				return err
			}

			c := spinchan.NewChannel[uint32]()

			var g errgroup.Group
			g.Go(func() error {
				sleepBeforeSend(delay)
				for i := 0; i < count; i++ {
					c.Send(first + uint32(i))
				}
				slog.Debug("sent", slog.Int("count", count))
				return nil
			})
			g.Go(func() error {
				for i := 0; i < count; i++ {
					v := c.Recv()
					if _, err := fmt.Fprintln(cc.OutOrStdout(), v); err != nil {
						return errors.Wrap(err, "writing output")
					}
				}
				s := c.Stats()
				slog.Info("received",
					slog.Uint64("received", s.Received),
					slog.Uint64("waits", s.Waits),
					slog.Uint64("wakeups", s.Wakeups),
				)
				return nil
			})

			return g.Wait()
		},
	}

	cmd.Flags().Uint32("value", 23, "First value to send")
	cmd.Flags().Int("count", 1, "Number of consecutive values to send")
	addJitterFlag(cmd)

	return cmd
}
