package main

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aradilov/spinchan"
)

// NewSpinLockCmd runs concurrent incrementers against one SpinLock and
// prints the final counter.
func NewSpinLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spinlock",
		Short: "Increment a counter from several goroutines through a SpinLock",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			workers, err := cc.Flags().GetInt("workers")
			if err != nil {
				return err
			}
			increments, err := cc.Flags().GetInt("increments")
			if err != nil {
				return err
			}

			var merr error
			if workers < 1 {
				merr = multierror.Append(merr, errors.Errorf("workers must be positive, got %d", workers))
			}
			if increments < 1 {
				merr = multierror.Append(merr, errors.Errorf("increments must be positive, got %d", increments))
			}
			if merr != nil {
				return merr
			}

			l := spinchan.NewSpinLock(0)

			var g errgroup.Group
			for w := 0; w < workers; w++ {
				g.Go(func() error {
					for i := 0; i < increments; i++ {
						l.With(func(v *int) { *v++ })
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var total int
			l.With(func(v *int) { total = *v })

			s := l.Stats()
			slog.Info("done",
				slog.Int("total", total),
				slog.Uint64("acquisitions", s.Acquisitions),
				slog.Uint64("spins", s.Spins),
			)

			_, err = fmt.Fprintln(cc.OutOrStdout(), total)
			return err
		},
	}

	cmd.Flags().Int("workers", 4, "Number of incrementing goroutines")
	cmd.Flags().Int("increments", 1000, "Increments per goroutine")

	return cmd
}
