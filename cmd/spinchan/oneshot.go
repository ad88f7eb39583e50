package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aradilov/spinchan"
)

// NewOneShotCmd hands one message from a delayed producer to a consumer.
func NewOneShotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oneshot",
		Short: "Send one message through a OneShot",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			message, err := cc.Flags().GetString("message")
			if err != nil {
				return err
			}

			delay, err := producerDelay(cc)
			if err != nil {
				return err
			}

			o := spinchan.NewOneShot[string]()

			var g errgroup.Group
			g.Go(func() error {
				sleepBeforeSend(delay)
				o.Send(message)
				slog.Debug("sent", slog.String("message", message))
				return nil
			})
			g.Go(func() error {
				received := o.Receive()
				slog.Info("received", slog.String("message", received))
				_, err := fmt.Fprintln(cc.OutOrStdout(), received)
				return err
			})

			return g.Wait()
		},
	}

	cmd.Flags().String("message", "Hello!", "Message to send")
	addJitterFlag(cmd)

	return cmd
}
