package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/aradilov/spinchan/internal/log"
	"github.com/aradilov/spinchan/internal/syncutil"
)

const defaultDelay = 2 * time.Second

// NewRootCmd creates the root command and registers the demo subcommands.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "info", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().Duration("delay", defaultDelay, "Delay before the producer sends")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		delay, err := flags.GetDuration("delay")
		if err != nil {
			merr = multierror.Append(merr, err)
		} else if delay < 0 {
			merr = multierror.Append(merr, errors.Errorf("negative delay %s", delay))
		}

		if merr != nil {
			return errors.Wrap(merr, "invalid argument")
		}

		h, err := log.CreateHandler(os.Stderr, logLevel, logFormat)
		if err != nil {
			return errors.Wrap(err, "failed creating log handler")
		}
		slog.SetDefault(slog.New(h))
		slog.Debug("ready to go", slog.Bool("deadlock_detection", syncutil.DeadlockEnabled))

		return nil
	}

	cmd.AddCommand(NewSpinLockCmd())
	cmd.AddCommand(NewChannelCmd())
	cmd.AddCommand(NewOneShotCmd())

	return cmd
}
