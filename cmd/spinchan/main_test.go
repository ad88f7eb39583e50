package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd(cmdName, shortDesc, longDesc)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log_level", "error"))

	err := cmd.Execute()
	return out.String(), err
}

func TestOneShotCmd(t *testing.T) {
	start := time.Now()
	out, err := run(t, "oneshot", "--delay", "50ms", "--message", "Hello!")
	require.NoError(t, err)
	require.Equal(t, "Hello!\n", out)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestChannelCmd(t *testing.T) {
	out, err := run(t, "channel", "--delay", "10ms", "--jitter", "5ms", "--value", "23", "--count", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"23", "24", "25"}, strings.Fields(out))
}

func TestSpinLockCmd(t *testing.T) {
	out, err := run(t, "spinlock", "--workers", "4", "--increments", "1000")
	require.NoError(t, err)
	require.Equal(t, "4000\n", out)
}

func TestInvalidArguments(t *testing.T) {
	tcs := map[string][]string{
		"negative delay":  {"oneshot", "--delay", "-1s"},
		"bad log format":  {"oneshot", "--delay", "0s", "--log_format", "xml"},
		"zero count":      {"channel", "--delay", "0s", "--count", "0"},
		"zero workers":    {"spinlock", "--workers", "0", "--increments", "0"},
		"unexpected args": {"spinlock", "extra"},
		"negative jitter": {"oneshot", "--delay", "0s", "--jitter", "-1s"},
	}

	for name, args := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			require.Error(t, err)
		})
	}
}

func TestProducerDelay(t *testing.T) {
	newCmd := func(args ...string) *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().Duration("delay", 0, "")
		addJitterFlag(cmd)
		require.NoError(t, cmd.Flags().Parse(args))
		return cmd
	}

	d, err := producerDelay(newCmd("--delay", "2s"))
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, d)

	// Jitter far beyond what fits in uint32 milliseconds is clamped, not wrapped.
	huge := 100 * 24 * time.Hour
	for i := 0; i < 100; i++ {
		d, err = producerDelay(newCmd("--delay", "1s", "--jitter", huge.String()))
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, time.Second)
		require.LessOrEqual(t, d, time.Second+maxJitter)
	}

	_, err = producerDelay(newCmd("--jitter", "-1ms"))
	require.Error(t, err)

	noJitter := &cobra.Command{}
	noJitter.Flags().Duration("delay", 0, "")
	_, err = producerDelay(noJitter)
	require.Error(t, err)
}
