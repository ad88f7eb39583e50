package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	cmdName = "spinchan"

	shortDesc = "Demonstrates the spinchan synchronization primitives."
	longDesc  = `Demonstrates the spinchan synchronization primitives.

Each subcommand starts a producer and a consumer goroutine around one
primitive and prints what the consumer receives. The receive calls have no
timeout, so the consumer simply waits for the (optionally delayed) producer.
`
)

func main() {
	cmd := NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
