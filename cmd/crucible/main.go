// Package main provides crucible, a command that prices the cheapest
// run-length constrained route across a digit cost grid.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/crucible/internal/cli"
)

func main() {
	environ := os.Environ()
	env := make(map[string]string, len(environ))

	for _, e := range environ {
		if k, v, ok := strings.Cut(e, "="); ok {
			env[k] = v
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args, env)
	stop()

	os.Exit(exitCode)
}
