// SPDX-License-Identifier: GPL-3.0-or-later

// Command atom exercises the atom library from the command line.
//
// It generates UUIDs, hashes data and runs the headless application loop.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
