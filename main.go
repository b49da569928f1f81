package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/aoc/cli"
	"github.com/ardnew/aoc/log"
)

func main() {
	// Interrupt cancels long-running solvers.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
