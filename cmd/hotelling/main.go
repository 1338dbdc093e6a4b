// Command hotelling solves the sequential Hotelling location game.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sw965/hotelling/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
