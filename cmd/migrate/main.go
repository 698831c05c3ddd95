package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/clubpulse/survey-api/cmd/migrate/cmds"
	"github.com/clubpulse/survey-api/internal/logger"
)

func main() {
	ctx, cancelSignal := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancelSignal()

	logger.InitSlog()

	if err := cmds.Execute(ctx); err != nil {
		logger.Logger.Error("error executing subcommands", "error", err)
		cancelSignal()
		os.Exit(1)
	}
}
