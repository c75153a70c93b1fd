package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/futig/touchdown/internal/builder"
	"github.com/futig/touchdown/internal/terminal"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	runner, logger, err := builder.BuildTerminal()
	if err != nil {
		log.Print("Failed to build terminal questionnaire: ", err)
		return 1
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxzap.ToContext(ctx, logger)

	state, err := runner.Run(ctx)
	switch {
	case errors.Is(err, terminal.ErrAborted), errors.Is(err, context.Canceled):
		logger.Info("questionnaire aborted")
		return 130
	case err != nil:
		logger.Error("questionnaire failed", zap.Error(err))
		return 1
	case !state.Submitted():
		logger.Warn("application not submitted", zap.String("error", state.Error))
		return 1
	}
	return 0
}
