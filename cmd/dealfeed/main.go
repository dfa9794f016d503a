package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"deal_feed/internal/application"
	"deal_feed/internal/domain"
	"deal_feed/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := application.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("application failed",
			slog.String("code", domain.Code(err).String()),
			logx.Error(err),
		)
		cancel()
		os.Exit(1)
	}
}
