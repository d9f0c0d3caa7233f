// Command extract-subscriptions is the first pipeline step: it joins
// every account with its best subscription and writes the result to the
// workspace relay file for the fetch step.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/platform/logger"
	"github.com/pantrifi/pipeline/internal/platform/postgres"
	"github.com/pantrifi/pipeline/internal/subscriber"
)

func main() {
	if err := run(); err != nil {
		slog.Error("extract-subscriptions failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.Setup(cfg.Scheduler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	users := postgres.NewUserStore(db)

	allUsers, err := users.ListUsers(ctx)
	if err != nil {
		return err
	}
	subs, err := users.ListSubscriptions(ctx)
	if err != nil {
		return err
	}

	rows := subscriber.Extract(allUsers, subs, time.Now().UTC())
	if err := subscriber.WriteRelay(cfg.Pipeline.WorkspaceDir, subscriber.ExtractFile, rows); err != nil {
		return err
	}

	log.Info("extraction complete",
		"users", len(allUsers),
		"subscriptions", len(subs),
		"rows", len(rows))
	fmt.Printf("Extracted %d users (%d subscription rows) to %s\n",
		len(rows), len(subs), subscriber.ExtractFile)
	return nil
}
