// Command fetch-user-data is the second pipeline step: it keeps the
// subscribed users from the extraction output and attaches each one's
// inventory source references (linked sheets, uploaded CSVs and menus).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/platform/logger"
	"github.com/pantrifi/pipeline/internal/platform/postgres"
	"github.com/pantrifi/pipeline/internal/subscriber"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fetch-user-data failed", "error", err)
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

	rows, err := subscriber.ReadRelay[domain.Subscriber](cfg.Pipeline.WorkspaceDir, subscriber.ExtractFile)
	if err != nil {
		return err
	}
	subscribed := subscriber.SelectSubscribed(rows)
	log.Info("selected subscribed users", "total", len(rows), "subscribed", len(subscribed))

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	artifacts := postgres.NewArtifactStore(db)

	out := make([]domain.SubscribedUser, 0, len(subscribed))
	for _, row := range subscribed {
		u := domain.SubscribedUser{
			UserID: row.UserID,
			Name:   row.Name,
			Email:  row.Email,
		}

		if u.GoogleSheets, err = artifacts.SheetsForUser(ctx, row.UserID); err != nil {
			return err
		}
		if u.CSVFiles, err = artifacts.CSVFilesForUser(ctx, row.UserID); err != nil {
			return err
		}
		if u.MenuFiles, err = artifacts.MenuFilesForUser(ctx, row.UserID); err != nil {
			return err
		}

		out = append(out, u)
	}

	if err := subscriber.WriteRelay(cfg.Pipeline.WorkspaceDir, subscriber.FetchFile, out); err != nil {
		return err
	}

	fmt.Printf("Fetched artifact references for %d subscribed users to %s\n",
		len(out), subscriber.FetchFile)
	return nil
}
