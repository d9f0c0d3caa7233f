// Command filter-users is the third pipeline step: it keeps the users
// with at least one inventory source, cleans their URLs, and writes the
// eligible list for the analysis step.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/platform/logger"
	"github.com/pantrifi/pipeline/internal/subscriber"
)

func main() {
	if err := run(); err != nil {
		slog.Error("filter-users failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.Setup(cfg.Scheduler)

	users, err := subscriber.ReadRelay[domain.SubscribedUser](cfg.Pipeline.WorkspaceDir, subscriber.FetchFile)
	if err != nil {
		return err
	}

	eligible := subscriber.Filter(users)
	if err := subscriber.WriteRelay(cfg.Pipeline.WorkspaceDir, cfg.Pipeline.EligibleUsersFile, eligible); err != nil {
		return err
	}

	log.Info("filtering complete", "fetched", len(users), "eligible", len(eligible))
	fmt.Printf("Kept %d of %d users with inventory sources in %s\n",
		len(eligible), len(users), cfg.Pipeline.EligibleUsersFile)
	return nil
}
