// Command run-analysis is the final pipeline step: for every eligible
// user it stages inventory sources, generates the AI analysis through
// the credential failover client, persists the alert, emails the user,
// and cleans up the scratch space.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pantrifi/pipeline/internal/artifact"
	"github.com/pantrifi/pipeline/internal/cleanup"
	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/pipeline"
	"github.com/pantrifi/pipeline/internal/platform/gemini"
	"github.com/pantrifi/pipeline/internal/platform/logger"
	"github.com/pantrifi/pipeline/internal/platform/ntpclock"
	"github.com/pantrifi/pipeline/internal/platform/postgres"
	"github.com/pantrifi/pipeline/internal/platform/resend"
	"github.com/pantrifi/pipeline/internal/subscriber"
)

func main() {
	if err := run(); err != nil {
		slog.Error("run-analysis failed", "error", err)
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

	users, err := subscriber.ReadRelay[domain.EligibleUser](cfg.Pipeline.WorkspaceDir, cfg.Pipeline.EligibleUsersFile)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No eligible users to analyze.")
		return nil
	}

	db, err := postgres.Open(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}

	generator, err := gemini.NewClient(ctx, log, cfg.LLM.GeminiAPIKeys)
	if err != nil {
		return err
	}

	var mailer pipeline.Mailer
	if cfg.Email.ResendAPIKey != "" {
		mailer = resend.NewMailer(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.DashboardURL, log)
	} else {
		log.Warn("no Resend API key configured, alert emails disabled")
	}

	w, err := pipeline.NewWorkflow(pipeline.Workflow{
		WorkspaceDir: cfg.Pipeline.WorkspaceDir,
		Model:        cfg.LLM.ModelName,
		Fetcher:      artifact.NewFetcher(log),
		Generator:    generator,
		AlertStore:   postgres.NewAlertStore(db),
		Mailer:       mailer,
		Clock:        ntpclock.New(ntpclock.DefaultServer, log),
		Cleanup:      cleanup.NewExecutor(log),
		Logger:       log,
	})
	if err != nil {
		return err
	}

	stats, err := w.Run(ctx, users)
	printStats(stats)
	return err
}

func printStats(stats *pipeline.RunStats) {
	fmt.Printf("\n=== Analysis summary ===\n")
	fmt.Printf("Users:        %d\n", stats.Users)
	fmt.Printf("Alerts saved: %d (%d fallback)\n", stats.AlertsSaved, stats.Fallbacks)
	fmt.Printf("Emails sent:  %d\n", stats.EmailsSent)
	fmt.Printf("Skipped:      %d\n", stats.Skipped)

	for _, r := range stats.Results {
		if r.Err != nil {
			fmt.Printf("  - %s: %v\n", r.UserID, r.Err)
		}
	}
}
