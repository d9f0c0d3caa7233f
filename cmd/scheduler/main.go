// Command scheduler is the long-running daily pipeline orchestrator.
// It waits for the configured trigger time, runs the step binaries in
// order (halting the cycle on the first failure), prints a cycle
// summary, and schedules the next run exactly 24 hours after the
// previous trigger.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/platform/logger"
	"github.com/pantrifi/pipeline/internal/schedule"
	"github.com/pantrifi/pipeline/internal/scheduler"
	"github.com/pantrifi/pipeline/internal/step"
)

// pipelineSteps is the fixed daily sequence. The analysis step streams
// its output live; the data-shaping steps are quick and buffered.
var pipelineSteps = []step.Step{
	{Name: "Extract users & subscriptions", Executable: "extract-subscriptions"},
	{Name: "Fetch subscribed user data", Executable: "fetch-user-data"},
	{Name: "Filter users with inventory sources", Executable: "filter-users"},
	{Name: "Run AI analysis", Executable: "run-analysis", Streaming: true},
}

func main() {
	if err := run(); err != nil {
		slog.Error("scheduler exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.Setup(cfg.Scheduler)

	store := schedule.NewStore(cfg.Scheduler.ScheduleFile)
	sched, err := store.Load()
	if err != nil {
		if errors.Is(err, schedule.ErrNoSchedule) {
			return fmt.Errorf("%w (run the configure command first)", err)
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	next := schedule.NextTrigger(*sched, nowLocal())
	fmt.Printf("Daily pipeline scheduled for %02d:%02d (next run: %s)\n",
		sched.ScheduledHour, sched.ScheduledMinute, next.Format("2006-01-02 15:04:05"))

	runner := step.NewRunner(cfg.Scheduler.StepsDir, log)
	s, err := scheduler.New(scheduler.Config{
		Steps:       pipelineSteps,
		Runner:      runner,
		NextTrigger: next,
		Logger:      log,
		OnStatus:    printCountdown,
		OnCycle:     printSummary,
	})
	if err != nil {
		return err
	}

	err = s.Run(ctx)
	fmt.Println("\nScheduler stopped.")
	return err
}
