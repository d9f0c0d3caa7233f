// Command configure sets the daily trigger time interactively and
// writes it to the schedule file the scheduler reads at startup.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pantrifi/pipeline/internal/config"
	"github.com/pantrifi/pipeline/internal/schedule"
)

func main() {
	if err := run(); err != nil {
		slog.Error("configure failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store := schedule.NewStore(cfg.Scheduler.ScheduleFile)
	if existing, err := store.Load(); err == nil {
		fmt.Printf("Current schedule: %02d:%02d (next run %s)\n\n",
			existing.ScheduledHour, existing.ScheduledMinute,
			existing.NextExecution.Format("2006-01-02 15:04:05"))
	}

	reader := bufio.NewReader(os.Stdin)

	hour, err := promptInt(reader, "Hour (0-23): ", 0, 23)
	if err != nil {
		return err
	}
	minute, err := promptInt(reader, "Minute (0-59): ", 0, 59)
	if err != nil {
		return err
	}

	saved, err := store.Save(hour, minute, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("\nSchedule saved to %s\n", store.Path())
	fmt.Printf("Pipeline will run daily at %02d:%02d (next run: %s)\n",
		saved.ScheduledHour, saved.ScheduledMinute,
		saved.NextExecution.Format("2006-01-02 15:04:05"))
	return nil
}

// promptInt asks until it gets an integer in [min, max], or EOF.
func promptInt(reader *bufio.Reader, prompt string, min, max int) (int, error) {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < min || n > max {
			fmt.Printf("Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}
