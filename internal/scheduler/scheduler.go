package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pantrifi/pipeline/internal/schedule"
	"github.com/pantrifi/pipeline/internal/step"
)

// State is the scheduler's lifecycle state.
type State string

// Scheduler states. The loop moves Idle -> Waiting -> Running ->
// Waiting -> ... and ends in Stopped on cancellation.
const (
	StateIdle    State = "idle"
	StateWaiting State = "waiting"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

// StepRunner executes one step. Satisfied by *step.Runner; narrowed to
// an interface so tests can drive the loop without subprocesses.
type StepRunner interface {
	Run(ctx context.Context, s step.Step) step.Outcome
}

// Status is a point-in-time view of the waiting scheduler, published to
// the status callback once per poll for display purposes.
type Status struct {
	State       State
	NextTrigger time.Time
	Now         time.Time
	Remaining   schedule.Countdown
}

// Config holds the scheduler's dependencies and tunables.
type Config struct {
	// Steps is the ordered pipeline sequence. Must not be empty.
	Steps []step.Step

	// Runner executes individual steps.
	Runner StepRunner

	// NextTrigger is the resolved absolute first trigger instant. Must
	// be strictly in the future at construction.
	NextTrigger time.Time

	Logger *slog.Logger

	// Now returns the current time; defaults to time.Now. Injected by
	// tests.
	Now func() time.Time

	// PollInterval is the waiting-loop cadence; defaults to one second.
	PollInterval time.Duration

	// OnStatus, when set, receives a Status update once per waiting
	// poll.
	OnStatus func(Status)

	// OnCycle, when set, receives the summary of every completed cycle.
	OnCycle func(CycleSummary)
}

// Construction errors.
var (
	ErrNoSteps  = errors.New("scheduler requires at least one step")
	ErrNoRunner = errors.New("scheduler requires a step runner")
)

// Scheduler owns the trigger instant and the main loop. The trigger is
// mutated only by the loop itself; no other component touches it.
type Scheduler struct {
	steps    []step.Step
	runner   StepRunner
	next     time.Time
	logger   *slog.Logger
	now      func() time.Time
	poll     time.Duration
	onStatus func(Status)
	onCycle  func(CycleSummary)
	state    State
}

// New creates a Scheduler from the given configuration.
func New(cfg Config) (*Scheduler, error) {
	if len(cfg.Steps) == 0 {
		return nil, ErrNoSteps
	}
	if cfg.Runner == nil {
		return nil, ErrNoRunner
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		steps:    cfg.Steps,
		runner:   cfg.Runner,
		next:     cfg.NextTrigger,
		logger:   logger,
		now:      now,
		poll:     poll,
		onStatus: cfg.OnStatus,
		onCycle:  cfg.OnCycle,
		state:    StateIdle,
	}, nil
}

// NextTrigger returns the currently scheduled trigger instant.
func (s *Scheduler) NextTrigger() time.Time {
	return s.next
}

// State returns the scheduler's current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// Run drives the scheduler loop until the context is cancelled. The
// context is checked at poll boundaries only: a cycle in progress
// finishes, then the loop observes cancellation and stops without
// starting another cycle. Run always returns nil on cancellation; step
// failures are summarized and never surface as loop errors.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("scheduler running",
		"next_trigger", s.next,
		"steps", len(s.steps))

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		now := s.now()

		if now.Before(s.next) {
			s.state = StateWaiting
			if s.onStatus != nil {
				s.onStatus(Status{
					State:       StateWaiting,
					NextTrigger: s.next,
					Now:         now,
					Remaining:   schedule.Remaining(now, s.next),
				})
			}
		} else {
			s.state = StateRunning
			s.logger.Info("trigger time reached", "trigger", s.next, "now", now)

			summary := s.runCycle(ctx)
			if s.onCycle != nil {
				s.onCycle(summary)
			}

			// Advance from the previous trigger, not from now, so a
			// long cycle does not shift the daily cadence.
			s.next = s.next.Add(24 * time.Hour)
			s.logger.Info("next execution scheduled",
				"next_trigger", s.next,
				"attempted", summary.Attempted,
				"succeeded", summary.Succeeded,
				"failed", summary.Failed)
		}

		select {
		case <-ctx.Done():
			s.state = StateStopped
			s.logger.Info("scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// runCycle executes the full ordered step sequence, halting immediately
// on the first failed outcome. Remaining steps are skipped entirely for
// this cycle; the whole sequence runs fresh next cycle.
func (s *Scheduler) runCycle(ctx context.Context) CycleSummary {
	summary := CycleSummary{
		CycleID: uuid.New(),
		Trigger: s.next,
		Started: s.now(),
	}
	logger := s.logger.With("cycle_id", summary.CycleID)

	logger.Info("starting step sequence", "steps", len(s.steps))

	for i, st := range s.steps {
		logger.Info("executing step",
			"position", i+1,
			"total", len(s.steps),
			"step", st.Name)

		outcome := s.runner.Run(ctx, st)
		summary.Attempted++
		summary.Outcomes = append(summary.Outcomes, outcome)

		if !outcome.Succeeded() {
			summary.Failed++
			logger.Error("halting sequence on step failure",
				"step", st.Name,
				"status", outcome.Status,
				"error", outcome.Err)
			break
		}

		summary.Succeeded++
		logger.Info("step succeeded",
			"step", st.Name,
			"duration", outcome.Duration)
	}

	summary.Finished = s.now()
	logger.Info("cycle finished",
		"attempted", summary.Attempted,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"success_rate", summary.SuccessRate())

	return summary
}
