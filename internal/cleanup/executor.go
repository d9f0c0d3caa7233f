package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
)

// Pool tunables. Delays are expressed in time units (one second in
// production) so tests can shrink them; the attempt ceiling and the
// doubling backoff are the contract and never change.
const (
	workerCount       = 2
	queueSize         = 64
	settleDelayUnits  = 1
	maxAttempts       = 3
	backoffBaseUnits  = 1
	awaitTimeoutUnits = 30
)

// Result is the final report for one cleanup task.
type Result struct {
	Dir      string
	Attempts int
	Err      error
}

// Succeeded reports whether the target was removed.
func (r Result) Succeeded() bool {
	return r.Err == nil
}

// Handle tracks one submitted task. Ownership of the target transfers
// to the executor at submission; the handle is only for waiting on the
// outcome.
type Handle struct {
	dir         string
	submittedAt time.Time
	done        chan struct{}
	result      Result
}

// Dir returns the task's target directory.
func (h *Handle) Dir() string { return h.dir }

// SubmittedAt returns when the task entered the queue.
func (h *Handle) SubmittedAt() time.Time { return h.submittedAt }

// removeFunc tears down a target once. Injected by tests; the default
// is os.RemoveAll.
type removeFunc func(dir string) error

// Executor is a bounded worker pool for deferred teardown work.
type Executor struct {
	tasks  chan *Handle
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	remove   removeFunc
	timeUnit time.Duration

	mu     sync.Mutex
	closed bool
}

// NewExecutor creates an executor and starts its fixed worker pool.
func NewExecutor(logger *slog.Logger) *Executor {
	return newExecutor(logger, os.RemoveAll, time.Second)
}

// newExecutor is the seam for tests: removal and the time unit are
// injectable.
func newExecutor(logger *slog.Logger, remove removeFunc, timeUnit time.Duration) *Executor {
	ctx, cancel := context.WithCancel(context.Background())

	e := &Executor{
		tasks:    make(chan *Handle, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
		remove:   remove,
		timeUnit: timeUnit,
	}

	for i := 0; i < workerCount; i++ {
		e.wg.Add(1)
		go e.worker(i)
	}

	return e
}

// Submit enqueues teardown of a directory and returns a handle to wait
// on. Returns ErrExecutorClosed once shutdown has begun.
func (e *Executor) Submit(dir string) (*Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, ErrExecutorClosed
	}

	h := &Handle{
		dir:         dir,
		submittedAt: time.Now(),
		done:        make(chan struct{}),
	}

	select {
	case e.tasks <- h:
		e.logger.Info("cleanup scheduled", "dir", dir)
		return h, nil
	default:
		return nil, fmt.Errorf("%w: capacity %d reached", ErrQueueFull, queueSize)
	}
}

// AwaitAll blocks until every handle finishes or its individual timeout
// (30 time units) elapses. Timed-out tasks are reported with ErrTimeout
// and logged as warnings; they never escalate to a pipeline failure.
func (e *Executor) AwaitAll(ctx context.Context, handles []*Handle) []Result {
	results := make([]Result, 0, len(handles))
	perTask := time.Duration(awaitTimeoutUnits) * e.timeUnit

	for i, h := range handles {
		timer := time.NewTimer(perTask)

		select {
		case <-h.done:
			timer.Stop()
			results = append(results, h.result)
			e.logger.Info("cleanup finished",
				"dir", h.dir,
				"index", i+1,
				"total", len(handles),
				"error", h.result.Err)
		case <-timer.C:
			results = append(results, Result{Dir: h.dir, Err: ErrTimeout})
			e.logger.Warn("cleanup timed out", "dir", h.dir, "timeout", perTask)
		case <-ctx.Done():
			timer.Stop()
			results = append(results, Result{Dir: h.dir, Err: ctx.Err()})
		}
	}

	return results
}

// Shutdown stops intake and waits for pending tasks to drain. This is
// the normal end-of-cycle path.
func (e *Executor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.tasks)
	e.mu.Unlock()

	e.wg.Wait()
	e.logger.Info("cleanup executor shut down")
}

// Stop halts the pool immediately without draining. Safety net for
// abnormal termination; pending and in-flight tasks are abandoned.
func (e *Executor) Stop() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		close(e.tasks)
	}
	e.mu.Unlock()

	e.cancel()
	e.wg.Wait()
	e.logger.Warn("cleanup executor stopped without draining")
}

// worker consumes tasks until the queue closes or the executor is
// stopped.
func (e *Executor) worker(id int) {
	defer e.wg.Done()

	for {
		select {
		case <-e.ctx.Done():
			return
		case h, ok := <-e.tasks:
			if !ok {
				return
			}
			e.process(id, h)
		}
	}
}

// process runs one teardown task: settle, then bounded retries with
// doubling backoff, retrying only busy failures.
func (e *Executor) process(workerID int, h *Handle) {
	defer close(h.done)

	logger := e.logger.With("worker_id", workerID, "dir", h.dir)

	// Settle delay: let any in-flight use of the directory quiesce
	// before the first attempt.
	if err := sleepContext(e.ctx, time.Duration(settleDelayUnits)*e.timeUnit); err != nil {
		h.result = Result{Dir: h.dir, Err: err}
		return
	}

	attempts := 0
	err := retry.Do(
		func() error {
			attempts++
			return e.remove(h.dir)
		},
		retry.Context(e.ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(time.Duration(backoffBaseUnits)*e.timeUnit),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxJitter(0),
		retry.LastErrorOnly(true),
		retry.RetryIf(isBusy),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("cleanup attempt failed, retrying",
				"attempt", n+1,
				"error", err)
		}),
	)

	h.result = Result{Dir: h.dir, Attempts: attempts, Err: err}
	if err != nil {
		logger.Error("cleanup failed", "attempts", attempts, "error", err)
		return
	}
	logger.Info("cleanup succeeded", "attempts", attempts)
}

// isBusy reports whether a teardown failure means the target is still
// in use and worth retrying. Anything else aborts retrying immediately.
func isBusy(err error) bool {
	return errors.Is(err, ErrResourceBusy) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETXTBSY)
}

// sleepContext waits for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
