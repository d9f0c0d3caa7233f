package step

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Runner executes steps as subprocesses from a fixed base directory.
type Runner struct {
	baseDir string
	logger  *slog.Logger

	// extraEnv is appended to the inherited environment of every step.
	extraEnv []string
}

// NewRunner creates a Runner resolving step executables against baseDir.
// Steps inherit the parent environment plus a UTF-8 locale override, so
// child output is consistently decodable regardless of the host locale.
func NewRunner(baseDir string, logger *slog.Logger) *Runner {
	return &Runner{
		baseDir: baseDir,
		logger:  logger,
		extraEnv: []string{
			"LANG=C.UTF-8",
			"LC_ALL=C.UTF-8",
		},
	}
}

// Run executes a single step and classifies the result. The three
// failure classifications are distinct and all terminal:
//
//   - StatusNotFound: the executable is missing or cannot be started
//   - StatusFailed: the step ran and exited nonzero
//   - StatusCrashed: invocation failed unexpectedly
//
// Run never retries; retry policy for remote calls lives inside the
// steps themselves.
func (r *Runner) Run(ctx context.Context, s Step) Outcome {
	path := filepath.Join(r.baseDir, s.Executable)
	logger := r.logger.With("step", s.Name, "executable", path)

	if _, err := os.Stat(path); err != nil {
		logger.Error("step executable not found")
		return Outcome{
			Step:   s,
			Status: StatusNotFound,
			Err:    fmt.Errorf("%w: %s", ErrStepNotFound, path),
		}
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Dir = r.baseDir
	cmd.Env = append(os.Environ(), r.extraEnv...)

	var stdout, stderr bytes.Buffer
	if s.Streaming {
		logger.Info("streaming step output live")
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err == nil {
		logger.Info("step completed", "duration", elapsed)
		return Outcome{
			Step:     s,
			Status:   StatusSuccess,
			Duration: elapsed,
			Output:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		code := exitErr.ExitCode()
		logger.Error("step failed", "exit_code", code, "duration", elapsed)
		return Outcome{
			Step:     s,
			Status:   StatusFailed,
			Duration: elapsed,
			Output:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: code,
			Err:      fmt.Errorf("%w: exit status %d", ErrStepFailed, code),
		}
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission), errors.Is(err, exec.ErrNotFound):
		logger.Error("step could not be started", "error", err)
		return Outcome{
			Step:     s,
			Status:   StatusNotFound,
			Duration: elapsed,
			Err:      fmt.Errorf("%w: %v", ErrStepNotFound, err),
		}
	default:
		logger.Error("step invocation crashed", "error", err, "duration", elapsed)
		return Outcome{
			Step:     s,
			Status:   StatusCrashed,
			Duration: elapsed,
			Output:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      fmt.Errorf("%w: %v", ErrStepCrashed, err),
		}
	}
}
