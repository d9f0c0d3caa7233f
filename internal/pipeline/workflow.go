package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pantrifi/pipeline/internal/artifact"
	"github.com/pantrifi/pipeline/internal/cleanup"
	"github.com/pantrifi/pipeline/internal/domain"
	"github.com/pantrifi/pipeline/internal/platform/gemini"
	"github.com/pantrifi/pipeline/internal/store"
)

// Generator produces an analysis from a prompt, with credential
// failover behind it.
type Generator interface {
	Generate(ctx context.Context, req gemini.Request) (*gemini.Response, error)
}

// Mailer delivers one rendered alert email.
type Mailer interface {
	SendAlert(ctx context.Context, user domain.EligibleUser, report *domain.AnalysisReport, alertDate time.Time) error
}

// Fetcher stages remote artifacts into local files.
type Fetcher interface {
	Download(ctx context.Context, rawURL, destPath string) (int64, error)
	DownloadSheet(ctx context.Context, sheetURL, destPath string) (int64, error)
}

// Clock supplies the pipeline's authoritative date.
type Clock interface {
	Now() time.Time
	Today() string
}

// UserResult is the outcome of one user's analysis.
type UserResult struct {
	UserID     string
	AlertSaved bool
	EmailSent  bool
	Fallback   bool
	Err        error
}

// RunStats summarizes a workflow run.
type RunStats struct {
	Users       int
	AlertsSaved int
	EmailsSent  int
	Fallbacks   int
	Skipped     int
	Results     []UserResult
}

// Workflow wires the analysis step's collaborators together.
type Workflow struct {
	WorkspaceDir string
	Model        string

	Fetcher    Fetcher
	Generator  Generator
	AlertStore store.AlertStore
	Mailer     Mailer
	Clock      Clock
	Cleanup    *cleanup.Executor
	Logger     *slog.Logger

	// extractPDF is a seam so tests do not need real PDF fixtures.
	extractPDF func(path string) (string, error)
}

// NewWorkflow validates and assembles a Workflow.
func NewWorkflow(w Workflow) (*Workflow, error) {
	switch {
	case w.WorkspaceDir == "":
		return nil, fmt.Errorf("workspace dir is required")
	case w.Fetcher == nil:
		return nil, fmt.Errorf("fetcher is required")
	case w.Generator == nil:
		return nil, fmt.Errorf("generator is required")
	case w.AlertStore == nil:
		return nil, fmt.Errorf("alert store is required")
	case w.Clock == nil:
		return nil, fmt.Errorf("clock is required")
	case w.Logger == nil:
		return nil, fmt.Errorf("logger is required")
	}
	if w.extractPDF == nil {
		w.extractPDF = artifact.ExtractPDFText
	}
	return &w, nil
}

// Run processes every eligible user in order. Individual failures are
// recorded, not fatal. Scratch directories are handed to the cleanup
// executor as each user finishes; Run waits for all cleanup before
// returning.
func (w *Workflow) Run(ctx context.Context, users []domain.EligibleUser) (*RunStats, error) {
	stats := &RunStats{Users: len(users)}
	var handles []*cleanup.Handle

	for i, user := range users {
		w.Logger.Info("analyzing user",
			"user_id", user.UserID,
			"index", i+1,
			"total", len(users))

		res := w.processUser(ctx, user)
		stats.Results = append(stats.Results, res)

		switch {
		case res.Err != nil:
			stats.Skipped++
			w.Logger.Warn("user analysis failed", "user_id", user.UserID, "error", res.Err)
		default:
			if res.AlertSaved {
				stats.AlertsSaved++
			}
			if res.EmailSent {
				stats.EmailsSent++
			}
			if res.Fallback {
				stats.Fallbacks++
			}
		}

		if w.Cleanup != nil {
			h, err := w.Cleanup.Submit(w.scratchDir(user.UserID))
			if err != nil {
				w.Logger.Warn("could not schedule scratch cleanup",
					"user_id", user.UserID, "error", err)
			} else {
				handles = append(handles, h)
			}
		}

		if err := ctx.Err(); err != nil {
			w.finishCleanup(ctx, handles)
			return stats, err
		}
	}

	w.finishCleanup(ctx, handles)
	return stats, nil
}

// processUser runs the full workflow for one user.
func (w *Workflow) processUser(ctx context.Context, user domain.EligibleUser) UserResult {
	res := UserResult{UserID: user.UserID}

	scratch := w.scratchDir(user.UserID)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		res.Err = fmt.Errorf("creating scratch dir: %w", err)
		return res
	}

	sections := w.stageArtifacts(ctx, user, scratch)
	if len(sections) == 0 {
		res.Err = fmt.Errorf("no inventory source could be staged")
		return res
	}

	if err := w.writeUserData(user, sections, scratch); err != nil {
		w.Logger.Warn("could not write staged user data", "user_id", user.UserID, "error", err)
	}

	today := w.Clock.Today()
	prompt := BuildPrompt(user.Name, today, sections)

	resp, err := w.Generator.Generate(ctx, gemini.Request{Model: w.Model, Content: prompt})
	if err != nil {
		res.Err = fmt.Errorf("generating analysis: %w", err)
		return res
	}

	report := DecodeReport(resp.Text, today)
	res.Fallback = report.Error != ""

	serialized, err := json.Marshal(report)
	if err != nil {
		res.Err = fmt.Errorf("serializing report: %w", err)
		return res
	}

	alertDate := w.Clock.Now()
	alert, err := domain.NewAlert(user.UserID, string(serialized), alertDate)
	if err != nil {
		res.Err = fmt.Errorf("building alert: %w", err)
		return res
	}
	if err := w.AlertStore.CreateAlert(ctx, alert); err != nil {
		res.Err = fmt.Errorf("saving alert: %w", err)
		return res
	}
	res.AlertSaved = true

	// Email failure downgrades to a warning: the alert is already
	// persisted and visible on the dashboard.
	if w.Mailer != nil {
		if err := w.Mailer.SendAlert(ctx, user, report, alertDate); err != nil {
			w.Logger.Warn("alert email failed", "user_id", user.UserID, "error", err)
		} else {
			res.EmailSent = true
		}
	}

	w.Logger.Info("user analysis complete",
		"user_id", user.UserID,
		"expired", report.SummaryStats.ExpiredItemsCount,
		"expiring_soon", report.SummaryStats.ItemsExpiringSoonCount,
		"fallback", res.Fallback)

	return res
}

// stageArtifacts downloads each of the user's sources into the scratch
// directory and renders it as a prompt section. A source that cannot be
// staged is logged and skipped.
func (w *Workflow) stageArtifacts(ctx context.Context, user domain.EligibleUser, scratch string) []InventorySection {
	var sections []InventorySection

	for i, sheetURL := range user.GoogleSheetURLs {
		dest := filepath.Join(scratch, fmt.Sprintf("sheet_%d.csv", i+1))
		if _, err := w.Fetcher.DownloadSheet(ctx, sheetURL, dest); err != nil {
			w.Logger.Warn("sheet download failed", "user_id", user.UserID, "url", sheetURL, "error", err)
			continue
		}
		if s, ok := w.flattenFile(dest, fmt.Sprintf("Google Sheet %d", i+1)); ok {
			sections = append(sections, s)
		}
	}

	for i, f := range user.CSVFileURLs {
		dest := filepath.Join(scratch, fmt.Sprintf("upload_%d.csv", i+1))
		if _, err := w.Fetcher.Download(ctx, f.FileURL, dest); err != nil {
			w.Logger.Warn("csv download failed", "user_id", user.UserID, "file", f.FileName, "error", err)
			continue
		}
		if s, ok := w.flattenFile(dest, "Uploaded CSV: "+f.FileName); ok {
			sections = append(sections, s)
		}
	}

	for i, f := range user.MenuFileURLs {
		dest := filepath.Join(scratch, fmt.Sprintf("menu_%d.pdf", i+1))
		if _, err := w.Fetcher.Download(ctx, f.FileURL, dest); err != nil {
			w.Logger.Warn("menu download failed", "user_id", user.UserID, "file", f.FileName, "error", err)
			continue
		}
		text, err := w.extractPDF(dest)
		if err != nil {
			w.Logger.Warn("menu text extraction failed", "user_id", user.UserID, "file", f.FileName, "error", err)
			continue
		}
		sections = append(sections, InventorySection{Label: "Menu: " + f.FileName, Text: text})
	}

	return sections
}

// flattenFile renders one staged CSV as a prompt section.
func (w *Workflow) flattenFile(path, label string) (InventorySection, bool) {
	f, err := os.Open(path)
	if err != nil {
		w.Logger.Warn("could not open staged file", "path", path, "error", err)
		return InventorySection{}, false
	}
	defer func() { _ = f.Close() }()

	text, err := artifact.FlattenCSV(f)
	if err != nil {
		w.Logger.Warn("could not flatten staged file", "path", path, "error", err)
		return InventorySection{}, false
	}
	return InventorySection{Label: label, Text: text}, true
}

// writeUserData records what was staged, for debugging a cycle after
// the fact. Best effort only.
func (w *Workflow) writeUserData(user domain.EligibleUser, sections []InventorySection, scratch string) error {
	payload := struct {
		User     domain.EligibleUser `json:"user"`
		Sections []InventorySection  `json:"sections"`
	}{User: user, Sections: sections}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(scratch, "user_data.json"), data, 0o644)
}

// finishCleanup waits for scheduled teardown and releases the pool.
func (w *Workflow) finishCleanup(ctx context.Context, handles []*cleanup.Handle) {
	if w.Cleanup == nil {
		return
	}
	if len(handles) > 0 {
		w.Cleanup.AwaitAll(ctx, handles)
	}
	w.Cleanup.Shutdown()
}

// Dots are deliberately excluded so an ID can never resolve to "..".
var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// scratchDir returns the per-user scratch directory, with the user ID
// sanitized for filesystem use.
func (w *Workflow) scratchDir(userID string) string {
	safe := unsafePathChars.ReplaceAllString(userID, "_")
	return filepath.Join(w.WorkspaceDir, "scratch", safe)
}
