package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"

	"nsshift.dev/pkg/nsshift/internal/adapter"
	"nsshift.dev/pkg/nsshift/internal/controller"
	m "nsshift.dev/pkg/nsshift/internal/model"
)

// RunArgs contains the arguments for a full migration run.
type RunArgs struct {
	Root     m.Path
	DryRun   bool
	Verbose  bool
	ShowDiff bool
}

// Workflow drives the pipeline stages for one invocation:
// locate -> normalize header -> rewrite references -> write-back -> audit.
type Workflow interface {
	// Run executes the full pipeline. It returns ErrUnmigratedReferences
	// when the audit pass finds forbidden references left behind.
	Run(ctx context.Context, args RunArgs) error

	// Estimate computes pending change counts per file without writing.
	Estimate(ctx context.Context, root m.Path) error

	// Audit runs only the verification pass over the located file set.
	Audit(ctx context.Context, root m.Path) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	locator Locator
	auditor Auditor
	rules   []CompiledRule
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	locator Locator,
	auditor Auditor,
	rules []CompiledRule,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:      fs,
		locator: locator,
		auditor: auditor,
		rules:   rules,
		ui:      ui,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	files, err := w.locator.Locate(args.Root)
	if err != nil {
		return fmt.Errorf("locate source files: %w", err)
	}

	w.ui.DisplayRunHeader(ctx, len(files), args.Root, args.DryRun)

	summary := m.RunSummary{TotalFiles: len(files), DryRun: args.DryRun}

	for _, file := range files {
		result, procErr := w.processFile(file, args)
		if procErr != nil {
			return procErr
		}

		switch {
		case result.Changed():
			summary.ModifiedFiles++
		case result.Status == m.StatusReadError:
			summary.SkippedFiles++
		}

		if result.Status != m.StatusUnchanged || args.Verbose {
			w.ui.DisplayFileResult(ctx, result)
		}
	}

	w.ui.DisplayRunSummary(ctx, summary)

	audit, err := w.auditor.Audit(ctx, args.Root, files)
	if err != nil {
		return fmt.Errorf("audit pass: %w", err)
	}

	w.ui.DisplayAudit(ctx, audit)

	if !audit.Clean() {
		return ErrUnmigratedReferences
	}

	return nil
}

// processFile runs the per-file state machine:
// READ -> NORMALIZE_HEADER -> REWRITE_REFERENCES -> (WRITE | SKIP).
// Read and decode failures are recoverable (the file is skipped and
// counted); a failed write-back aborts the run.
func (w *workflow) processFile(path m.Path, args RunArgs) (m.FileResult, error) {
	rel, err := w.fs.RelPath(args.Root, path)
	if err != nil {
		rel = path
	}

	result := m.FileResult{Path: rel, Status: m.StatusUnchanged}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		slog.Warn("skipping unreadable file", "path", path, "error", err)

		result.Status = m.StatusReadError
		result.Err = err

		return result, nil
	}

	record := m.FileRecord{FullPath: path, RelPath: rel, Content: content}

	if !utf8.Valid(record.Content) {
		slog.Warn("skipping non-UTF-8 file", "path", path)

		result.Status = m.StatusReadError
		result.Err = fmt.Errorf("%s is not valid UTF-8", path)

		return result, nil
	}

	transformed, change, changed := NormalizeLocation(record.Content, record.RelPath)
	if changed {
		result.Changes = append(result.Changes, change)
	}

	transformed, refChanges := RewriteReferences(transformed, w.rules)
	result.Changes = append(result.Changes, refChanges...)

	if bytes.Equal(transformed, record.Content) {
		return result, nil
	}

	if args.ShowDiff {
		result.Diff = unifiedDiff(string(record.Content), string(transformed), string(rel))
	}

	if args.DryRun {
		result.Status = m.StatusWouldModify
		return result, nil
	}

	// Preserve the original file mode on write-back.
	perm := os.FileMode(0o644)
	if info, infoErr := w.fs.FileInfo(path); infoErr == nil {
		perm = info.Mode().Perm()
	}

	if writeErr := w.fs.WriteFile(path, transformed, perm); writeErr != nil {
		return result, fmt.Errorf("write %s: %w", path, writeErr)
	}

	result.Status = m.StatusModified

	return result, nil
}

func (w *workflow) Estimate(ctx context.Context, root m.Path) error {
	files, err := w.locator.Locate(root)
	if err != nil {
		return fmt.Errorf("locate source files: %w", err)
	}

	estimates := make([]m.FileEstimate, 0, len(files))
	total := 0

	for _, file := range files {
		result, _ := w.processFile(file, RunArgs{Root: root, DryRun: true})
		if result.Status == m.StatusReadError {
			continue
		}

		estimates = append(estimates, m.FileEstimate{Path: result.Path, Changes: len(result.Changes)})
		total += len(result.Changes)
	}

	w.ui.DisplayEstimation(ctx, estimates, total)

	return nil
}

func (w *workflow) Audit(ctx context.Context, root m.Path) error {
	files, err := w.locator.Locate(root)
	if err != nil {
		return fmt.Errorf("locate source files: %w", err)
	}

	audit, err := w.auditor.Audit(ctx, root, files)
	if err != nil {
		return fmt.Errorf("audit pass: %w", err)
	}

	w.ui.DisplayAudit(ctx, audit)

	if !audit.Clean() {
		return ErrUnmigratedReferences
	}

	return nil
}

func unifiedDiff(before, after, rel string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: rel,
		ToFile:   rel,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}
