// Package controller provides output adapters for displaying migration results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// UI defines the interface for displaying migration progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayRunHeader announces the run: file count, root, and dry-run mode.
	DisplayRunHeader(ctx context.Context, fileCount int, root m.Path, dryRun bool)

	// DisplayFileResult prints one file's status line plus its change bullets.
	DisplayFileResult(ctx context.Context, result m.FileResult)

	// DisplayRunSummary prints the modified-vs-total counts.
	DisplayRunSummary(ctx context.Context, summary m.RunSummary)

	// DisplayEstimation renders the per-file pending-change table.
	DisplayEstimation(ctx context.Context, estimates []m.FileEstimate, total int)

	// DisplayAudit renders the post-run verification report.
	DisplayAudit(ctx context.Context, result m.AuditResult)
}

// NewUI selects the UI implementation: interactive terminals get the
// paginating TUI, everything else the plain writer so piped output stays
// deterministic.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
