package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRunHeader announces the run before any file is processed.
func (s *SimpleUI) DisplayRunHeader(ctx context.Context, fileCount int, root m.Path, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	if dryRun {
		s.printf("DRY RUN - no files will be modified\n\n")
	}

	s.printf("Processing %d files in %s\n\n", fileCount, root)
}

// DisplayFileResult prints the status line and change bullets for one file.
func (s *SimpleUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Status == m.StatusReadError {
		s.printf("Error reading %s: %v\n", result.Path, result.Err)
		return
	}

	s.printf("%s: %s\n", result.Status, result.Path)

	for _, change := range result.Changes {
		s.printf("  - %s\n", change)
	}

	if result.Diff != "" {
		s.printf("%s", result.Diff)
	}
}

// DisplayRunSummary prints the modified-vs-total counts.
func (s *SimpleUI) DisplayRunSummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	verb := "Modified"
	if summary.DryRun {
		verb = "Would modify"
	}

	s.printf("\n%s %d/%d files\n", verb, summary.ModifiedFiles, summary.TotalFiles)

	if summary.SkippedFiles > 0 {
		s.printf("Skipped %d file(s) due to read errors\n", summary.SkippedFiles)
	}
}

// DisplayEstimation renders the pending-change table.
func (s *SimpleUI) DisplayEstimation(ctx context.Context, estimates []m.FileEstimate, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderEstimationTable(estimates, total))
}

func renderEstimationTable(estimates []m.FileEstimate, total int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Pending Changes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, estimate := range estimates {
		table.Append([]string{string(estimate.Path), fmt.Sprintf("%d", estimate.Changes)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayAudit renders the verification report.
func (s *SimpleUI) DisplayAudit(ctx context.Context, result m.AuditResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderAuditReport(result))
}

// renderAuditReport builds the plain-text audit report shared by both UIs.
func renderAuditReport(result m.AuditResult) string {
	var b strings.Builder

	b.WriteString("--- Checking for remaining forbidden references ---\n")
	fmt.Fprintf(&b, "Scanned %d files\n", result.FilesScanned)

	if len(result.Leftover) > 0 {
		b.WriteString("WARNING: Found remaining unmigrated references:\n")

		for _, ref := range result.Leftover {
			fmt.Fprintf(&b, "  %s:\n", ref.Path)

			for _, token := range ref.Tokens {
				fmt.Fprintf(&b, "    - %s\n", token)
			}
		}
	} else {
		b.WriteString("No remaining unmigrated references found.\n")
	}

	b.WriteString("\n--- External dependencies (expected, not changed) ---\n")

	if len(result.External) > 0 {
		b.WriteString("External dependencies preserved:\n")

		for _, dep := range result.External {
			fmt.Fprintf(&b, "  - %s\n", dep)
		}
	} else {
		b.WriteString("No external dependency references found.\n")
	}

	return b.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
