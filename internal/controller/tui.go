package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// TUI implements UI for interactive terminals. File results and summaries
// are printed like SimpleUI; the audit report gets a scrollable Bubble Tea
// viewer when it does not fit on screen.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayAudit shows the audit report, paginating when it exceeds the
// terminal height.
func (t *TUI) DisplayAudit(ctx context.Context, result m.AuditResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	model := newAuditModel(result)

	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, _ = fmt.Fprint(t.output, model.View())
		return
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		// Terminal rejected the program; fall back to plain output.
		t.SimpleUI.DisplayAudit(ctx, result)
	}
}

// auditModel represents the Bubble Tea model for browsing the audit report.
type auditModel struct {
	lines    []string
	failed   bool
	height   int
	width    int
	offset   int
	quitting bool
}

func newAuditModel(result m.AuditResult) auditModel {
	report := strings.TrimRight(renderAuditReport(result), "\n")

	return auditModel{
		lines:  strings.Split(report, "\n"),
		failed: !result.Clean(),
	}
}

func (am auditModel) Init() tea.Cmd {
	return nil
}

func (am auditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		am.height = msg.Height
		am.width = msg.Width

		return am, nil

	case tea.KeyMsg:
		return am.handleKeyPress(msg)
	}

	return am, nil
}

func (am auditModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		am.quitting = true
		return am, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		am.quitting = true
		return am, tea.Quit

	case "down", "j":
		am.offset++

		maxOffset := am.maxOffset()
		if am.offset > maxOffset {
			am.offset = maxOffset
		}

		return am, nil

	case "up", "k":
		am.offset--
		if am.offset < 0 {
			am.offset = 0
		}

		return am, nil

	case "g", "home":
		am.offset = 0

		return am, nil

	case "G", "end":
		am.offset = am.maxOffset()

		return am, nil

	case "d", "pgdown":
		am.offset += am.linesPerPage()

		maxOffset := am.maxOffset()
		if am.offset > maxOffset {
			am.offset = maxOffset
		}

		return am, nil

	case "u", "pgup":
		am.offset -= am.linesPerPage()
		if am.offset < 0 {
			am.offset = 0
		}

		return am, nil
	}

	return am, nil
}

// linesPerPage calculates how many report lines fit on screen.
func (am auditModel) linesPerPage() int {
	if am.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Header box: 4 lines
	// - Status line: 2 lines
	// - Footer (pagination + help): 3 lines
	reserved := 9

	available := am.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (am auditModel) maxOffset() int {
	maxOff := len(am.lines) - am.linesPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the report is too large to fit on screen.
func (am auditModel) needsPagination() bool {
	if len(am.lines) == 0 {
		return false
	}

	return len(am.lines) > am.linesPerPage() && am.height > 0
}

func (am auditModel) View() string {
	var b strings.Builder

	am.renderHeader(&b)

	visible := am.lines
	paginated := am.needsPagination()

	start := 0
	end := len(visible)

	if paginated {
		start = am.offset
		if start > len(am.lines)-1 {
			start = len(am.lines) - 1
		}

		end = start + am.linesPerPage()
		if end > len(am.lines) {
			end = len(am.lines)
		}

		visible = am.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if paginated {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(am.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}

func (am auditModel) renderHeader(b *strings.Builder) {
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                   Nsshift - Migration Audit                    ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")

	if am.failed {
		b.WriteString("  ✗ Unmigrated references remain\n\n")
	} else {
		b.WriteString("  ✓ Migration complete\n\n")
	}
}
