package domain

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"nsshift.dev/pkg/nsshift/internal/adapter"
	m "nsshift.dev/pkg/nsshift/internal/model"
	"nsshift.dev/pkg/nsshift/pkg"
)

// Auditor re-verifies the tree after a run. It deliberately re-reads every
// file from disk instead of reusing in-memory results: the audit confirms
// the state that was actually written, which independently catches rules
// that failed to fire on boundary-matching edge cases.
type Auditor interface {
	Audit(ctx context.Context, base m.Path, files []m.Path) (m.AuditResult, error)
}

type auditor struct {
	fs             adapter.SourceFSAdapter
	forbidden      []*regexp.Regexp
	preserved      []*regexp.Regexp
	forbiddenRoots []string
}

// NewAuditor builds an Auditor for the table's forbidden and preserved
// namespace roots.
func NewAuditor(fs adapter.SourceFSAdapter, table m.RuleTable) Auditor {
	return &auditor{
		fs:             fs,
		forbidden:      referencePatterns(table.Forbidden),
		preserved:      referencePatterns(table.Preserved),
		forbiddenRoots: table.Forbidden,
	}
}

// referencePatterns builds scan patterns matching a namespace root followed
// by a dotted continuation, e.g. `mcpgateway.plugins.framework.Plugin`.
// The continuation stops at whitespace and quote characters so the matched
// token is the literal reference as it appears in source.
func referencePatterns(roots []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(roots))

	for _, root := range roots {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(root)+`\.[^\s'"]+`))
	}

	return patterns
}

// Audit scans every file for leftover forbidden references (a migration
// failure) and preserved external references (informational). Token sets
// are deduplicated and sorted; files arrive pre-sorted from the locator,
// so the whole result is deterministic.
func (a *auditor) Audit(ctx context.Context, base m.Path, files []m.Path) (m.AuditResult, error) {
	result := m.AuditResult{FilesScanned: len(files)}
	external := pkg.NewOrderedSet[string]()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		content, err := a.fs.ReadFile(file)
		if err != nil {
			slog.Warn("audit: skipping unreadable file", "path", file, "error", err)
			continue
		}

		text := string(content)

		leftover := pkg.NewOrderedSet[string]()
		for _, pattern := range a.forbidden {
			leftover.AddAll(pattern.FindAllString(text, -1))
		}

		if leftover.Len() > 0 {
			rel, relErr := a.fs.RelPath(base, file)
			if relErr != nil {
				rel = file
			}

			result.Leftover = append(result.Leftover, m.LeftoverRef{Path: rel, Tokens: leftover.Values()})
		}

		for _, pattern := range a.preserved {
			for _, token := range pattern.FindAllString(text, -1) {
				if a.underForbiddenRoot(token) {
					continue
				}

				external.Add(token)
			}
		}
	}

	result.External = external.Values()

	return result, nil
}

// underForbiddenRoot reports whether a preserved-namespace token falls
// under a forbidden (renamed) root. RE2 has no negative lookahead, so the
// exclusion is a textual prefix check: any token spelled with a forbidden
// root's prefix stays out of the external listing, dotted continuation
// or not.
func (a *auditor) underForbiddenRoot(token string) bool {
	for _, root := range a.forbiddenRoots {
		if strings.HasPrefix(token, root) {
			return true
		}
	}

	return false
}
