package model

// LeftoverRef records unmigrated references found in one file during the
// audit pass. Tokens are the literal offending substrings, deduplicated
// and sorted.
type LeftoverRef struct {
	Path   Path
	Tokens []string
}

// AuditResult is the outcome of the post-run verification pass.
//
// Leftover is ordered by file path. External holds every preserved-namespace
// reference observed across the tree, deduplicated and sorted.
type AuditResult struct {
	FilesScanned int
	Leftover     []LeftoverRef
	External     []string
}

// Clean reports whether the migration left no forbidden references behind.
func (r AuditResult) Clean() bool {
	return len(r.Leftover) == 0
}
