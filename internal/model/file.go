// Package model defines the data structures for the migration pipeline.
package model

// Path represents a file system path.
type Path string

// FileStatus is the terminal state of a file after one pipeline pass.
type FileStatus int

const (
	// StatusUnchanged indicates the transforms were a no-op for the file.
	StatusUnchanged FileStatus = iota
	// StatusModified indicates the file was rewritten on disk.
	StatusModified
	// StatusWouldModify indicates changes were computed but suppressed by dry-run.
	StatusWouldModify
	// StatusReadError indicates the file could not be read and was skipped.
	StatusReadError
)

// String returns the status label used in per-file report lines.
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "Modified"
	case StatusWouldModify:
		return "Would modify"
	case StatusReadError:
		return "Read error"
	case StatusUnchanged:
		return "No changes"
	}

	return "No changes"
}

// FileRecord holds a located file in both path forms plus its raw content.
// Records live only for the duration of a single run.
type FileRecord struct {
	FullPath Path
	RelPath  Path
	Content  []byte
}

// FileResult is the per-file outcome of the transform pipeline: the status,
// the ordered human-readable change descriptions, and an optional unified
// diff of the intended edit.
type FileResult struct {
	Path    Path // repository-relative
	Status  FileStatus
	Changes []string
	Diff    string
	Err     error
}

// Changed reports whether the pipeline produced new content for the file.
func (r FileResult) Changed() bool {
	return r.Status == StatusModified || r.Status == StatusWouldModify
}

// FileEstimate pairs a file with the number of pending changes a run
// would apply to it.
type FileEstimate struct {
	Path    Path
	Changes int
}

// RunSummary aggregates per-run counters for the final report lines.
type RunSummary struct {
	TotalFiles    int
	ModifiedFiles int
	SkippedFiles  int
	DryRun        bool
}
