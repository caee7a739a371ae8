// Package domain contains the core migration pipeline and transform logic.
package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"nsshift.dev/pkg/nsshift/internal/adapter"
	m "nsshift.dev/pkg/nsshift/internal/model"
)

// Locator enumerates candidate files for a migration run.
type Locator interface {
	// Locate returns every file under root matching the extension filter,
	// sorted by path so processing order is reproducible.
	Locate(root m.Path) ([]m.Path, error)
}

type locator struct {
	fs         adapter.SourceFSAdapter
	extensions map[string]struct{}
	exclude    []*regexp.Regexp
}

// NewLocator creates a Locator for the given extension filter and exclude
// patterns. Exclude entries are regular expressions matched against the
// full file path.
func NewLocator(fs adapter.SourceFSAdapter, extensions []string, exclude []string) (Locator, error) {
	extSet := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		extSet[ext] = struct{}{}
	}

	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, pattern)
	}

	return &locator{fs: fs, extensions: extSet, exclude: patterns}, nil
}

// Locate walks root recursively and returns the sorted matching files.
// A missing or unreadable root is fatal since the run has no input set
// without it.
func (l *locator) Locate(root m.Path) ([]m.Path, error) {
	info, err := l.fs.FileInfo(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	var files []m.Path

	err = l.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if _, ok := l.extensions[filepath.Ext(path)]; !ok {
			return nil
		}

		if l.excluded(path) {
			return nil
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func (l *locator) excluded(path string) bool {
	for _, pattern := range l.exclude {
		if pattern.MatchString(path) {
			return true
		}
	}

	return false
}
