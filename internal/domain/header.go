package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// locationPattern anchors to the structured header marker so that prose
// mentioning "Location:" elsewhere in a file is never touched. Only the
// first match per file is authoritative.
var locationPattern = regexp.MustCompile(`"""Location:[ \t]*([^\n]+)`)

// NormalizeLocation rewrites the first Location header field to the file's
// repository-relative path. The canonical value uses a leading "./" and
// forward slashes regardless of host path conventions.
//
// Files without the marker are left alone; that is not an error. The
// returned change description has the form "Location: old -> new".
func NormalizeLocation(content []byte, relPath m.Path) ([]byte, string, bool) {
	idx := locationPattern.FindSubmatchIndex(content)
	if idx == nil {
		return content, "", false
	}

	correct := CanonicalLocation(relPath)

	current := strings.TrimSpace(string(content[idx[2]:idx[3]]))
	if current == correct {
		return content, "", false
	}

	out := make([]byte, 0, len(content)+len(correct))
	out = append(out, content[:idx[2]]...)
	out = append(out, correct...)
	out = append(out, content[idx[3]:]...)

	return out, fmt.Sprintf("Location: %s -> %s", current, correct), true
}

// CanonicalLocation renders the normalized header value for a
// repository-relative path.
func CanonicalLocation(relPath m.Path) string {
	return "./" + filepath.ToSlash(string(relPath))
}
