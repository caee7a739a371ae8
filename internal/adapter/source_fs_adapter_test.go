package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

func TestLocalSourceFSAdapter_ReadWriteRoundTrip(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	path := adapter.JoinPath(t.TempDir(), "file.py")

	if err := adapter.WriteFile(path, []byte("import os\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := adapter.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(content) != "import os\n" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestLocalSourceFSAdapter_WriteFilePermissions(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	path := adapter.JoinPath(t.TempDir(), "script.py")

	if err := adapter.WriteFile(path, []byte("#!/usr/bin/env python\n"), 0o755); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := adapter.FileInfo(path)
	if err != nil {
		t.Fatalf("FileInfo failed: %v", err)
	}

	if info.Mode().Perm() != 0o755 {
		t.Errorf("expected mode 0755, got %v", info.Mode().Perm())
	}
}

func TestLocalSourceFSAdapter_WalkVisitsNestedFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	root := t.TempDir()

	if err := os.MkdirAll(filepath.Join(root, "a", "b"), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "a", "b", "deep.py"), nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var visited []string

	err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			visited = append(visited, path)
		}

		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(visited) != 1 || visited[0] != filepath.Join(root, "a", "b", "deep.py") {
		t.Errorf("unexpected walk result: %v", visited)
	}
}

func TestLocalSourceFSAdapter_FileInfoMissingFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	if _, err := adapter.FileInfo(adapter.JoinPath(t.TempDir(), "nope.py")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(m.Path("/tmp/root"), m.Path("/tmp/root/pkg/mod.py"))
	if err != nil {
		t.Fatalf("RelPath failed: %v", err)
	}

	if rel != m.Path(filepath.Join("pkg", "mod.py")) {
		t.Errorf("unexpected relative path: %s", rel)
	}
}
