package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nsshift.dev/pkg/nsshift/internal/adapter"
	m "nsshift.dev/pkg/nsshift/internal/model"
)

func locateAll(t *testing.T, root string) []m.Path {
	t.Helper()

	locator, err := NewLocator(adapter.NewLocalSourceFSAdapter(), []string{".py"}, nil)
	require.NoError(t, err)

	files, err := locator.Locate(m.Path(root))
	require.NoError(t, err)

	return files
}

func TestAudit_CleanTree(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "mod.py", "from cpex.framework import Plugin\n")

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, 1, result.FilesScanned)
	assert.Empty(t, result.Leftover)
	assert.Empty(t, result.External)
}

func TestAudit_ReportsLeftoverForbiddenReferences(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "pkg/loader.py", `from mcpgateway.plugins.other import Loader
ref = "mcpgateway.plugins.other.Registry"
again = mcpgateway.plugins.other.Loader
`)

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.False(t, result.Clean())
	require.Len(t, result.Leftover, 1)
	assert.Equal(t, m.Path(filepath.Join("pkg", "loader.py")), result.Leftover[0].Path)
	assert.Equal(t, []string{
		"mcpgateway.plugins.other",
		"mcpgateway.plugins.other.Loader",
		"mcpgateway.plugins.other.Registry",
	}, result.Leftover[0].Tokens)
}

func TestAudit_CollectsExternalReferences(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "a.py", "from mcpgateway.common import Settings\nimport mcpgateway.config.get_settings\n")
	writeFixtureFile(t, root, "b.py", "from mcpgateway.common import Settings\n")

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, []string{"mcpgateway.common", "mcpgateway.config.get_settings"}, result.External)
}

func TestAudit_ForbiddenTokensNotReportedAsExternal(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "a.py", "import mcpgateway.plugins.other.Loader\nimport mcpgateway.common\n")

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.Equal(t, []string{"mcpgateway.common"}, result.External)
}

func TestAudit_ForbiddenSpelledPrefixNotReportedAsExternal(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "a.py", "import mcpgateway.pluginsfoo.bar\nimport mcpgateway.common\n")

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, []string{"mcpgateway.common"}, result.External)
}

func TestAudit_SkipsUnreadableFiles(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "ok.py", "import cpex.framework\n")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.py"), filepath.Join(root, "broken.py")))

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	result, err := auditor.Audit(context.Background(), m.Path(root), locateAll(t, root))
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Equal(t, 2, result.FilesScanned)
}

func TestAudit_HonorsContextCancellation(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, root, "a.py", "import cpex.framework\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	auditor := NewAuditor(adapter.NewLocalSourceFSAdapter(), m.DefaultRuleTable())

	_, err := auditor.Audit(ctx, m.Path(root), locateAll(t, root))

	assert.ErrorIs(t, err, context.Canceled)
}
