package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, ".", viper.GetString(sourceKey))
	assert.Equal(t, []string{".py"}, viper.GetStringSlice(extensionsKey))
	assert.Empty(t, viper.GetStringSlice(excludeConfigKey))
	assert.Equal(t, ".nsshift.log", viper.GetString(logFilenameKey))
}

func TestRuleTableFromConfig_Defaults(t *testing.T) {
	table, err := ruleTableFromConfig()
	require.NoError(t, err)

	assert.Equal(t, m.DefaultRuleTable(), table)
}

func TestRuleTableFromConfig_OverridesRules(t *testing.T) {
	viper.Set(rulesKey, []map[string]string{
		{"old": "legacy.api", "new": "core.api"},
	})
	viper.Set(forbiddenKey, []string{"legacy.api"})
	viper.Set(preservedKey, []string{"legacy"})

	t.Cleanup(func() {
		viper.Set(rulesKey, []map[string]string{})
		viper.Set(forbiddenKey, []string{})
		viper.Set(preservedKey, []string{})
	})

	table, err := ruleTableFromConfig()
	require.NoError(t, err)

	assert.Equal(t, []m.RewriteRule{{Old: "legacy.api", New: "core.api"}}, table.Rules)
	assert.Equal(t, []string{"legacy.api"}, table.Forbidden)
	assert.Equal(t, []string{"legacy"}, table.Preserved)
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("debug", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("INFO", slog.LevelError))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("warning", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, parseSlogLevel(" error ", slog.LevelInfo))
	assert.Equal(t, slog.Level(-4), parseSlogLevel("-4", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("bogus", slog.LevelWarn))
}

func TestConfigureLogger_WritesToRotatingFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	configureLogger(logPath, false)
	require.NotNil(t, globalLogger)

	slog.Info("logger configured")

	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestConfigureLogger_VerboseEnablesDebug(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	configureLogger(logPath, true)

	content := func() string {
		slog.Debug("debug line")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)

		return string(data)
	}()

	assert.Contains(t, content, "debug line")
}
