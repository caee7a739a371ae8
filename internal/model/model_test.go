package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStatusString(t *testing.T) {
	assert.Equal(t, "No changes", StatusUnchanged.String())
	assert.Equal(t, "Modified", StatusModified.String())
	assert.Equal(t, "Would modify", StatusWouldModify.String())
	assert.Equal(t, "Read error", StatusReadError.String())
}

func TestFileResultChanged(t *testing.T) {
	assert.True(t, FileResult{Status: StatusModified}.Changed())
	assert.True(t, FileResult{Status: StatusWouldModify}.Changed())
	assert.False(t, FileResult{Status: StatusUnchanged}.Changed())
	assert.False(t, FileResult{Status: StatusReadError}.Changed())
}

func TestAuditResultClean(t *testing.T) {
	assert.True(t, AuditResult{External: []string{"ext.dep"}}.Clean())
	assert.False(t, AuditResult{Leftover: []LeftoverRef{{Path: "a.py"}}}.Clean())
}

func TestDefaultRuleTable(t *testing.T) {
	table := DefaultRuleTable()

	assert.Equal(t, []RewriteRule{
		{Old: "mcpgateway.plugins.framework", New: "cpex.framework"},
		{Old: "mcpgateway.plugins.tools", New: "cpex.tools"},
	}, table.Rules)
	assert.Equal(t, []string{"mcpgateway.plugins"}, table.Forbidden)
	assert.Equal(t, []string{"mcpgateway"}, table.Preserved)
}
