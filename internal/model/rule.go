package model

// RewriteRule migrates one namespace prefix to another. Matching is
// whole-token: the old prefix must sit on identifier boundaries so that
// longer identifiers sharing the spelling are left alone.
type RewriteRule struct {
	Old string `mapstructure:"old" yaml:"old"`
	New string `mapstructure:"new" yaml:"new"`
}

// RuleTable is the full declarative migration configuration.
//
// Rules drive the rewriter. Forbidden lists namespace roots that must not
// survive a migration run; any reference still matching one after the run
// is an audit failure. Preserved lists external namespace roots whose
// references are expected to remain and are reported informationally.
type RuleTable struct {
	Rules     []RewriteRule `mapstructure:"rules" yaml:"rules"`
	Forbidden []string      `mapstructure:"forbidden" yaml:"forbidden"`
	Preserved []string      `mapstructure:"preserved" yaml:"preserved"`
}

// DefaultRuleTable returns the compiled-in cpex migration table.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		Rules: []RewriteRule{
			{Old: "mcpgateway.plugins.framework", New: "cpex.framework"},
			{Old: "mcpgateway.plugins.tools", New: "cpex.tools"},
		},
		Forbidden: []string{"mcpgateway.plugins"},
		Preserved: []string{"mcpgateway"},
	}
}
