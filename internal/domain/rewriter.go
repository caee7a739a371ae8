package domain

import (
	"fmt"
	"regexp"

	m "nsshift.dev/pkg/nsshift/internal/model"
)

// CompiledRule pairs a rewrite rule with its boundary-anchored pattern.
type CompiledRule struct {
	Rule    m.RewriteRule
	pattern *regexp.Regexp
}

// tokenPattern builds a whole-token pattern for a dotted namespace prefix.
// The \b anchors keep the prefix from matching inside longer identifiers;
// a trailing "." after the match is left in place so the continuation
// survives the replacement.
func tokenPattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(prefix) + `\b`)
}

// CompileRules prepares the rule table's patterns. Call ValidateRules first;
// compilation itself cannot fail because the prefixes are quoted literally.
func CompileRules(rules []m.RewriteRule) []CompiledRule {
	compiled := make([]CompiledRule, 0, len(rules))

	for _, rule := range rules {
		compiled = append(compiled, CompiledRule{Rule: rule, pattern: tokenPattern(rule.Old)})
	}

	return compiled
}

// RewriteReferences applies every rule to the content independently,
// counting replacements per rule. It is a pure function: unchanged input
// comes back as-is with no change descriptions, which is what makes the
// full pipeline idempotent.
func RewriteReferences(content []byte, rules []CompiledRule) ([]byte, []string) {
	var changes []string

	for _, rule := range rules {
		count := len(rule.pattern.FindAllIndex(content, -1))
		if count == 0 {
			continue
		}

		content = rule.pattern.ReplaceAllLiteral(content, []byte(rule.Rule.New))
		changes = append(changes, fmt.Sprintf("Replaced %d '%s' -> '%s'", count, rule.Rule.Old, rule.Rule.New))
	}

	return content, changes
}

// ValidateRules rejects rule tables that would break idempotence or make
// rule order significant. A new prefix must never contain any old prefix
// as a whole token, and old prefixes must be pairwise disjoint.
func ValidateRules(table m.RuleTable) error {
	for i, rule := range table.Rules {
		if rule.Old == "" || rule.New == "" {
			return fmt.Errorf("rule %d has an empty prefix", i)
		}

		pattern := tokenPattern(rule.Old)

		for _, other := range table.Rules {
			if pattern.MatchString(other.New) {
				return fmt.Errorf("replacement %q reintroduces old prefix %q", other.New, rule.Old)
			}

			if other.Old != rule.Old && pattern.MatchString(other.Old) {
				return fmt.Errorf("old prefixes %q and %q overlap", rule.Old, other.Old)
			}
		}
	}

	return nil
}
