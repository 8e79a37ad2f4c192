// Package plugin provides the entry point for flatlint ruleset plugins.
//
// This file implements the in-memory Runner handed to rules on the
// plugin side of a Check call.

package plugin

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// memoryRunner is the plugin-side flatlint.Runner backing Check: the
// host ships file contents by value, rules read them from memory, and
// findings accumulate for the reply.
type memoryRunner struct {
	files  map[string][]byte
	config *flatlint.Config
	issues []Issue
}

var _ flatlint.Runner = (*memoryRunner)(nil)

func newMemoryRunner(files map[string][]byte, config *flatlint.Config) *memoryRunner {
	return &memoryRunner{files: files, config: config}
}

// WalkFiles visits the files in sorted path order.
func (r *memoryRunner) WalkFiles(fn func(path string) error) error {
	paths := make([]string, 0, len(r.files))
	for path := range r.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if err := fn(path); err != nil {
			return err
		}
	}
	return nil
}

// FileContent returns the shipped content of a file in scope.
func (r *memoryRunner) FileContent(path string) ([]byte, error) {
	content, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("file not in scope: %s", path)
	}
	return content, nil
}

// EmitIssue records a finding. The severity recorded here is the rule
// default; Check rewrites it with the configured severity.
func (r *memoryRunner) EmitIssue(rule flatlint.Rule, message string, issueRange flatlint.SourceRange) error {
	r.issues = append(r.issues, Issue{
		RuleName: rule.Name(),
		Message:  message,
		Severity: rule.Severity(),
		Link:     rule.Link(),
		Range:    issueRange,
	})
	return nil
}

// DecodeRuleOptions decodes the first configured option object for the
// rule into target. Returns nil without touching target when the rule
// has no options configured.
func (r *memoryRunner) DecodeRuleOptions(ruleName string, target any) error {
	if r.config == nil {
		return nil
	}
	ruleConfig, ok := r.config.Rules[ruleName]
	if !ok || len(ruleConfig.Options) == 0 {
		return nil
	}
	raw, err := json.Marshal(ruleConfig.Options[0])
	if err != nil {
		return fmt.Errorf("rule %q options: %w", ruleName, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("rule %q options: %w", ruleName, err)
	}
	return nil
}
