// Package helper provides testing utilities for flatlint plugins.
// Use TestRunner to test rules without running the flatlint host.
//
// Example:
//
//	func TestMyRule(t *testing.T) {
//	    runner := helper.TestRunner(t, map[string]string{
//	        "src/app.js": `console.log("hi")`,
//	    })
//
//	    rule := &MyRule{}
//	    if err := rule.Check(runner); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    helper.AssertIssues(t, helper.Issues{
//	        {Rule: rule, Message: "unexpected console statement"},
//	    }, runner.Issues)
//	}
package helper

import (
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// Runner is a mock flatlint.Runner for testing.
// Use TestRunner to create an instance.
type Runner struct {
	t      *testing.T
	files  map[string]string
	config *flatlint.Config
	// Issues contains all issues emitted during rule execution.
	Issues Issues
}

// Ensure Runner implements flatlint.Runner.
var _ flatlint.Runner = (*Runner)(nil)

// TestRunner creates a new Runner over in-memory source files.
//
// Example:
//
//	runner := helper.TestRunner(t, map[string]string{
//	    "src/app.js":  `console.log("hi")`,
//	    "src/util.js": `export const n = 1`,
//	})
//
//	rule := &MyRule{}
//	rule.Check(runner)
//	helper.AssertIssues(t, expected, runner.Issues)
func TestRunner(t *testing.T, files map[string]string) *Runner {
	t.Helper()

	normalized := make(map[string]string, len(files))
	for path, content := range files {
		normalized[flatlint.NormalizePath(path)] = content
	}

	return &Runner{
		t:      t,
		files:  normalized,
		Issues: make(Issues, 0),
	}
}

// TestRunnerWithConfig creates a Runner whose DecodeRuleOptions is
// backed by the given configuration.
//
// Example:
//
//	config := &flatlint.Config{
//	    Rules: map[string]*flatlint.RuleConfig{
//	        "max-len": {Name: "max-len", Enabled: true, Options: []any{map[string]any{"code": 80.0}}},
//	    },
//	}
//	runner := helper.TestRunnerWithConfig(t, files, config)
func TestRunnerWithConfig(t *testing.T, files map[string]string, config *flatlint.Config) *Runner {
	t.Helper()

	runner := TestRunner(t, files)
	runner.config = config
	return runner
}

// WalkFiles visits the files in sorted path order.
func (r *Runner) WalkFiles(fn func(path string) error) error {
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

// FileContent returns the content of an in-memory file.
func (r *Runner) FileContent(path string) ([]byte, error) {
	content, ok := r.files[flatlint.NormalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("file not in scope: %s", path)
	}
	return []byte(content), nil
}

// EmitIssue records an issue.
func (r *Runner) EmitIssue(rule flatlint.Rule, message string, issueRange flatlint.SourceRange) error {
	r.Issues = append(r.Issues, Issue{
		Rule:    rule,
		Message: message,
		Range:   issueRange,
	})
	return nil
}

// DecodeRuleOptions decodes the first configured option object for the
// rule into target. Without a config (TestRunner), it always returns
// nil so rules fall back to their defaults.
func (r *Runner) DecodeRuleOptions(ruleName string, target any) error {
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
