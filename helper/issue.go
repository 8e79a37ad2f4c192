package helper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// Issue represents a finding from a rule for test assertions.
type Issue struct {
	// Rule is the rule that emitted the issue.
	Rule flatlint.Rule
	// Message is the issue message.
	Message string
	// Range is the source location of the issue.
	Range flatlint.SourceRange
}

// Issues is a slice of Issue for convenience.
type Issues []Issue

// AssertIssues compares expected and actual issues.
// It ignores issue order and compares rules by name.
//
// Example:
//
//	helper.AssertIssues(t, helper.Issues{
//	    {Rule: rule, Message: "unexpected console statement"},
//	}, runner.Issues)
func AssertIssues(t *testing.T, want, got Issues) {
	t.Helper()

	opts := []cmp.Option{
		// Ignore issue order
		cmpopts.SortSlices(func(a, b Issue) bool {
			if a.Message != b.Message {
				return a.Message < b.Message
			}
			if a.Range.Filename != b.Range.Filename {
				return a.Range.Filename < b.Range.Filename
			}
			return a.Range.Start.Line < b.Range.Start.Line
		}),
		// Compare rules by name only
		cmp.Comparer(func(a, b flatlint.Rule) bool {
			if a == nil && b == nil {
				return true
			}
			if a == nil || b == nil {
				return false
			}
			return a.Name() == b.Name()
		}),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// AssertIssuesWithoutRange compares expected and actual issues,
// ignoring source ranges entirely. Useful for rules whose exact
// positions are incidental.
func AssertIssuesWithoutRange(t *testing.T, want, got Issues) {
	t.Helper()

	opts := []cmp.Option{
		cmpopts.IgnoreFields(Issue{}, "Range"),
		cmpopts.SortSlices(func(a, b Issue) bool {
			return a.Message < b.Message
		}),
		cmp.Comparer(func(a, b flatlint.Rule) bool {
			if a == nil && b == nil {
				return true
			}
			if a == nil || b == nil {
				return false
			}
			return a.Name() == b.Name()
		}),
	}

	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoIssues asserts that no issues were emitted.
func AssertNoIssues(t *testing.T, got Issues) {
	t.Helper()

	if len(got) > 0 {
		t.Errorf("expected no issues, got %d:", len(got))
		for _, issue := range got {
			t.Errorf("  %s: %s", issue.Range, issue.Message)
		}
	}
}
