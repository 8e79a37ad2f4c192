package flatlint

import "fmt"

// Pos is a position in a source file, 1-based.
type Pos struct {
	Line   int
	Column int
}

// SourceRange locates an issue in a source file.
type SourceRange struct {
	Filename string
	Start    Pos
	End      Pos
}

// String renders the range in filename:line:column form.
func (r SourceRange) String() string {
	return fmt.Sprintf("%s:%d:%d", r.Filename, r.Start.Line, r.Start.Column)
}

// Runner provides access to the files in scope during rule execution.
//
// The host constructs a Runner per resolution scope: the files it walks
// are those the descriptor's blocks matched, and the rule configuration
// behind DecodeRuleOptions is the resolved per-file rule table. Rules
// read source text through the Runner and report findings through
// EmitIssue; they never touch the filesystem directly.
type Runner interface {
	// WalkFiles calls fn for every file in scope, in a stable order.
	// Walking stops at the first error, which is returned.
	WalkFiles(fn func(path string) error) error

	// FileContent returns the source text of a file in scope.
	FileContent(path string) ([]byte, error)

	// EmitIssue reports a finding from the rule.
	// The issueRange should point at the relevant source location.
	//
	// Example:
	//
	//	runner.EmitIssue(rule, "unexpected console statement", rng)
	EmitIssue(rule Rule, message string, issueRange SourceRange) error

	// DecodeRuleOptions retrieves and decodes the rule's configured
	// options. The target should be a pointer to a struct with json
	// tags. Returns nil without touching target if no options are
	// configured for the rule.
	//
	// Example:
	//
	//	type maxLenOptions struct {
	//	    Code int `json:"code"`
	//	}
	//	var opts maxLenOptions
	//	if err := runner.DecodeRuleOptions("max-len", &opts); err != nil {
	//	    return err
	//	}
	DecodeRuleOptions(ruleName string, target any) error
}
