package flatlint

// Rule is the interface that all flatlint rules must implement.
//
// Plugin authors typically embed DefaultRule to get default implementations
// for Enabled() and Severity(), then implement the remaining methods.
//
// Example:
//
//	type NoConsoleRule struct {
//	    flatlint.DefaultRule
//	}
//
//	func (r *NoConsoleRule) Name() string { return "no-console" }
//	func (r *NoConsoleRule) Link() string { return "https://example.com/no-console" }
//	func (r *NoConsoleRule) Check(runner flatlint.Runner) error {
//	    return runner.WalkFiles(func(path string) error {
//	        src, err := runner.FileContent(path)
//	        if err != nil {
//	            return err
//	        }
//	        // Scan src and emit issues
//	        _ = src
//	        return nil
//	    })
//	}
type Rule interface {
	// Name returns the unique name of the rule.
	// Convention: lowercase with hyphens (e.g. "no-unused-vars").
	Name() string

	// Enabled returns whether the rule is enabled by default.
	// Most rules return true; embed DefaultRule for this behavior.
	Enabled() bool

	// Severity returns the default severity level for issues.
	// Most rules return SeverityError; embed DefaultRule for this behavior.
	Severity() Severity

	// Link returns a URL to documentation about the rule.
	// Should explain what the rule checks and how to resolve issues.
	Link() string

	// Check executes the rule against the files accessible via runner.
	// Call runner.EmitIssue() for each finding.
	// Return an error only for unexpected failures, not for findings.
	Check(runner Runner) error
}

// RuleSet is implemented by plugins to provide a collection of rules.
// Plugins typically embed BuiltinRuleSet and override methods as needed.
//
// Example:
//
//	type ImportRuleSet struct {
//	    flatlint.BuiltinRuleSet
//	}
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &ImportRuleSet{
//	            BuiltinRuleSet: flatlint.BuiltinRuleSet{
//	                Name:    "import",
//	                Version: "0.1.0",
//	                Rules:   []flatlint.Rule{&OrderRule{}},
//	            },
//	        },
//	    })
//	}
type RuleSet interface {
	// RuleSetName returns the name of the ruleset (e.g. "import").
	RuleSetName() string

	// RuleSetVersion returns the version of the ruleset (e.g. "0.1.0").
	RuleSetVersion() string

	// RuleNames returns the names of all rules in this ruleset.
	RuleNames() []string

	// VersionConstraint returns the flatlint version constraint (e.g. ">= 0.1.0").
	VersionConstraint() string

	// ConfigSchema returns a JSON schema document describing the
	// plugin-specific configuration. Return nil if no configuration
	// is needed.
	ConfigSchema() []byte

	// ApplyGlobalConfig applies global flatlint configuration.
	// Called before ApplyConfig.
	ApplyGlobalConfig(*Config) error

	// ApplyConfig applies plugin-specific configuration as a raw JSON
	// document matching the schema from ConfigSchema().
	ApplyConfig([]byte) error

	// NewRunner optionally wraps the runner with custom behavior.
	// Return the runner unchanged if no customization is needed.
	NewRunner(Runner) (Runner, error)

	// BuiltinImpl returns the embedded BuiltinRuleSet.
	// Used internally for rule iteration.
	BuiltinImpl() *BuiltinRuleSet
}
