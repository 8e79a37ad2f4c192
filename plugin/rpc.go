// Package plugin provides net/rpc client and server shims for the
// RuleSet service. The wire structs travel by value over gob; Check
// carries file contents to the plugin and issues back, so no callback
// channel into the host is needed.

package plugin

import (
	"encoding/gob"
	"fmt"
	"net/rpc"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

func init() {
	// Rule options are decoded JSON values; gob needs the concrete
	// container types registered to move them inside Config.
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// Empty is the wire struct for calls without arguments or results.
type Empty struct{}

// ApplyGlobalConfigArgs carries the global configuration to the plugin.
type ApplyGlobalConfigArgs struct {
	Config *flatlint.Config
}

// ApplyConfigArgs carries the plugin-specific configuration document.
type ApplyConfigArgs struct {
	Content []byte
}

// Issue is a rule finding in wire form. The rule is carried by name
// and metadata rather than by interface.
type Issue struct {
	RuleName string
	Message  string
	Severity flatlint.Severity
	Link     string
	Range    flatlint.SourceRange
}

// CheckArgs carries the files in scope to the plugin.
type CheckArgs struct {
	Files map[string][]byte
}

// CheckReply carries the findings back to the host.
type CheckReply struct {
	Issues []Issue
}

// =============================================================================
// RuleSetServer - Plugin side
// =============================================================================

// RuleSetServer wraps a flatlint.RuleSet to serve it over net/rpc.
// This runs in the plugin process and handles requests from the host.
type RuleSetServer struct {
	impl flatlint.RuleSet
	// config is the last applied global configuration; Check uses it
	// to back DecodeRuleOptions.
	config *flatlint.Config
}

// NewRuleSetServer wraps a RuleSet implementation.
func NewRuleSetServer(impl flatlint.RuleSet) *RuleSetServer {
	return &RuleSetServer{impl: impl}
}

// Name returns the ruleset name.
func (s *RuleSetServer) Name(_ Empty, reply *string) error {
	*reply = s.impl.RuleSetName()
	return nil
}

// Version returns the ruleset version.
func (s *RuleSetServer) Version(_ Empty, reply *string) error {
	*reply = s.impl.RuleSetVersion()
	return nil
}

// RuleNames returns the names of all rules in the ruleset.
func (s *RuleSetServer) RuleNames(_ Empty, reply *[]string) error {
	*reply = s.impl.RuleNames()
	return nil
}

// VersionConstraint returns the flatlint version constraint.
func (s *RuleSetServer) VersionConstraint(_ Empty, reply *string) error {
	*reply = s.impl.VersionConstraint()
	return nil
}

// ConfigSchema returns the plugin-specific configuration schema.
func (s *RuleSetServer) ConfigSchema(_ Empty, reply *[]byte) error {
	*reply = s.impl.ConfigSchema()
	return nil
}

// ApplyGlobalConfig applies global flatlint configuration.
func (s *RuleSetServer) ApplyGlobalConfig(args ApplyGlobalConfigArgs, _ *Empty) error {
	s.config = args.Config
	return s.impl.ApplyGlobalConfig(args.Config)
}

// ApplyConfig applies plugin-specific configuration.
func (s *RuleSetServer) ApplyConfig(args ApplyConfigArgs, _ *Empty) error {
	return s.impl.ApplyConfig(args.Content)
}

// Check runs all enabled rules against the supplied files and returns
// the findings.
func (s *RuleSetServer) Check(args CheckArgs, reply *CheckReply) error {
	base := newMemoryRunner(args.Files, s.config)
	runner, err := s.impl.NewRunner(base)
	if err != nil {
		return fmt.Errorf("new runner: %w", err)
	}

	builtin := s.impl.BuiltinImpl()
	if builtin == nil {
		return fmt.Errorf("ruleset %q has no builtin implementation", s.impl.RuleSetName())
	}
	for _, rule := range builtin.EnabledRules() {
		if err := rule.Check(runner); err != nil {
			return fmt.Errorf("rule %q: %w", rule.Name(), err)
		}
	}

	// Findings carry the configured severity, not the rule default.
	for i := range base.issues {
		base.issues[i].Severity = builtin.RuleSeverity(base.issues[i].RuleName)
	}
	reply.Issues = base.issues
	return nil
}

// =============================================================================
// RuleSetClient - Host side
// =============================================================================

// RuleSetClient implements flatlint.RuleSet over an RPC connection to a
// served plugin. The host obtains one via Dispense.
type RuleSetClient struct {
	client *rpc.Client
}

// Ensure RuleSetClient implements flatlint.RuleSet.
var _ flatlint.RuleSet = (*RuleSetClient)(nil)

// RuleSetName returns the name of the remote ruleset.
func (c *RuleSetClient) RuleSetName() string {
	var name string
	if err := c.client.Call("Plugin.Name", Empty{}, &name); err != nil {
		return ""
	}
	return name
}

// RuleSetVersion returns the version of the remote ruleset.
func (c *RuleSetClient) RuleSetVersion() string {
	var version string
	if err := c.client.Call("Plugin.Version", Empty{}, &version); err != nil {
		return ""
	}
	return version
}

// RuleNames returns the names of all rules in the remote ruleset.
func (c *RuleSetClient) RuleNames() []string {
	var names []string
	if err := c.client.Call("Plugin.RuleNames", Empty{}, &names); err != nil {
		return nil
	}
	return names
}

// VersionConstraint returns the remote ruleset's version constraint.
func (c *RuleSetClient) VersionConstraint() string {
	var constraint string
	if err := c.client.Call("Plugin.VersionConstraint", Empty{}, &constraint); err != nil {
		return ""
	}
	return constraint
}

// ConfigSchema returns the remote ruleset's configuration schema.
func (c *RuleSetClient) ConfigSchema() []byte {
	var schema []byte
	if err := c.client.Call("Plugin.ConfigSchema", Empty{}, &schema); err != nil {
		return nil
	}
	return schema
}

// ApplyGlobalConfig applies global flatlint configuration remotely.
func (c *RuleSetClient) ApplyGlobalConfig(config *flatlint.Config) error {
	return c.client.Call("Plugin.ApplyGlobalConfig", ApplyGlobalConfigArgs{Config: config}, &Empty{})
}

// ApplyConfig applies plugin-specific configuration remotely.
func (c *RuleSetClient) ApplyConfig(content []byte) error {
	return c.client.Call("Plugin.ApplyConfig", ApplyConfigArgs{Content: content}, &Empty{})
}

// NewRunner returns the runner unchanged; runner customization happens
// on the plugin side.
func (c *RuleSetClient) NewRunner(runner flatlint.Runner) (flatlint.Runner, error) {
	return runner, nil
}

// BuiltinImpl returns nil: remote rulesets expose no local rule
// objects. Hosts drive remote rulesets through Check instead.
func (c *RuleSetClient) BuiltinImpl() *flatlint.BuiltinRuleSet {
	return nil
}

// Check runs the remote ruleset's enabled rules against the supplied
// files and returns the findings.
func (c *RuleSetClient) Check(files map[string][]byte) ([]Issue, error) {
	var reply CheckReply
	if err := c.client.Call("Plugin.Check", CheckArgs{Files: files}, &reply); err != nil {
		return nil, err
	}
	return reply.Issues, nil
}
