package flatlint

import "sort"

// Config represents global flatlint configuration passed to plugins.
// This configuration is used to enable/disable rules and provide
// global settings.
type Config struct {
	// Rules maps bare rule names to their configuration.
	Rules map[string]*RuleConfig
	// DisabledByDefault indicates if rules are disabled by default.
	// When true, rules must be explicitly enabled.
	DisabledByDefault bool
	// Only enables only these rules if set.
	// Takes precedence over individual rule configurations.
	Only []string
	// PluginDir is the directory where plugins are installed.
	PluginDir string
}

// RuleConfig represents configuration for a single rule.
type RuleConfig struct {
	// Name is the bare rule name (plugin namespace stripped).
	Name string
	// Enabled indicates if the rule is enabled.
	Enabled bool
	// Severity is the configured enforcement level.
	Severity Severity
	// Options holds the rule-specific options from the descriptor.
	// Rules decode these using runner.DecodeRuleOptions().
	Options []any
}

// ConfigFromResolved derives the plugin-facing configuration for one
// plugin namespace from a per-file resolution. The namespace prefix is
// stripped from rule names; namespace "" selects core (un-namespaced)
// rules. Severity off disables the rule.
func ConfigFromResolved(rc *ResolvedConfig, namespace string) *Config {
	config := &Config{Rules: make(map[string]*RuleConfig)}
	if rc == nil || rc.Ignored {
		return config
	}
	for id, entry := range rc.Rules {
		ns, name := SplitRuleID(id)
		if ns != namespace {
			continue
		}
		config.Rules[name] = &RuleConfig{
			Name:     name,
			Enabled:  entry.Severity != SeverityOff,
			Severity: entry.Severity,
			Options:  entry.Options,
		}
	}
	return config
}

// EnabledRuleNames returns the enabled rule names in sorted order.
// Convenience for hosts building per-file work lists.
func (c *Config) EnabledRuleNames() []string {
	var names []string
	for name, rc := range c.Rules {
		if rc.Enabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
