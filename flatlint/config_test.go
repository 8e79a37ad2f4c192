package flatlint

import (
	"reflect"
	"testing"
)

func TestConfig_Fields(t *testing.T) {
	config := &Config{
		Rules: map[string]*RuleConfig{
			"no-console": {Name: "no-console", Enabled: true, Severity: SeverityWarn},
		},
		DisabledByDefault: true,
		Only:              []string{"no-console"},
		PluginDir:         "/custom/plugins",
	}

	if len(config.Rules) != 1 {
		t.Errorf("Rules has %d entries, want 1", len(config.Rules))
	}
	if !config.DisabledByDefault {
		t.Error("DisabledByDefault = false, want true")
	}
	if len(config.Only) != 1 || config.Only[0] != "no-console" {
		t.Errorf("Only = %v, want [\"no-console\"]", config.Only)
	}
	if config.PluginDir != "/custom/plugins" {
		t.Errorf("PluginDir = %q, want %q", config.PluginDir, "/custom/plugins")
	}
}

func TestConfigFromResolved_CoreNamespace(t *testing.T) {
	rc := &ResolvedConfig{
		Rules: map[string]RuleEntry{
			"no-console":   {Severity: SeverityWarn},
			"no-debugger":  {Severity: SeverityOff},
			"import/order": {Severity: SeverityError},
		},
	}

	config := ConfigFromResolved(rc, "")

	if len(config.Rules) != 2 {
		t.Fatalf("Rules has %d entries, want 2 (namespaced rule excluded)", len(config.Rules))
	}
	if rule := config.Rules["no-console"]; rule == nil || !rule.Enabled || rule.Severity != SeverityWarn {
		t.Errorf("no-console = %+v, want enabled warn", rule)
	}
	if rule := config.Rules["no-debugger"]; rule == nil || rule.Enabled {
		t.Errorf("no-debugger = %+v, want disabled", rule)
	}
}

func TestConfigFromResolved_PluginNamespace(t *testing.T) {
	rc := &ResolvedConfig{
		Rules: map[string]RuleEntry{
			"no-console":   {Severity: SeverityWarn},
			"import/order": {Severity: SeverityError, Options: []any{"newlines-between"}},
			"import/first": {Severity: SeverityWarn},
		},
	}

	config := ConfigFromResolved(rc, "import")

	want := []string{"first", "order"}
	if got := config.EnabledRuleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("EnabledRuleNames() = %v, want %v", got, want)
	}
	if rule := config.Rules["order"]; len(rule.Options) != 1 {
		t.Errorf("order options = %v, want one entry", rule.Options)
	}
}

func TestConfigFromResolved_Ignored(t *testing.T) {
	rc := &ResolvedConfig{
		Ignored: true,
		Rules:   map[string]RuleEntry{"no-console": {Severity: SeverityError}},
	}

	config := ConfigFromResolved(rc, "")
	if len(config.Rules) != 0 {
		t.Errorf("Rules = %v, want empty for ignored file", config.Rules)
	}
}

func TestConfigFromResolved_Nil(t *testing.T) {
	config := ConfigFromResolved(nil, "")
	if config == nil || len(config.Rules) != 0 {
		t.Errorf("ConfigFromResolved(nil) = %+v, want empty config", config)
	}
}

func TestConfig_EnabledRuleNamesSorted(t *testing.T) {
	config := &Config{
		Rules: map[string]*RuleConfig{
			"zeta":  {Name: "zeta", Enabled: true},
			"alpha": {Name: "alpha", Enabled: true},
			"off":   {Name: "off", Enabled: false},
		},
	}

	want := []string{"alpha", "zeta"}
	if got := config.EnabledRuleNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("EnabledRuleNames() = %v, want %v", got, want)
	}
}
