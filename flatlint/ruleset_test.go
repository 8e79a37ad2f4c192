package flatlint

import (
	"reflect"
	"testing"
)

// testRule is a minimal rule for testing.
type testRule struct {
	DefaultRule
	name     string
	enabled  bool
	severity Severity
}

func (r *testRule) Name() string         { return r.name }
func (r *testRule) Link() string         { return "" }
func (r *testRule) Check(_ Runner) error { return nil }
func (r *testRule) Enabled() bool        { return r.enabled }
func (r *testRule) Severity() Severity   { return r.severity }

func newTestRule(name string, enabled bool) *testRule {
	return &testRule{name: name, enabled: enabled, severity: SeverityError}
}

func TestBuiltinRuleSet_RuleSetName(t *testing.T) {
	rs := &BuiltinRuleSet{Name: "test-plugin"}
	if got := rs.RuleSetName(); got != "test-plugin" {
		t.Errorf("RuleSetName() = %q, want %q", got, "test-plugin")
	}
}

func TestBuiltinRuleSet_RuleSetVersion(t *testing.T) {
	rs := &BuiltinRuleSet{Version: "1.2.3"}
	if got := rs.RuleSetVersion(); got != "1.2.3" {
		t.Errorf("RuleSetVersion() = %q, want %q", got, "1.2.3")
	}
}

func TestBuiltinRuleSet_RuleNames(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("rule-a", true),
			newTestRule("rule-b", true),
			newTestRule("rule-c", true),
		},
	}

	got := rs.RuleNames()
	want := []string{"rule-a", "rule-b", "rule-c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RuleNames() = %v, want %v", got, want)
	}
}

func TestBuiltinRuleSet_VersionConstraint_Default(t *testing.T) {
	rs := &BuiltinRuleSet{}
	if got := rs.VersionConstraint(); got != ">= 0.1.0" {
		t.Errorf("VersionConstraint() = %q, want %q", got, ">= 0.1.0")
	}
}

func TestBuiltinRuleSet_VersionConstraint_Custom(t *testing.T) {
	rs := &BuiltinRuleSet{Constraint: ">= 1.0.0"}
	if got := rs.VersionConstraint(); got != ">= 1.0.0" {
		t.Errorf("VersionConstraint() = %q, want %q", got, ">= 1.0.0")
	}
}

func TestBuiltinRuleSet_ConfigSchema_Default(t *testing.T) {
	rs := &BuiltinRuleSet{}
	if got := rs.ConfigSchema(); got != nil {
		t.Errorf("ConfigSchema() = %v, want nil", got)
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig_Defaults(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("on-by-default", true),
			newTestRule("off-by-default", false),
		},
	}

	if err := rs.ApplyGlobalConfig(nil); err != nil {
		t.Fatalf("ApplyGlobalConfig(nil) error = %v", err)
	}

	if !rs.IsRuleEnabled("on-by-default") {
		t.Error("on-by-default should be enabled")
	}
	if rs.IsRuleEnabled("off-by-default") {
		t.Error("off-by-default should be disabled")
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig_DisabledByDefault(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("rule-a", true),
			newTestRule("rule-b", true),
		},
	}

	config := &Config{
		DisabledByDefault: true,
		Rules: map[string]*RuleConfig{
			"rule-b": {Name: "rule-b", Enabled: true},
		},
	}
	if err := rs.ApplyGlobalConfig(config); err != nil {
		t.Fatalf("ApplyGlobalConfig error = %v", err)
	}

	if rs.IsRuleEnabled("rule-a") {
		t.Error("rule-a should be disabled by DisabledByDefault")
	}
	if !rs.IsRuleEnabled("rule-b") {
		t.Error("rule-b should be re-enabled by its rule config")
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig_Only(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("rule-a", true),
			newTestRule("rule-b", true),
			newTestRule("rule-c", true),
		},
	}

	config := &Config{Only: []string{"rule-b", "not-present"}}
	if err := rs.ApplyGlobalConfig(config); err != nil {
		t.Fatalf("ApplyGlobalConfig error = %v", err)
	}

	if rs.IsRuleEnabled("rule-a") {
		t.Error("rule-a should be disabled by Only")
	}
	if !rs.IsRuleEnabled("rule-b") {
		t.Error("rule-b should be enabled by Only")
	}
	if rs.IsRuleEnabled("rule-c") {
		t.Error("rule-c should be disabled by Only")
	}
}

func TestBuiltinRuleSet_ApplyGlobalConfig_SeverityOverride(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{newTestRule("rule-a", true)},
	}

	config := &Config{
		Rules: map[string]*RuleConfig{
			"rule-a": {Name: "rule-a", Enabled: true, Severity: SeverityWarn},
		},
	}
	if err := rs.ApplyGlobalConfig(config); err != nil {
		t.Fatalf("ApplyGlobalConfig error = %v", err)
	}

	if got := rs.RuleSeverity("rule-a"); got != SeverityWarn {
		t.Errorf("RuleSeverity(rule-a) = %v, want warn", got)
	}
}

func TestBuiltinRuleSet_RuleSeverity_Default(t *testing.T) {
	rule := &testRule{name: "rule-a", enabled: true, severity: SeverityWarn}
	rs := &BuiltinRuleSet{Rules: []Rule{rule}}

	if got := rs.RuleSeverity("rule-a"); got != SeverityWarn {
		t.Errorf("RuleSeverity(rule-a) = %v, want the rule default warn", got)
	}
	if got := rs.RuleSeverity("missing"); got != SeverityOff {
		t.Errorf("RuleSeverity(missing) = %v, want off", got)
	}
}

func TestBuiltinRuleSet_IsRuleEnabled_Unconfigured(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("enabled-rule", true),
			newTestRule("disabled-rule", false),
		},
	}

	// Before ApplyGlobalConfig, rule defaults apply.
	if !rs.IsRuleEnabled("enabled-rule") {
		t.Error("enabled-rule should use its default (enabled)")
	}
	if rs.IsRuleEnabled("disabled-rule") {
		t.Error("disabled-rule should use its default (disabled)")
	}
	if rs.IsRuleEnabled("unknown-rule") {
		t.Error("unknown-rule should be disabled")
	}
}

func TestBuiltinRuleSet_GetRule(t *testing.T) {
	ruleA := newTestRule("rule-a", true)
	rs := &BuiltinRuleSet{Rules: []Rule{ruleA}}

	if got := rs.GetRule("rule-a"); got != ruleA {
		t.Errorf("GetRule(rule-a) = %v, want the rule", got)
	}
	if got := rs.GetRule("missing"); got != nil {
		t.Errorf("GetRule(missing) = %v, want nil", got)
	}
}

func TestBuiltinRuleSet_EnabledRules(t *testing.T) {
	rs := &BuiltinRuleSet{
		Rules: []Rule{
			newTestRule("rule-a", true),
			newTestRule("rule-b", false),
			newTestRule("rule-c", true),
		},
	}

	if err := rs.ApplyGlobalConfig(nil); err != nil {
		t.Fatalf("ApplyGlobalConfig error = %v", err)
	}

	enabled := rs.EnabledRules()
	if len(enabled) != 2 {
		t.Fatalf("EnabledRules() has %d rules, want 2", len(enabled))
	}
	if enabled[0].Name() != "rule-a" || enabled[1].Name() != "rule-c" {
		t.Errorf("EnabledRules() = [%s %s], want [rule-a rule-c]",
			enabled[0].Name(), enabled[1].Name())
	}
}

func TestBuiltinRuleSet_BuiltinImpl(t *testing.T) {
	rs := &BuiltinRuleSet{Name: "self"}
	if rs.BuiltinImpl() != rs {
		t.Error("BuiltinImpl() should return the receiver")
	}
}
