package flatlint

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleEntry is the configured activation of a single rule: a severity,
// optionally paired with rule-specific options.
//
// The wire form is either a bare severity ("error", 2) or a tuple whose
// first element is the severity and whose remaining elements are opaque
// options passed through to the rule:
//
//	"no-console": "warn"
//	"max-len": ["error", {"code": 120}]
type RuleEntry struct {
	// Severity is the enforcement level.
	Severity Severity
	// Options holds rule-specific options, opaque to the descriptor.
	Options []any
}

// MarshalJSON encodes the scalar form when there are no options and the
// tuple form otherwise.
func (e RuleEntry) MarshalJSON() ([]byte, error) {
	if len(e.Options) == 0 {
		return json.Marshal(e.Severity)
	}
	tuple := make([]any, 0, len(e.Options)+1)
	tuple = append(tuple, e.Severity)
	tuple = append(tuple, e.Options...)
	return json.Marshal(tuple)
}

// UnmarshalJSON decodes either the scalar or the tuple wire form.
func (e *RuleEntry) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "[") {
		e.Options = nil
		return e.Severity.UnmarshalJSON(data)
	}

	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("rule entry: %w", err)
	}
	if len(tuple) == 0 {
		return fmt.Errorf("rule entry: %w: empty tuple", ErrInvalidSeverity)
	}
	if err := e.Severity.UnmarshalJSON(tuple[0]); err != nil {
		return err
	}
	e.Options = nil
	for _, raw := range tuple[1:] {
		var opt any
		if err := json.Unmarshal(raw, &opt); err != nil {
			return fmt.Errorf("rule entry options: %w", err)
		}
		e.Options = append(e.Options, opt)
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (e RuleEntry) MarshalYAML() (interface{}, error) {
	if len(e.Options) == 0 {
		return e.Severity, nil
	}
	tuple := make([]any, 0, len(e.Options)+1)
	tuple = append(tuple, e.Severity)
	tuple = append(tuple, e.Options...)
	return tuple, nil
}

// UnmarshalYAML decodes either the scalar or the sequence wire form.
func (e *RuleEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		e.Options = nil
		return e.Severity.UnmarshalYAML(node)
	}
	if len(node.Content) == 0 {
		return fmt.Errorf("rule entry: %w: empty tuple", ErrInvalidSeverity)
	}
	if err := e.Severity.UnmarshalYAML(node.Content[0]); err != nil {
		return err
	}
	e.Options = nil
	for _, item := range node.Content[1:] {
		var opt any
		if err := item.Decode(&opt); err != nil {
			return fmt.Errorf("rule entry options: %w", err)
		}
		e.Options = append(e.Options, opt)
	}
	return nil
}

// SplitRuleID splits a rule ID into its plugin namespace and bare rule
// name. Core rules have no namespace:
//
//	SplitRuleID("no-console")             -> "", "no-console"
//	SplitRuleID("import/order")           -> "import", "order"
//	SplitRuleID("@scope/plugin/my-rule")  -> "@scope/plugin", "my-rule"
func SplitRuleID(id string) (namespace, name string) {
	idx := strings.LastIndex(id, "/")
	if idx < 0 {
		return "", id
	}
	return id[:idx], id[idx+1:]
}
