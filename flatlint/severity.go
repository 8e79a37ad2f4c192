// Package flatlint provides the configuration descriptor and plugin
// interfaces for flatlint rulesets.
//
// This package contains the core types needed both by the flatlint host
// (to load, validate, and resolve configuration descriptors) and by plugin
// authors (to implement rules and rulesets). The naming and structure align
// with eslint's flat config model for ecosystem familiarity.
//
// Key types:
//   - Severity: rule enforcement levels (off, warn, error)
//   - Descriptor: an ordered sequence of ConfigBlocks
//   - ConfigBlock: glob-scoped rule activations and language options
//   - DefaultRule: embeddable struct providing default Rule method implementations
//   - Rule: interface that plugins implement for each diagnostic rule
//   - Runner: interface providing file access and issue emission
//   - RuleSet: interface for plugin registration and rule enumeration
//   - BuiltinRuleSet: embeddable struct providing default RuleSet implementations
package flatlint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity represents the enforcement level of a rule.
// The numeric values align with eslint's severity encoding (0/1/2),
// so both string and numeric wire forms decode to the same constants.
type Severity int

const (
	// SeverityOff disables the rule entirely.
	SeverityOff Severity = iota
	// SeverityWarn reports findings without failing the run.
	SeverityWarn
	// SeverityError reports findings and fails the run.
	SeverityError
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Valid reports whether the severity is one of the three defined levels.
func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

// ParseSeverity converts a severity token to a Severity.
// Accepted tokens are "off", "warn", and "error".
func ParseSeverity(token string) (Severity, error) {
	switch token {
	case "off":
		return SeverityOff, nil
	case "warn":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("%w: %q", ErrInvalidSeverity, token)
	}
}

// SeverityFromInt converts a numeric severity (0, 1, or 2) to a Severity.
func SeverityFromInt(n int) (Severity, error) {
	s := Severity(n)
	if !s.Valid() {
		return SeverityOff, fmt.Errorf("%w: %d", ErrInvalidSeverity, n)
	}
	return s, nil
}

// MarshalJSON encodes the severity in its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeverity, int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes either wire form: a severity token ("warn")
// or its numeric equivalent (1).
func (s *Severity) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		parsed, err := ParseSeverity(token)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeverity, string(data))
	}
	parsed, err := SeverityFromInt(n)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the severity in its string form.
func (s Severity) MarshalYAML() (interface{}, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeverity, int(s))
	}
	return s.String(), nil
}

// UnmarshalYAML decodes either wire form, mirroring UnmarshalJSON.
// The numeric form is tried first: YAML plain scalars decode into
// strings as well, so the order matters here.
func (s *Severity) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err == nil {
		parsed, err := SeverityFromInt(n)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	var token string
	if err := node.Decode(&token); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeverity, node.Value)
	}
	parsed, err := ParseSeverity(token)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
