package flatlint

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SourceType declares how matched files are parsed.
type SourceType string

const (
	// SourceTypeModule parses files as ECMAScript modules.
	SourceTypeModule SourceType = "module"
	// SourceTypeScript parses files as classic scripts.
	SourceTypeScript SourceType = "script"
	// SourceTypeCommonJS parses files as CommonJS modules.
	SourceTypeCommonJS SourceType = "commonjs"
)

// Valid reports whether the source type is one of the defined values.
// The empty string is valid and means "unset".
func (t SourceType) Valid() bool {
	switch t {
	case "", SourceTypeModule, SourceTypeScript, SourceTypeCommonJS:
		return true
	default:
		return false
	}
}

// ECMAVersion is an ECMAScript language version: a year (2015 and later)
// or ECMAVersionLatest. The zero value means "unset".
type ECMAVersion int

// ECMAVersionLatest selects the newest version the parser supports.
// Wire form: the string "latest".
const ECMAVersionLatest ECMAVersion = -1

// MarshalJSON encodes ECMAVersionLatest as "latest" and years as numbers.
func (v ECMAVersion) MarshalJSON() ([]byte, error) {
	if v == ECMAVersionLatest {
		return json.Marshal("latest")
	}
	return json.Marshal(int(v))
}

// UnmarshalJSON decodes a year number or the string "latest".
func (v *ECMAVersion) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = ECMAVersion(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil || s != "latest" {
		return fmt.Errorf("invalid ecmaVersion: %s", string(data))
	}
	*v = ECMAVersionLatest
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (v ECMAVersion) MarshalYAML() (interface{}, error) {
	if v == ECMAVersionLatest {
		return "latest", nil
	}
	return int(v), nil
}

// UnmarshalYAML decodes a year number or the string "latest".
func (v *ECMAVersion) UnmarshalYAML(node *yaml.Node) error {
	var n int
	if err := node.Decode(&n); err == nil {
		*v = ECMAVersion(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil || s != "latest" {
		return fmt.Errorf("invalid ecmaVersion: %s", node.Value)
	}
	*v = ECMAVersionLatest
	return nil
}

// GlobalAccess declares how a predefined global identifier may be used.
type GlobalAccess string

const (
	// GlobalReadonly allows reads but flags assignments.
	GlobalReadonly GlobalAccess = "readonly"
	// GlobalWritable allows reads and assignments.
	GlobalWritable GlobalAccess = "writable"
	// GlobalOff removes the global from scope.
	GlobalOff GlobalAccess = "off"
)

// Valid reports whether the access value is one of the defined tokens.
func (a GlobalAccess) Valid() bool {
	switch a {
	case GlobalReadonly, GlobalWritable, GlobalOff:
		return true
	default:
		return false
	}
}

// UnmarshalJSON decodes an access token, accepting the legacy boolean
// form (true = writable, false = readonly).
func (a *GlobalAccess) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*a = GlobalWritable
		} else {
			*a = GlobalReadonly
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid global access: %s", string(data))
	}
	parsed := GlobalAccess(s)
	if !parsed.Valid() {
		return fmt.Errorf("invalid global access: %q", s)
	}
	*a = parsed
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON. The boolean form is tried first
// because YAML plain scalars also decode into strings.
func (a *GlobalAccess) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		if b {
			*a = GlobalWritable
		} else {
			*a = GlobalReadonly
		}
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid global access: %s", node.Value)
	}
	parsed := GlobalAccess(s)
	if !parsed.Valid() {
		return fmt.Errorf("invalid global access: %q", s)
	}
	*a = parsed
	return nil
}

// LanguageOptions configures how matched files are parsed: which parser
// to hand them to, the language version, module system, predefined
// globals, and parser feature flags.
type LanguageOptions struct {
	// Parser identifies the parser handle (e.g. "@typescript-eslint/parser").
	// Empty means the host's default parser.
	Parser string `json:"parser,omitempty" yaml:"parser,omitempty"`
	// ECMAVersion is the language version to parse with.
	ECMAVersion ECMAVersion `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty"`
	// SourceType declares the module system of matched files.
	SourceType SourceType `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	// Globals declares predefined global identifiers and their access.
	Globals map[string]GlobalAccess `json:"globals,omitempty" yaml:"globals,omitempty"`
	// EcmaFeatures toggles parser feature flags (e.g. "jsx").
	EcmaFeatures map[string]bool `json:"ecmaFeatures,omitempty" yaml:"ecmaFeatures,omitempty"`
}

// IsZero reports whether no option is set.
func (o *LanguageOptions) IsZero() bool {
	return o == nil ||
		(o.Parser == "" && o.ECMAVersion == 0 && o.SourceType == "" &&
			len(o.Globals) == 0 && len(o.EcmaFeatures) == 0)
}

// merge overlays src onto o field-wise. Set fields in src win; globals
// and feature flags merge key-wise with src winning on overlap.
func (o *LanguageOptions) merge(src *LanguageOptions) {
	if src == nil {
		return
	}
	if src.Parser != "" {
		o.Parser = src.Parser
	}
	if src.ECMAVersion != 0 {
		o.ECMAVersion = src.ECMAVersion
	}
	if src.SourceType != "" {
		o.SourceType = src.SourceType
	}
	for name, access := range src.Globals {
		if o.Globals == nil {
			o.Globals = make(map[string]GlobalAccess)
		}
		o.Globals[name] = access
	}
	for name, on := range src.EcmaFeatures {
		if o.EcmaFeatures == nil {
			o.EcmaFeatures = make(map[string]bool)
		}
		o.EcmaFeatures[name] = on
	}
}
