package flatlint

import "strconv"

// PluginRef is an opaque handle to a ruleset plugin. The descriptor
// only carries it; the host resolves the source to a dispensed plugin
// (see the plugin package).
type PluginRef struct {
	// Name is the plugin's declared name (e.g. "import").
	Name string `json:"name" yaml:"name"`
	// Source locates the plugin: an install address or a binary path.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// ConfigBlock scopes a set of rule activations and language options to
// the files matched by its glob patterns.
//
// A block with only Ignores contributes global ignore patterns and no
// configuration. Otherwise a block applies to a file when at least one
// Files pattern matches it and no Ignores pattern does.
type ConfigBlock struct {
	// Name optionally labels the block for error messages.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Files holds glob patterns scoping the block.
	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
	// Ignores holds glob patterns excluded from the block's scope.
	Ignores []string `json:"ignores,omitempty" yaml:"ignores,omitempty"`
	// LanguageOptions configures parsing for matched files.
	LanguageOptions *LanguageOptions `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty"`
	// Plugins maps plugin names to their handles.
	Plugins map[string]PluginRef `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	// Rules maps rule IDs to their configured activation.
	Rules map[string]RuleEntry `json:"rules,omitempty" yaml:"rules,omitempty"`

	fileMatchers   []*Matcher
	ignoreMatchers []*Matcher
}

// IsIgnoreOnly reports whether the block carries nothing but ignore
// patterns. Such blocks act as global ignores for the whole descriptor.
func (b *ConfigBlock) IsIgnoreOnly() bool {
	return len(b.Ignores) > 0 &&
		len(b.Files) == 0 &&
		len(b.Plugins) == 0 &&
		len(b.Rules) == 0 &&
		b.LanguageOptions.IsZero()
}

// compile builds the block's glob matchers. Idempotent; resolution and
// validation both call it.
func (b *ConfigBlock) compile() error {
	if b.fileMatchers == nil {
		matchers, err := compileAll(b.Files)
		if err != nil {
			return err
		}
		b.fileMatchers = matchers
	}
	if b.ignoreMatchers == nil {
		matchers, err := compileAll(b.Ignores)
		if err != nil {
			return err
		}
		b.ignoreMatchers = matchers
	}
	return nil
}

// AppliesTo reports whether the block configures the given file.
// Ignore-only blocks apply to nothing; blocks without Files apply to
// every file not hit by their Ignores.
func (b *ConfigBlock) AppliesTo(path string) (bool, error) {
	if b.IsIgnoreOnly() {
		return false, nil
	}
	if err := b.compile(); err != nil {
		return false, err
	}
	path = NormalizePath(path)
	if matchAny(b.ignoreMatchers, path) {
		return false, nil
	}
	if len(b.fileMatchers) == 0 {
		return true, nil
	}
	return matchAny(b.fileMatchers, path), nil
}

// label returns the block's name for error messages, falling back to
// its position.
func (b *ConfigBlock) label(index int) string {
	if b.Name != "" {
		return b.Name
	}
	return "block " + strconv.Itoa(index)
}
