package flatlint

// ResolvedConfig is the effective configuration for a single file after
// walking the descriptor's blocks in order: the merged rule table,
// language options, and the plugins in scope.
type ResolvedConfig struct {
	// Path is the normalized file path the resolution was made for.
	Path string
	// Ignored reports that an ignore-only block excluded the file;
	// the remaining fields are empty in that case.
	Ignored bool
	// Rules is the effective rule table (last-write-wins per rule ID).
	Rules map[string]RuleEntry
	// Language is the merged parsing configuration.
	Language LanguageOptions
	// Plugins is the union of plugin declarations across applying blocks.
	Plugins map[string]PluginRef
}

// ResolveForFile computes the effective configuration for a file. The
// blocks are walked in declaration order; each applying block's rule
// entries overwrite earlier ones for the same rule ID, language option
// fields overlay field-wise, and plugin declarations accumulate.
func (d *Descriptor) ResolveForFile(path string) (*ResolvedConfig, error) {
	normalized := NormalizePath(path)
	resolved := &ResolvedConfig{
		Path:    normalized,
		Rules:   make(map[string]RuleEntry),
		Plugins: make(map[string]PluginRef),
	}

	ignored, err := d.globallyIgnored(normalized)
	if err != nil {
		return nil, err
	}
	if ignored {
		resolved.Ignored = true
		return resolved, nil
	}

	for _, b := range d.blocks {
		applies, err := b.AppliesTo(normalized)
		if err != nil {
			return nil, err
		}
		if !applies {
			continue
		}
		for id, entry := range b.Rules {
			resolved.Rules[id] = entry
		}
		resolved.Language.merge(b.LanguageOptions)
		for name, ref := range b.Plugins {
			resolved.Plugins[name] = ref
		}
	}

	return resolved, nil
}

// RuleSeverity returns the effective severity for a rule ID and whether
// the rule is configured at all.
func (rc *ResolvedConfig) RuleSeverity(id string) (Severity, bool) {
	entry, ok := rc.Rules[id]
	if !ok {
		return SeverityOff, false
	}
	return entry.Severity, true
}

// IsRuleEnabled reports whether a rule is configured with a severity
// other than off.
func (rc *ResolvedConfig) IsRuleEnabled(id string) bool {
	severity, ok := rc.RuleSeverity(id)
	return ok && severity != SeverityOff
}
