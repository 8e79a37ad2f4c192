package flatlint

import "fmt"

// Validate checks the descriptor against its load-time contract:
//
//   - every rule entry carries a well-formed severity
//   - every glob pattern compiles
//   - every block declares file patterns or ignore patterns
//   - a plugin name is never redeclared with a different handle
//   - every namespaced rule ID references a declared plugin
//
// The first violation found is returned, wrapped around its sentinel
// (ErrInvalidSeverity, ErrBadPattern, ErrEmptyScope, ErrPluginConflict,
// ErrUnknownPlugin).
func (d *Descriptor) Validate() error {
	declared := make(map[string]PluginRef)

	for i, b := range d.blocks {
		if len(b.Files) == 0 && len(b.Ignores) == 0 {
			return fmt.Errorf("%s: %w", b.label(i), ErrEmptyScope)
		}
		if err := b.compile(); err != nil {
			return fmt.Errorf("%s: %w", b.label(i), err)
		}
		for id, entry := range b.Rules {
			if !entry.Severity.Valid() {
				return fmt.Errorf("%s: rule %q: %w: %d", b.label(i), id, ErrInvalidSeverity, int(entry.Severity))
			}
		}
		for name, ref := range b.Plugins {
			prev, seen := declared[name]
			if seen && prev.Source != ref.Source {
				return fmt.Errorf("%s: plugin %q: %w: %q vs %q",
					b.label(i), name, ErrPluginConflict, prev.Source, ref.Source)
			}
			declared[name] = ref
		}
	}

	for i, b := range d.blocks {
		for id := range b.Rules {
			namespace, _ := SplitRuleID(id)
			if namespace == "" {
				continue
			}
			if _, ok := declared[namespace]; !ok {
				return fmt.Errorf("%s: rule %q: %w: %q", b.label(i), id, ErrUnknownPlugin, namespace)
			}
		}
	}

	return nil
}
