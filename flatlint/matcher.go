package flatlint

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher is a compiled glob pattern paired with its source string.
// Patterns use '/' as the path separator, so "*" never crosses a
// directory boundary while "**" does. A "**/" component also matches
// zero path segments, so "src/**/*.ts" covers "src/app.ts".
type Matcher struct {
	compiledGlobs []glob.Glob
	patternString string
}

var _ glob.Glob = (*Matcher)(nil)

// CompileMatcher compiles a glob pattern for path matching.
func CompileMatcher(pattern string) (*Matcher, error) {
	variants := expandZeroSegments(pattern)
	globs := make([]glob.Glob, 0, len(variants))
	for _, variant := range variants {
		g, err := glob.Compile(variant, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
		}
		globs = append(globs, g)
	}
	return &Matcher{
		compiledGlobs: globs,
		patternString: pattern,
	}, nil
}

// expandZeroSegments returns the pattern variants produced by letting
// each "**/" component match zero path segments. The underlying glob
// library always consumes at least the trailing separator, so the
// zero-segment form has to be compiled as a separate pattern.
func expandZeroSegments(pattern string) []string {
	idx := strings.Index(pattern, "**/")
	if idx < 0 {
		return []string{pattern}
	}
	head := pattern[:idx]
	variants := []string{}
	for _, tail := range expandZeroSegments(pattern[idx+len("**/"):]) {
		variants = append(variants, head+"**/"+tail, head+tail)
	}
	return variants
}

// Match reports whether the normalized path matches the pattern.
func (m *Matcher) Match(path string) bool {
	normalized := NormalizePath(path)
	for _, g := range m.compiledGlobs {
		if g.Match(normalized) {
			return true
		}
	}
	return false
}

// PatternString returns the source pattern.
func (m *Matcher) PatternString() string {
	return m.patternString
}

// NormalizePath converts a path to the slash-separated, relative form
// patterns are matched against.
func NormalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return path
}

// compileAll compiles a pattern list, annotating failures with the
// pattern that caused them.
func compileAll(patterns []string) ([]*Matcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	matchers := make([]*Matcher, 0, len(patterns))
	for _, pattern := range patterns {
		m, err := CompileMatcher(pattern)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// matchAny reports whether any matcher accepts the path.
func matchAny(matchers []*Matcher, path string) bool {
	for _, m := range matchers {
		if m.Match(path) {
			return true
		}
	}
	return false
}
