package flatlint

import "errors"

// Sentinel errors reported by descriptor validation and decoding.
// Callers match them with errors.Is.
var (
	// ErrInvalidSeverity indicates a severity token outside
	// {"off","warn","error"} or {0,1,2}.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrBadPattern indicates a glob pattern that does not compile.
	ErrBadPattern = errors.New("bad glob pattern")

	// ErrEmptyScope indicates a block with no file patterns and no
	// ignore patterns.
	ErrEmptyScope = errors.New("block has neither files nor ignores")

	// ErrPluginConflict indicates the same plugin name declared with
	// two different handles.
	ErrPluginConflict = errors.New("conflicting plugin declaration")

	// ErrUnknownPlugin indicates a namespaced rule ID whose namespace
	// is not declared by any block.
	ErrUnknownPlugin = errors.New("unknown plugin namespace")
)
