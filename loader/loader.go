// Package loader parses flatlint configuration descriptors.
//
// The descriptor can be authored in three formats: JSON and YAML use
// the flat-config document shape (a top-level array of block objects),
// while HCL uses labeled block syntax. All three produce the same
// flatlint.Descriptor and are validated on load.
//
// Example:
//
//	descriptor, err := loader.Load("flatlint.hcl")
//	if err != nil {
//	    return err
//	}
//	resolved, err := descriptor.ResolveForFile("src/app.ts")
package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// ErrUnsupportedFormat indicates a descriptor path with an extension
// the loader does not recognize.
var ErrUnsupportedFormat = errors.New("unsupported descriptor format")

// Loader reads descriptor files from disk, dispatching on extension.
type Loader struct {
	logger hclog.Logger
}

// New creates a Loader. A nil logger disables logging.
func New(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{logger: logger}
}

// Load reads, parses, and validates the descriptor at path.
// Recognized extensions: .json, .yaml, .yml, .hcl.
func (l *Loader) Load(path string) (*flatlint.Descriptor, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	var descriptor *flatlint.Descriptor
	ext := filepath.Ext(path)
	switch ext {
	case ".json":
		descriptor, err = FromJSON(src)
	case ".yaml", ".yml":
		descriptor, err = FromYAML(src)
	case ".hcl":
		descriptor, err = FromHCL(src, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	l.logger.Debug("loaded descriptor",
		"path", path,
		"format", ext,
		"blocks", descriptor.Len(),
	)
	return descriptor, nil
}

// Load reads a descriptor with the default (silent) loader.
func Load(path string) (*flatlint.Descriptor, error) {
	return New(nil).Load(path)
}
