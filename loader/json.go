package loader

import (
	"encoding/json"
	"fmt"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// FromJSON parses a descriptor from its JSON document form: a top-level
// array of block objects.
//
//	[
//	  {"ignores": ["dist/**"]},
//	  {
//	    "files": ["src/**/*.ts"],
//	    "languageOptions": {"ecmaVersion": "latest", "sourceType": "module"},
//	    "rules": {"no-console": "warn", "max-len": ["error", {"code": 120}]}
//	  }
//	]
//
// The descriptor is validated before it is returned.
func FromJSON(src []byte) (*flatlint.Descriptor, error) {
	var blocks []*flatlint.ConfigBlock
	if err := json.Unmarshal(src, &blocks); err != nil {
		return nil, fmt.Errorf("decode json descriptor: %w", err)
	}
	descriptor := flatlint.NewDescriptor(blocks...)
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	return descriptor, nil
}
