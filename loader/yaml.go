package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// FromYAML parses a descriptor from its YAML document form, the same
// shape as the JSON form:
//
//	- ignores: ["dist/**"]
//	- files: ["src/**/*.ts"]
//	  languageOptions:
//	    ecmaVersion: latest
//	    sourceType: module
//	  rules:
//	    no-console: warn
//	    max-len: [error, {code: 120}]
//
// The descriptor is validated before it is returned.
func FromYAML(src []byte) (*flatlint.Descriptor, error) {
	var blocks []*flatlint.ConfigBlock
	if err := yaml.Unmarshal(src, &blocks); err != nil {
		return nil, fmt.Errorf("decode yaml descriptor: %w", err)
	}
	descriptor := flatlint.NewDescriptor(blocks...)
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	return descriptor, nil
}
