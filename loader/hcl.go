package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// HCL descriptor form:
//
//	block "globals" {
//	  ignores = ["dist/**", "node_modules/**"]
//	}
//
//	block "typescript" {
//	  files = ["src/**/*.ts"]
//
//	  language {
//	    parser       = "@typescript-eslint/parser"
//	    ecma_version = "latest"
//	    source_type  = "module"
//	    globals      = { process = "readonly" }
//	  }
//
//	  plugin "import" {
//	    source = "github.com/flatlint/plugin-import"
//	  }
//
//	  rules = {
//	    "no-console"   = "warn"
//	    "import/order" = ["error", { newlines = true }]
//	  }
//	}

var descriptorSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "block", LabelNames: []string{"name"}},
	},
}

var blockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "files"},
		{Name: "ignores"},
		{Name: "rules"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "language"},
		{Type: "plugin", LabelNames: []string{"name"}},
	},
}

var languageSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "parser"},
		{Name: "ecma_version"},
		{Name: "source_type"},
		{Name: "globals"},
		{Name: "ecma_features"},
	},
}

var pluginSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "source"},
	},
}

// FromHCL parses a descriptor from HCL block syntax. Block order in the
// file is the descriptor's block order. The descriptor is validated
// before it is returned.
func FromHCL(src []byte, filename string) (*flatlint.Descriptor, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl descriptor: %w", diags)
	}

	content, diags := file.Body.Content(descriptorSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl descriptor: %w", diags)
	}

	var blocks []*flatlint.ConfigBlock
	for _, hclBlock := range content.Blocks {
		block, err := decodeBlock(hclBlock)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	descriptor := flatlint.NewDescriptor(blocks...)
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}
	return descriptor, nil
}

func decodeBlock(hclBlock *hcl.Block) (*flatlint.ConfigBlock, error) {
	block := &flatlint.ConfigBlock{Name: hclBlock.Labels[0]}

	content, diags := hclBlock.Body.Content(blockSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("block %q: %w", block.Name, diags)
	}

	for name, attr := range content.Attributes {
		value, err := attrValue(attr)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", block.Name, err)
		}
		switch name {
		case "files":
			block.Files, err = stringSlice(value)
		case "ignores":
			block.Ignores, err = stringSlice(value)
		case "rules":
			block.Rules, err = ruleTable(value)
		}
		if err != nil {
			return nil, fmt.Errorf("block %q: %s: %w", block.Name, name, err)
		}
	}

	for _, inner := range content.Blocks {
		switch inner.Type {
		case "language":
			language, err := decodeLanguage(inner)
			if err != nil {
				return nil, fmt.Errorf("block %q: %w", block.Name, err)
			}
			block.LanguageOptions = language
		case "plugin":
			ref, err := decodePlugin(inner)
			if err != nil {
				return nil, fmt.Errorf("block %q: %w", block.Name, err)
			}
			if block.Plugins == nil {
				block.Plugins = make(map[string]flatlint.PluginRef)
			}
			block.Plugins[ref.Name] = ref
		}
	}

	return block, nil
}

func decodeLanguage(hclBlock *hcl.Block) (*flatlint.LanguageOptions, error) {
	content, diags := hclBlock.Body.Content(languageSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("language: %w", diags)
	}

	options := &flatlint.LanguageOptions{}
	for name, attr := range content.Attributes {
		value, err := attrValue(attr)
		if err != nil {
			return nil, fmt.Errorf("language: %w", err)
		}
		switch name {
		case "parser":
			options.Parser, err = stringValue(value)
		case "ecma_version":
			options.ECMAVersion, err = ecmaVersion(value)
		case "source_type":
			var s string
			s, err = stringValue(value)
			if err == nil {
				options.SourceType = flatlint.SourceType(s)
				if !options.SourceType.Valid() {
					err = fmt.Errorf("invalid source_type %q", s)
				}
			}
		case "globals":
			options.Globals, err = globalsTable(value)
		case "ecma_features":
			options.EcmaFeatures, err = boolTable(value)
		}
		if err != nil {
			return nil, fmt.Errorf("language: %s: %w", name, err)
		}
	}
	return options, nil
}

func decodePlugin(hclBlock *hcl.Block) (flatlint.PluginRef, error) {
	ref := flatlint.PluginRef{Name: hclBlock.Labels[0]}

	content, diags := hclBlock.Body.Content(pluginSchema)
	if diags.HasErrors() {
		return ref, fmt.Errorf("plugin %q: %w", ref.Name, diags)
	}
	if attr, ok := content.Attributes["source"]; ok {
		value, err := attrValue(attr)
		if err != nil {
			return ref, fmt.Errorf("plugin %q: %w", ref.Name, err)
		}
		ref.Source, err = stringValue(value)
		if err != nil {
			return ref, fmt.Errorf("plugin %q: source: %w", ref.Name, err)
		}
	}
	return ref, nil
}

// attrValue evaluates an attribute expression with no variables in
// scope and converts it to plain Go values.
func attrValue(attr *hcl.Attribute) (any, error) {
	ctyValue, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: %w", attr.Name, diags)
	}
	return ctyToGo(ctyValue)
}

// ctyToGo converts a cty value to the JSON-compatible Go representation
// the descriptor model uses (string, bool, float64, []any, map[string]any).
func ctyToGo(value cty.Value) (any, error) {
	if value.IsNull() {
		return nil, nil
	}
	t := value.Type()
	switch {
	case t == cty.String:
		return value.AsString(), nil
	case t == cty.Bool:
		return value.True(), nil
	case t == cty.Number:
		f, _ := value.AsBigFloat().Float64()
		return f, nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var out []any
		for _, element := range value.AsValueSlice() {
			converted, err := ctyToGo(element)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any)
		for key, element := range value.AsValueMap() {
			converted, err := ctyToGo(element)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", t.FriendlyName())
	}
}

func stringValue(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

func stringSlice(value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list of strings, got %T", value)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := stringValue(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func ruleTable(value any) (map[string]flatlint.RuleEntry, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected rule table, got %T", value)
	}
	rules := make(map[string]flatlint.RuleEntry, len(table))
	for id, raw := range table {
		entry, err := ruleEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", id, err)
		}
		rules[id] = entry
	}
	return rules, nil
}

func ruleEntry(value any) (flatlint.RuleEntry, error) {
	if tuple, ok := value.([]any); ok {
		if len(tuple) == 0 {
			return flatlint.RuleEntry{}, fmt.Errorf("%w: empty tuple", flatlint.ErrInvalidSeverity)
		}
		severity, err := severityValue(tuple[0])
		if err != nil {
			return flatlint.RuleEntry{}, err
		}
		return flatlint.RuleEntry{Severity: severity, Options: tuple[1:]}, nil
	}
	severity, err := severityValue(value)
	if err != nil {
		return flatlint.RuleEntry{}, err
	}
	return flatlint.RuleEntry{Severity: severity}, nil
}

func severityValue(value any) (flatlint.Severity, error) {
	switch v := value.(type) {
	case string:
		return flatlint.ParseSeverity(v)
	case float64:
		return flatlint.SeverityFromInt(int(v))
	default:
		return flatlint.SeverityOff, fmt.Errorf("%w: %T", flatlint.ErrInvalidSeverity, value)
	}
}

func globalsTable(value any) (map[string]flatlint.GlobalAccess, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected globals table, got %T", value)
	}
	globals := make(map[string]flatlint.GlobalAccess, len(table))
	for name, raw := range table {
		switch v := raw.(type) {
		case string:
			access := flatlint.GlobalAccess(v)
			if !access.Valid() {
				return nil, fmt.Errorf("global %q: invalid access %q", name, v)
			}
			globals[name] = access
		case bool:
			if v {
				globals[name] = flatlint.GlobalWritable
			} else {
				globals[name] = flatlint.GlobalReadonly
			}
		default:
			return nil, fmt.Errorf("global %q: expected string or bool, got %T", name, raw)
		}
	}
	return globals, nil
}

func boolTable(value any) (map[string]bool, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected feature table, got %T", value)
	}
	features := make(map[string]bool, len(table))
	for name, raw := range table {
		on, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("feature %q: expected bool, got %T", name, raw)
		}
		features[name] = on
	}
	return features, nil
}

func ecmaVersion(value any) (flatlint.ECMAVersion, error) {
	switch v := value.(type) {
	case string:
		if v != "latest" {
			return 0, fmt.Errorf("invalid ecma_version %q", v)
		}
		return flatlint.ECMAVersionLatest, nil
	case float64:
		return flatlint.ECMAVersion(int(v)), nil
	default:
		return 0, fmt.Errorf("invalid ecma_version: %T", value)
	}
}
