package flatlint

// Descriptor is an ordered sequence of configuration blocks. Block
// order is significant: later blocks override earlier ones for
// overlapping scopes.
//
// A Descriptor is built once and read-only afterwards. The host loads
// it at startup (see the loader package) and consults it per file via
// ResolveForFile.
type Descriptor struct {
	blocks []*ConfigBlock
}

// NewDescriptor builds a descriptor from blocks in declaration order.
func NewDescriptor(blocks ...*ConfigBlock) *Descriptor {
	d := &Descriptor{blocks: make([]*ConfigBlock, len(blocks))}
	copy(d.blocks, blocks)
	return d
}

// Blocks exports the ordered sequence of blocks. The returned slice is
// a copy; the blocks themselves are shared and must not be mutated.
func (d *Descriptor) Blocks() []*ConfigBlock {
	out := make([]*ConfigBlock, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks.
func (d *Descriptor) Len() int {
	return len(d.blocks)
}

// GlobalIgnores returns the patterns contributed by ignore-only blocks,
// in declaration order.
func (d *Descriptor) GlobalIgnores() []string {
	var patterns []string
	for _, b := range d.blocks {
		if b.IsIgnoreOnly() {
			patterns = append(patterns, b.Ignores...)
		}
	}
	return patterns
}

// globallyIgnored reports whether a path is hit by any ignore-only block.
func (d *Descriptor) globallyIgnored(path string) (bool, error) {
	path = NormalizePath(path)
	for _, b := range d.blocks {
		if !b.IsIgnoreOnly() {
			continue
		}
		if err := b.compile(); err != nil {
			return false, err
		}
		if matchAny(b.ignoreMatchers, path) {
			return true, nil
		}
	}
	return false, nil
}
