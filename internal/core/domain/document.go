package domain

// BlockKind discriminates document blocks.
type BlockKind int

const (
	// BlockProse is a run of prose lines, kept verbatim.
	BlockProse BlockKind = iota
	// BlockSnippet is an executable chunk.
	BlockSnippet
)

// Block is one interleaved unit of a document: either prose text or a
// reference to a registered snippet.
type Block struct {
	Kind BlockKind

	// Text holds the prose for BlockProse blocks.
	Text string

	// SnippetID references the registry for BlockSnippet blocks.
	SnippetID InternedString
}

// Document is a parsed literate document: the ordered prose/snippet block
// sequence plus the snippet registry backing it.
type Document struct {
	// Name is the document base name, used as the cache namespace.
	Name string

	// Path is the source file path.
	Path string

	blocks   []Block
	registry *Registry
}

// NewDocument creates an empty document with the given name and source path.
func NewDocument(name, path string) *Document {
	return &Document{
		Name:     name,
		Path:     path,
		registry: NewRegistry(),
	}
}

// AddProse appends a prose block. Empty text is dropped.
func (d *Document) AddProse(text string) {
	if text == "" {
		return
	}
	d.blocks = append(d.blocks, Block{Kind: BlockProse, Text: text})
}

// AddSnippet registers the snippet and appends a snippet block.
// Registration fails on a duplicate identifier.
func (d *Document) AddSnippet(s *Snippet) error {
	if err := d.registry.Add(s); err != nil {
		return err
	}
	d.blocks = append(d.blocks, Block{Kind: BlockSnippet, SnippetID: s.ID})
	return nil
}

// Blocks returns the interleaved block sequence in document order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Registry returns the snippet registry.
func (d *Document) Registry() *Registry {
	return d.registry
}
