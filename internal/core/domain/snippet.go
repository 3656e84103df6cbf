package domain

// Snippet represents one executable chunk extracted from a document.
// It uses InternedString for identifiers that are frequently repeated.
type Snippet struct {
	// ID is the snippet identifier: either the explicit chunk label or the
	// positional "chunk-N" label assigned at parse time.
	ID InternedString

	// Index is the 1-based position of the chunk within the document.
	Index int

	// Labeled reports whether ID came from an explicit chunk label.
	Labeled bool

	// Language is the engine language tag from the chunk header.
	Language string

	// Source is the literal snippet source text. It is the only input to the
	// snippet fingerprint.
	Source string

	// Options is the parsed chunk option set.
	Options ChunkOptions

	// DependsOn lists the declared dependency identifiers, in declaration order.
	DependsOn []InternedString
}

// SnippetResult is the outcome of running (or reusing) one snippet.
type SnippetResult struct {
	ID     InternedString
	Status SnippetStatus
	Output string
}
