package domain

// ResultsMode controls how a snippet's output is written into the artifact.
type ResultsMode string

const (
	// ResultsMarkup wraps the output in a fenced block.
	ResultsMarkup ResultsMode = "markup"
	// ResultsAsIs inserts the output verbatim, without fencing.
	ResultsAsIs ResultsMode = "asis"
	// ResultsHide executes (and caches) the snippet but omits its output.
	ResultsHide ResultsMode = "hide"
)

// ChunkOptions is the recognized option set of a snippet chunk header.
//
// The zero value is not a valid option set; use DefaultChunkOptions.
type ChunkOptions struct {
	// Eval controls whether the snippet is executed at all.
	Eval bool

	// Echo controls whether the snippet source appears in the artifact.
	Echo bool

	// Cache controls whether the snippet output is persisted and reused.
	Cache bool

	// FigWidth and FigHeight are figure size hints forwarded to the engine.
	// Zero means unset.
	FigWidth  float64
	FigHeight float64

	// Results is the output format hint.
	Results ResultsMode
}

// DefaultChunkOptions returns the option defaults applied before chunk
// header options are parsed: execute, echo the source, do not cache,
// markup results.
func DefaultChunkOptions() ChunkOptions {
	return ChunkOptions{
		Eval:    true,
		Echo:    true,
		Cache:   false,
		Results: ResultsMarkup,
	}
}
