// Package parser implements the document loader: it splits a literate
// markdown document into prose blocks and executable snippet chunks.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

var _ ports.DocumentLoader = (*Loader)(nil)

// Loader implements ports.DocumentLoader for markdown documents with
// knitr-style chunk headers:
//
//	```{r read-data, cache=TRUE}
//	...
//	```
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new document Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and parses the document at the given path.
func (l *Loader) Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read document")
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc := domain.NewDocument(name, path)

	if err := l.parse(doc, string(data)); err != nil {
		return nil, zerr.With(err, "document", path)
	}

	return doc, nil
}

// parse walks the document line by line. Chunk fences open with ```{...} and
// close with a bare ``` line. Plain fenced code blocks (no brace header) are
// prose and pass through verbatim, including any ```{ lines inside them.
func (l *Loader) parse(doc *domain.Document, content string) error {
	lines := strings.Split(content, "\n")

	var prose []string
	chunkIndex := 0
	inProseFence := false

	flushProse := func() {
		if len(prose) == 0 {
			return
		}
		doc.AddProse(strings.Join(prose, "\n") + "\n")
		prose = prose[:0]
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimRight(line, " \t")

		switch {
		case inProseFence:
			prose = append(prose, line)
			if strings.HasPrefix(trimmed, "```") {
				inProseFence = false
			}

		case isChunkOpen(trimmed):
			flushProse()
			end, err := l.parseChunk(doc, lines, i, chunkIndex+1)
			if err != nil {
				return err
			}
			chunkIndex++
			i = end

		case strings.HasPrefix(trimmed, "```"):
			inProseFence = true
			prose = append(prose, line)

		case i == len(lines)-1 && line == "":
			// Trailing newline artifact of the final Split; not a prose line.

		default:
			prose = append(prose, line)
		}
	}

	flushProse()
	return nil
}

// parseChunk consumes one chunk starting at the opening fence line and
// registers the snippet. It returns the index of the closing fence line.
func (l *Loader) parseChunk(doc *domain.Document, lines []string, start, index int) (int, error) {
	header := strings.TrimRight(lines[start], " \t")
	header = strings.TrimPrefix(header, "```{")
	header = strings.TrimSuffix(header, "}")

	lang, label, opts, deps, err := parseHeader(header)
	if err != nil {
		return 0, zerr.With(err, "line", start+1)
	}

	var source []string
	end := -1
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == "```" {
			end = i
			break
		}
		source = append(source, lines[i])
	}
	if end < 0 {
		return 0, zerr.With(zerr.New("unterminated chunk"), "line", start+1)
	}

	labeled := label != ""
	if !labeled {
		label = fmt.Sprintf("chunk-%d", index)
	}

	snippet := &domain.Snippet{
		ID:        domain.NewInternedString(label),
		Index:     index,
		Labeled:   labeled,
		Language:  lang,
		Source:    strings.Join(source, "\n"),
		Options:   opts,
		DependsOn: deps,
	}

	if err := doc.AddSnippet(snippet); err != nil {
		return 0, err
	}

	return end, nil
}

// isChunkOpen reports whether the line opens a chunk fence.
func isChunkOpen(line string) bool {
	return strings.HasPrefix(line, "```{") && strings.HasSuffix(line, "}")
}
