// Package markdown renders the compiled artifact: prose verbatim, snippet
// source where echoed, and snippet output per the results option.
package markdown

import (
	"io"
	"strings"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer implements ports.ArtifactWriter for markdown output.
type Writer struct{}

// NewWriter creates a new artifact Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the document with the given snippet results to w.
func (wr *Writer) Write(w io.Writer, doc *domain.Document, results []domain.SnippetResult) error {
	byID := make(map[domain.InternedString]domain.SnippetResult, len(results))
	for _, res := range results {
		byID[res.ID] = res
	}

	for _, block := range doc.Blocks() {
		switch block.Kind {
		case domain.BlockProse:
			if _, err := io.WriteString(w, block.Text); err != nil {
				return zerr.Wrap(err, "failed to write prose block")
			}
		case domain.BlockSnippet:
			snippet, err := doc.Registry().ByID(block.SnippetID)
			if err != nil {
				return err
			}
			if err := wr.writeSnippet(w, snippet, byID[block.SnippetID]); err != nil {
				return zerr.With(err, "snippet_id", block.SnippetID.String())
			}
		}
	}

	return nil
}

// writeSnippet emits the echoed source followed by the output section.
func (wr *Writer) writeSnippet(w io.Writer, snippet *domain.Snippet, res domain.SnippetResult) error {
	if snippet.Options.Echo {
		fence := "```" + snippet.Language + "\n" + snippet.Source + "\n```\n"
		if _, err := io.WriteString(w, fence); err != nil {
			return zerr.Wrap(err, "failed to write snippet source")
		}
	}

	if snippet.Options.Results == domain.ResultsHide {
		return nil
	}
	if res.Status == domain.StatusSkipped || res.Output == "" {
		return nil
	}

	output := res.Output
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	section := "\n" + output
	if snippet.Options.Results == domain.ResultsMarkup {
		section = "\n```\n" + output + "```\n"
	}
	if _, err := io.WriteString(w, section); err != nil {
		return zerr.Wrap(err, "failed to write snippet output")
	}

	return nil
}
