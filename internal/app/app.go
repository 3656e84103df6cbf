// Package app implements the application layer for weave.
package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
	"weave/internal/engine/pipeline"
)

// App represents the main application logic.
type App struct {
	documents ports.DocumentLoader
	pipeline  *pipeline.Pipeline
	writer    ports.ArtifactWriter
	store     ports.CacheStore
	cfg       *domain.Config
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	documents ports.DocumentLoader,
	pipe *pipeline.Pipeline,
	writer ports.ArtifactWriter,
	store ports.CacheStore,
	cfg *domain.Config,
	logger ports.Logger,
) *App {
	return &App{
		documents: documents,
		pipeline:  pipe,
		writer:    writer,
		store:     store,
		cfg:       cfg,
		logger:    logger,
	}
}

// RenderOptions controls a single render run.
type RenderOptions struct {
	// NoCache forces every snippet to re-execute.
	NoCache bool

	// Output overrides the default artifact path.
	Output string
}

// Render compiles the document at path into its output artifact.
func (a *App) Render(ctx context.Context, path string, opts RenderOptions) error {
	if path == "" {
		return domain.ErrNoDocumentSpecified
	}

	doc, err := a.documents.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load document")
	}

	results, err := a.pipeline.Run(ctx, doc, opts.NoCache)
	if err != nil {
		return zerr.Wrap(err, "render failed")
	}

	outPath := opts.Output
	if outPath == "" {
		outPath = filepath.Join(a.cfg.OutputDir, doc.Name+".out.md")
	}

	if err := a.writeArtifact(outPath, doc, results); err != nil {
		return err
	}

	a.logger.Info("rendered " + path + " to " + outPath)
	return nil
}

func (a *App) writeArtifact(outPath string, doc *domain.Document, results []domain.SnippetResult) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create output directory")
		}
	}

	f, err := os.Create(outPath) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, "failed to create artifact")
	}

	if err := a.writer.Write(f, doc, results); err != nil {
		_ = f.Close()
		return zerr.Wrap(err, "failed to write artifact")
	}

	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "failed to close artifact")
	}

	return nil
}

// CleanOptions selects which cache entries to remove.
type CleanOptions struct {
	// All removes every namespace under the cache root.
	All bool

	// Doc is the document whose namespace is targeted. A path or a bare
	// name both work.
	Doc string

	// IDs limits removal to the named snippets within Doc. Empty means the
	// whole namespace.
	IDs []string
}

// Clean removes cache entries per opts.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if opts.All {
		if err := a.store.Purge(); err != nil {
			return zerr.Wrap(err, "failed to purge cache")
		}
		a.logger.Info("purged cache")
		return nil
	}

	if opts.Doc == "" {
		return domain.ErrNoDocumentSpecified
	}
	doc := namespaceFor(opts.Doc)

	if len(opts.IDs) == 0 {
		if err := a.store.InvalidateAll(doc); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to invalidate namespace"), "document", doc)
		}
		a.logger.Info("invalidated cache for " + doc)
		return nil
	}

	for _, id := range opts.IDs {
		if err := a.store.Invalidate(doc, id); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to invalidate entry"), "snippet_id", id)
		}
	}
	a.logger.Info("invalidated " + doc + " entries")
	return nil
}

// namespaceFor maps a document argument to its cache namespace, matching how
// the loader names documents.
func namespaceFor(doc string) string {
	base := filepath.Base(doc)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
