// Package pipeline runs a resolved document: each snippet is fingerprinted,
// served from the cache when possible, and otherwise executed by the engine
// with its dependency outputs in hand.
package pipeline

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"weave/internal/core/domain"
	"weave/internal/core/ports"
)

// Pipeline executes the snippets of a document in resolved order.
type Pipeline struct {
	engine        ports.Engine
	store         ports.CacheStore
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]domain.SnippetStatus
}

// New creates a new Pipeline.
func New(
	engine ports.Engine,
	store ports.CacheStore,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Pipeline {
	return &Pipeline{
		engine:        engine,
		store:         store,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        logger,
		status:        make(map[domain.InternedString]domain.SnippetStatus),
	}
}

// Run resolves the document's snippet order and executes it sequentially,
// halting on the first failure. When force is true every snippet is
// re-executed regardless of cache state; fresh outputs are still committed.
func (p *Pipeline) Run(ctx context.Context, doc *domain.Document, force bool) ([]domain.SnippetResult, error) {
	ordered, err := doc.Registry().Resolve()
	if err != nil {
		return nil, err
	}

	p.initStatuses(ordered)
	fingerprints := p.precomputeFingerprints(ctx, ordered)

	results := make([]domain.SnippetResult, 0, len(ordered))
	prior := make(map[domain.InternedString]domain.SnippetResult, len(ordered))

	for i := range ordered {
		if ctx.Err() != nil {
			return nil, zerr.Wrap(ctx.Err(), "run canceled")
		}

		res, err := p.runSnippet(ctx, doc.Name, &ordered[i], fingerprints[i], prior, force)
		if err != nil {
			return nil, err
		}

		results = append(results, res)
		prior[res.ID] = res
	}

	return results, nil
}

// Status reports the current lifecycle state of a snippet.
func (p *Pipeline) Status(id domain.InternedString) domain.SnippetStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status[id]
}

func (p *Pipeline) initStatuses(ordered []domain.Snippet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range ordered {
		p.status[ordered[i].ID] = domain.StatusPending
	}
}

func (p *Pipeline) setStatus(id domain.InternedString, status domain.SnippetStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status[id] = status
}

// precomputeFingerprints hashes all snippets up front. Hashing is pure and
// per-snippet, so it parallelizes even though execution does not.
func (p *Pipeline) precomputeFingerprints(ctx context.Context, ordered []domain.Snippet) []string {
	fingerprints := make([]string, len(ordered))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range ordered {
		g.Go(func() error {
			fingerprints[i] = p.fingerprinter.Fingerprint(&ordered[i])
			return nil
		})
	}
	_ = g.Wait()

	return fingerprints
}

func (p *Pipeline) runSnippet(
	ctx context.Context,
	doc string,
	snippet *domain.Snippet,
	fingerprint string,
	prior map[domain.InternedString]domain.SnippetResult,
	force bool,
) (domain.SnippetResult, error) {
	id := snippet.ID
	_, vertex := p.telemetry.Record(ctx, id.String())

	if !snippet.Options.Eval {
		p.setStatus(id, domain.StatusSkipped)
		vertex.Log(domain.LogLevelInfo, "evaluation disabled")
		vertex.Complete(nil)
		return domain.SnippetResult{ID: id, Status: domain.StatusSkipped}, nil
	}

	if snippet.Options.Cache && !force {
		if res, ok := p.lookupCached(doc, id, fingerprint); ok {
			vertex.Cached()
			vertex.Complete(nil)
			return res, nil
		}
	}

	p.setStatus(id, domain.StatusRunning)

	output, err := p.engine.Execute(ctx, snippet, p.collectDeps(snippet, prior))
	if err != nil {
		p.setStatus(id, domain.StatusFailed)
		vertex.Complete(err)
		return domain.SnippetResult{ID: id, Status: domain.StatusFailed}, err
	}

	if _, err := io.WriteString(vertex.Stdout(), output); err != nil {
		p.logger.Warn("failed to record snippet output: " + err.Error())
	}

	if snippet.Options.Cache {
		entry := domain.CacheEntry{
			SnippetID:   id.String(),
			Fingerprint: fingerprint,
			Output:      output,
			Timestamp:   time.Now(),
		}
		if err := p.store.Commit(doc, entry); err != nil {
			p.setStatus(id, domain.StatusFailed)
			vertex.Complete(err)
			return domain.SnippetResult{ID: id, Status: domain.StatusFailed},
				zerr.With(zerr.Wrap(err, "failed to commit cache entry"), "snippet_id", id.String())
		}
	}

	p.setStatus(id, domain.StatusCompleted)
	vertex.Complete(nil)
	return domain.SnippetResult{ID: id, Status: domain.StatusCompleted, Output: output}, nil
}

// lookupCached checks the store for a reusable entry. Store errors degrade
// to a miss so a damaged cache never blocks a run.
func (p *Pipeline) lookupCached(doc string, id domain.InternedString, fingerprint string) (domain.SnippetResult, bool) {
	recompute, err := p.store.ShouldRecompute(doc, id.String(), fingerprint)
	if err != nil {
		p.logger.Warn("cache check failed, recomputing: " + err.Error())
		return domain.SnippetResult{}, false
	}
	if recompute {
		return domain.SnippetResult{}, false
	}

	entry, err := p.store.Lookup(doc, id.String())
	if err != nil || entry == nil {
		return domain.SnippetResult{}, false
	}

	p.setStatus(id, domain.StatusCached)
	return domain.SnippetResult{ID: id, Status: domain.StatusCached, Output: entry.Output}, true
}

// collectDeps gathers the results of the snippet's declared dependencies.
// Resolved order guarantees every dependency already ran.
func (p *Pipeline) collectDeps(snippet *domain.Snippet, prior map[domain.InternedString]domain.SnippetResult) []domain.SnippetResult {
	if len(snippet.DependsOn) == 0 {
		return nil
	}
	deps := make([]domain.SnippetResult, 0, len(snippet.DependsOn))
	for _, dep := range snippet.DependsOn {
		deps = append(deps, prior[dep])
	}
	return deps
}
