package corpus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/internal/dataset"
)

// Provider hands out the indexed corpus. Handlers and services depend on
// this capability rather than on process-wide state, so tests can inject a
// small fixture corpus.
type Provider interface {
	Get(ctx context.Context) (*Corpus, error)
}

// CachedProvider builds the corpus from its dataset source on first use and
// serves the same immutable corpus afterwards. Concurrent first access is
// serialized; a failed load is not cached, so the next request retries.
type CachedProvider struct {
	source dataset.Source
	logger *zap.Logger

	mu     sync.Mutex
	corpus *Corpus
}

// NewCachedProvider creates a provider over the given dataset source
func NewCachedProvider(source dataset.Source, logger *zap.Logger) *CachedProvider {
	return &CachedProvider{
		source: source,
		logger: logger,
	}
}

// Get returns the cached corpus, building it on first call.
func (p *CachedProvider) Get(ctx context.Context) (*Corpus, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.corpus != nil {
		return p.corpus, nil
	}

	start := time.Now()
	recipes, err := p.source.Load(ctx)
	if err != nil {
		p.logger.Error("failed to load recipe dataset", zap.Error(err))
		return nil, err
	}

	c := Build(recipes)
	p.corpus = c

	p.logger.Info("recipe corpus indexed",
		zap.Int("recipes", c.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return c, nil
}

// StaticProvider serves a pre-built corpus, used as a test fixture.
type StaticProvider struct {
	Corpus *Corpus
}

// Get returns the fixed corpus.
func (p *StaticProvider) Get(ctx context.Context) (*Corpus, error) {
	return p.Corpus, nil
}
