package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/internal/corpus"
	"github.com/pageza/smart-leftovers/backend/internal/ingredient"
	"github.com/pageza/smart-leftovers/backend/internal/recommend"
)

// IRecommendationService defines the recommendation operations
type IRecommendationService interface {
	Recommend(ctx context.Context, query recommend.Query) ([]recommend.Result, error)
}

// RecommendationService runs the recommendation pipeline over the indexed
// corpus, with an optional Redis cache in front of it. The corpus provider
// is constructor-injected so tests can run against a fixture corpus.
type RecommendationService struct {
	provider    corpus.Provider
	cache       *redis.Client
	cacheTTL    time.Duration
	nonVegTerms []string
	logger      *zap.Logger
}

// NewRecommendationService creates a new RecommendationService instance. A
// nil cache client disables response caching; nil or empty nonVegTerms fall
// back to the default keyword list.
func NewRecommendationService(provider corpus.Provider, cache *redis.Client, cacheTTL time.Duration, nonVegTerms []string, logger *zap.Logger) *RecommendationService {
	if len(nonVegTerms) == 0 {
		nonVegTerms = recommend.DefaultNonVegTerms()
	}
	return &RecommendationService{
		provider:    provider,
		cache:       cache,
		cacheTTL:    cacheTTL,
		nonVegTerms: nonVegTerms,
		logger:      logger,
	}
}

// Recommend ranks, filters and composes recommendations for the query.
// It returns ErrEmptyQuery when the ingredient list normalizes to nothing;
// every other degenerate input (empty corpus, non-positive limits) degrades
// to an empty result list.
func (s *RecommendationService) Recommend(ctx context.Context, query recommend.Query) ([]recommend.Result, error) {
	queryDoc := ingredient.Document(query.Ingredients)
	if strings.TrimSpace(queryDoc) == "" {
		return nil, recommend.ErrEmptyQuery
	}

	if query.TopN <= 0 || query.MaxIngredients <= 0 {
		return []recommend.Result{}, nil
	}

	cacheKey := s.cacheKey(queryDoc, query)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	c, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	scores := recommend.Rank(c.Vectorizer, c.Matrix, queryDoc)
	accepted := recommend.Filter(c.Recipes, query.MaxIngredients, query.VegetarianOnly, s.nonVegTerms)
	results := recommend.Compose(c.Recipes, scores, accepted, query.Ingredients, query.TopN)

	s.toCache(ctx, cacheKey, results)
	return results, nil
}

// cacheKey hashes the normalized query document and constraints, so two
// requests that normalize identically share a cache entry.
func (s *RecommendationService) cacheKey(queryDoc string, query recommend.Query) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%t|%d|%d", queryDoc, query.VegetarianOnly, query.MaxIngredients, query.TopN)))
	return "recommend:" + hex.EncodeToString(sum[:])
}

func (s *RecommendationService) fromCache(ctx context.Context, key string) ([]recommend.Result, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("recommendation cache read failed", zap.Error(err))
		return nil, false
	}

	var results []recommend.Result
	if err := json.Unmarshal(data, &results); err != nil {
		s.logger.Warn("recommendation cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return results, true
}

func (s *RecommendationService) toCache(ctx context.Context, key string, results []recommend.Result) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("recommendation cache write failed", zap.Error(err))
	}
}
