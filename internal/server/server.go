// Package server wires the application together and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/config"
	"github.com/pageza/smart-leftovers/backend/internal/api"
	"github.com/pageza/smart-leftovers/backend/internal/corpus"
	"github.com/pageza/smart-leftovers/backend/internal/database"
	"github.com/pageza/smart-leftovers/backend/internal/dataset"
	"github.com/pageza/smart-leftovers/backend/internal/router"
	"github.com/pageza/smart-leftovers/backend/internal/service"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New builds the dataset source, corpus provider, services and router for
// the given configuration.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	source, err := newDatasetSource(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Redis is optional: without it the service computes every request and
	// rate limiting is disabled.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(cfg, logger)
		if err != nil {
			logger.Warn("continuing without Redis", zap.Error(err))
			redisClient = nil
		}
	}

	provider := corpus.NewCachedProvider(source, logger)
	recommendService := service.NewRecommendationService(provider, redisClient, cfg.Cache.TTL, cfg.Recommend.NonVegTerms, logger)
	insightsService := service.NewInsightsService(provider)

	recommendHandler := api.NewRecommendHandler(recommendService, logger)
	dashboardHandler := api.NewDashboardHandler(insightsService, logger)

	engine := router.SetupRouter(cfg, recommendHandler, dashboardHandler, redisClient)

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		logger: logger,
	}, nil
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func newDatasetSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (dataset.Source, error) {
	switch cfg.Dataset.Source {
	case "file":
		return dataset.NewFileSource(cfg.Dataset.Path), nil
	case "http":
		return dataset.NewHTTPSource(cfg.Dataset.URL, cfg.Dataset.HTTPTimeout), nil
	case "s3":
		return dataset.NewS3Source(ctx, cfg.Dataset.S3Region, cfg.Dataset.S3Bucket, cfg.Dataset.S3Key)
	case "database":
		db, err := database.New(cfg, logger)
		if err != nil {
			return nil, err
		}
		return dataset.NewDatabaseSource(db), nil
	default:
		return nil, fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
	}
}
