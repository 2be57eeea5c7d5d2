// Command seed_recipes loads the train.json corpus into the configured
// recipe table so the API can run with the database dataset source.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/config"
	"github.com/pageza/smart-leftovers/backend/internal/database"
	"github.com/pageza/smart-leftovers/backend/internal/dataset"
	"github.com/pageza/smart-leftovers/backend/internal/logger"
	"github.com/pageza/smart-leftovers/backend/internal/model"
)

const batchSize = 500

func main() {
	path := flag.String("file", "train.json", "path to the dataset JSON file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open database", zap.Error(err))
	}

	ctx := context.Background()
	recipes, err := dataset.NewFileSource(*path).Load(ctx)
	if err != nil {
		zl.Fatal("failed to load dataset file", zap.Error(err))
	}

	rows := make([]model.Recipe, len(recipes))
	for i, r := range recipes {
		rows[i] = model.Recipe{
			ID:          r.ID,
			Cuisine:     r.Cuisine,
			Ingredients: model.JSONStringArray(r.Ingredients),
		}
	}

	if err := db.WithContext(ctx).CreateInBatches(rows, batchSize).Error; err != nil {
		zl.Fatal("failed to insert recipes", zap.Error(err))
	}

	zl.Info("seeded recipe corpus", zap.Int("recipes", len(rows)))
}
