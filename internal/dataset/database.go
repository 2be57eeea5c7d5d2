package dataset

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/smart-leftovers/backend/internal/model"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

// DatabaseSource loads the corpus from the recipes table, ordered by ID so
// corpus order is stable across loads.
type DatabaseSource struct {
	db *gorm.DB
}

// NewDatabaseSource creates a database-backed dataset source
func NewDatabaseSource(db *gorm.DB) *DatabaseSource {
	return &DatabaseSource{db: db}
}

// Load reads every recipe row.
func (s *DatabaseSource) Load(ctx context.Context) ([]types.RawRecipe, error) {
	var rows []model.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: querying recipes: %v", ErrDatasetUnavailable, err)
	}

	recipes := make([]types.RawRecipe, len(rows))
	for i, row := range rows {
		recipes[i] = types.RawRecipe{
			ID:          row.ID,
			Cuisine:     row.Cuisine,
			Ingredients: []string(row.Ingredients),
		}
	}
	return recipes, nil
}
