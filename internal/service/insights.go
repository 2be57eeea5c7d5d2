package service

import (
	"context"
	"math"
	"sort"

	"github.com/pageza/smart-leftovers/backend/internal/corpus"
	"github.com/pageza/smart-leftovers/backend/internal/ingredient"
)

// IInsightsService defines the dataset insight operations
type IInsightsService interface {
	DatasetInsights(ctx context.Context) (*DatasetInsights, error)
}

const topCount = 10

// NameCount is one entry of a frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DatasetInsights summarizes the corpus for the dashboard: the most common
// normalized ingredients, the most common cuisines, and the average number
// of ingredients per recipe.
type DatasetInsights struct {
	TopIngredients     []NameCount `json:"top_ingredients"`
	TopCuisines        []NameCount `json:"top_cuisines"`
	AverageIngredients float64     `json:"average_ingredients"`
	RecipeCount        int         `json:"recipe_count"`
}

// InsightsService computes aggregate statistics over the corpus.
type InsightsService struct {
	provider corpus.Provider
}

// NewInsightsService creates a new InsightsService instance
func NewInsightsService(provider corpus.Provider) *InsightsService {
	return &InsightsService{provider: provider}
}

// DatasetInsights builds the dashboard summary. Rankings are deterministic:
// count descending, then name ascending.
func (s *InsightsService) DatasetInsights(ctx context.Context) (*DatasetInsights, error) {
	c, err := s.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	ingredients := make(map[string]int)
	cuisines := make(map[string]int)
	totalIngredients := 0
	for _, r := range c.Recipes {
		cuisines[r.Cuisine]++
		totalIngredients += len(r.Ingredients)
		for _, ing := range r.Ingredients {
			ingredients[ingredient.Normalize(ing)]++
		}
	}

	insights := &DatasetInsights{
		TopIngredients: topN(ingredients, topCount),
		TopCuisines:    topN(cuisines, topCount),
		RecipeCount:    c.Len(),
	}
	if c.Len() > 0 {
		avg := float64(totalIngredients) / float64(c.Len())
		insights.AverageIngredients = math.Round(avg*100) / 100
	}
	return insights, nil
}

func topN(counts map[string]int, n int) []NameCount {
	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Count != ranked[b].Count {
			return ranked[a].Count > ranked[b].Count
		}
		return ranked[a].Name < ranked[b].Name
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
