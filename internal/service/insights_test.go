package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/smart-leftovers/backend/internal/corpus"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

func TestDatasetInsights(t *testing.T) {
	provider := &corpus.StaticProvider{Corpus: corpus.Build([]types.RawRecipe{
		{ID: 1, Cuisine: "italian", Ingredients: []string{"Milk", "Flour"}},
		{ID: 2, Cuisine: "italian", Ingredients: []string{"milk", "basil", "tomato"}},
		{ID: 3, Cuisine: "thai", Ingredients: []string{"rice"}},
	})}
	svc := NewInsightsService(provider)

	insights, err := svc.DatasetInsights(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, insights.RecipeCount)
	assert.Equal(t, 2.0, insights.AverageIngredients)

	require.NotEmpty(t, insights.TopIngredients)
	assert.Equal(t, NameCount{Name: "milk", Count: 2}, insights.TopIngredients[0], "normalization merges Milk and milk")

	require.Len(t, insights.TopCuisines, 2)
	assert.Equal(t, NameCount{Name: "italian", Count: 2}, insights.TopCuisines[0])
	assert.Equal(t, NameCount{Name: "thai", Count: 1}, insights.TopCuisines[1])
}

func TestDatasetInsightsRankingIsDeterministic(t *testing.T) {
	provider := &corpus.StaticProvider{Corpus: corpus.Build([]types.RawRecipe{
		{ID: 1, Cuisine: "greek", Ingredients: []string{"feta", "olive oil"}},
		{ID: 2, Cuisine: "french", Ingredients: []string{"butter", "cream"}},
	})}
	svc := NewInsightsService(provider)

	insights, err := svc.DatasetInsights(context.Background())
	require.NoError(t, err)

	// equal counts fall back to name order
	names := make([]string, len(insights.TopIngredients))
	for i, nc := range insights.TopIngredients {
		names[i] = nc.Name
	}
	assert.Equal(t, []string{"butter", "cream", "feta", "olive oil"}, names)
}

func TestDatasetInsightsEmptyCorpus(t *testing.T) {
	provider := &corpus.StaticProvider{Corpus: corpus.Build(nil)}
	svc := NewInsightsService(provider)

	insights, err := svc.DatasetInsights(context.Background())
	require.NoError(t, err)
	assert.Zero(t, insights.RecipeCount)
	assert.Zero(t, insights.AverageIngredients)
	assert.Empty(t, insights.TopIngredients)
	assert.Empty(t, insights.TopCuisines)
}
