package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/internal/corpus"
	"github.com/pageza/smart-leftovers/backend/internal/service"
	"github.com/pageza/smart-leftovers/backend/internal/types"
)

func setupDashboardRouter(t *testing.T, recipes []types.RawRecipe) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := &corpus.StaticProvider{Corpus: corpus.Build(recipes)}
	handler := NewDashboardHandler(service.NewInsightsService(provider), zap.NewNop())

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestDashboardStats(t *testing.T) {
	router := setupDashboardRouter(t, []types.RawRecipe{
		{ID: 1, Cuisine: "italian", Ingredients: []string{"milk", "flour"}},
		{ID: 2, Cuisine: "italian", Ingredients: []string{"milk", "basil"}},
	})

	req := httptest.NewRequest("GET", "/api/v1/dashboard/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		TopIngredients []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"top_ingredients"`
		TopCuisines []struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		} `json:"top_cuisines"`
		AverageIngredients float64 `json:"average_ingredients"`
		RecipeCount        int     `json:"recipe_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, 2, response.RecipeCount)
	assert.Equal(t, 2.0, response.AverageIngredients)
	require.NotEmpty(t, response.TopIngredients)
	assert.Equal(t, "milk", response.TopIngredients[0].Name)
	assert.Equal(t, 2, response.TopIngredients[0].Count)
	require.Len(t, response.TopCuisines, 1)
	assert.Equal(t, "italian", response.TopCuisines[0].Name)
}
