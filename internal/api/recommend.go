package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/internal/dataset"
	"github.com/pageza/smart-leftovers/backend/internal/recommend"
	"github.com/pageza/smart-leftovers/backend/internal/service"
)

// RecommendHandler handles recommendation requests
type RecommendHandler struct {
	service service.IRecommendationService
	logger  *zap.Logger
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(svc service.IRecommendationService, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes registers the recommendation routes
func (h *RecommendHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recommendations", h.Recommend)
}

// IngredientList accepts either a JSON array of strings or a single
// comma-delimited string, the format the original intake form used.
// Blank entries are dropped either way.
type IngredientList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = splitIngredients(single)
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = trimIngredients(many)
	return nil
}

func splitIngredients(s string) []string {
	return trimIngredients(strings.Split(s, ","))
}

func trimIngredients(raw []string) []string {
	out := []string{}
	for _, r := range raw {
		if t := strings.TrimSpace(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// RecommendRequest is the recommendation request body. MaxIngredients and
// TopN are optional and default to the product values when omitted.
type RecommendRequest struct {
	Ingredients    IngredientList `json:"ingredients"`
	VegetarianOnly bool           `json:"vegetarian_only"`
	MaxIngredients *int           `json:"max_ingredients"`
	TopN           *int           `json:"top_n"`
}

// Recommend returns ranked recipe recommendations for the posted ingredients
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := recommend.Query{
		Ingredients:    req.Ingredients,
		VegetarianOnly: req.VegetarianOnly,
		MaxIngredients: valueOr(req.MaxIngredients, recommend.DefaultMaxIngredients),
		TopN:           valueOr(req.TopN, recommend.DefaultTopN),
	}

	results, err := h.service.Recommend(c.Request.Context(), query)
	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	case errors.Is(err, dataset.ErrDatasetUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe dataset is unavailable"})
		return
	case err != nil:
		h.logger.Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": results,
		"count":           len(results),
	})
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
