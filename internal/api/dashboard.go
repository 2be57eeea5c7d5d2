package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/smart-leftovers/backend/internal/dataset"
	"github.com/pageza/smart-leftovers/backend/internal/service"
)

// DashboardHandler handles dataset insight requests
type DashboardHandler struct {
	insights service.IInsightsService
	logger   *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(insights service.IInsightsService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		insights: insights,
		logger:   logger,
	}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", h.GetStats)
	}
}

// GetStats returns aggregate statistics over the recipe corpus
func (h *DashboardHandler) GetStats(c *gin.Context) {
	insights, err := h.insights.DatasetInsights(c.Request.Context())
	if err != nil {
		if errors.Is(err, dataset.ErrDatasetUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recipe dataset is unavailable"})
			return
		}
		h.logger.Error("failed to compute dataset insights", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, insights)
}
