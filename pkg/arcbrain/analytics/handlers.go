package analytics

import (
	"net/http"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/identity"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles analytics requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// DecisionMetrics represents the analytics overview for an organization.
// AvgDecisionTime, SuccessRate and ROISummary are fixed placeholder
// values; only the counts come from stored data.
type DecisionMetrics struct {
	TotalDecisions    int64            `json:"total_decisions"`
	DecisionsByStatus map[string]int64 `json:"decisions_by_status"`
	DecisionsByBrain  map[string]int64 `json:"decisions_by_brain"`
	AvgDecisionTime   float64          `json:"avg_decision_time"`
	SuccessRate       float64          `json:"success_rate"`
	ROISummary        map[string]int   `json:"roi_summary"`
}

type bucketCount struct {
	Bucket string
	Count  int64
}

// Overview returns the decision analytics overview
// @Summary Analytics overview
// @Description Get aggregate decision counts for the caller's organization. Recomputed on every call.
// @Tags analytics
// @Produce json
// @Success 200 {object} DecisionMetrics
// @Router /analytics/overview [get]
func (h *Handler) Overview(c *gin.Context) {
	orgID := identity.OrganizationID(c)

	var total int64
	if err := h.db.Model(&models.Decision{}).
		Where("organization_id = ?", orgID).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	byStatus, err := h.countBy("status", orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	byBrain, err := h.countBy("brain_type", orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, DecisionMetrics{
		TotalDecisions:    total,
		DecisionsByStatus: byStatus,
		DecisionsByBrain:  byBrain,
		AvgDecisionTime:   4.5,
		SuccessRate:       0.78,
		ROISummary:        map[string]int{"positive": 65, "negative": 15, "neutral": 20},
	})
}

// countBy groups the organization's decisions by the given column
func (h *Handler) countBy(column, orgID string) (map[string]int64, error) {
	var rows []bucketCount
	err := h.db.Model(&models.Decision{}).
		Select(column+" AS bucket, COUNT(*) AS count").
		Where("organization_id = ?", orgID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Bucket] = row.Count
	}
	return counts, nil
}

// RegisterRoutes registers analytics routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/overview", h.Overview)
}
