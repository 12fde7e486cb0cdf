package decisions

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/brain"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/identity"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles decision-related requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new decisions handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateDecisionRequest represents the request to create a decision
type CreateDecisionRequest struct {
	Title          string               `json:"title" binding:"required"`
	BrainType      models.BrainType     `json:"brain_type" binding:"required,oneof=finance strategy personal"`
	ProblemContext string               `json:"problem_context" binding:"required"`
	DesiredOutcome string               `json:"desired_outcome" binding:"required"`
	Constraints    []string             `json:"constraints"`
	Stakeholders   []string             `json:"stakeholders"`
	Deadline       *time.Time           `json:"deadline"`
	Priority       models.PriorityLevel `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Tags           []string             `json:"tags"`
}

// UpdateDecisionRequest represents a partial update to a decision.
// Only non-null fields are applied.
type UpdateDecisionRequest struct {
	Title          *string                `json:"title"`
	Status         *models.DecisionStatus `json:"status" binding:"omitempty,oneof=draft analyzing reviewed approved executed completed"`
	Priority       *models.PriorityLevel  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	Tags           *[]string              `json:"tags"`
	ExecutionNotes *string                `json:"execution_notes"`
}

// AnalyzeRequest represents the request to analyze a decision
type AnalyzeRequest struct {
	DecisionID     string `json:"decision_id" binding:"required"`
	ForceReanalyze bool   `json:"force_reanalyze"`
}

// Create creates a new decision
// @Summary Create a decision
// @Description Create a new decision for analysis. The decision starts in draft status.
// @Tags decisions
// @Accept json
// @Produce json
// @Param request body CreateDecisionRequest true "Decision details"
// @Success 201 {object} models.Decision
// @Failure 400 {object} map[string]string "Validation error"
// @Router /decisions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	decision := models.Decision{
		Title:          req.Title,
		BrainType:      req.BrainType,
		UserID:         identity.UserID(c),
		OrganizationID: identity.OrganizationID(c),
		DecisionInput: models.DecisionInput{
			ProblemContext: req.ProblemContext,
			DesiredOutcome: req.DesiredOutcome,
			Constraints:    emptyIfNil(req.Constraints),
			Stakeholders:   emptyIfNil(req.Stakeholders),
			Deadline:       req.Deadline,
		},
		Status:        models.StatusDraft,
		Priority:      priority,
		Tags:          emptyIfNil(req.Tags),
		Collaborators: []string{},
	}

	if err := h.db.Create(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create decision"})
		return
	}

	c.JSON(http.StatusCreated, decision)
}

// List returns the caller's decisions with optional filtering
// @Summary List decisions
// @Description Get the caller's decisions, optionally narrowed by brain type and status
// @Tags decisions
// @Produce json
// @Param brain_type query string false "Filter by brain type" Enums(finance, strategy, personal)
// @Param status query string false "Filter by status" Enums(draft, analyzing, reviewed, approved, executed, completed)
// @Param skip query int false "Documents to skip (default 0)"
// @Param limit query int false "Max results (default 100)"
// @Success 200 {array} models.Decision
// @Router /decisions [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Where("user_id = ? AND organization_id = ?",
		identity.UserID(c), identity.OrganizationID(c))

	if brainType := c.Query("brain_type"); brainType != "" {
		query = query.Where("brain_type = ?", brainType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	// Store-native order: no explicit sort, matching the collection scan
	var decisions []models.Decision
	if err := query.Offset(parseIntQuery(c, "skip", 0)).
		Limit(parseIntQuery(c, "limit", 100)).
		Find(&decisions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decisions"})
		return
	}

	c.JSON(http.StatusOK, decisions)
}

// Get returns a single decision by id
// @Summary Get a decision
// @Description Get a specific decision by id
// @Tags decisions
// @Produce json
// @Param id path string true "Decision ID"
// @Success 200 {object} models.Decision
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /decisions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	var decision models.Decision
	if err := h.db.Where("id = ?", c.Param("id")).First(&decision).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// Update applies a partial update to a decision
// @Summary Update a decision
// @Description Merge the supplied fields into a decision. Status accepts any enum value; no transition graph is enforced.
// @Tags decisions
// @Accept json
// @Produce json
// @Param id path string true "Decision ID"
// @Param request body UpdateDecisionRequest true "Fields to update"
// @Success 200 {object} models.Decision
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /decisions/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.Tags != nil {
		// Map-based Updates bypasses the JSON serializer; store the
		// encoded form the column holds.
		encoded, _ := json.Marshal(*req.Tags)
		updates["tags"] = string(encoded)
	}
	if req.ExecutionNotes != nil {
		updates["execution_notes"] = *req.ExecutionNotes
	}

	result := h.db.Model(&models.Decision{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update decision"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}

	var decision models.Decision
	if err := h.db.Where("id = ?", id).First(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decision"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// Analyze generates (or returns the cached) analysis for a decision
// @Summary Analyze a decision
// @Description Generate an AI analysis for a decision. Returns the cached analysis unless force_reanalyze is set. Always transitions the decision to reviewed status when a new analysis is stored.
// @Tags decisions
// @Accept json
// @Produce json
// @Param id path string true "Decision ID"
// @Param request body AnalyzeRequest true "Analysis options"
// @Success 200 {object} models.AIAnalysis
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /decisions/{id}/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var decision models.Decision
	if err := h.db.Where("id = ?", c.Param("id")).First(&decision).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if decision.AIAnalysis != nil && !req.ForceReanalyze {
		c.JSON(http.StatusOK, decision.AIAnalysis)
		return
	}

	analysis := brain.Generate(decision.BrainType)

	// The status transition is unconditional: re-analysis moves even a
	// completed decision back to reviewed.
	decision.AIAnalysis = &analysis
	decision.Status = models.StatusReviewed
	if err := h.db.Save(&decision).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store analysis"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// parseIntQuery reads a non-negative integer query parameter
func parseIntQuery(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return fallback
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// RegisterRoutes registers decision routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/decisions", h.Create)
	rg.GET("/decisions", h.List)
	rg.GET("/decisions/:id", h.Get)
	rg.PUT("/decisions/:id", h.Update)
	rg.POST("/decisions/:id/analyze", h.Analyze)
}
