package templates

import (
	"net/http"
	"strconv"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/identity"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Handler handles template-related requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new templates handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateTemplateRequest represents the request to create a template.
// TemplateData is a pointer so that an explicitly supplied empty map
// still satisfies required.
type CreateTemplateRequest struct {
	Name         string                  `json:"name" binding:"required"`
	Description  string                  `json:"description" binding:"required"`
	BrainType    models.BrainType        `json:"brain_type" binding:"required,oneof=finance strategy personal"`
	Category     string                  `json:"category" binding:"required"`
	TemplateData *map[string]interface{} `json:"template_data" binding:"required"`
	IsPublic     *bool                   `json:"is_public"`
	Tags         []string                `json:"tags"`
}

// Create creates a new decision template
// @Summary Create a template
// @Description Create a reusable decision template. Private templates are scoped to the caller's organization; public ones are visible everywhere.
// @Tags templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template details"
// @Success 201 {object} models.DecisionTemplate
// @Failure 400 {object} map[string]string "Validation error"
// @Router /templates [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	template := models.DecisionTemplate{
		Name:         req.Name,
		Description:  req.Description,
		BrainType:    req.BrainType,
		Category:     req.Category,
		TemplateData: datatypes.JSONMap(*req.TemplateData),
		IsPublic:     isPublic,
		CreatedBy:    identity.UserID(c),
		Tags:         req.Tags,
	}
	if template.Tags == nil {
		template.Tags = []string{}
	}
	if !isPublic {
		orgID := identity.OrganizationID(c)
		template.OrganizationID = &orgID
	}

	if err := h.db.Create(&template).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// List returns decision templates
// @Summary List templates
// @Description Get decision templates. By default returns public templates across all organizations; is_public=false returns the caller's organization's private templates instead.
// @Tags templates
// @Produce json
// @Param brain_type query string false "Filter by brain type" Enums(finance, strategy, personal)
// @Param category query string false "Filter by category"
// @Param is_public query bool false "Public templates (default true)"
// @Param skip query int false "Documents to skip (default 0)"
// @Param limit query int false "Max results (default 50)"
// @Success 200 {array} models.DecisionTemplate
// @Router /templates [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.Model(&models.DecisionTemplate{})

	if brainType := c.Query("brain_type"); brainType != "" {
		query = query.Where("brain_type = ?", brainType)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	// Public listing is store-wide; private listing is org-scoped.
	if c.DefaultQuery("is_public", "true") == "true" {
		query = query.Where("is_public = ?", true)
	} else {
		query = query.Where("organization_id = ?", identity.OrganizationID(c))
	}

	skip := 0
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	var templates []models.DecisionTemplate
	if err := query.Offset(skip).Limit(limit).Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	c.JSON(http.StatusOK, templates)
}

// RegisterRoutes registers template routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/templates", h.Create)
	rg.GET("/templates", h.List)
}
