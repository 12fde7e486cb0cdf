package collaboration

import (
	"errors"
	"net/http"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/identity"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles collaboration requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new collaboration handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// ChatMessageRequest represents the request to add a chat message
type ChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// Start begins a collaboration on a decision
// @Summary Start collaboration
// @Description Create a collaboration record for a decision with the caller as sole participant. Repeated calls create additional records.
// @Tags collaboration
// @Produce json
// @Param id path string true "Decision ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Decision not found"
// @Router /decisions/{id}/collaborate [post]
func (h *Handler) Start(c *gin.Context) {
	decisionID := c.Param("id")

	var decision models.Decision
	if err := h.db.Where("id = ?", decisionID).First(&decision).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}

	collab := models.Collaboration{
		DecisionID:   decisionID,
		Participants: []string{identity.UserID(c)},
		ChatMessages: []models.ChatMessage{},
	}

	if err := h.db.Create(&collab).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start collaboration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Collaboration started",
		"collaboration_id": collab.ID,
	})
}

// AddChatMessage appends a chat message to a decision's collaboration
// @Summary Add a chat message
// @Description Append a chat message to the decision's collaboration. When no collaboration exists the call still succeeds but nothing is stored; callers cannot tell the two apart.
// @Tags collaboration
// @Accept json
// @Produce json
// @Param id path string true "Decision ID"
// @Param request body ChatMessageRequest true "Message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation error"
// @Router /decisions/{id}/chat [post]
func (h *Handler) AddChatMessage(c *gin.Context) {
	decisionID := c.Param("id")

	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.NewChatMessage(identity.UserID(c), req.Message)

	var collab models.Collaboration
	err := h.db.Where("decision_id = ?", decisionID).First(&collab).Error
	switch {
	case err == nil:
		collab.ChatMessages = append(collab.ChatMessages, msg)
		collab.LastActivity = msg.Timestamp
		if err := h.db.Save(&collab).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add chat message"})
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Update-if-matched semantics: no collaboration means zero
		// records touched, and the call still reports success.
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add chat message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Chat message added",
		"message_id": msg.ID,
	})
}

// RegisterRoutes registers collaboration routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/decisions/:id/collaborate", h.Start)
	rg.POST("/decisions/:id/chat", h.AddChatMessage)
}
