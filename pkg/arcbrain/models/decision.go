package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BrainType selects which analysis domain a decision belongs to
type BrainType string

const (
	BrainTypeFinance  BrainType = "finance"
	BrainTypeStrategy BrainType = "strategy"
	BrainTypePersonal BrainType = "personal"
)

// DecisionStatus labels where a decision sits in its lifecycle.
// No transition graph is enforced: updates may set any value at any
// time, and analyze always moves a decision to "reviewed".
type DecisionStatus string

const (
	StatusDraft     DecisionStatus = "draft"
	StatusAnalyzing DecisionStatus = "analyzing"
	StatusReviewed  DecisionStatus = "reviewed"
	StatusApproved  DecisionStatus = "approved"
	StatusExecuted  DecisionStatus = "executed"
	StatusCompleted DecisionStatus = "completed"
)

// PriorityLevel represents the urgency of a decision
type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "low"
	PriorityMedium   PriorityLevel = "medium"
	PriorityHigh     PriorityLevel = "high"
	PriorityCritical PriorityLevel = "critical"
)

// DecisionInput is the structured problem description embedded in a decision
type DecisionInput struct {
	ProblemContext string     `json:"problem_context"`
	DesiredOutcome string     `json:"desired_outcome"`
	Constraints    []string   `json:"constraints"`
	Stakeholders   []string   `json:"stakeholders"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	BudgetRange    *string    `json:"budget_range,omitempty"`
}

// AIAnalysis is the analysis payload attached to a decision.
// ProsCons keys are "pros" and "cons"; RiskAssessment maps a risk
// category to a severity label. ConfidenceScore is conventionally in
// [0.0, 1.0] but not enforced.
type AIAnalysis struct {
	ReasoningSteps  []string            `json:"reasoning_steps"`
	ProsCons        map[string][]string `json:"pros_cons"`
	RiskAssessment  map[string]string   `json:"risk_assessment"`
	Recommendations []string            `json:"recommendations"`
	ConfidenceScore float64             `json:"confidence_score"`
	EstimatedImpact string              `json:"estimated_impact"`
}

// Decision is the core record: a structured problem owned by a user
// and organization, optionally carrying an analysis.
type Decision struct {
	ID             string            `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Title          string            `gorm:"not null" json:"title"`
	BrainType      BrainType         `gorm:"type:varchar(20);index" json:"brain_type"`
	UserID         string            `gorm:"type:text;not null;index" json:"user_id"`
	OrganizationID string            `gorm:"type:text;not null;index" json:"organization_id"`
	DecisionInput  DecisionInput     `gorm:"serializer:json" json:"decision_input"`
	AIAnalysis     *AIAnalysis       `gorm:"column:ai_analysis;serializer:json" json:"ai_analysis,omitempty"`
	Status         DecisionStatus    `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	Priority       PriorityLevel     `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	Tags           []string          `gorm:"serializer:json" json:"tags"`
	Collaborators  []string          `gorm:"serializer:json" json:"collaborators"`
	ExecutionNotes *string           `json:"execution_notes,omitempty"`
	OutcomeTracked bool              `gorm:"default:false" json:"outcome_tracked"`
	ROIData        datatypes.JSONMap `gorm:"column:roi_data" json:"roi_data,omitempty"`
}

// BeforeCreate generates a UUID primary key if not set.
func (d *Decision) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
