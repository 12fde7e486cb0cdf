package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DecisionTemplate is a reusable decision blueprint. Public templates
// are visible across all organizations; private ones carry the
// creator's organization id.
type DecisionTemplate struct {
	ID             string            `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Name           string            `gorm:"not null" json:"name"`
	Description    string            `json:"description"`
	BrainType      BrainType         `gorm:"type:varchar(20);index" json:"brain_type"`
	Category       string            `gorm:"index" json:"category"`
	TemplateData   datatypes.JSONMap `json:"template_data"`
	UsageCount     int               `gorm:"default:0" json:"usage_count"`
	IsPublic       bool              `gorm:"default:true;index" json:"is_public"`
	CreatedBy      string            `gorm:"type:text;not null" json:"created_by"`
	OrganizationID *string           `gorm:"type:text;index" json:"organization_id,omitempty"`
	Rating         float64           `gorm:"default:0" json:"rating"`
	Tags           []string          `gorm:"serializer:json" json:"tags"`
}

// TableName keeps the collection name "templates"
func (DecisionTemplate) TableName() string { return "templates" }

// BeforeCreate generates a UUID primary key if not set.
func (t *DecisionTemplate) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
