package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Organization represents a tenant. Decisions and private templates are
// scoped to an organization by id; there is no enforced membership
// relation beyond the id fields on User and Decision.
type Organization struct {
	ID               string            `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	Name             string            `gorm:"not null" json:"name"`
	Domain           string            `gorm:"index" json:"domain"`
	Settings         datatypes.JSONMap `json:"settings"`
	SubscriptionTier string            `gorm:"default:'starter'" json:"subscription_tier"`
	MemberCount      int               `gorm:"default:0" json:"member_count"`
}

// BeforeCreate generates a UUID primary key if not set.
func (o *Organization) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
