package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserRole represents a user's role within their organization
type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleDecisionMaker UserRole = "decision_maker"
	RoleAdvisor       UserRole = "advisor"
	RoleViewer        UserRole = "viewer"
)

// User represents a member of an organization.
// No endpoint reads or writes users yet; identity is pinned to a fixed
// user until real authentication lands, but the record shape is part of
// the persisted schema.
type User struct {
	ID             string            `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Email          string            `gorm:"not null;index" json:"email"`
	Name           string            `gorm:"not null" json:"name"`
	Role           UserRole          `gorm:"type:varchar(20)" json:"role"`
	OrganizationID string            `gorm:"type:text;not null;index" json:"organization_id"`
	AvatarURL      *string           `json:"avatar_url,omitempty"`
	Preferences    datatypes.JSONMap `json:"preferences"`
}

// BeforeCreate generates a UUID primary key if not set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
