package identity

import "github.com/gin-gonic/gin"

// Fixed identifiers standing in for an absent authentication system.
// Every request is attributed to this user and organization regardless
// of headers.
const (
	DefaultUserID         = "user_123"
	DefaultOrganizationID = "org_456"
)

const (
	// ContextKeyUserID is the key for user ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyOrgID is the key for organization ID in gin context
	ContextKeyOrgID = "organization_id"
)

// Middleware attaches the fixed caller identity to every request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyUserID, DefaultUserID)
		c.Set(ContextKeyOrgID, DefaultOrganizationID)
		c.Next()
	}
}

// UserID returns the caller's user id from the request context.
func UserID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return DefaultUserID
}

// OrganizationID returns the caller's organization id from the request context.
func OrganizationID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyOrgID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return DefaultOrganizationID
}
