// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/family-finance/backend/internal/domain/error"
	"github.com/family-finance/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the calling user's ID.
	UserIDKey ContextKey = "user_id"
	// UserIDHeader carries the calling user's ID on every protected request.
	UserIDHeader = "X-User-ID"
)

// IdentityMiddleware resolves the calling user from the X-User-ID header.
// Session handling lives outside this service; callers are expected to
// have authenticated upstream.
type IdentityMiddleware struct{}

// NewIdentityMiddleware creates a new identity middleware instance.
func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

// Identify returns a Gin middleware handler that requires a valid user ID header.
func (m *IdentityMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "X-User-ID header is required",
				Code:  string(domainerror.ErrCodeMissingIdentity),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid X-User-ID header format",
				Code:  string(domainerror.ErrCodeMissingIdentity),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
