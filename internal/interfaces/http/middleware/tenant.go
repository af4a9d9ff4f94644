package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/retail/backend/internal/interfaces/http/dto"
)

const (
	// TenantIDKey is the context key for the authenticated tenant
	TenantIDKey = "tenant_id"
	// ActorIDKey is the context key for the acting user, when known
	ActorIDKey = "actor_id"
)

// RequireTenant extracts and validates the tenant from the X-Tenant-ID
// header. Every business route is tenant-scoped; a request without a valid
// tenant never reaches a handler.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-Tenant-ID")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Tenant-ID header is required"))
			return
		}
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Tenant-ID must be a valid UUID"))
			return
		}
		c.Set(TenantIDKey, tenantID)

		if actor := c.GetHeader("X-Actor-ID"); actor != "" {
			actorID, err := uuid.Parse(actor)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest,
					dto.NewErrorResponse(dto.ErrCodeBadRequest, "X-Actor-ID must be a valid UUID"))
				return
			}
			c.Set(ActorIDKey, actorID)
		}
		c.Next()
	}
}

// GetTenantID returns the tenant set by RequireTenant
func GetTenantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(TenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// GetActorID returns the acting user, or nil when the request is anonymous
func GetActorID(c *gin.Context) *uuid.UUID {
	if v, ok := c.Get(ActorIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return &id
		}
	}
	return nil
}
