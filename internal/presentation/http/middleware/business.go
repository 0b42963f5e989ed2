package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/repository"
	infraRepo "github.com/kuldeephumbal/BMS-sub001/internal/infrastructure/repository"
	"github.com/kuldeephumbal/BMS-sub001/internal/presentation/http/dto/response"
)

// BusinessHeader is the HTTP header carrying the active business ID.
const BusinessHeader = "X-Business-ID"

// BusinessMiddleware resolves the active business from the X-Business-ID
// header, verifies the authenticated user owns it, and adds it to the
// request context so repositories scope their queries to it.
func BusinessMiddleware(businessRepo repository.BusinessRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(BusinessHeader)
		if header == "" {
			response.BadRequest(c, "X-Business-ID header is required")
			c.Abort()
			return
		}

		businessID, err := uuid.Parse(header)
		if err != nil {
			response.BadRequest(c, "Invalid business ID")
			c.Abort()
			return
		}

		business, err := businessRepo.GetByID(c.Request.Context(), businessID)
		if err != nil {
			response.InternalServerError(c, "Failed to resolve business")
			c.Abort()
			return
		}
		if business == nil {
			response.NotFound(c, "Business not found")
			c.Abort()
			return
		}

		userIDVal, exists := c.Get("user_id")
		if exists {
			if userID, ok := userIDVal.(uuid.UUID); ok && userID != uuid.Nil {
				if business.UserID != userID {
					response.Forbidden(c, "Access denied to this business")
					c.Abort()
					return
				}
			}
		}

		// Set business in Gin context (for handlers)
		c.Set("business_id", business.ID)

		// Also set business ID in request context (for services/repositories)
		ctx := infraRepo.WithBusiness(c.Request.Context(), business.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetBusinessID retrieves the active business ID from gin context
func GetBusinessID(c *gin.Context) uuid.UUID {
	businessID, exists := c.Get("business_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := businessID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
