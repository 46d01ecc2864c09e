// File: middleware/partnerAuth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	partnerRepo "partnerhub/database/repository/partner"
	"partnerhub/models"
	"partnerhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "partnerauth:"
	authCacheTTL    = 15 * time.Minute
)

// ContextPartnerID is the gin context key carrying the authenticated partner.
const ContextPartnerID = "partnerID"

// JWTAuthPartnerMiddleware validates the bearer token for partners. Every
// failure mode returns the same 401 envelope; callers never learn whether the
// token, the partner record or its status was at fault. A nil cache disables
// Redis caching of validated token hashes.
func JWTAuthPartnerMiddleware(repo partnerRepo.PartnerRepository, authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		partnerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || partnerID == "" {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		if authCache != nil {
			if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == partnerID {
				// Refresh TTL (sliding expiration) and proceed.
				if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
					logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
				}
				c.Set(ContextPartnerID, partnerID)
				c.Next()
				return
			} else if err != nil && err != redis.Nil {
				logger.Error("Error checking auth cache", zap.Error(err))
			}
		}

		// Cache miss: load the partner and compare token hashes.
		partner, err := repo.GetByID(c.Request.Context(), partnerID)
		if err != nil || partner == nil {
			logger.Warn("Partner not found when validating token", zap.String("partnerID", partnerID), zap.Error(err))
			abortUnauthorized(c)
			return
		}
		if partner.Status != models.PartnerStatusActive {
			logger.Warn("Inactive partner attempted access", zap.String("partnerID", partnerID), zap.String("status", partner.Status))
			abortUnauthorized(c)
			return
		}
		if computedHash != partner.Security.TokenHash {
			logger.Warn("Token hash mismatch", zap.String("partnerID", partnerID))
			abortUnauthorized(c)
			return
		}

		if authCache != nil {
			if err := authCache.Set(ctx, cacheKey, partnerID, authCacheTTL).Err(); err != nil {
				logger.Error("Failed to set auth cache", zap.Error(err))
			}
		}

		c.Set(ContextPartnerID, partnerID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Envelope{
		Success: false,
		Message: "authentication failed",
	})
}

// PartnerID returns the authenticated partner's ID from the context.
func PartnerID(c *gin.Context) string {
	if v, ok := c.Get(ContextPartnerID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
