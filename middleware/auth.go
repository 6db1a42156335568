// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	doctorRepo "medisched/database/repository/doctor"
	"medisched/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthDoctorMiddleware authenticates a doctor by validating the bearer
// token and matching its hash against the stored doctor record, so a
// revoked token fails even while its signature is still valid. Verified
// hashes are cached in the auth Redis DB to keep the per-request lookup
// off the database; any cache error falls back to the repository.
func JWTAuthDoctorMiddleware(repo doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the signature and expiration, and extract the doctor ID.
		doctorID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || doctorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := c.Request.Context()
		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + doctorID
		authCache := utils.GetAuthCacheClient()

		// Fast path: previously verified hash in the auth cache.
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL)
				c.Set("doctorID", doctorID)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Auth cache lookup failed, falling back to database", zap.Error(err))
		}

		// Cache miss: look the doctor up by the token hash.
		doc, err := repo.GetByTokenHash(ctx, computedHash)
		if err != nil || doc == nil || doc.ID != doctorID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or doctor not found"})
			return
		}

		if err := authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to store auth cache entry", zap.Error(err))
		}

		c.Set("doctorID", doc.ID)
		c.Next()
	}
}
