package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	handymanRepo "fixly/database/repository/handyman"
	userRepo "fixly/database/repository/user"
	"fixly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// bearerToken pulls the token out of the Authorization header, or "" when
// the header is missing or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// authenticateUser resolves and verifies the caller's session. The token
// hash is checked against redis first; a miss falls back to the user
// document. On failure the request is aborted and ok is false.
func authenticateUser(c *gin.Context, repo userRepo.UserRepository) (userID string, ok bool) {
	ctx := context.Background()

	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", false
	}

	userID, role, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || userID == "" || role != "user" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", false
	}

	computedHash := utils.HashToken(tokenString)
	cacheKey := utils.AuthCachePrefix + userID

	authCache := utils.GetAuthCacheClient()
	cacheEnabled := authCache != nil

	if cacheEnabled {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				return userID, true
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return "", false
		} else if err != redis.Nil {
			log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
		}
	}

	usr, err := repo.GetByID(userID)
	if err != nil || usr == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
		return "", false
	}
	if usr.TokenHash == "" || usr.TokenHash != computedHash {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
		return "", false
	}

	if cacheEnabled {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}

	c.Set("userID", userID)
	return userID, true
}

// JWTAuthUserMiddleware authenticates user-scoped routes.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticateUser(c, repo); !ok {
			return
		}
		c.Next()
	}
}

// JWTAuthHandymanMiddleware authenticates handyman-scoped routes. Handyman
// profiles are owned by user accounts, so the session check is the same; the
// middleware additionally resolves the caller's profile ID.
func JWTAuthHandymanMiddleware(users userRepo.UserRepository, handymen handymanRepo.HandymanRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authenticateUser(c, users)
		if !ok {
			return
		}

		profile, err := handymen.GetByUserID(userID)
		if err != nil || profile == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No handyman profile for this account"})
			return
		}

		c.Set("handymanID", profile.ID)
		c.Next()
	}
}
