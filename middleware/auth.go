package middleware

import (
	"helpdesk-server/auth"
	"helpdesk-server/entities"
	"helpdesk-server/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// Auth validates the Bearer token and loads the account into the context.
func Auth(jwtManager *auth.JWTManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		token, err := auth.ExtractToken(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		claims, err := jwtManager.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		// Load the account so role changes take effect immediately.
		user, err := userRepo.GetByUsername(claims.Username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated account stored by Auth.
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entities.User)
	return user, ok
}

// RequireCapability gates a route on one capability flag of the caller's
// role. Permission rows live in the database, so edits to a role apply on
// the next request.
func RequireCapability(roleRepo repositories.RoleRepository, capability string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		perms, err := roleRepo.Get(user.Role)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "no permissions for role " + user.Role})
			return
		}
		if !perms.Has(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
