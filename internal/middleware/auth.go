package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/auth"
	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

// cookie carrying the session token
const CookieName = "Token"

const identityKey = "identity"

// RequireSession is the authentication gate. A missing cookie is 403 ("please
// log in"); a present-but-invalid token is 401 ("session expired, log in
// again"). Callers rely on that distinction. No store lookup happens here —
// this runs on every protected request.
func RequireSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}
		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity returns the claims attached by RequireSession. The typed getter is
// the only way downstream code reads the identity, so a gate that forgot to
// run upstream shows up as ok == false rather than a bad type assertion.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RoleLookup is the single store read the authorization gate needs.
type RoleLookup interface {
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AdminOnly is the authorization gate: it resolves the authenticated email to
// a user record and rejects unless the role is "admin". Must be chained after
// RequireSession.
func AdminOnly(users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		u, err := users.UserByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}
		if u == nil || u.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		c.Next()
	}
}
