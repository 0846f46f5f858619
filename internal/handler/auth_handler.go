package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/auth"
	"github.com/Tahsin974/LifeCare-House-Server/internal/middleware"
)

// Login signs the caller-supplied identity into the session cookie. The email
// is not checked against the store: trust is the signature plus the expiry,
// and the frontend has already authenticated the user upstream.
func (h *Handler) Login(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email required"})
		return
	}

	tok, err := auth.MakeToken(body.Email, h.secret, h.ttl)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, tok, int(h.ttl.Seconds()), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Success"})
}

// Logout clears the cookie client-side; there is no server-side session to
// revoke.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "logout success"})
}
