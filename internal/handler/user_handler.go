package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
	"github.com/Tahsin974/LifeCare-House-Server/internal/store"
)

// Register is idempotent per email: a repeat call is a no-op reported with a
// null insertion marker, not an error. The read-then-insert race is closed by
// the unique email index — a concurrent duplicate comes back as ErrDuplicate
// and takes the same path.
func (h *Handler) Register(c *gin.Context) {
	var u model.User
	if err := c.ShouldBindJSON(&u); err != nil || u.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email required"})
		return
	}
	if u.Role == "" {
		u.Role = "patient"
	}

	existing, err := h.store.UserByEmail(c.Request.Context(), u.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}

	id, err := h.store.CreateUser(c.Request.Context(), &u)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// IsAdmin reports whether the caller's own account has the admin role.
func (h *Handler) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	if !sameSubject(c, email) {
		return
	}
	u, err := h.store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": u != nil && u.Role == "admin"})
}

func (h *Handler) ListUsers(c *gin.Context) {
	out, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) MakeAdmin(c *gin.Context) {
	n, err := h.store.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": n})
}

// DeleteUser cascades to the user's appointments; payment records stay.
func (h *Handler) DeleteUser(c *gin.Context) {
	n, err := h.store.DeleteUser(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
