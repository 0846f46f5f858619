package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

func (h *Handler) AppointmentDates(c *gin.Context) {
	email := c.Query("email")
	if !sameSubject(c, email) {
		return
	}
	out, err := h.store.AppointmentDates(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) MyAppointments(c *gin.Context) {
	email := c.Query("email")
	if !sameSubject(c, email) {
		return
	}
	out, err := h.store.AppointmentsByEmail(c.Request.Context(), email, c.Query("date"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// BookAppointment creates a pending appointment for the caller. Payment runs
// afterwards as its own two-step flow.
func (h *Handler) BookAppointment(c *gin.Context) {
	var a model.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid appointment"})
		return
	}
	if a.Email == "" || a.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and date required"})
		return
	}
	if !sameSubject(c, a.Email) {
		return
	}

	a.Status = "pending"
	a.TransactionID = ""
	id, err := h.store.CreateAppointment(c.Request.Context(), &a)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}
