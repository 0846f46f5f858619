package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
	"github.com/Tahsin974/LifeCare-House-Server/internal/payment"
	"github.com/Tahsin974/LifeCare-House-Server/internal/store"
)

// CreatePaymentIntent is step one of the payment flow: price to minor units,
// intent from the payment authority, client secret back to the caller. No
// local records are written, so a failure here has nothing to roll back.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price required"})
		return
	}

	secret, err := h.intents.CreateIntent(c.Request.Context(), payment.MinorUnits(body.Price))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// ConfirmPayment is step two: insert the payment record, then flip the
// appointment to paid. Two independent single-document writes — if the second
// fails, the payment record stays behind for the out-of-band audit to
// reconcile.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var p model.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment"})
		return
	}
	if p.AppointmentID == "" || p.TransactionID == "" || p.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "appointmentId, transactionId and email required"})
		return
	}
	if !sameSubject(c, p.Email) {
		return
	}

	p.CreatedAt = time.Now()
	id, err := h.store.CreatePayment(c.Request.Context(), &p)
	if err != nil {
		fail(c, err)
		return
	}

	err = h.store.MarkAppointmentPaid(c.Request.Context(), p.AppointmentID, p.TransactionID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "appointment not found"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

// PaymentHistory lists the caller's own payment records.
func (h *Handler) PaymentHistory(c *gin.Context) {
	email := c.Query("email")
	if !sameSubject(c, email) {
		return
	}
	out, err := h.store.PaymentsByEmail(c.Request.Context(), email)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
