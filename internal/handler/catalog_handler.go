package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListServices(c *gin.Context) {
	out, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	out, err := h.store.ListDoctors(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetDoctor(c *gin.Context) {
	d, err := h.store.DoctorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) ListFeedbacks(c *gin.Context) {
	out, err := h.store.ListFeedbacks(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListAvailableServices(c *gin.Context) {
	out, err := h.store.ListAvailableServices(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
