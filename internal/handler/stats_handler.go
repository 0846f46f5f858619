package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tahsin974/LifeCare-House-Server/internal/model"
)

func (h *Handler) AdminStats(c *gin.Context) {
	if !sameSubject(c, c.Query("email")) {
		return
	}
	st, err := h.store.Counts(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// PatientsPerYear returns one row per year across the full observed range,
// ascending, so a chart consuming it gets a continuous x-axis.
func (h *Handler) PatientsPerYear(c *gin.Context) {
	if !sameSubject(c, c.Query("email")) {
		return
	}
	rows, err := h.store.PatientsPerYear(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fillYears(rows))
}

// fillYears expands sparse year counts into a contiguous series, substituting
// zero for missing years. No observed years means an empty series, not a
// synthetic range.
func fillYears(rows []model.YearCount) []model.YearCount {
	if len(rows) == 0 {
		return []model.YearCount{}
	}
	lo, hi := rows[0].Year, rows[0].Year
	byYear := make(map[int]int, len(rows))
	for _, r := range rows {
		if r.Year < lo {
			lo = r.Year
		}
		if r.Year > hi {
			hi = r.Year
		}
		byYear[r.Year] = r.Patients
	}
	out := make([]model.YearCount, 0, hi-lo+1)
	for y := lo; y <= hi; y++ {
		out = append(out, model.YearCount{Year: y, Patients: byYear[y]})
	}
	return out
}
