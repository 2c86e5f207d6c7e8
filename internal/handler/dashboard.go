package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboardStats returns the headline entity counts.
func (h *Handler) dashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"data": stats})
}

// studentCountByCourse returns enrollment per course.
func (h *Handler) studentCountByCourse(c *gin.Context) {
	counts, err := h.dashboard.StudentCountByCourse(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"data": counts})
}

// todayAttendance returns, per course, how many students are still unrecorded today.
func (h *Handler) todayAttendance(c *gin.Context) {
	report, err := h.dashboard.TodayAttendance(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"data": report})
}
