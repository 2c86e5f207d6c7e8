package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
)

// attendanceSheet returns the course roster and, when a date is given, the day's records.
func (h *Handler) attendanceSheet(c *gin.Context) {
	course := c.Query("course")
	date := c.Query("date")

	sheet, err := h.attendance.Sheet(c.Request.Context(), course, date)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"students": sheet.Students, "records": sheet.Records})
}

// saveAttendance applies a batch of per-student statuses for one course and date.
func (h *Handler) saveAttendance(c *gin.Context) {
	var req struct {
		Course  string            `json:"course"`
		Date    string            `json:"date"`
		Records map[string]string `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("missing required fields"))
		return
	}

	records := make(map[int64]string, len(req.Records))
	for rawID, status := range req.Records {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			fail(c, apperr.Invalid("record keys must be student ids"))
			return
		}
		records[id] = status
	}

	results, err := h.attendance.Apply(c.Request.Context(), req.Course, req.Date, records)
	if err != nil {
		fail(c, err)
		return
	}

	allSaved := true
	for _, res := range results {
		if !res.Saved {
			allSaved = false
			break
		}
	}
	if !allSaved {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "some attendance records failed to save",
			"results": results,
		})
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "attendance saved successfully", "results": results})
}
