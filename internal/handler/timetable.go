package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
	"trainingboard/internal/timetable"
)

// replaceTimetable stores the full timetable bundle for a teacher, discarding any
// previous assignment.
func (h *Handler) replaceTimetable(c *gin.Context) {
	var req struct {
		TeacherID int64                   `json:"teacher_id"`
		Courses   []int64                 `json:"courses"`
		Subjects  []timetable.SubjectSlot `json:"subjects"`
		Days      []string                `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("invalid input"))
		return
	}

	doc := timetable.Document{Courses: req.Courses, Subjects: req.Subjects, Days: req.Days}
	if err := h.timetable.Replace(c.Request.Context(), req.TeacherID, doc); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "timetable saved successfully"})
}

// listTimetable returns all timetable rows for a teacher.
func (h *Handler) listTimetable(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Query("teacher_id"), 10, 64)
	if err != nil {
		fail(c, apperr.Invalid("teacher_id is required"))
		return
	}

	entries, err := h.timetable.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"data": entries})
}

// deleteTimetable removes a single timetable row by its id.
func (h *Handler) deleteTimetable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, apperr.Invalid("timetable entry id is required"))
		return
	}

	if err := h.timetable.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "timetable entry deleted"})
}
