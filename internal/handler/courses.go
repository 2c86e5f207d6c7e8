package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
	"trainingboard/internal/registry"
)

type courseRequest struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"`
	Fee      float64  `json:"fee"`
	Subjects []string `json:"subjects"`
}

func (r courseRequest) toCourse() registry.Course {
	return registry.Course{
		ID:             r.ID,
		Name:           r.Name,
		DurationMonths: r.Duration,
		Fee:            r.Fee,
		Subjects:       r.Subjects,
	}
}

// listCourses returns all courses ordered by name.
func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.registry.ListCourses(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"courses": courses})
}

// createCourse adds a course; a duplicate name is a conflict.
func (h *Handler) createCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("invalid input"))
		return
	}

	id, err := h.registry.CreateCourse(c.Request.Context(), req.toCourse())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "course added successfully", "id": id})
}

// updateCourse fully replaces a course by id.
func (h *Handler) updateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("invalid input"))
		return
	}

	if err := h.registry.UpdateCourse(c.Request.Context(), req.toCourse()); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "course updated successfully"})
}

// deleteCourse removes a course by the id query parameter.
func (h *Handler) deleteCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, apperr.Invalid("a numeric course id is required"))
		return
	}
	if err := h.registry.DeleteCourse(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "course deleted successfully"})
}
