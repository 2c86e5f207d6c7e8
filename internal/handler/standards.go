package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
)

// listStandards returns all standards.
func (h *Handler) listStandards(c *gin.Context) {
	standards, err := h.registry.ListStandards(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"standards": standards})
}

// createStandard adds a standard by name.
func (h *Handler) createStandard(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("standard name is required"))
		return
	}

	id, err := h.registry.CreateStandard(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "standard added successfully", "id": id})
}

// updateStandard renames a standard.
func (h *Handler) updateStandard(c *gin.Context) {
	var req struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.Invalid("id and name are required"))
		return
	}

	if err := h.registry.UpdateStandard(c.Request.Context(), req.ID, req.Name); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "standard updated successfully"})
}

// deleteStandard removes a standard by the id query parameter.
func (h *Handler) deleteStandard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, apperr.Invalid("a numeric standard id is required"))
		return
	}

	if err := h.registry.DeleteStandard(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "standard deleted successfully"})
}
