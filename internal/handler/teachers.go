package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/registry"
)

var teacherFormFields = []string{
	"name", "dob", "email", "phone", "address", "department", "subject",
}

// addTeacher creates a teacher from a multipart form with optional photo/document.
func (h *Handler) addTeacher(c *gin.Context) {
	photoURL, err := h.uploadFormFile(c, "photo", "photos")
	if err != nil {
		fail(c, err)
		return
	}
	documentURL, err := h.uploadFormFile(c, "document", "documents")
	if err != nil {
		fail(c, err)
		return
	}

	teacher := registry.Teacher{
		Name:        c.PostForm("name"),
		DOB:         c.PostForm("dob"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Address:     c.PostForm("address"),
		Department:  c.PostForm("department"),
		Subject:     c.PostForm("subject"),
		PhotoURL:    photoURL,
		DocumentURL: documentURL,
	}

	id, err := h.registry.AddTeacher(c.Request.Context(), teacher)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "teacher added successfully", "id": id})
}

// listTeachers returns a page of teachers with an optional search filter.
func (h *Handler) listTeachers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	teachers, totalPages, err := h.registry.ListTeachers(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"teachers": teachers, "totalPages": totalPages})
}

// getTeacher returns the full record for one teacher.
func (h *Handler) getTeacher(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	teacher, err := h.registry.GetTeacher(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"teacher": teacher})
}

// updateTeacher applies the provided multipart fields to a teacher.
func (h *Handler) updateTeacher(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	fields := make(map[string]string)
	for _, name := range teacherFormFields {
		if val := c.PostForm(name); val != "" {
			fields[name] = val
		}
	}
	if url, err := h.uploadFormFile(c, "photo", "photos"); err != nil {
		fail(c, err)
		return
	} else if url != "" {
		fields["photo_url"] = url
	}
	if url, err := h.uploadFormFile(c, "document", "documents"); err != nil {
		fail(c, err)
		return
	} else if url != "" {
		fields["document_url"] = url
	}

	if err := h.registry.UpdateTeacher(c.Request.Context(), id, fields); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "teacher updated successfully"})
}

// deleteTeacher removes a teacher by id.
func (h *Handler) deleteTeacher(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.registry.DeleteTeacher(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}
