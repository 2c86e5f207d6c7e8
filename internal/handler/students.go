package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
	"trainingboard/internal/registry"
)

var studentFormFields = []string{
	"name", "dob", "email", "phone", "address", "state", "district", "taluka",
	"pincode", "course", "standard", "father_name", "mother_name", "guardian_phone",
}

// admitStudent creates a student from a multipart form, uploading the optional photo
// and document first so their URLs land in the same insert.
func (h *Handler) admitStudent(c *gin.Context) {
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

	student := registry.Student{
		Name:          c.PostForm("name"),
		DOB:           c.PostForm("dob"),
		Email:         c.PostForm("email"),
		Phone:         c.PostForm("phone"),
		Address:       c.PostForm("address"),
		State:         c.PostForm("state"),
		District:      c.PostForm("district"),
		Taluka:        c.PostForm("taluka"),
		Pincode:       c.PostForm("pincode"),
		Course:        c.PostForm("course"),
		Standard:      c.PostForm("standard"),
		FatherName:    c.PostForm("father_name"),
		MotherName:    c.PostForm("mother_name"),
		GuardianPhone: c.PostForm("guardian_phone"),
		PhotoURL:      photoURL,
		DocumentURL:   documentURL,
	}

	id, err := h.registry.AdmitStudent(c.Request.Context(), student)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"message": "student added successfully", "id": id})
}

// listStudents returns a page of students with an optional search filter.
func (h *Handler) listStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	students, totalPages, err := h.registry.ListStudents(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"students": students, "totalPages": totalPages})
}

// getStudent returns the full record for one student.
func (h *Handler) getStudent(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	student, err := h.registry.GetStudent(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"student": student})
}

// updateStudent applies the provided multipart fields; fresh uploads replace the stored
// photo/document URLs.
func (h *Handler) updateStudent(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}

	fields := make(map[string]string)
	for _, name := range studentFormFields {
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

	if err := h.registry.UpdateStudent(c.Request.Context(), id, fields); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "student updated successfully"})
}

// deleteStudent removes a student by id.
func (h *Handler) deleteStudent(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err)
		return
	}
	if err := h.registry.DeleteStudent(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"message": "student deleted successfully"})
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalid("a numeric id is required")
	}
	return id, nil
}
