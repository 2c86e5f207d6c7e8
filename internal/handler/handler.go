// Package handler exposes the administrative JSON API over gin.
package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"trainingboard/internal/apperr"
	"trainingboard/internal/attendance"
	"trainingboard/internal/cloudinary"
	"trainingboard/internal/config"
	"trainingboard/internal/dashboard"
	"trainingboard/internal/registry"
	"trainingboard/internal/timetable"
)

var errStorageUnavailable = errors.New("file storage not configured")

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	cfg        config.App
	attendance *attendance.Service
	timetable  *timetable.Service
	registry   *registry.Service
	dashboard  *dashboard.Service
	cdn        *cloudinary.Client
}

// New creates a handler. cdn may be nil when file storage is not configured; upload
// attempts then fail with 503 while the rest of the API keeps working.
func New(cfg config.App, att *attendance.Service, tt *timetable.Service, reg *registry.Service, dash *dashboard.Service, cdn *cloudinary.Client) *Handler {
	return &Handler{cfg: cfg, attendance: att, timetable: tt, registry: reg, dashboard: dash, cdn: cdn}
}

// Register mounts all authenticated routes on the group.
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/attendance", h.attendanceSheet)
	g.POST("/attendance", h.saveAttendance)

	g.POST("/timetable/create-multiple", h.replaceTimetable)
	g.GET("/manage-timetable", h.listTimetable)
	g.DELETE("/manage-timetable", h.deleteTimetable)

	g.POST("/students", h.admitStudent)
	g.GET("/students", h.listStudents)
	g.GET("/students/:id", h.getStudent)
	g.POST("/students/:id", h.updateStudent)
	g.DELETE("/students/:id", h.deleteStudent)

	g.POST("/teachers", h.addTeacher)
	g.GET("/teachers", h.listTeachers)
	g.GET("/teachers/:id", h.getTeacher)
	g.POST("/teachers/:id", h.updateTeacher)
	g.DELETE("/teachers/:id", h.deleteTeacher)

	g.GET("/courses", h.listCourses)
	g.POST("/courses", h.createCourse)
	g.PUT("/courses", h.updateCourse)
	g.DELETE("/courses", h.deleteCourse)

	g.GET("/standards", h.listStandards)
	g.POST("/standards", h.createStandard)
	g.PUT("/standards", h.updateStandard)
	g.DELETE("/standards", h.deleteStandard)

	g.GET("/dashboard/stats", h.dashboardStats)
	g.GET("/dashboard/student-count-by-course", h.studentCountByCourse)
	g.GET("/dashboard/today-attendance", h.todayAttendance)
}

// ok writes the success envelope with optional payload keys.
func ok(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail maps error kinds onto the uniform failure envelope. Unclassified errors are
// logged with detail and surfaced generically.
func fail(c *gin.Context, err error) {
	switch {
	case apperr.KindOf(err) == apperr.KindInvalid, apperr.KindOf(err) == apperr.KindConflict:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case apperr.KindOf(err) == apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, errStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": errStorageUnavailable.Error()})
	default:
		log.Printf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "server error"})
	}
}

// uploadFormFile pushes an optional multipart file to cloudinary and returns its URL.
// Returns "" without error when the field is absent.
func (h *Handler) uploadFormFile(c *gin.Context, field, kind string) (string, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperr.Invalid("malformed " + field + " upload")
	}
	defer file.Close()

	if h.cdn == nil {
		return "", errStorageUnavailable
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	result, err := h.cdn.Upload(data, header.Filename, kind)
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
