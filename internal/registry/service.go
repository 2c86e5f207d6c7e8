package registry

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"trainingboard/internal/apperr"
)

// studentUpdateColumns are the student fields an administrative edit may touch.
var studentUpdateColumns = map[string]bool{
	"name": true, "dob": true, "email": true, "phone": true, "address": true,
	"state": true, "district": true, "taluka": true, "pincode": true,
	"course": true, "standard": true, "father_name": true, "mother_name": true,
	"guardian_phone": true, "photo_url": true, "document_url": true,
}

// teacherUpdateColumns are the teacher fields an administrative edit may touch.
var teacherUpdateColumns = map[string]bool{
	"name": true, "dob": true, "email": true, "phone": true, "address": true,
	"department": true, "subject": true, "photo_url": true, "document_url": true,
}

// Service validates registry writes before they reach the repository.
type Service struct {
	repo    *Repository
	timeout time.Duration
}

// NewService creates a service backed by a repository.
func NewService(repo *Repository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{repo: repo, timeout: timeout}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// ---- students ----

func validateStudent(st Student) error {
	if strings.TrimSpace(st.Name) == "" {
		return apperr.Invalid("name is required")
	}
	if st.Email == "" {
		return apperr.Invalid("email is required")
	}
	if _, err := mail.ParseAddress(st.Email); err != nil {
		return apperr.Invalid("email is not valid")
	}
	if st.DOB != "" {
		if _, err := time.Parse("2006-01-02", st.DOB); err != nil {
			return apperr.Invalid("dob must be YYYY-MM-DD")
		}
	}
	return nil
}

// AdmitStudent validates and stores a new admission. A non-empty course label must name
// a registered course; it is still stored denormalized for read compatibility.
func (s *Service) AdmitStudent(ctx context.Context, st Student) (int64, error) {
	if err := validateStudent(st); err != nil {
		return 0, err
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if st.Course != "" {
		ok, err := s.repo.CourseNameExists(ctx, st.Course)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, apperr.Invalid("unknown course: " + st.Course)
		}
	}
	return s.repo.CreateStudent(ctx, st)
}

// ListStudents returns a page of students and the total page count.
func (s *Service) ListStudents(ctx context.Context, page, limit int, search string) ([]StudentSummary, int, error) {
	page, limit = clampPage(page, limit)
	ctx, cancel := s.bound(ctx)
	defer cancel()

	students, total, err := s.repo.ListStudents(ctx, strings.TrimSpace(search), limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return students, totalPages(total, limit), nil
}

// GetStudent returns a student or a not-found error.
func (s *Service) GetStudent(ctx context.Context, id int64) (*Student, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	st, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, apperr.NotFound("student not found")
	}
	return st, nil
}

// UpdateStudent applies the non-empty whitelisted fields to a student.
func (s *Service) UpdateStudent(ctx context.Context, id int64, fields map[string]string) error {
	filtered := filterFields(fields, studentUpdateColumns)
	if len(filtered) == 0 {
		return apperr.Invalid("no fields provided to update")
	}
	if email, ok := filtered["email"]; ok {
		if _, err := mail.ParseAddress(email); err != nil {
			return apperr.Invalid("email is not valid")
		}
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	if course, ok := filtered["course"]; ok {
		exists, err := s.repo.CourseNameExists(ctx, course)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.Invalid("unknown course: " + course)
		}
	}

	affected, err := s.repo.UpdateStudentFields(ctx, id, filtered)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("student not found")
	}
	return nil
}

// DeleteStudent removes a student by id.
func (s *Service) DeleteStudent(ctx context.Context, id int64) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.DeleteStudent(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("student not found")
	}
	return nil
}

// ---- teachers ----

func validateTeacher(t Teacher) error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return apperr.Invalid("name is required")
	case t.DOB == "":
		return apperr.Invalid("dob is required")
	case t.Phone == "":
		return apperr.Invalid("phone is required")
	case t.Address == "":
		return apperr.Invalid("address is required")
	case t.Department == "":
		return apperr.Invalid("department is required")
	case t.Subject == "":
		return apperr.Invalid("subject is required")
	}
	if _, err := mail.ParseAddress(t.Email); err != nil {
		return apperr.Invalid("email is not valid")
	}
	if _, err := time.Parse("2006-01-02", t.DOB); err != nil {
		return apperr.Invalid("dob must be YYYY-MM-DD")
	}
	return nil
}

// AddTeacher validates and stores a new teacher.
func (s *Service) AddTeacher(ctx context.Context, t Teacher) (int64, error) {
	if err := validateTeacher(t); err != nil {
		return 0, err
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.CreateTeacher(ctx, t)
}

// ListTeachers returns a page of teachers and the total page count.
func (s *Service) ListTeachers(ctx context.Context, page, limit int, search string) ([]TeacherSummary, int, error) {
	page, limit = clampPage(page, limit)
	ctx, cancel := s.bound(ctx)
	defer cancel()

	teachers, total, err := s.repo.ListTeachers(ctx, strings.TrimSpace(search), limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return teachers, totalPages(total, limit), nil
}

// GetTeacher returns a teacher or a not-found error.
func (s *Service) GetTeacher(ctx context.Context, id int64) (*Teacher, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	t, err := s.repo.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperr.NotFound("teacher not found")
	}
	return t, nil
}

// UpdateTeacher applies the non-empty whitelisted fields to a teacher.
func (s *Service) UpdateTeacher(ctx context.Context, id int64, fields map[string]string) error {
	filtered := filterFields(fields, teacherUpdateColumns)
	if len(filtered) == 0 {
		return apperr.Invalid("no fields provided to update")
	}
	if email, ok := filtered["email"]; ok {
		if _, err := mail.ParseAddress(email); err != nil {
			return apperr.Invalid("email is not valid")
		}
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.UpdateTeacherFields(ctx, id, filtered)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("teacher not found")
	}
	return nil
}

// DeleteTeacher removes a teacher by id.
func (s *Service) DeleteTeacher(ctx context.Context, id int64) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.DeleteTeacher(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("teacher not found")
	}
	return nil
}

// ---- courses ----

func validateCourse(c Course) error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return apperr.Invalid("course name is required")
	case c.DurationMonths <= 0:
		return apperr.Invalid("duration must be a positive number of months")
	case c.Fee < 0:
		return apperr.Invalid("fee must not be negative")
	case len(c.Subjects) == 0:
		return apperr.Invalid("at least one subject is required")
	}
	return nil
}

// CreateCourse validates and stores a new course.
func (s *Service) CreateCourse(ctx context.Context, c Course) (int64, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := validateCourse(c); err != nil {
		return 0, err
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.CreateCourse(ctx, c)
}

// ListCourses returns all courses.
func (s *Service) ListCourses(ctx context.Context) ([]Course, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.ListCourses(ctx)
}

// UpdateCourse fully replaces a course's name, duration, fee and subject list.
func (s *Service) UpdateCourse(ctx context.Context, c Course) error {
	if c.ID <= 0 {
		return apperr.Invalid("course id is required")
	}
	c.Name = strings.TrimSpace(c.Name)
	if err := validateCourse(c); err != nil {
		return err
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.UpdateCourse(ctx, c)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("course not found")
	}
	return nil
}

// DeleteCourse removes a course by id.
func (s *Service) DeleteCourse(ctx context.Context, id int64) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.DeleteCourse(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("course not found")
	}
	return nil
}

// ---- standards ----

// CreateStandard stores a new standard name.
func (s *Service) CreateStandard(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, apperr.Invalid("standard name is required")
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.CreateStandard(ctx, name)
}

// ListStandards returns all standards.
func (s *Service) ListStandards(ctx context.Context) ([]Standard, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.repo.ListStandards(ctx)
}

// UpdateStandard renames a standard.
func (s *Service) UpdateStandard(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if id <= 0 || name == "" {
		return apperr.Invalid("id and name are required")
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.UpdateStandard(ctx, id, name)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("standard not found")
	}
	return nil
}

// DeleteStandard removes a standard by id.
func (s *Service) DeleteStandard(ctx context.Context, id int64) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	affected, err := s.repo.DeleteStandard(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("standard not found")
	}
	return nil
}

// ---- helpers ----

// filterFields keeps whitelisted keys with non-empty trimmed values.
func filterFields(fields map[string]string, allowed map[string]bool) map[string]string {
	out := make(map[string]string, len(fields))
	for key, val := range fields {
		val = strings.TrimSpace(val)
		if allowed[key] && val != "" {
			out[key] = val
		}
	}
	return out
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
