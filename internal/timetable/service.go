package timetable

import (
	"context"
	"time"

	"trainingboard/internal/apperr"
)

// SubjectSlot assigns a subject to a start/end time.
type SubjectSlot struct {
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Document is the bundle stored per teacher: assigned courses, timed subjects, and the
// weekdays the assignment applies to. It is replaced wholesale on every save.
type Document struct {
	Courses  []int64       `json:"courses"`
	Subjects []SubjectSlot `json:"subjects"`
	Days     []string      `json:"days"`
}

// Entry is one stored timetable row.
type Entry struct {
	ID        int64     `json:"id"`
	TeacherID int64     `json:"teacher_id"`
	Timetable Document  `json:"timetable"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence surface the engine needs.
type Store interface {
	Replace(ctx context.Context, teacherID int64, doc Document) error
	ListByTeacher(ctx context.Context, teacherID int64) ([]Entry, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service owns timetable replacement and retrieval.
type Service struct {
	store   Store
	timeout time.Duration
}

// NewService creates a service backed by a store.
func NewService(store Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{store: store, timeout: timeout}
}

// Replace validates the bundle and performs the teacher-keyed full-replace upsert.
// Resubmitting for the same teacher discards the prior assignment, never merges.
func (s *Service) Replace(ctx context.Context, teacherID int64, doc Document) error {
	if teacherID <= 0 {
		return apperr.Invalid("teacher_id is required")
	}
	if doc.Courses == nil || doc.Subjects == nil || doc.Days == nil {
		return apperr.Invalid("courses, subjects and days are required")
	}
	for _, slot := range doc.Subjects {
		if slot.Subject == "" || slot.StartTime == "" || slot.EndTime == "" {
			return apperr.Invalid("each subject needs a name, start time and end time")
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.Replace(ctx, teacherID, doc)
}

// ListByTeacher returns the stored rows for a teacher.
func (s *Service) ListByTeacher(ctx context.Context, teacherID int64) ([]Entry, error) {
	if teacherID <= 0 {
		return nil, apperr.Invalid("teacher_id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.ListByTeacher(ctx, teacherID)
}

// Delete removes a single row by id. Deletion is row-keyed, unlike the teacher-keyed
// write path.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.Invalid("timetable entry id is required")
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound("timetable entry not found")
	}
	return nil
}
