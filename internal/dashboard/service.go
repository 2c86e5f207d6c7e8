package dashboard

import (
	"context"
	"time"
)

// Stats holds the headline entity counts.
type Stats struct {
	Courses   int `json:"courses"`
	Students  int `json:"students"`
	Standards int `json:"standards"`
	Teachers  int `json:"teachers"`
}

// CourseCount is a per-course enrollment figure.
type CourseCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CourseAttendance reports how many students in a course still have no attendance
// record for the day.
type CourseAttendance struct {
	Name           string `json:"name"`
	RecordedToday  int    `json:"recorded_today"`
	AttendanceLeft int    `json:"attendance_left"`
}

// Store is the aggregate read surface.
type Store interface {
	EntityCounts(ctx context.Context) (Stats, error)
	EnrollmentByCourse(ctx context.Context) ([]CourseCount, error)
	RecordedByCourse(ctx context.Context, date string) (map[string]int, error)
}

// Service computes dashboard aggregates.
type Service struct {
	store   Store
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a service backed by a store.
func NewService(store Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{store: store, timeout: timeout, now: time.Now}
}

// Stats returns the headline entity counts.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.EntityCounts(ctx)
}

// StudentCountByCourse returns enrollment per course, descending.
func (s *Service) StudentCountByCourse(ctx context.Context) ([]CourseCount, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.store.EnrollmentByCourse(ctx)
}

// TodayAttendance reports, per course, the students still unrecorded for the server's
// local calendar date. "Recorded" counts any status, present or absent.
func (s *Service) TodayAttendance(ctx context.Context) ([]CourseAttendance, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	today := s.now().Format("2006-01-02")
	totals, err := s.store.EnrollmentByCourse(ctx)
	if err != nil {
		return nil, err
	}
	recorded, err := s.store.RecordedByCourse(ctx, today)
	if err != nil {
		return nil, err
	}
	return mergeAttendanceLeft(totals, recorded), nil
}

// mergeAttendanceLeft subtracts recorded counts from enrollment, flooring at zero.
func mergeAttendanceLeft(totals []CourseCount, recorded map[string]int) []CourseAttendance {
	out := make([]CourseAttendance, 0, len(totals))
	for _, course := range totals {
		left := course.Count - recorded[course.Name]
		if left < 0 {
			left = 0
		}
		out = append(out, CourseAttendance{
			Name:           course.Name,
			RecordedToday:  recorded[course.Name],
			AttendanceLeft: left,
		})
	}
	return out
}
