package attendance

import (
	"context"
	"log"
	"sort"
	"time"

	"trainingboard/internal/apperr"
)

// Status is a recorded attendance state.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
)

// ParseStatus validates a submitted status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent:
		return Status(s), nil
	}
	return "", apperr.Invalid("status must be present or absent")
}

// RosterStudent is one student in a course roster.
type RosterStudent struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Result reports the outcome of one student's upsert within a batch.
type Result struct {
	StudentID int64  `json:"student_id"`
	Status    Status `json:"status"`
	Saved     bool   `json:"saved"`
	Error     string `json:"error,omitempty"`
}

// DaySheet is a course roster with the statuses stored for one date.
type DaySheet struct {
	Students []RosterStudent  `json:"students"`
	Records  map[int64]Status `json:"records,omitempty"`
}

// Store is the persistence surface the reconciler needs.
type Store interface {
	Roster(ctx context.Context, course string) ([]RosterStudent, error)
	DayRecords(ctx context.Context, course, date string) (map[int64]Status, error)
	UpsertStatus(ctx context.Context, course string, studentID int64, date string, status Status) error
}

// Service reconciles a day's submitted statuses onto stored attendance rows.
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

// Sheet returns the roster for a course and, when date is non-empty, the day's records.
func (s *Service) Sheet(ctx context.Context, course, date string) (DaySheet, error) {
	if course == "" {
		return DaySheet{}, apperr.Invalid("course is required")
	}
	if date != "" {
		if err := validDate(date); err != nil {
			return DaySheet{}, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	students, err := s.store.Roster(ctx, course)
	if err != nil {
		return DaySheet{}, err
	}
	sheet := DaySheet{Students: students}
	if date != "" {
		records, err := s.store.DayRecords(ctx, course, date)
		if err != nil {
			return DaySheet{}, err
		}
		sheet.Records = records
	}
	return sheet, nil
}

// Apply upserts each submitted (student, status) pair independently and reports the
// outcome per student. There is no transaction across the batch: a failing key leaves
// earlier keys committed, and the result list makes that visible to the caller.
func (s *Service) Apply(ctx context.Context, course, date string, records map[int64]string) ([]Result, error) {
	if course == "" {
		return nil, apperr.Invalid("course is required")
	}
	if err := validDate(date); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.Invalid("records are required")
	}

	// Validate every status before the first write.
	statuses := make(map[int64]Status, len(records))
	ids := make([]int64, 0, len(records))
	for studentID, raw := range records {
		status, err := ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		statuses[studentID] = status
		ids = append(ids, studentID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make([]Result, 0, len(ids))
	for _, studentID := range ids {
		res := Result{StudentID: studentID, Status: statuses[studentID]}
		if err := s.store.UpsertStatus(ctx, course, studentID, date, statuses[studentID]); err != nil {
			log.Printf("attendance upsert failed for course=%s student=%d date=%s: %v", course, studentID, date, err)
			res.Error = "failed to save attendance"
		} else {
			res.Saved = true
		}
		results = append(results, res)
	}
	return results, nil
}

func validDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperr.Invalid("date must be YYYY-MM-DD")
	}
	return nil
}
