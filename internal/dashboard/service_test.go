package dashboard

import (
	"context"
	"testing"
	"time"
)

type fakeStore struct {
	totals   []CourseCount
	recorded map[string]int
	askedFor string
}

func (f *fakeStore) EntityCounts(context.Context) (Stats, error) {
	return Stats{Courses: 2, Students: 5, Standards: 1, Teachers: 3}, nil
}

func (f *fakeStore) EnrollmentByCourse(context.Context) ([]CourseCount, error) {
	return f.totals, nil
}

func (f *fakeStore) RecordedByCourse(_ context.Context, date string) (map[string]int, error) {
	f.askedFor = date
	return f.recorded, nil
}

func TestMergeAttendanceLeft(t *testing.T) {
	totals := []CourseCount{{Name: "Diploma", Count: 10}, {Name: "B.Sc", Count: 4}, {Name: "M.Sc", Count: 2}}
	recorded := map[string]int{"Diploma": 3, "M.Sc": 7}

	got := mergeAttendanceLeft(totals, recorded)
	if len(got) != 3 {
		t.Fatalf("expected every enrolled course present, got %d", len(got))
	}
	if got[0].AttendanceLeft != 7 || got[0].RecordedToday != 3 {
		t.Fatalf("Diploma: expected 7 left / 3 recorded, got %+v", got[0])
	}
	if got[1].AttendanceLeft != 4 || got[1].RecordedToday != 0 {
		t.Fatalf("B.Sc with no records: expected full count left, got %+v", got[1])
	}
	// More records than enrollment floors at zero, never negative.
	if got[2].AttendanceLeft != 0 {
		t.Fatalf("M.Sc: expected floor at zero, got %+v", got[2])
	}
}

func TestTodayAttendanceUsesLocalDate(t *testing.T) {
	store := &fakeStore{totals: []CourseCount{{Name: "Diploma", Count: 3}}, recorded: map[string]int{}}
	svc := NewService(store, time.Second)
	svc.now = func() time.Time { return time.Date(2024, 1, 10, 23, 30, 0, 0, time.Local) }

	got, err := svc.TodayAttendance(context.Background())
	if err != nil {
		t.Fatalf("today attendance failed: %v", err)
	}
	if store.askedFor != "2024-01-10" {
		t.Fatalf("expected query for 2024-01-10, got %s", store.askedFor)
	}
	if len(got) != 1 || got[0].AttendanceLeft != 3 {
		t.Fatalf("unexpected aggregate: %+v", got)
	}
}

func TestStatsPassThrough(t *testing.T) {
	svc := NewService(&fakeStore{}, time.Second)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Students != 5 || stats.Teachers != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
