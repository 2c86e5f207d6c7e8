package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"trainingboard/internal/apperr"
)

type key struct {
	course    string
	studentID int64
	date      string
}

// fakeStore keeps attendance rows in a map keyed like the unique constraint.
type fakeStore struct {
	roster  map[string][]RosterStudent
	rows    map[key]Status
	failFor map[int64]bool
	writes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roster:  make(map[string][]RosterStudent),
		rows:    make(map[key]Status),
		failFor: make(map[int64]bool),
	}
}

func (f *fakeStore) Roster(_ context.Context, course string) ([]RosterStudent, error) {
	return f.roster[course], nil
}

func (f *fakeStore) DayRecords(_ context.Context, course, date string) (map[int64]Status, error) {
	out := make(map[int64]Status)
	for k, status := range f.rows {
		if k.course == course && k.date == date {
			out[k.studentID] = status
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertStatus(_ context.Context, course string, studentID int64, date string, status Status) error {
	if f.failFor[studentID] {
		return errors.New("write failed")
	}
	f.writes++
	f.rows[key{course, studentID, date}] = status
	return nil
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"present", "absent"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Fatalf("expected %q to be valid", valid)
		}
	}
	if _, err := ParseStatus("late"); err == nil {
		t.Fatalf("expected unknown status to error")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatalf("expected empty status to error")
	}
}

func TestApplyCreatesAndUpdates(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, time.Second)
	ctx := context.Background()

	results, err := svc.Apply(ctx, "Diploma", "2024-01-10", map[int64]string{1: "present", 2: "absent"})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if !res.Saved {
			t.Fatalf("expected student %d saved", res.StudentID)
		}
	}
	if store.rows[key{"Diploma", 1, "2024-01-10"}] != StatusPresent {
		t.Fatalf("expected S1 present")
	}
	if store.rows[key{"Diploma", 2, "2024-01-10"}] != StatusAbsent {
		t.Fatalf("expected S2 absent")
	}
	if _, ok := store.rows[key{"Diploma", 3, "2024-01-10"}]; ok {
		t.Fatalf("unexpected record for unlisted student")
	}

	// Resubmit S1 with a different status: same row updated, S2 untouched.
	if _, err := svc.Apply(ctx, "Diploma", "2024-01-10", map[int64]string{1: "absent"}); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}
	if store.rows[key{"Diploma", 1, "2024-01-10"}] != StatusAbsent {
		t.Fatalf("expected S1 flipped to absent")
	}
	if store.rows[key{"Diploma", 2, "2024-01-10"}] != StatusAbsent {
		t.Fatalf("expected S2 unchanged")
	}
	if len(store.rows) != 2 {
		t.Fatalf("expected exactly one row per key, got %d rows", len(store.rows))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Apply(ctx, "Diploma", "2024-01-10", map[int64]string{7: "present"}); err != nil {
			t.Fatalf("apply %d failed: %v", i, err)
		}
	}
	if len(store.rows) != 1 {
		t.Fatalf("expected one row after repeat submissions, got %d", len(store.rows))
	}
	if store.rows[key{"Diploma", 7, "2024-01-10"}] != StatusPresent {
		t.Fatalf("expected status preserved on repeat submission")
	}
}

func TestApplyRejectsBeforeWriting(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, time.Second)
	ctx := context.Background()

	cases := []struct {
		name    string
		course  string
		date    string
		records map[int64]string
	}{
		{"missing course", "", "2024-01-10", map[int64]string{1: "present"}},
		{"bad date", "Diploma", "10-01-2024", map[int64]string{1: "present"}},
		{"empty records", "Diploma", "2024-01-10", nil},
		{"bad status", "Diploma", "2024-01-10", map[int64]string{1: "present", 2: "maybe"}},
	}
	for _, tc := range cases {
		if _, err := svc.Apply(ctx, tc.course, tc.date, tc.records); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		} else if apperr.KindOf(err) != apperr.KindInvalid {
			t.Fatalf("%s: expected invalid kind, got %v", tc.name, err)
		}
	}
	if store.writes != 0 {
		t.Fatalf("validation failures must not write, saw %d writes", store.writes)
	}
}

func TestApplyReportsPartialFailure(t *testing.T) {
	store := newFakeStore()
	store.failFor[2] = true
	svc := NewService(store, time.Second)

	results, err := svc.Apply(context.Background(), "Diploma", "2024-01-10", map[int64]string{
		1: "present", 2: "present", 3: "absent",
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	byStudent := make(map[int64]Result)
	for _, res := range results {
		byStudent[res.StudentID] = res
	}
	if !byStudent[1].Saved || !byStudent[3].Saved {
		t.Fatalf("expected surviving keys committed")
	}
	if byStudent[2].Saved || byStudent[2].Error == "" {
		t.Fatalf("expected failing key reported, got %+v", byStudent[2])
	}
	if _, ok := store.rows[key{"Diploma", 1, "2024-01-10"}]; !ok {
		t.Fatalf("earlier write must not be rolled back")
	}
}

func TestSheetReturnsRosterAndRecords(t *testing.T) {
	store := newFakeStore()
	store.roster["Diploma"] = []RosterStudent{{ID: 1, Name: "Asha"}, {ID: 2, Name: "Ravi"}, {ID: 3, Name: "Zara"}}
	store.rows[key{"Diploma", 1, "2024-01-10"}] = StatusPresent
	store.rows[key{"Diploma", 2, "2024-01-10"}] = StatusAbsent
	svc := NewService(store, time.Second)
	ctx := context.Background()

	sheet, err := svc.Sheet(ctx, "Diploma", "2024-01-10")
	if err != nil {
		t.Fatalf("sheet failed: %v", err)
	}
	if len(sheet.Students) != 3 {
		t.Fatalf("expected full roster, got %d", len(sheet.Students))
	}
	if sheet.Records[1] != StatusPresent || sheet.Records[2] != StatusAbsent {
		t.Fatalf("unexpected records: %v", sheet.Records)
	}
	if _, ok := sheet.Records[3]; ok {
		t.Fatalf("unmarked student must stay unset")
	}

	// No date: roster only.
	sheet, err = svc.Sheet(ctx, "Diploma", "")
	if err != nil {
		t.Fatalf("sheet without date failed: %v", err)
	}
	if sheet.Records != nil {
		t.Fatalf("expected no records without a date")
	}

	if _, err := svc.Sheet(ctx, "", "2024-01-10"); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for missing course, got %v", err)
	}
}
