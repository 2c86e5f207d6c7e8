package timetable

import (
	"context"
	"reflect"
	"testing"
	"time"

	"trainingboard/internal/apperr"
)

// fakeStore stores one row per teacher, mimicking the unique constraint.
type fakeStore struct {
	nextID    int64
	byTeacher map[int64]*Entry
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, byTeacher: make(map[int64]*Entry)}
}

func (f *fakeStore) Replace(_ context.Context, teacherID int64, doc Document) error {
	if e, ok := f.byTeacher[teacherID]; ok {
		e.Timetable = doc
		return nil
	}
	f.byTeacher[teacherID] = &Entry{ID: f.nextID, TeacherID: teacherID, Timetable: doc}
	f.nextID++
	return nil
}

func (f *fakeStore) ListByTeacher(_ context.Context, teacherID int64) ([]Entry, error) {
	if e, ok := f.byTeacher[teacherID]; ok {
		return []Entry{*e}, nil
	}
	return nil, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (int64, error) {
	for teacherID, e := range f.byTeacher {
		if e.ID == id {
			delete(f.byTeacher, teacherID)
			return 1, nil
		}
	}
	return 0, nil
}

func TestReplaceDiscardsPriorBundle(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, time.Second)
	ctx := context.Background()

	first := Document{
		Courses:  []int64{1, 2},
		Subjects: []SubjectSlot{{Subject: "Math", StartTime: "09:00", EndTime: "10:00"}},
		Days:     []string{"Monday"},
	}
	if err := svc.Replace(ctx, 1, first); err != nil {
		t.Fatalf("first replace failed: %v", err)
	}

	second := Document{
		Courses:  []int64{3},
		Subjects: []SubjectSlot{{Subject: "Physics", StartTime: "11:00", EndTime: "12:00"}},
		Days:     []string{"Tuesday"},
	}
	if err := svc.Replace(ctx, 1, second); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}

	entries, err := svc.ListByTeacher(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one document, got %d", len(entries))
	}
	if !reflect.DeepEqual(entries[0].Timetable, second) {
		t.Fatalf("expected second payload only, got %+v", entries[0].Timetable)
	}
}

func TestReplaceValidation(t *testing.T) {
	svc := NewService(newFakeStore(), time.Second)
	ctx := context.Background()
	valid := Document{Courses: []int64{1}, Subjects: []SubjectSlot{{Subject: "Math", StartTime: "09:00", EndTime: "10:00"}}, Days: []string{"Monday"}}

	if err := svc.Replace(ctx, 0, valid); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for missing teacher id, got %v", err)
	}
	if err := svc.Replace(ctx, 1, Document{Subjects: valid.Subjects, Days: valid.Days}); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for missing courses, got %v", err)
	}
	if err := svc.Replace(ctx, 1, Document{Courses: valid.Courses, Subjects: []SubjectSlot{{Subject: "Math"}}, Days: valid.Days}); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for incomplete subject slot, got %v", err)
	}

	// Empty (but present) sets are a legal bundle.
	if err := svc.Replace(ctx, 1, Document{Courses: []int64{}, Subjects: []SubjectSlot{}, Days: []string{}}); err != nil {
		t.Fatalf("expected empty sets to be accepted, got %v", err)
	}
}

func TestDeleteIsRowKeyed(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, time.Second)
	ctx := context.Background()
	doc := Document{Courses: []int64{1}, Subjects: []SubjectSlot{}, Days: []string{"Monday"}}

	if err := svc.Replace(ctx, 1, doc); err != nil {
		t.Fatalf("replace t1 failed: %v", err)
	}
	if err := svc.Replace(ctx, 2, doc); err != nil {
		t.Fatalf("replace t2 failed: %v", err)
	}

	entries, _ := svc.ListByTeacher(ctx, 1)
	if err := svc.Delete(ctx, entries[0].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if remaining, _ := svc.ListByTeacher(ctx, 1); len(remaining) != 0 {
		t.Fatalf("expected teacher 1 rows gone")
	}
	if remaining, _ := svc.ListByTeacher(ctx, 2); len(remaining) != 1 {
		t.Fatalf("expected teacher 2 row untouched")
	}

	if err := svc.Delete(ctx, 9999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found for unknown row id, got %v", err)
	}
}
