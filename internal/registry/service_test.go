package registry

import (
	"testing"

	"trainingboard/internal/apperr"
)

func TestValidateStudent(t *testing.T) {
	ok := Student{Name: "Asha", Email: "asha@board.test", DOB: "2001-04-12"}
	if err := validateStudent(ok); err != nil {
		t.Fatalf("expected valid student, got %v", err)
	}

	cases := []struct {
		name    string
		student Student
	}{
		{"missing name", Student{Email: "a@b.test"}},
		{"missing email", Student{Name: "Asha"}},
		{"bad email", Student{Name: "Asha", Email: "not-an-email"}},
		{"bad dob", Student{Name: "Asha", Email: "a@b.test", DOB: "12-04-2001"}},
	}
	for _, tc := range cases {
		if err := validateStudent(tc.student); apperr.KindOf(err) != apperr.KindInvalid {
			t.Fatalf("%s: expected invalid, got %v", tc.name, err)
		}
	}
}

func TestValidateTeacher(t *testing.T) {
	ok := Teacher{Name: "Ravi", DOB: "1990-01-01", Email: "ravi@board.test",
		Phone: "999", Address: "Pune", Department: "Science", Subject: "Physics"}
	if err := validateTeacher(ok); err != nil {
		t.Fatalf("expected valid teacher, got %v", err)
	}

	missingSubject := ok
	missingSubject.Subject = ""
	if err := validateTeacher(missingSubject); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for missing subject, got %v", err)
	}
	badEmail := ok
	badEmail.Email = "nope"
	if err := validateTeacher(badEmail); apperr.KindOf(err) != apperr.KindInvalid {
		t.Fatalf("expected invalid for bad email, got %v", err)
	}
}

func TestValidateCourse(t *testing.T) {
	ok := Course{Name: "Diploma", DurationMonths: 12, Fee: 15000, Subjects: []string{"Math"}}
	if err := validateCourse(ok); err != nil {
		t.Fatalf("expected valid course, got %v", err)
	}

	cases := []struct {
		name   string
		course Course
	}{
		{"missing name", Course{DurationMonths: 12, Fee: 1, Subjects: []string{"Math"}}},
		{"zero duration", Course{Name: "Diploma", Fee: 1, Subjects: []string{"Math"}}},
		{"negative fee", Course{Name: "Diploma", DurationMonths: 12, Fee: -1, Subjects: []string{"Math"}}},
		{"no subjects", Course{Name: "Diploma", DurationMonths: 12, Fee: 1}},
	}
	for _, tc := range cases {
		if err := validateCourse(tc.course); apperr.KindOf(err) != apperr.KindInvalid {
			t.Fatalf("%s: expected invalid, got %v", tc.name, err)
		}
	}
}

func TestFilterFields(t *testing.T) {
	got := filterFields(map[string]string{
		"name":     "  Asha ",
		"email":    "",
		"standard": "Second Year",
		"id":       "42",
		"course":   "Diploma",
	}, studentUpdateColumns)

	if len(got) != 3 {
		t.Fatalf("expected 3 surviving fields, got %v", got)
	}
	if got["name"] != "Asha" {
		t.Fatalf("expected trimmed name, got %q", got["name"])
	}
	if _, ok := got["id"]; ok {
		t.Fatalf("non-whitelisted column must be dropped")
	}
	if _, ok := got["email"]; ok {
		t.Fatalf("empty value must be dropped")
	}
}

func TestClampPageAndTotalPages(t *testing.T) {
	if page, limit := clampPage(0, 0); page != 1 || limit != 10 {
		t.Fatalf("expected defaults, got page=%d limit=%d", page, limit)
	}
	if page, limit := clampPage(3, 500); page != 3 || limit != 10 {
		t.Fatalf("expected oversized limit clamped, got page=%d limit=%d", page, limit)
	}
	if totalPages(0, 10) != 0 {
		t.Fatalf("expected 0 pages for empty table")
	}
	if totalPages(21, 10) != 3 {
		t.Fatalf("expected 3 pages for 21 rows")
	}
	if totalPages(20, 10) != 2 {
		t.Fatalf("expected 2 pages for 20 rows")
	}
}
