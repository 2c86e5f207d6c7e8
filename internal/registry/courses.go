package registry

import (
	"context"
	"encoding/json"
)

// Course carries its subject list as an ordered JSON array.
type Course struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	DurationMonths int      `json:"duration_months"`
	Fee            float64  `json:"fee"`
	Subjects       []string `json:"subjects"`
}

// CreateCourse inserts a course; the unique name constraint rejects duplicates.
func (r *Repository) CreateCourse(ctx context.Context, c Course) (int64, error) {
	subjects, err := json.Marshal(c.Subjects)
	if err != nil {
		return 0, err
	}
	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO courses (name, duration_months, fee, subjects)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.DurationMonths, c.Fee, subjects).Scan(&id)
	if err != nil {
		return 0, uniqueViolation(err, "a course with this name already exists")
	}
	return id, nil
}

// ListCourses returns all courses ordered by name.
func (r *Repository) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, duration_months, fee, subjects FROM courses ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		var subjects []byte
		if err := rows.Scan(&c.ID, &c.Name, &c.DurationMonths, &c.Fee, &subjects); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(subjects, &c.Subjects); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// CourseNameExists reports whether a course with the given name is registered.
func (r *Repository) CourseNameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM courses WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

// UpdateCourse replaces name/duration/fee/subjects for a course id.
func (r *Repository) UpdateCourse(ctx context.Context, c Course) (int64, error) {
	subjects, err := json.Marshal(c.Subjects)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE courses SET name = $2, duration_months = $3, fee = $4, subjects = $5 WHERE id = $1
	`, c.ID, c.Name, c.DurationMonths, c.Fee, subjects)
	if err != nil {
		return 0, uniqueViolation(err, "a course with this name already exists")
	}
	return res.RowsAffected()
}

// DeleteCourse removes a course by id and returns affected rows.
func (r *Repository) DeleteCourse(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
