package dashboard

import (
	"context"
	"database/sql"
)

// Repository reads aggregate figures from Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EntityCounts returns the headline totals for the dashboard.
func (r *Repository) EntityCounts(ctx context.Context) (Stats, error) {
	var s Stats
	row := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM standards),
			(SELECT COUNT(*) FROM teachers)
	`)
	if err := row.Scan(&s.Courses, &s.Students, &s.Standards, &s.Teachers); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// EnrollmentByCourse groups students by their course label, descending by count.
func (r *Repository) EnrollmentByCourse(ctx context.Context) ([]CourseCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT course, COUNT(*) FROM students
		WHERE course IS NOT NULL AND course <> ''
		GROUP BY course ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CourseCount
	for rows.Next() {
		var c CourseCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RecordedByCourse counts distinct students with any attendance row on a date, per
// course. A row with status absent still counts as recorded.
func (r *Repository) RecordedByCourse(ctx context.Context, date string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT course, COUNT(DISTINCT student_id) FROM attendance
		WHERE date = $1 GROUP BY course
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recorded := make(map[string]int)
	for rows.Next() {
		var course string
		var count int
		if err := rows.Scan(&course, &count); err != nil {
			return nil, err
		}
		recorded[course] = count
	}
	return recorded, rows.Err()
}
