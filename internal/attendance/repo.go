package attendance

import (
	"context"
	"database/sql"
)

// Repository persists attendance data in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Roster returns the students enrolled in a course, the enumeration basis for marking.
func (r *Repository) Roster(ctx context.Context, course string) ([]RosterStudent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name FROM students WHERE course = $1 ORDER BY name
	`, course)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []RosterStudent
	for rows.Next() {
		var s RosterStudent
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		roster = append(roster, s)
	}
	return roster, rows.Err()
}

// DayRecords returns the statuses already stored for a course and date, keyed by student.
// Students in the roster but absent from the map are unmarked for that day.
func (r *Repository) DayRecords(ctx context.Context, course, date string) (map[int64]Status, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT student_id, status FROM attendance WHERE course = $1 AND date = $2
	`, course, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[int64]Status)
	for rows.Next() {
		var studentID int64
		var status Status
		if err := rows.Scan(&studentID, &status); err != nil {
			return nil, err
		}
		records[studentID] = status
	}
	return records, rows.Err()
}

// UpsertStatus writes one student's status for (course, date). The unique constraint on
// (course, student_id, date) guarantees at most one row per key; a resubmission updates
// the existing row in place.
func (r *Repository) UpsertStatus(ctx context.Context, course string, studentID int64, date string, status Status) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (course, student_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (course, student_id, date) DO UPDATE SET status = EXCLUDED.status
	`, course, studentID, date, status)
	return err
}
