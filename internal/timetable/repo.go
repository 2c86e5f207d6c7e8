package timetable

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Repository persists timetable documents in Postgres.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repo.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Replace writes the single document for a teacher, discarding any prior bundle.
// The unique constraint on teacher_id keys the upsert.
func (r *Repository) Replace(ctx context.Context, teacherID int64, doc Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO teacher_timetables (teacher_id, timetable)
		VALUES ($1, $2)
		ON CONFLICT (teacher_id) DO UPDATE SET timetable = EXCLUDED.timetable
	`, teacherID, payload)
	return err
}

// ListByTeacher returns every timetable row for a teacher. Writes keep a single row,
// but the read contract stays multi-row.
func (r *Repository) ListByTeacher(ctx context.Context, teacherID int64) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, teacher_id, timetable, created_at
		FROM teacher_timetables WHERE teacher_id = $1 ORDER BY id
	`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload []byte
		var createdAt time.Time
		if err := rows.Scan(&e.ID, &e.TeacherID, &payload, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &e.Timetable); err != nil {
			return nil, err
		}
		e.CreatedAt = createdAt
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes one timetable row by its id. Returns the number of rows removed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teacher_timetables WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
