package registry

import (
	"context"
	"fmt"
	"strings"
)

// Teacher mirrors the student record with department/subject instead of guardian info.
type Teacher struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DOB         string `json:"dob"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Department  string `json:"department"`
	Subject     string `json:"subject"`
	PhotoURL    string `json:"photo_url"`
	DocumentURL string `json:"document_url"`
}

// TeacherSummary is the listing projection.
type TeacherSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	PhotoURL string `json:"photo_url"`
}

const teacherColumns = `id, name, COALESCE(to_char(dob, 'YYYY-MM-DD'), ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(address, ''), COALESCE(department, ''), COALESCE(subject, ''),
	COALESCE(photo_url, ''), COALESCE(document_url, '')`

// CreateTeacher inserts a teacher record and returns its id.
func (r *Repository) CreateTeacher(ctx context.Context, t Teacher) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO teachers (name, dob, email, phone, address, department, subject, photo_url, document_url)
		VALUES ($1, NULLIF($2, '')::date, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, t.Name, t.DOB, t.Email, t.Phone, t.Address, t.Department, t.Subject, t.PhotoURL, t.DocumentURL).Scan(&id)
	if err != nil {
		return 0, uniqueViolation(err, "a teacher with this email already exists")
	}
	return id, nil
}

// ListTeachers returns one page of teachers plus the unpaged total.
func (r *Repository) ListTeachers(ctx context.Context, search string, limit, offset int) ([]TeacherSummary, int, error) {
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(photo_url, ''), COUNT(*) OVER () FROM teachers`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var teachers []TeacherSummary
	var total int
	for rows.Next() {
		var t TeacherSummary
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Address, &t.PhotoURL, &total); err != nil {
			return nil, 0, err
		}
		teachers = append(teachers, t)
	}
	return teachers, total, rows.Err()
}

// GetTeacher returns a teacher by id, or nil when missing.
func (r *Repository) GetTeacher(ctx context.Context, id int64) (*Teacher, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id)
	var t Teacher
	err := row.Scan(&t.ID, &t.Name, &t.DOB, &t.Email, &t.Phone, &t.Address, &t.Department,
		&t.Subject, &t.PhotoURL, &t.DocumentURL)
	if err != nil {
		return nil, noRows(err)
	}
	return &t, nil
}

// UpdateTeacherFields applies a partial update with service-whitelisted columns.
func (r *Repository) UpdateTeacherFields(ctx context.Context, id int64, fields map[string]string) (int64, error) {
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for col, val := range fields {
		if col == "dob" {
			sets = append(sets, fmt.Sprintf("dob = NULLIF($%d, '')::date", len(args)+1))
		} else {
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)+1))
		}
		args = append(args, val)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE teachers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, uniqueViolation(err, "a teacher with this email already exists")
	}
	return res.RowsAffected()
}

// DeleteTeacher removes a teacher by id and returns affected rows.
func (r *Repository) DeleteTeacher(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
