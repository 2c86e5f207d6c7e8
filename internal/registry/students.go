package registry

import (
	"context"
	"fmt"
	"strings"
)

// Student is a full admission record. Course and standard are stored as the names
// selected at write time, not ids.
type Student struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	State         string `json:"state"`
	District      string `json:"district"`
	Taluka        string `json:"taluka"`
	Pincode       string `json:"pincode"`
	Course        string `json:"course"`
	Standard      string `json:"standard"`
	FatherName    string `json:"father_name"`
	MotherName    string `json:"mother_name"`
	GuardianPhone string `json:"guardian_phone"`
	PhotoURL      string `json:"photo_url"`
	DocumentURL   string `json:"document_url"`
}

// StudentSummary is the listing projection.
type StudentSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	PhotoURL string `json:"photo"`
}

const studentColumns = `id, name, COALESCE(to_char(dob, 'YYYY-MM-DD'), ''), COALESCE(email, ''),
	COALESCE(phone, ''), COALESCE(address, ''), COALESCE(state, ''), COALESCE(district, ''),
	COALESCE(taluka, ''), COALESCE(pincode, ''), COALESCE(course, ''), COALESCE(standard, ''),
	COALESCE(father_name, ''), COALESCE(mother_name, ''), COALESCE(guardian_phone, ''),
	COALESCE(photo_url, ''), COALESCE(document_url, '')`

// CreateStudent inserts an admission record and returns its id.
func (r *Repository) CreateStudent(ctx context.Context, s Student) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO students (name, dob, email, phone, address, state, district, taluka,
			pincode, course, standard, father_name, mother_name, guardian_phone, photo_url, document_url)
		VALUES ($1, NULLIF($2, '')::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`, s.Name, s.DOB, s.Email, s.Phone, s.Address, s.State, s.District, s.Taluka,
		s.Pincode, s.Course, s.Standard, s.FatherName, s.MotherName, s.GuardianPhone,
		s.PhotoURL, s.DocumentURL).Scan(&id)
	if err != nil {
		return 0, uniqueViolation(err, "a student with this email already exists")
	}
	return id, nil
}

// ListStudents returns one page of students plus the unpaged total, optionally filtered
// by a search term over name/email/phone/address.
func (r *Repository) ListStudents(ctx context.Context, search string, limit, offset int) ([]StudentSummary, int, error) {
	// COUNT(*) OVER () rides along on every row so the total and the page come from
	// the same snapshot.
	query := `SELECT id, name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''), COALESCE(photo_url, ''), COUNT(*) OVER () FROM students`
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

	var students []StudentSummary
	var total int
	for rows.Next() {
		var s StudentSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.PhotoURL, &total); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// GetStudent returns a student by id, or nil when missing.
func (r *Repository) GetStudent(ctx context.Context, id int64) (*Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	var s Student
	err := row.Scan(&s.ID, &s.Name, &s.DOB, &s.Email, &s.Phone, &s.Address, &s.State,
		&s.District, &s.Taluka, &s.Pincode, &s.Course, &s.Standard, &s.FatherName,
		&s.MotherName, &s.GuardianPhone, &s.PhotoURL, &s.DocumentURL)
	if err != nil {
		return nil, noRows(err)
	}
	return &s, nil
}

// UpdateStudentFields applies a partial update. Keys must already be column-whitelisted
// by the service. Returns affected row count.
func (r *Repository) UpdateStudentFields(ctx context.Context, id int64, fields map[string]string) (int64, error) {
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
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, uniqueViolation(err, "a student with this email already exists")
	}
	return res.RowsAffected()
}

// DeleteStudent removes a student by id and returns affected rows.
func (r *Repository) DeleteStudent(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
