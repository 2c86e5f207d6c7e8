package registry

import "context"

// Standard is a simple reference entry. Names carry no uniqueness constraint.
type Standard struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateStandard inserts a standard and returns its id.
func (r *Repository) CreateStandard(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO standards (name) VALUES ($1) RETURNING id
	`, name).Scan(&id)
	return id, err
}

// ListStandards returns all standards.
func (r *Repository) ListStandards(ctx context.Context) ([]Standard, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM standards ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standards []Standard
	for rows.Next() {
		var s Standard
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		standards = append(standards, s)
	}
	return standards, rows.Err()
}

// UpdateStandard renames a standard and returns affected rows.
func (r *Repository) UpdateStandard(ctx context.Context, id int64, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE standards SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteStandard removes a standard by id and returns affected rows.
func (r *Repository) DeleteStandard(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM standards WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
