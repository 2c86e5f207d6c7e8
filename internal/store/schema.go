package store

import "context"

// schema lists the CREATE TABLE statements for every entity table.
// Each statement is idempotent so EnsureSchema can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		dob DATE,
		email TEXT UNIQUE,
		phone TEXT,
		address TEXT,
		state TEXT,
		district TEXT,
		taluka TEXT,
		pincode TEXT,
		course TEXT,
		standard TEXT,
		father_name TEXT,
		mother_name TEXT,
		guardian_phone TEXT,
		photo_url TEXT,
		document_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		dob DATE,
		email TEXT UNIQUE,
		phone TEXT,
		address TEXT,
		department TEXT,
		subject TEXT,
		photo_url TEXT,
		document_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		duration_months INT NOT NULL,
		fee NUMERIC(10,2) NOT NULL,
		subjects JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS standards (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		course TEXT NOT NULL,
		student_id BIGINT NOT NULL,
		date DATE NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('present', 'absent')),
		UNIQUE (course, student_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS teacher_timetables (
		id BIGSERIAL PRIMARY KEY,
		teacher_id BIGINT NOT NULL UNIQUE,
		timetable JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates all entity tables if they do not exist yet.
func (d *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := d.Client.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
