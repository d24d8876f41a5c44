package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS grades (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS semesters (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (academic_year_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_number TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			contact_info TEXT,
			current_grade_id UUID REFERENCES grades(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS enrollments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			grade_id UUID NOT NULL REFERENCES grades(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, academic_year_id)
		)`,

		`CREATE TABLE IF NOT EXISTS exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			semester_id UUID REFERENCES semesters(id),
			max_marks INTEGER NOT NULL DEFAULT 100,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (name, academic_year_id, semester_id)
		)`,

		`CREATE TABLE IF NOT EXISTS exam_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			exam_id UUID NOT NULL REFERENCES exams(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			marks DECIMAL(6,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, exam_id, subject_id)
		)`,

		`CREATE TABLE IF NOT EXISTS semester_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			semester_id UUID NOT NULL REFERENCES semesters(id),
			total_marks DECIMAL(8,2) NOT NULL,
			average_score DECIMAL(6,2) NOT NULL,
			rank INTEGER NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, semester_id, academic_year_id)
		)`,

		`CREATE TABLE IF NOT EXISTS yearly_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			total_marks DECIMAL(8,2) NOT NULL,
			average_score DECIMAL(6,2) NOT NULL,
			rank INTEGER NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, academic_year_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_exam_results_exam ON exam_results(exam_id)`,
		`CREATE INDEX IF NOT EXISTS idx_exam_results_student ON exam_results(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_semester_results_scope ON semester_results(academic_year_id, semester_id)`,
		`CREATE INDEX IF NOT EXISTS idx_yearly_results_scope ON yearly_results(academic_year_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
