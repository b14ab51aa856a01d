package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS historical_profiles (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL UNIQUE,
		current_grade INTEGER NOT NULL CHECK (current_grade BETWEEN 9 AND 12),
		interests TEXT NOT NULL DEFAULT '[]',
		academic_strengths TEXT NOT NULL DEFAULT '[]',
		courses_taken TEXT NOT NULL DEFAULT '[]',
		courses_planned TEXT NOT NULL DEFAULT '[]',
		extracurriculars TEXT NOT NULL DEFAULT '[]',
		achievements TEXT NOT NULL DEFAULT '[]',
		target_colleges TEXT NOT NULL DEFAULT '[]',
		target_majors TEXT NOT NULL DEFAULT '[]',
		gpa REAL,
		test_scores TEXT NOT NULL DEFAULT '{}',
		admitted_colleges TEXT NOT NULL DEFAULT '[]',
		final_major TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS opportunities (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT NOT NULL CHECK (category IN
			('competition','internship','program','extracurricular','academic')),
		min_grade INTEGER NOT NULL CHECK (min_grade BETWEEN 9 AND 12),
		max_grade INTEGER NOT NULL CHECK (max_grade BETWEEN 9 AND 12),
		interest_tags TEXT NOT NULL DEFAULT '[]',
		description TEXT NOT NULL DEFAULT '',
		requirements TEXT NOT NULL DEFAULT '[]',
		benefits TEXT NOT NULL DEFAULT '[]',
		deadline TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_opportunities_grades
		ON opportunities (min_grade, max_grade)`,
}
