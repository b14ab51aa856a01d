package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lodestar/internal/db"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/google/uuid"
)

// SQLiteHistoryRepo implements HistoryRepo over a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, p *domain.HistoricalProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := p.Profile.Validate(); err != nil {
		return fmt.Errorf("validating historical profile: %w", err)
	}

	cols := map[string]string{}
	var err error
	for name, list := range map[string][]string{
		"interests":          p.Profile.Interests,
		"academic_strengths": p.Profile.AcademicStrengths,
		"courses_taken":      p.Profile.CoursesTaken,
		"courses_planned":    p.Profile.CoursesPlanned,
		"extracurriculars":   p.Profile.Extracurriculars,
		"achievements":       p.Profile.Achievements,
		"target_colleges":    p.Profile.TargetColleges,
		"target_majors":      p.Profile.TargetMajors,
		"admitted_colleges":  p.AdmittedColleges,
	} {
		if cols[name], err = marshalList(list); err != nil {
			return err
		}
	}
	scores, err := marshalScores(p.Profile.TestScores)
	if err != nil {
		return err
	}

	query := `INSERT INTO historical_profiles (id, seq, current_grade, interests,
		academic_strengths, courses_taken, courses_planned, extracurriculars,
		achievements, target_colleges, target_majors, gpa, test_scores,
		admitted_colleges, final_major)
		VALUES (?, 1 + COALESCE((SELECT MAX(seq) FROM historical_profiles), 0),
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		int(p.Profile.CurrentGrade),
		cols["interests"],
		cols["academic_strengths"],
		cols["courses_taken"],
		cols["courses_planned"],
		cols["extracurriculars"],
		cols["achievements"],
		cols["target_colleges"],
		cols["target_majors"],
		nullableFloatToValue(p.Profile.GPA),
		scores,
		cols["admitted_colleges"],
		p.FinalMajor,
	)
	if err != nil {
		return fmt.Errorf("inserting historical profile: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT seq FROM historical_profiles WHERE id = ?`, p.ID)
	if err := row.Scan(&p.Seq); err != nil {
		return fmt.Errorf("reading back profile seq: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListAll(ctx context.Context) ([]*domain.HistoricalProfile, error) {
	query := `SELECT id, seq, current_grade, interests, academic_strengths,
		courses_taken, courses_planned, extracurriculars, achievements,
		target_colleges, target_majors, gpa, test_scores, admitted_colleges,
		final_major
		FROM historical_profiles ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing historical profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.HistoricalProfile
	for rows.Next() {
		p, err := scanHistoricalProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating historical profiles: %w", err)
	}
	return profiles, nil
}

func scanHistoricalProfile(rows *sql.Rows) (*domain.HistoricalProfile, error) {
	var p domain.HistoricalProfile
	var grade int
	var gpa sql.NullFloat64
	raw := struct {
		interests, strengths, taken, planned, ecs, achievements string
		colleges, majors, scores, admitted                      string
	}{}

	err := rows.Scan(
		&p.ID,
		&p.Seq,
		&grade,
		&raw.interests,
		&raw.strengths,
		&raw.taken,
		&raw.planned,
		&raw.ecs,
		&raw.achievements,
		&raw.colleges,
		&raw.majors,
		&gpa,
		&raw.scores,
		&raw.admitted,
		&p.FinalMajor,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning historical profile: %w", err)
	}

	p.Profile.CurrentGrade = domain.GradeLevel(grade)
	if gpa.Valid {
		v := gpa.Float64
		p.Profile.GPA = &v
	}
	for dst, src := range map[*[]string]string{
		&p.Profile.Interests:         raw.interests,
		&p.Profile.AcademicStrengths: raw.strengths,
		&p.Profile.CoursesTaken:      raw.taken,
		&p.Profile.CoursesPlanned:    raw.planned,
		&p.Profile.Extracurriculars:  raw.ecs,
		&p.Profile.Achievements:      raw.achievements,
		&p.Profile.TargetColleges:    raw.colleges,
		&p.Profile.TargetMajors:      raw.majors,
		&p.AdmittedColleges:          raw.admitted,
	} {
		if *dst, err = unmarshalList(src); err != nil {
			return nil, err
		}
	}
	if p.Profile.TestScores, err = unmarshalScores(raw.scores); err != nil {
		return nil, err
	}
	return &p, nil
}
