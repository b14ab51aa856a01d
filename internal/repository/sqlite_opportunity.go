package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lodestar/internal/db"
	"github.com/alexanderramin/lodestar/internal/domain"
	"github.com/google/uuid"
)

// SQLiteOpportunityRepo implements OpportunityRepo over a SQLite database.
type SQLiteOpportunityRepo struct {
	db db.DBTX
}

// NewSQLiteOpportunityRepo creates a new SQLiteOpportunityRepo.
func NewSQLiteOpportunityRepo(conn db.DBTX) *SQLiteOpportunityRepo {
	return &SQLiteOpportunityRepo{db: conn}
}

func (r *SQLiteOpportunityRepo) Append(ctx context.Context, o *domain.Opportunity) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if !domain.ValidOpportunityCategories[string(o.Category)] {
		return fmt.Errorf("unknown opportunity category %q", o.Category)
	}
	if !o.MinGrade.Valid() || !o.MaxGrade.Valid() || o.MinGrade > o.MaxGrade {
		return fmt.Errorf("invalid grade range %d-%d", int(o.MinGrade), int(o.MaxGrade))
	}

	tags, err := marshalList(o.InterestTags)
	if err != nil {
		return err
	}
	reqs, err := marshalList(o.Requirements)
	if err != nil {
		return err
	}
	benefits, err := marshalList(o.Benefits)
	if err != nil {
		return err
	}

	query := `INSERT INTO opportunities (id, seq, name, category, min_grade,
		max_grade, interest_tags, description, requirements, benefits, deadline)
		VALUES (?, 1 + COALESCE((SELECT MAX(seq) FROM opportunities), 0),
			?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		o.ID,
		o.Name,
		string(o.Category),
		int(o.MinGrade),
		int(o.MaxGrade),
		tags,
		o.Description,
		reqs,
		benefits,
		o.Deadline,
	)
	if err != nil {
		return fmt.Errorf("inserting opportunity: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT seq FROM opportunities WHERE id = ?`, o.ID)
	if err := row.Scan(&o.Seq); err != nil {
		return fmt.Errorf("reading back opportunity seq: %w", err)
	}
	return nil
}

func (r *SQLiteOpportunityRepo) ListAll(ctx context.Context) ([]*domain.Opportunity, error) {
	query := `SELECT id, seq, name, category, min_grade, max_grade,
		interest_tags, description, requirements, benefits, deadline
		FROM opportunities ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []*domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		var category string
		var minGrade, maxGrade int
		var tags, reqs, benefits string

		err := rows.Scan(
			&o.ID,
			&o.Seq,
			&o.Name,
			&category,
			&minGrade,
			&maxGrade,
			&tags,
			&o.Description,
			&reqs,
			&benefits,
			&o.Deadline,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning opportunity: %w", err)
		}

		o.Category = domain.OpportunityCategory(category)
		o.MinGrade = domain.GradeLevel(minGrade)
		o.MaxGrade = domain.GradeLevel(maxGrade)
		if o.InterestTags, err = unmarshalList(tags); err != nil {
			return nil, err
		}
		if o.Requirements, err = unmarshalList(reqs); err != nil {
			return nil, err
		}
		if o.Benefits, err = unmarshalList(benefits); err != nil {
			return nil, err
		}
		opportunities = append(opportunities, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating opportunities: %w", err)
	}
	return opportunities, nil
}
