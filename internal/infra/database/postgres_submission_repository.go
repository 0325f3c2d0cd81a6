package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"esq_report_bot/internal/domain/submission"

	"github.com/sirupsen/logrus"
)

// ErrInvalidDateFilter is returned when a query supplies neither a target
// date nor a complete start/end range.
var ErrInvalidDateFilter = errors.New("either a target date or both a start and an end date must be provided")

const dateArgFormat = "2006-01-02"

// PostgresSubmissionRepository sources form submissions from the
// journalizing store.
type PostgresSubmissionRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewPostgresSubmissionRepository(db *sql.DB, logger *logrus.Logger) *PostgresSubmissionRepository {
	return &PostgresSubmissionRepository{db: db, logger: logger}
}

// List returns the submissions of the given form type matching the filter,
// newest first. Rows whose payload does not decode are skipped and logged;
// purged submissions are dropped. Query failures propagate.
func (r *PostgresSubmissionRepository) List(ctx context.Context, formType string, filter submission.Filter) ([]*submission.Submission, error) {
	query, args, err := buildListQuery(formType, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying form submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]*submission.Submission, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("error scanning form submission row: %w", err)
		}
		sub, err := submission.Parse(payload)
		if err != nil {
			r.logger.WithError(err).Warn("Skipping form submission with undecodable payload.")
			continue
		}
		if sub.Purged() {
			continue
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating form submission rows: %w", err)
	}
	return subs, nil
}

// buildListQuery enforces the date-filter contract: exactly one of a target
// date or a complete start/end range, or neither for an unbounded query.
func buildListQuery(formType string, filter submission.Filter) (string, []any, error) {
	hasTarget := !filter.TargetDate.IsZero()
	hasStart := !filter.StartDate.IsZero()
	hasEnd := !filter.EndDate.IsZero()

	query := `SELECT form_data
FROM journalizing.forms
WHERE form_type = $1
  AND form_data IS NOT NULL
  AND form_submitted_date IS NOT NULL`
	args := []any{formType}

	switch {
	case hasTarget && (hasStart || hasEnd):
		return "", nil, ErrInvalidDateFilter
	case hasTarget:
		query += `
  AND form_submitted_date::date = $2`
		args = append(args, filter.TargetDate.Format(dateArgFormat))
	case hasStart && hasEnd:
		query += `
  AND form_submitted_date::date BETWEEN $2 AND $3`
		args = append(args, filter.StartDate.Format(dateArgFormat), filter.EndDate.Format(dateArgFormat))
	case hasStart || hasEnd:
		return "", nil, ErrInvalidDateFilter
	}

	query += `
ORDER BY form_submitted_date DESC`
	return query, args, nil
}
