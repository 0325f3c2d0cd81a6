package database

import (
	"strings"
	"testing"
	"time"

	"esq_report_bot/internal/domain/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildListQueryUnbounded(t *testing.T) {
	query, args, err := buildListQuery("esq", submission.Filter{})
	require.NoError(t, err)

	assert.Equal(t, []any{"esq"}, args)
	assert.Contains(t, query, "FROM journalizing.forms")
	assert.Contains(t, query, "form_type = $1")
	assert.Contains(t, query, "form_data IS NOT NULL")
	assert.Contains(t, query, "form_submitted_date IS NOT NULL")
	assert.True(t, strings.HasSuffix(query, "ORDER BY form_submitted_date DESC"))
	assert.NotContains(t, query, "$2")
}

func TestBuildListQueryTargetDate(t *testing.T) {
	query, args, err := buildListQuery("esq", submission.Filter{
		TargetDate: day(2024, time.May, 1),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "form_submitted_date::date = $2")
	assert.Equal(t, []any{"esq", "2024-05-01"}, args)
}

func TestBuildListQueryDateRange(t *testing.T) {
	query, args, err := buildListQuery("esq", submission.Filter{
		StartDate: day(2024, time.April, 1),
		EndDate:   day(2024, time.April, 30),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "form_submitted_date::date BETWEEN $2 AND $3")
	assert.Equal(t, []any{"esq", "2024-04-01", "2024-04-30"}, args)
}

func TestBuildListQueryInvalidFilters(t *testing.T) {
	cases := map[string]submission.Filter{
		"target with start": {TargetDate: day(2024, time.May, 1), StartDate: day(2024, time.April, 1)},
		"target with end":   {TargetDate: day(2024, time.May, 1), EndDate: day(2024, time.April, 30)},
		"start only":        {StartDate: day(2024, time.April, 1)},
		"end only":          {EndDate: day(2024, time.April, 30)},
	}
	for name, filter := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := buildListQuery("esq", filter)
			assert.ErrorIs(t, err, ErrInvalidDateFilter)
		})
	}
}
