package report

import (
	"esq_report_bot/internal/domain/mapping"
	"esq_report_bot/internal/domain/submission"
)

// ItemFailure records one submission that could not be transformed.
type ItemFailure struct {
	Serial string
	Err    error
}

// BuildTable filters submissions to the definition's respondent role (exact,
// case-sensitive match) and transforms each into a report row, preserving
// input order. A submission that fails to transform is isolated into the
// returned failures instead of aborting the batch.
func BuildTable(subs []*submission.Submission, def *mapping.Definition) ([]*Row, []ItemFailure) {
	rows := make([]*Row, 0, len(subs))
	var failures []ItemFailure
	for _, sub := range subs {
		if sub.Role() != string(def.Role) {
			continue
		}
		row, err := Transform(sub.Serial(), sub, def)
		if err != nil {
			failures = append(failures, ItemFailure{Serial: sub.Serial(), Err: err})
			continue
		}
		rows = append(rows, row)
	}
	return rows, failures
}
