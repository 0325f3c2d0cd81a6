// Package report implements the submission-to-row transformation at the core
// of the ESQ reporting flows, plus the tabular and HTML renderings of the
// transformed rows.
package report

import (
	"fmt"
	"strconv"
	"time"

	"esq_report_bot/internal/domain/mapping"
	"esq_report_bot/internal/domain/submission"
)

const timestampColumnFormat = "2006-01-02 15:04:05"

// TypeMismatchError reports a question group whose raw value was present but
// not an object of answers, which makes safe extraction impossible.
type TypeMismatchError struct {
	Source string
	Value  any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected answer object for %q, got %T", e.Source, e.Value)
}

// Transform applies a mapping definition to one raw submission, producing a
// flat report row. Every flat and grouped target column of the definition
// appears in the result, with "" for answers the submission does not carry.
// The serial column is always taken from the caller-supplied serial, and the
// average answer score is derived from the recognized categorical answers in
// the question groups. Neither input is mutated.
func Transform(serial string, sub *submission.Submission, def *mapping.Definition) (*Row, error) {
	row := NewRow()
	var tally scoreTally

	for _, entry := range def.Entries {
		if entry.IsGroup() {
			answers := map[string]any{}
			if raw, ok := sub.Data[entry.Source]; ok {
				m, isObject := raw.(map[string]any)
				if !isObject {
					return nil, &TypeMismatchError{Source: entry.Source, Value: raw}
				}
				answers = m
			}
			for _, f := range entry.Group {
				value := answers[f.Source]
				// Score on the raw value before normalization can
				// reshape it.
				if label, ok := value.(string); ok {
					tally.add(label, def.Inverted[f.Source])
				}
				row.Set(f.Column, NormalizeAnswer(value))
			}
			continue
		}
		row.Set(entry.Column, NormalizeAnswer(sub.Data[entry.Source]))
	}

	// Entity timestamps are all-or-nothing: either both parse or both stay
	// absent.
	row.Set(mapping.ColumnCreated, "")
	row.Set(mapping.ColumnCompleted, "")
	if createdRaw, ok := sub.Created(); ok {
		if completedRaw, ok := sub.Completed(); ok {
			created, errCreated := parseISOTimestamp(createdRaw)
			completed, errCompleted := parseISOTimestamp(completedRaw)
			if errCreated == nil && errCompleted == nil {
				row.Set(mapping.ColumnCreated, created.Format(timestampColumnFormat))
				row.Set(mapping.ColumnCompleted, completed.Format(timestampColumnFormat))
			}
		}
	}

	row.Set(mapping.ColumnSerial, serial)

	if avg, ok := tally.average(); ok {
		row.score = &avg
		row.Set(mapping.ColumnScore, strconv.FormatFloat(avg, 'f', 2, 64))
	} else {
		row.Set(mapping.ColumnScore, "")
	}

	return row, nil
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseISOTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
