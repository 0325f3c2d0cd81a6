// Package submission models one completed ESQ webform payload and the
// repository that sources it.
package submission

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const roleKey = "hvem_udfylder_spoergeskemaet"

// fieldValue is the single-element wrapper the webform backend uses for
// entity metadata fields.
type fieldValue struct {
	Value any `json:"value"`
}

type entityMeta struct {
	Serial    []fieldValue `json:"serial"`
	Created   []fieldValue `json:"created"`
	Completed []fieldValue `json:"completed"`
}

// Submission is one decoded form payload. It has two regions: Entity carries
// system metadata (serial number, created/completed timestamps) and Data
// carries the raw answers keyed by question id. Submissions are read-only;
// they are sourced per query and never persisted by this system.
type Submission struct {
	Entity entityMeta     `json:"entity"`
	Data   map[string]any `json:"data"`

	purged bool
}

// Parse decodes a raw form payload. Payloads carrying the purged marker key
// are still decoded; callers check Purged to exclude them.
func Parse(raw []byte) (*Submission, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid form payload: %w", err)
	}
	var sub Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("invalid form payload: %w", err)
	}
	_, sub.purged = probe["purged"]
	return &sub, nil
}

// Purged reports whether the payload was explicitly marked for exclusion.
func (s *Submission) Purged() bool {
	return s.purged
}

// Serial returns the submission identity, or "" when the metadata is absent.
func (s *Submission) Serial() string {
	v, _ := metaString(s.Entity.Serial)
	return v
}

// Role returns the raw respondent-role answer, or "" when missing or not a
// string.
func (s *Submission) Role() string {
	if v, ok := s.Data[roleKey].(string); ok {
		return v
	}
	return ""
}

// Created returns the raw created timestamp from the entity region.
func (s *Submission) Created() (string, bool) {
	return metaString(s.Entity.Created)
}

// Completed returns the raw completed timestamp from the entity region.
func (s *Submission) Completed() (string, bool) {
	return metaString(s.Entity.Completed)
}

func metaString(vs []fieldValue) (string, bool) {
	if len(vs) == 0 || vs[0].Value == nil {
		return "", false
	}
	switch t := vs[0].Value.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return fmt.Sprint(t), true
	}
}
