// Package recipients holds the approved-recipient table that routes digest
// mail, sourced from an externally maintained workbook.
package recipients

import "strings"

// LookupPolicy controls how identifiers and addresses are normalized before
// they enter the table and before lookups probe it. The observed upstream
// sheets are hand-maintained, so normalization is explicit configuration
// rather than a guessed canonical rule.
type LookupPolicy struct {
	TrimKeys    bool
	LowerKeys   bool
	TrimValues  bool
	LowerValues bool
}

// DefaultPolicy trims and lower-cases both identifiers and addresses, which
// makes membership checks and lookups symmetric.
func DefaultPolicy() LookupPolicy {
	return LookupPolicy{TrimKeys: true, LowerKeys: true, TrimValues: true, LowerValues: true}
}

// Key normalizes an identifier per the policy.
func (p LookupPolicy) Key(s string) string {
	if p.TrimKeys {
		s = strings.TrimSpace(s)
	}
	if p.LowerKeys {
		s = strings.ToLower(s)
	}
	return s
}

// Value normalizes an address per the policy.
func (p LookupPolicy) Value(s string) string {
	if p.TrimValues {
		s = strings.TrimSpace(s)
	}
	if p.LowerValues {
		s = strings.ToLower(s)
	}
	return s
}

// Table maps a normalized identifier to its approved notification address,
// falling back to a default address for unknown identifiers.
type Table struct {
	policy   LookupPolicy
	byIdent  map[string]string
	fallback string
}

// NewTable returns an empty table with the given policy and fallback
// address.
func NewTable(policy LookupPolicy, fallback string) *Table {
	return &Table{policy: policy, byIdent: make(map[string]string), fallback: fallback}
}

// Add registers an identifier/address pair, normalizing both per the
// policy. Blank entries are ignored.
func (t *Table) Add(ident, email string) {
	key := t.policy.Key(ident)
	value := t.policy.Value(email)
	if key == "" || value == "" {
		return
	}
	t.byIdent[key] = value
}

// Resolve returns the approved address for the identifier, or the fallback
// address when the identifier is unknown or blank.
func (t *Table) Resolve(ident string) string {
	if addr, ok := t.byIdent[t.policy.Key(ident)]; ok {
		return addr
	}
	return t.fallback
}

// Len returns the number of registered recipients.
func (t *Table) Len() int {
	return len(t.byIdent)
}
