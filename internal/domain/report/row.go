package report

// Row is a transformed submission: an insertion-ordered set of report
// columns and their display values. The empty string marks an absent value.
// Rows are immutable once handed out by Transform apart from the
// orchestrator filling in the resolved notification address.
type Row struct {
	columns []string
	values  map[string]string
	score   *float64
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

// Set stores a value under the column, keeping first-insertion order.
func (r *Row) Set(column, value string) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Get returns the value for the column, or "" when the column is absent.
func (r *Row) Get(column string) string {
	return r.values[column]
}

// Has reports whether the column is present in the row.
func (r *Row) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

// Columns returns the column names in insertion order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// AverageScore returns the derived average answer score. ok is false when
// the submission had no scorable answers.
func (r *Row) AverageScore() (float64, bool) {
	if r.score == nil {
		return 0, false
	}
	return *r.score, true
}
