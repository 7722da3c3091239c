package model

// Table is a flat output table. Row values are limited to string, int,
// float64 and bool so any publisher can serialise them without knowing the
// producing pipeline.
type Table struct {
	Name    string
	Title   string
	Columns []string
	// Key names the columns that identify a row across runs.
	Key []string
	// Summary is the subset of Columns shown by compact reports.
	Summary []string
	Rows    []map[string]any
	// Highlight is the index of the headline row, -1 when the table is empty.
	Highlight int
}

// HighlightRow returns the headline row if there is one.
func (t Table) HighlightRow() (map[string]any, bool) {
	if t.Highlight < 0 || t.Highlight >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[t.Highlight], true
}
