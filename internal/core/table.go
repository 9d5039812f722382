package core

// Table is an in-memory spreadsheet: a header row followed by data rows.
// Rows should match the header length but are not required to; ragged
// rows survive loading and are detected during concatenation.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// RowCount returns the number of data rows (the header is not counted).
func (t Table) RowCount() int {
	return len(t.Rows)
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of name in the header (first
// occurrence on duplicate headers), or -1 if absent. Matching is exact.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
