package core

// concat.go implements the column-concatenation transform.
//
// The pipeline is validate-then-transform with no partial commit: any
// failure at any stage discards everything computed for the request and
// returns only the error. Validation order is fixed: sufficiency first,
// then column existence (all names before any index is resolved), then
// per-row width and null checks.

import "strings"

// ConcatColumnName is the header of the generated column.
const ConcatColumnName = "Concatenated"

// concatDelimiter joins the selected values. A single space, always;
// alternate delimiters are out of scope.
const concatDelimiter = " "

// Concatenator validates requested columns against a table's header and
// produces a new table with the per-row concatenation appended.
//
// Two output shapes exist: replace mode (default) removes the source
// columns from the output, append mode keeps them. The mode is fixed at
// construction; a Concatenator is stateless afterwards and safe for
// concurrent use.
type Concatenator struct {
	keepSource bool
}

// NewConcatenator creates a Concatenator. keepSource selects append mode.
func NewConcatenator(keepSource bool) *Concatenator {
	return &Concatenator{keepSource: keepSource}
}

// Mode returns "append" or "replace" for logging and job history.
func (c *Concatenator) Mode() string {
	if c.keepSource {
		return "append"
	}
	return "replace"
}

// Concatenate builds a new table where each data row gains a
// "Concatenated" column holding the requested columns' display values
// joined by a single space, in requested order. The input table is never
// mutated.
//
// Failure modes, checked in order:
//   - no header or no data rows: "No data to process"
//   - a requested name absent from the header:
//     "Column '{name}' not found in the data" (first miss reported)
//   - a data row shorter than a resolved index:
//     "Row has inconsistent number of columns"
//   - a selected cell is null:
//     "Row contains null values in columns to concatenate"
//
// Duplicate requested names are permitted and concatenate the same value
// twice. Duplicate header names resolve to the first occurrence.
func (c *Concatenator) Concatenate(t Table, columns []string) Result[Table] {
	if len(t.Header) == 0 || t.Empty() {
		return Fail[Table]("No data to process")
	}

	// Validate every name before resolving any index.
	for _, name := range columns {
		if t.ColumnIndex(name) < 0 {
			return Failf[Table]("Column '%s' not found in the data", name)
		}
	}

	indices := make([]int, len(columns))
	for i, name := range columns {
		indices[i] = t.ColumnIndex(name)
	}

	// Distinct source positions, used by replace mode to drop columns.
	sources := make(map[int]bool, len(indices))
	for _, idx := range indices {
		sources[idx] = true
	}

	newRows := make([][]Cell, 0, len(t.Rows))
	parts := make([]string, len(indices))

	for _, row := range t.Rows {
		for _, idx := range indices {
			if idx >= len(row) {
				return Fail[Table]("Row has inconsistent number of columns")
			}
		}
		for _, idx := range indices {
			if row[idx].IsNull() {
				return Fail[Table]("Row contains null values in columns to concatenate")
			}
		}
		for i, idx := range indices {
			parts[i] = row[idx].String()
		}
		joined := Text(strings.Join(parts, concatDelimiter))

		newRows = append(newRows, c.assembleRow(row, sources, joined))
	}

	return Ok(Table{
		Header: c.assembleHeader(t.Header, sources),
		Rows:   newRows,
	})
}

// assembleRow builds the output row: the original row (minus source
// columns in replace mode) with the concatenated cell appended.
func (c *Concatenator) assembleRow(row []Cell, sources map[int]bool, joined Cell) []Cell {
	out := make([]Cell, 0, len(row)+1)
	for i, cell := range row {
		if !c.keepSource && sources[i] {
			continue
		}
		out = append(out, cell)
	}
	return append(out, joined)
}

// assembleHeader mirrors assembleRow for the header row.
func (c *Concatenator) assembleHeader(header []string, sources map[int]bool) []string {
	out := make([]string, 0, len(header)+1)
	for i, name := range header {
		if !c.keepSource && sources[i] {
			continue
		}
		out = append(out, name)
	}
	return append(out, ConcatColumnName)
}
