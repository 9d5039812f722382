package core

// cell.go models spreadsheet cell values as an explicit tagged variant.
//
// Parsers hand back loosely typed values (text, numbers, blanks). Rather
// than threading interface{} through the pipeline, every cell is one of
// {Null, Text, Number} with a single defined stringification rule. Null
// cells never reach concatenation; the null check filters them first.

import (
	"encoding/json"
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	CellNull CellKind = iota
	CellText
	CellNumber
)

// Cell is a single spreadsheet value.
type Cell struct {
	kind   CellKind
	text   string
	number float64
}

// Null returns the missing-value cell.
func Null() Cell {
	return Cell{kind: CellNull}
}

// Text returns a cell holding the given string.
func Text(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// Number returns a cell holding the given numeric value.
func Number(f float64) Cell {
	return Cell{kind: CellNumber, number: f}
}

// ParseCell coerces a raw parser string into a typed Cell.
// Empty strings are missing values, numeric-looking strings become
// numbers, everything else stays text.
func ParseCell(raw string) Cell {
	if raw == "" {
		return Null()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

// Kind returns the cell's variant tag.
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsNull reports whether the cell is a missing value.
func (c Cell) IsNull() bool {
	return c.kind == CellNull
}

// String returns the cell's display form: text verbatim, numbers in
// their natural form (30 renders as "30", not "30.0"), and "" for null.
func (c Cell) String() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON renders text as a JSON string, numbers as JSON numbers,
// and null cells as JSON null.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case CellText:
		return json.Marshal(c.text)
	case CellNumber:
		return []byte(strconv.FormatFloat(c.number, 'f', -1, 64)), nil
	default:
		return []byte("null"), nil
	}
}
