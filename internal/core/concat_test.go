package core

import (
	"testing"
)

// peopleTable returns the table used across concatenation tests:
// header [Name, City, Age], two data rows.
func peopleTable() Table {
	return Table{
		Header: []string{"Name", "City", "Age"},
		Rows: [][]Cell{
			{Text("John"), Text("New York"), Number(30)},
			{Text("Alice"), Text("London"), Number(25)},
		},
	}
}

func TestConcatenate_ReplaceMode(t *testing.T) {
	c := NewConcatenator(false)

	res := c.Concatenate(peopleTable(), []string{"Name", "City"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	out := res.Value()

	wantHeader := []string{"Age", "Concatenated"}
	if len(out.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", out.Header, wantHeader)
	}
	for i, h := range wantHeader {
		if out.Header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, out.Header[i], h)
		}
	}

	wantRows := [][]Cell{
		{Number(30), Text("John New York")},
		{Number(25), Text("Alice London")},
	}
	if len(out.Rows) != len(wantRows) {
		t.Fatalf("row count = %d, want %d", len(out.Rows), len(wantRows))
	}
	for i, wantRow := range wantRows {
		for j, want := range wantRow {
			if out.Rows[i][j] != want {
				t.Errorf("rows[%d][%d] = %#v, want %#v", i, j, out.Rows[i][j], want)
			}
		}
	}
}

func TestConcatenate_AppendMode(t *testing.T) {
	c := NewConcatenator(true)

	res := c.Concatenate(peopleTable(), []string{"Name", "City"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	out := res.Value()

	wantHeader := []string{"Name", "City", "Age", "Concatenated"}
	for i, h := range wantHeader {
		if out.Header[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, out.Header[i], h)
		}
	}

	if got := out.Rows[0][3]; got != Text("John New York") {
		t.Errorf("rows[0][3] = %#v, want concatenated value", got)
	}
	if got := out.Rows[0][0]; got != Text("John") {
		t.Errorf("append mode should keep source columns, rows[0][0] = %#v", got)
	}
}

func TestConcatenate_ColumnNotFound(t *testing.T) {
	c := NewConcatenator(false)

	res := c.Concatenate(peopleTable(), []string{"Name", "Missing"})
	if res.IsOk() {
		t.Fatal("Concatenate() should fail for a missing column")
	}
	want := "Column 'Missing' not found in the data"
	if res.Err() != want {
		t.Errorf("Err() = %q, want %q", res.Err(), want)
	}
}

func TestConcatenate_FirstMissingColumnReported(t *testing.T) {
	c := NewConcatenator(false)

	// Two missing names; the first encountered must be the one cited.
	res := c.Concatenate(peopleTable(), []string{"Nope", "AlsoNope"})
	if res.IsOk() {
		t.Fatal("Concatenate() should fail")
	}
	want := "Column 'Nope' not found in the data"
	if res.Err() != want {
		t.Errorf("Err() = %q, want %q", res.Err(), want)
	}
}

func TestConcatenate_InsufficientData(t *testing.T) {
	c := NewConcatenator(false)

	tests := []struct {
		name  string
		table Table
	}{
		{"empty table", Table{}},
		{"header only", Table{Header: []string{"Name", "City"}}},
		{"rows without header", Table{Rows: [][]Cell{{Text("John")}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Concatenate(tt.table, []string{"Name"})
			if res.IsOk() {
				t.Fatal("Concatenate() should fail")
			}
			if res.Err() != "No data to process" {
				t.Errorf("Err() = %q, want %q", res.Err(), "No data to process")
			}
		})
	}
}

func TestConcatenate_InconsistentRow(t *testing.T) {
	c := NewConcatenator(false)

	table := Table{
		Header: []string{"Name", "City"},
		Rows: [][]Cell{
			{Text("John"), Text("New York")},
			{Text("Alice")}, // short row
		},
	}

	res := c.Concatenate(table, []string{"Name", "City"})
	if res.IsOk() {
		t.Fatal("Concatenate() should fail for a short row")
	}
	if res.Err() != "Row has inconsistent number of columns" {
		t.Errorf("Err() = %q", res.Err())
	}
}

func TestConcatenate_NullValue(t *testing.T) {
	c := NewConcatenator(false)

	table := Table{
		Header: []string{"Name", "City"},
		Rows: [][]Cell{
			{Text("John"), Text("New York")},
			{Text("Alice"), Null()},
		},
	}

	res := c.Concatenate(table, []string{"Name", "City"})
	if res.IsOk() {
		t.Fatal("Concatenate() should fail for a null cell")
	}
	if res.Err() != "Row contains null values in columns to concatenate" {
		t.Errorf("Err() = %q", res.Err())
	}
}

func TestConcatenate_RequestedOrderPreserved(t *testing.T) {
	c := NewConcatenator(false)

	// City before Name: output must follow the requested order, not
	// header order.
	res := c.Concatenate(peopleTable(), []string{"City", "Name"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	got := res.Value().Rows[0][1]
	if got != Text("New York John") {
		t.Errorf("concatenated = %#v, want %q", got, "New York John")
	}
}

func TestConcatenate_DuplicateRequestPermitted(t *testing.T) {
	c := NewConcatenator(false)

	res := c.Concatenate(peopleTable(), []string{"Name", "Name"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	got := res.Value().Rows[0][2]
	if got != Text("John John") {
		t.Errorf("concatenated = %#v, want %q", got, "John John")
	}
}

func TestConcatenate_NumberStringForm(t *testing.T) {
	c := NewConcatenator(false)

	res := c.Concatenate(peopleTable(), []string{"Name", "Age"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	got := res.Value().Rows[0][1]
	if got != Text("John 30") {
		t.Errorf("concatenated = %#v, want %q (numeric 30 as \"30\")", got, "John 30")
	}
}

func TestConcatenate_RowCountPreserved(t *testing.T) {
	c := NewConcatenator(false)

	in := peopleTable()
	res := c.Concatenate(in, []string{"Name"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}
	if res.Value().RowCount() != in.RowCount() {
		t.Errorf("row count = %d, want %d", res.Value().RowCount(), in.RowCount())
	}
}

func TestConcatenate_HeaderLengthRoundTrip(t *testing.T) {
	c := NewConcatenator(false)

	in := peopleTable()
	res := c.Concatenate(in, []string{"Name", "City"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	// Replace mode: len(header') = len(header) - distinct sources + 1
	want := len(in.Header) - 2 + 1
	if got := len(res.Value().Header); got != want {
		t.Errorf("header length = %d, want %d", got, want)
	}
}

func TestConcatenate_ReplaceModeIsNotIdempotent(t *testing.T) {
	c := NewConcatenator(false)

	first := c.Concatenate(peopleTable(), []string{"Name", "City"})
	if !first.IsOk() {
		t.Fatalf("first pass failed: %s", first.Err())
	}

	// The source columns are gone from the output, so re-requesting them
	// must fail with ColumnNotFound. Expected, not a bug.
	second := c.Concatenate(first.Value(), []string{"Name", "City"})
	if second.IsOk() {
		t.Fatal("second pass should fail: source columns were consumed")
	}
	if second.Err() != "Column 'Name' not found in the data" {
		t.Errorf("Err() = %q", second.Err())
	}
}

func TestConcatenate_InputNotMutated(t *testing.T) {
	c := NewConcatenator(false)

	in := peopleTable()
	res := c.Concatenate(in, []string{"Name", "City"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}

	if len(in.Header) != 3 {
		t.Errorf("input header mutated: %v", in.Header)
	}
	if len(in.Rows[0]) != 3 || in.Rows[0][0] != Text("John") {
		t.Errorf("input rows mutated: %v", in.Rows[0])
	}
}

func TestConcatenate_DuplicateHeaderResolvesFirst(t *testing.T) {
	c := NewConcatenator(false)

	table := Table{
		Header: []string{"Name", "Name", "City"},
		Rows: [][]Cell{
			{Text("first"), Text("second"), Text("Paris")},
		},
	}

	res := c.Concatenate(table, []string{"Name"})
	if !res.IsOk() {
		t.Fatalf("Concatenate() failed: %s", res.Err())
	}
	if got := res.Value().Rows[0][2]; got != Text("first") {
		t.Errorf("duplicate header should resolve to first occurrence, got %#v", got)
	}
}
