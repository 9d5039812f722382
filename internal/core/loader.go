package core

// loader.go turns spreadsheet files into in-memory tables.
//
// Two formats are supported: Excel workbooks (.xlsx/.xlsm, first sheet)
// via excelize and plain CSV via encoding/csv. Every parser fault is
// caught here and converted into a failed Result; nothing below this
// boundary raises.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Loader reads spreadsheet files into Tables. It holds no state and is
// safe for concurrent use.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the spreadsheet at path into a Table.
//
// Failure modes:
//   - path does not exist: "File not found: {path}"
//   - parser fault of any kind: "Error loading Excel file: {detail}"
//   - header-only or fully empty file: "Excel file contains no data"
func (l *Loader) Load(path string) Result[Table] {
	if _, err := os.Stat(path); err != nil {
		return Failf[Table]("File not found: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Failf[Table]("Error loading Excel file: %s", err)
	}
	defer f.Close()

	return l.LoadReader(f, path)
}

// LoadReader reads spreadsheet content from r into a Table. The filename
// selects the parser by extension: ".csv" uses the CSV reader, anything
// else is treated as an Excel workbook. Failure modes match Load, minus
// the existence check.
func (l *Loader) LoadReader(r io.Reader, filename string) Result[Table] {
	var (
		rows [][]string
		err  error
		pad  bool
	)

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		rows, err = readCSV(r)
	} else {
		rows, err = readWorkbook(r)
		// Workbook parsers trim trailing blank cells. Pad those rows
		// back to header width so blanks surface as null cells, not
		// short rows. CSV rows stay exactly as written.
		pad = true
	}
	if err != nil {
		return Failf[Table]("Error loading Excel file: %s", err)
	}

	// A header alone is not data.
	if len(rows) < 2 {
		return Fail[Table]("Excel file contains no data")
	}

	width := len(rows[0])
	data := make([][]Cell, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		n := len(raw)
		if pad && n < width {
			n = width
		}
		// Positions past len(raw) keep the zero Cell, which is null.
		cells := make([]Cell, n)
		for i, v := range raw {
			cells[i] = ParseCell(v)
		}
		data = append(data, cells)
	}

	return Ok(Table{Header: rows[0], Rows: data})
}

// readWorkbook parses an Excel workbook and returns the first sheet's
// rows. The recover guard keeps any parser panic inside the load
// boundary so it surfaces as a LoadError instead of a crash.
func readWorkbook(r io.Reader) (rows [][]string, err error) {
	defer func() {
		if p := recover(); p != nil {
			rows, err = nil, fmt.Errorf("parser fault: %v", p)
		}
	}()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	return f.GetRows(sheet)
}

// readCSV parses CSV content. Field counts may vary per row and quoting
// is lax; structural problems are reported during concatenation, not here.
func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}
