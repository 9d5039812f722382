package core

import "testing"

func TestMapMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode string
	}{
		{"file not found", "File not found: static/missing.xlsx", "FILE001"},
		{"load error", "Error loading Excel file: zip: not a valid zip archive", "FILE002"},
		{"empty data", "Excel file contains no data", "FILE003"},
		{"no file", "No file provided", "FILE004"},
		{"invalid path", "invalid file path", "FILE005"},
		{"oversized upload", "Uploaded file exceeds the maximum allowed size", "FILE006"},
		{"insufficient data", "No data to process", "DATA001"},
		{"column not found", "Column 'Missing' not found in the data", "COL001"},
		{"invalid columns", "Invalid columns provided", "COL002"},
		{"inconsistent row", "Row has inconsistent number of columns", "ROW001"},
		{"null value", "Row contains null values in columns to concatenate", "ROW002"},
		{"limiter", ErrTooManyJobs.Error(), "PROC001"},
		{"cancelled", "context canceled", "PROC002"},
		{"timeout", "context deadline exceeded", "PROC003"},
		{"rate limited", "rate limit exceeded", "RATE001"},
		{"unknown", "some completely novel failure", "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapMessage(tt.message)
			if got.Code != tt.wantCode {
				t.Errorf("MapMessage(%q).Code = %s, want %s", tt.message, got.Code, tt.wantCode)
			}
		})
	}
}

func TestMapMessage_Empty(t *testing.T) {
	got := MapMessage("")
	if got.Code != "" || got.Message != "" {
		t.Errorf("MapMessage(\"\") = %+v, want zero value", got)
	}
}

func TestMapMessage_CaseInsensitive(t *testing.T) {
	got := MapMessage("FILE NOT FOUND: X")
	if got.Code != "FILE001" {
		t.Errorf("Code = %s, want FILE001", got.Code)
	}
}
