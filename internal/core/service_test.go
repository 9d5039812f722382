package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCSV writes a CSV fixture into dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestService_ProcessFile(t *testing.T) {
	s := NewService(Options{})

	path := writeCSV(t, t.TempDir(), "people.csv",
		"Name,City,Age\nJohn,New York,30\nAlice,London,25\n")

	res := s.ProcessFile(context.Background(), path, []string{"Name", "City"})
	if !res.IsOk() {
		t.Fatalf("ProcessFile() failed: %s", res.Err())
	}

	out := res.Value()
	if len(out.Header) != 2 || out.Header[1] != ConcatColumnName {
		t.Errorf("header = %v", out.Header)
	}
	if out.Rows[0][1] != Text("John New York") {
		t.Errorf("rows[0][1] = %#v", out.Rows[0][1])
	}
}

func TestService_ProcessFile_NotFound(t *testing.T) {
	s := NewService(Options{})

	path := filepath.Join(t.TempDir(), "nope.xlsx")
	res := s.ProcessFile(context.Background(), path, []string{"Name"})

	if res.IsOk() {
		t.Fatal("ProcessFile() should fail for a missing file")
	}
	if res.Err() != "File not found: "+path {
		t.Errorf("Err() = %q", res.Err())
	}
}

func TestService_ProcessReader(t *testing.T) {
	s := NewService(Options{KeepSourceColumns: true})

	csv := "Name,City\nJohn,New York\n"
	res := s.ProcessReader(context.Background(), strings.NewReader(csv), "upload.csv", []string{"City", "Name"})
	if !res.IsOk() {
		t.Fatalf("ProcessReader() failed: %s", res.Err())
	}

	out := res.Value()
	if len(out.Header) != 3 {
		t.Errorf("append mode header = %v", out.Header)
	}
	if out.Rows[0][2] != Text("New York John") {
		t.Errorf("rows[0][2] = %#v, want requested-order concatenation", out.Rows[0][2])
	}
}

func TestService_RecordsHistory(t *testing.T) {
	s := NewService(Options{})

	path := writeCSV(t, t.TempDir(), "people.csv", "Name\nJohn\n")

	s.ProcessFile(context.Background(), path, []string{"Name"})
	s.ProcessFile(context.Background(), path, []string{"Missing"})

	jobs := s.RecentJobs(10)
	if len(jobs) != 2 {
		t.Fatalf("RecentJobs() length = %d, want 2", len(jobs))
	}

	// Newest first: the failed job
	if jobs[0].Success {
		t.Error("jobs[0] should be the failed run")
	}
	if jobs[0].Error != "Column 'Missing' not found in the data" {
		t.Errorf("jobs[0].Error = %q", jobs[0].Error)
	}
	if !jobs[1].Success {
		t.Errorf("jobs[1] should be the successful run: %q", jobs[1].Error)
	}
	if jobs[1].Rows != 1 {
		t.Errorf("jobs[1].Rows = %d, want 1", jobs[1].Rows)
	}
	if jobs[1].ID == "" {
		t.Error("job ID should be set")
	}
	if jobs[1].Mode != "replace" {
		t.Errorf("jobs[1].Mode = %q, want replace", jobs[1].Mode)
	}
}

func TestService_LimiterStatus(t *testing.T) {
	s := NewService(Options{MaxConcurrent: 3})

	status := s.LimiterStatus()
	if status.MaxConcurrent != 3 {
		t.Errorf("MaxConcurrent = %d, want 3", status.MaxConcurrent)
	}
	if status.Active != 0 {
		t.Errorf("Active = %d, want 0", status.Active)
	}
}
