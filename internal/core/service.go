package core

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// Options configures a Service.
type Options struct {
	// KeepSourceColumns selects append mode: source columns stay in the
	// output next to the concatenated column. Default false (replace).
	KeepSourceColumns bool

	// MaxConcurrent caps parallel processing jobs (default 5).
	MaxConcurrent int

	// MaxWait is how long a request waits for a processing slot.
	MaxWait time.Duration

	// HistorySize is how many recent jobs to retain (default 100).
	HistorySize int
}

// Service wires the loader and concatenator into the one operation the
// server exposes: load a spreadsheet, concatenate the requested columns,
// return the transformed table or a failure. It records each job in the
// history ring and bounds concurrency with the limiter. The Service
// holds no per-request state; every call allocates fresh output.
type Service struct {
	loader  *Loader
	concat  *Concatenator
	limiter *JobLimiter
	history *History
}

// NewService creates a Service with the given options.
func NewService(opts Options) *Service {
	return &Service{
		loader:  NewLoader(),
		concat:  NewConcatenator(opts.KeepSourceColumns),
		limiter: NewJobLimiter(opts.MaxConcurrent, opts.MaxWait),
		history: NewHistory(opts.HistorySize),
	}
}

// Mode returns the configured row-assembly mode ("replace" or "append").
func (s *Service) Mode() string {
	return s.concat.Mode()
}

// ProcessFile loads the spreadsheet at path and concatenates the
// requested columns. All domain failures come back as a failed Result;
// the only error-typed failures are limiter rejection and cancellation,
// which are folded into the Result as well.
func (s *Service) ProcessFile(ctx context.Context, path string, columns []string) Result[Table] {
	return s.run(ctx, path, columns, func() Result[Table] {
		return s.loader.Load(path)
	})
}

// ProcessReader runs the same pipeline over already-open content, e.g.
// an uploaded file. filename selects the parser by extension.
func (s *Service) ProcessReader(ctx context.Context, r io.Reader, filename string, columns []string) Result[Table] {
	return s.run(ctx, filename, columns, func() Result[Table] {
		return s.loader.LoadReader(r, filename)
	})
}

// run acquires a slot, executes load-then-concatenate, and records the
// job. load is deferred behind a closure so the limiter bounds the
// parse, not just the transform.
func (s *Service) run(ctx context.Context, name string, columns []string, load func() Result[Table]) Result[Table] {
	if err := s.limiter.Acquire(ctx); err != nil {
		return Fail[Table](err.Error())
	}
	defer s.limiter.Release()

	start := time.Now()

	res := load()
	if res.IsOk() {
		res = s.concat.Concatenate(res.Value(), columns)
	}

	job := Job{
		ID:         uuid.New().String(),
		FileName:   name,
		Columns:    append([]string(nil), columns...),
		Mode:       s.concat.Mode(),
		Success:    res.IsOk(),
		StartedAt:  start,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if res.IsOk() {
		job.Rows = res.Value().RowCount()
	} else {
		job.Error = res.Err()
	}
	s.history.Record(job)

	return res
}

// RecentJobs returns up to n recent processing jobs, newest first.
func (s *Service) RecentJobs(n int) []Job {
	return s.history.Recent(n)
}

// LimiterStatus returns a snapshot of the processing limiter.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// WaitForJobs blocks until active jobs drain or ctx is cancelled.
// Used during graceful shutdown.
func (s *Service) WaitForJobs(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
