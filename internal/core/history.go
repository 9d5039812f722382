package core

// history.go keeps a bounded in-memory record of recent processing jobs.
//
// Jobs are held newest-first in a fixed-capacity ring. There is no
// persistence: history is a debugging and monitoring aid, not an audit
// trail, and restarts clear it.

import (
	"sync"
	"time"
)

// DefaultHistorySize is the default number of jobs retained.
const DefaultHistorySize = 100

// Job records one processing request for the history endpoint.
type Job struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	Columns    []string  `json:"columns"`
	Mode       string    `json:"mode"`
	Rows       int       `json:"rows"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	DurationMS int64     `json:"duration_ms"`
}

// History is a concurrency-safe ring of recent jobs.
type History struct {
	mu       sync.RWMutex
	capacity int
	jobs     []Job // newest first
}

// NewHistory creates a History retaining at most capacity jobs.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{capacity: capacity}
}

// Record adds a job at the front, evicting the oldest when full.
func (h *History) Record(job Job) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.jobs = append([]Job{job}, h.jobs...)
	if len(h.jobs) > h.capacity {
		h.jobs = h.jobs[:h.capacity]
	}
}

// Recent returns up to n jobs, newest first. The returned slice is a
// copy and safe for the caller to retain.
func (h *History) Recent(n int) []Job {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || n > len(h.jobs) {
		n = len(h.jobs)
	}
	out := make([]Job, n)
	copy(out, h.jobs[:n])
	return out
}

// Len returns the number of retained jobs.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.jobs)
}
