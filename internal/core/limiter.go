package core

// limiter.go bounds concurrent spreadsheet processing.
//
// Parsing a workbook holds the whole file in memory, so the service caps
// parallel jobs with a semaphore. When all slots are taken, new requests
// wait up to maxWait before failing with ErrTooManyJobs. WaitForDrain
// supports graceful shutdown by blocking until active jobs finish.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyJobs is returned when all processing slots are occupied and
// the wait timeout expires. Clients should retry after a short delay.
var ErrTooManyJobs = errors.New("too many concurrent processing jobs, please try again later")

// DefaultMaxConcurrentJobs is the default limit for parallel processing.
const DefaultMaxConcurrentJobs = 5

// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
const DefaultMaxWaitTime = 30 * time.Second

// JobLimiter restricts concurrent processing using a semaphore pattern.
type JobLimiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewJobLimiter creates a limiter allowing at most maxConcurrent
// simultaneous jobs. Requests that cannot acquire a slot within maxWait
// receive ErrTooManyJobs.
func NewJobLimiter(maxConcurrent int, maxWait time.Duration) *JobLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentJobs
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &JobLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire attempts to acquire a processing slot.
// Returns nil on success, ErrTooManyJobs if the timeout expires.
// The caller MUST call Release() when the job completes (use defer).
func (l *JobLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		// Distinguish caller cancellation from slot timeout.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyJobs
	}
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire.
func (l *JobLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// ActiveCount returns the number of currently active jobs.
func (l *JobLimiter) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// WaitForDrain blocks until all active jobs complete or ctx is
// cancelled. Used during graceful shutdown.
func (l *JobLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.ActiveCount() == 0 {
				return nil
			}
		}
	}
}

// LimiterStatus is a snapshot of the limiter's current state.
type LimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state for monitoring.
func (l *JobLimiter) Status() LimiterStatus {
	l.mu.RLock()
	active := l.active
	l.mu.RUnlock()

	return LimiterStatus{
		Active:        active,
		Available:     cap(l.semaphore) - len(l.semaphore),
		MaxConcurrent: cap(l.semaphore),
	}
}
