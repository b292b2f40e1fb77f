// Package metrics tracks aggregate counters for a single search run:
// how many roots were dispatched, how many completed, how many
// squares were emitted, and how long the whole run took.
package metrics

import (
	"log/slog"
	"sync/atomic"
	"time"

	"wordsquares/internal/utils/format"
)

// Run accumulates counters across every worker goroutine; all mutating
// methods are safe for concurrent use.
type Run struct {
	rootsDispatched int64
	rootsCompleted  int64
	solutionsFound  int64

	started time.Time
}

// NewRun starts a Run's clock immediately.
func NewRun() *Run {
	return &Run{started: time.Now()}
}

// RecordDispatch counts a root word handed to a worker.
func (r *Run) RecordDispatch() {
	atomic.AddInt64(&r.rootsDispatched, 1)
}

// RecordRootDone counts a root whose whole subtree has been explored.
func (r *Run) RecordRootDone() {
	atomic.AddInt64(&r.rootsCompleted, 1)
}

// RecordSolution counts one emitted square.
func (r *Run) RecordSolution() {
	atomic.AddInt64(&r.solutionsFound, 1)
}

// Dispatched returns the number of roots handed to workers so far.
func (r *Run) Dispatched() int64 { return atomic.LoadInt64(&r.rootsDispatched) }

// Completed returns the number of roots whose subtree has fully run.
func (r *Run) Completed() int64 { return atomic.LoadInt64(&r.rootsCompleted) }

// Solutions returns the number of squares emitted so far.
func (r *Run) Solutions() int64 { return atomic.LoadInt64(&r.solutionsFound) }

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration { return time.Since(r.started) }

// Log prints a one-line summary of the run via the given logger.
func (r *Run) Log(log *slog.Logger) {
	log.Info("search run complete",
		"roots_dispatched", atomic.LoadInt64(&r.rootsDispatched),
		"roots_completed", atomic.LoadInt64(&r.rootsCompleted),
		"solutions_found", atomic.LoadInt64(&r.solutionsFound),
		"elapsed", format.Duration(time.Since(r.started)),
	)
}
