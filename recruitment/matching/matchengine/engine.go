// Package matchengine scores resume text against job text with a weighted
// multi-factor heuristic. Everything in this package is a pure function of
// its inputs: identical inputs always produce identical output, and nothing
// here performs I/O. Document fetching belongs to the caller.
package matchengine

import "time"

// Engine evaluates resumes against jobs. The zero cost of construction makes
// it safe to share across goroutines; it holds no mutable state.
type Engine struct {
	now func() time.Time
}

// New creates an engine using the wall clock for year-range experience
// extraction.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock creates an engine with a fixed clock, for reproducible
// extraction of open-ended date ranges ("2019-present").
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

func (e *Engine) currentYear() int {
	return e.now().Year()
}
