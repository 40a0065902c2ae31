package matching

import (
	"context"
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// Repository stores match results, one per application per run.
type Repository interface {
	// Save upserts the result for an application.
	Save(ctx context.Context, result *MatchResult) error

	// GetByApplicationID retrieves the latest result for an application.
	GetByApplicationID(ctx context.Context, id kernel.ApplicationID) (*MatchResult, error)

	// ListByJobID retrieves all results for a job, highest score first.
	ListByJobID(ctx context.Context, jobID kernel.JobID) ([]MatchResult, error)

	// DeleteByJobID removes all results for a job.
	DeleteByJobID(ctx context.Context, jobID kernel.JobID) error
}

// RunQueue queues matching runs for asynchronous processing.
type RunQueue interface {
	// Enqueue adds a run to the queue.
	Enqueue(ctx context.Context, run *MatchRun) error

	// Dequeue pops a run, blocking up to timeout. Returns nil payload when
	// the queue stays empty.
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// Size returns the number of queued runs.
	Size(ctx context.Context) (int64, error)
}
