package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hirematch/engine/pkg/logx"
	"github.com/hirematch/engine/recruitment/matching"
	"github.com/hirematch/engine/recruitment/matching/matchingsrv"
)

// dequeueTimeout bounds how long a worker blocks waiting for a run.
const dequeueTimeout = 5 * time.Second

// MatchWorker consumes queued matching runs and executes them.
type MatchWorker struct {
	service *matchingsrv.Service
	queue   matching.RunQueue
	workers int
}

// NewMatchWorker creates a worker pool of the given size
func NewMatchWorker(service *matchingsrv.Service, queue matching.RunQueue, workers int) *MatchWorker {
	return &MatchWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

// Start launches the worker pool. Workers run until ctx is cancelled.
func (w *MatchWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d matching workers", w.workers)

	for i := 0; i < w.workers; i++ {
		go w.processRuns(ctx, i)
	}
}

func (w *MatchWorker) processRuns(ctx context.Context, workerID int) {
	logx.Infof("Matching worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Matching worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, dequeueTimeout)
			if err != nil {
				logx.Errorf("Matching worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Empty payload means the dequeue timed out with no runs queued
			if len(data) == 0 {
				continue
			}

			var run matching.MatchRun
			if err := json.Unmarshal(data, &run); err != nil {
				logx.Errorf("Matching worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Matching worker %d processing run %s for job %s", workerID, run.ID, run.JobID)
			if _, err := w.service.RunJobMatching(ctx, run.JobID); err != nil {
				logx.Errorf("Matching worker %d run %s failed: %v", workerID, run.ID, err)
			}
		}
	}
}
