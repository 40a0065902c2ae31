package matching

import (
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// RunMatchingRequest - DTO for triggering a matching run for a job
type RunMatchingRequest struct {
	JobID kernel.JobID `json:"job_id" validate:"required"`
	Async bool         `json:"async"`
}

// RunMatchingResponse - Result of a synchronous matching run
type RunMatchingResponse struct {
	JobID kernel.JobID `json:"job_id"`

	// JobTextSource flags how the job text was obtained. TextSourceFallback
	// means the run scored against metadata pseudo-text, not a real
	// description, and its scores are low-confidence.
	JobTextSource TextSource `json:"job_text_source"`

	Results     []MatchResult `json:"results"`
	ProcessedAt time.Time     `json:"processed_at"`
}

// EnqueueRunResponse - Response after queueing an asynchronous run
type EnqueueRunResponse struct {
	RunID       kernel.MatchRunID `json:"run_id"`
	JobID       kernel.JobID      `json:"job_id"`
	RequestedAt time.Time         `json:"requested_at"`
}

// MatchResultResponse - DTO for returning a stored match result
type MatchResultResponse struct {
	ID               string               `json:"id"`
	JobID            kernel.JobID         `json:"job_id"`
	ApplicationID    kernel.ApplicationID `json:"application_id"`
	Score            float64              `json:"score"`
	Breakdown        MatchBreakdown       `json:"breakdown"`
	Details          MatchDetails         `json:"details"`
	ResumeTextSource TextSource           `json:"resume_text_source"`
	MatchedAt        time.Time            `json:"matched_at"`
}

// ToMatchResultResponse converts a domain result to its response DTO.
func ToMatchResultResponse(r *MatchResult) *MatchResultResponse {
	return &MatchResultResponse{
		ID:               r.ID,
		JobID:            r.JobID,
		ApplicationID:    r.ApplicationID,
		Score:            r.Score,
		Breakdown:        r.Breakdown,
		Details:          r.Details,
		ResumeTextSource: r.ResumeTextSource,
		MatchedAt:        r.MatchedAt,
	}
}
