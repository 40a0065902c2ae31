package matchingsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirematch/engine/pkg/fsx"
	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/pkg/logx"
	"github.com/hirematch/engine/recruitment/application"
	"github.com/hirematch/engine/recruitment/job"
	"github.com/hirematch/engine/recruitment/matching"
	"github.com/hirematch/engine/recruitment/matching/matchengine"
)

// Service orchestrates matching runs: it assembles job text, scores every
// application and persists the outcome. A run is fatal only when the job or
// its applications cannot be loaded; a single bad application never aborts
// the batch.
type Service struct {
	jobRepo job.Repository
	appRepo application.Repository
	results matching.Repository
	files   fsx.FileReader
	engine  *matchengine.Engine
	queue   matching.RunQueue
}

// NewService creates a new matching service
func NewService(
	jobRepo job.Repository,
	appRepo application.Repository,
	results matching.Repository,
	files fsx.FileReader,
	engine *matchengine.Engine,
	queue matching.RunQueue,
) *Service {
	return &Service{
		jobRepo: jobRepo,
		appRepo: appRepo,
		results: results,
		files:   files,
		engine:  engine,
		queue:   queue,
	}
}

// RunJobMatching scores every application of a job and returns one result per
// application, in iteration order. Applications without a resume and
// applications whose scoring fails receive sentinel scores instead of
// aborting the run.
func (s *Service) RunJobMatching(ctx context.Context, jobID kernel.JobID) (*matching.RunMatchingResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, matching.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	apps, err := s.appRepo.ListAllByJobID(ctx, jobID)
	if err != nil {
		return nil, matching.ErrApplicationsLoadFailed().WithDetail("job_id", jobID.String())
	}

	jobText, jobTextSource := s.buildJobText(ctx, jobEntity)
	matchedAt := time.Now()

	// One result per application, in iteration order. The score-ranked view
	// comes from the stored results, not from the run response.
	results := make([]matching.MatchResult, 0, len(apps))
	for _, app := range apps {
		result := s.scoreApplication(ctx, jobEntity, app, jobText, matchedAt)
		s.persistResult(ctx, app, result)
		results = append(results, *result)
	}

	logx.Infof("Matched %d applications for job %s (job text source: %s)", len(results), jobID, jobTextSource)

	return &matching.RunMatchingResponse{
		JobID:         jobID,
		JobTextSource: jobTextSource,
		Results:       results,
		ProcessedAt:   matchedAt,
	}, nil
}

// EnqueueRun queues a matching run for asynchronous processing
func (s *Service) EnqueueRun(ctx context.Context, jobID kernel.JobID) (*matching.EnqueueRunResponse, error) {
	exists, err := s.jobRepo.Exists(ctx, jobID)
	if err != nil || !exists {
		return nil, matching.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	run := &matching.MatchRun{
		ID:          kernel.NewMatchRunID(uuid.NewString()),
		JobID:       jobID,
		RequestedAt: time.Now(),
	}

	if err := s.queue.Enqueue(ctx, run); err != nil {
		return nil, matching.ErrQueueEnqueueFailed().WithDetail("job_id", jobID.String())
	}

	return &matching.EnqueueRunResponse{
		RunID:       run.ID,
		JobID:       run.JobID,
		RequestedAt: run.RequestedAt,
	}, nil
}

// GetJobResults retrieves stored match results for a job, highest score first
func (s *Service) GetJobResults(ctx context.Context, jobID kernel.JobID) ([]matching.MatchResultResponse, error) {
	exists, err := s.jobRepo.Exists(ctx, jobID)
	if err != nil || !exists {
		return nil, matching.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	stored, err := s.results.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, matching.ErrResultNotFound().WithDetail("job_id", jobID.String())
	}

	responses := make([]matching.MatchResultResponse, 0, len(stored))
	for i := range stored {
		responses = append(responses, *matching.ToMatchResultResponse(&stored[i]))
	}

	return responses, nil
}

// GetApplicationResult retrieves the stored match result for one application
func (s *Service) GetApplicationResult(ctx context.Context, applicationID kernel.ApplicationID) (*matching.MatchResultResponse, error) {
	result, err := s.results.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, matching.ErrResultNotFound().WithDetail("application_id", applicationID.String())
	}

	return matching.ToMatchResultResponse(result), nil
}

// ============================================================================
// Helper Methods
// ============================================================================

// buildJobText assembles the text a job is matched against. The description
// and the attached description document both contribute when present; when
// neither yields text the job's metadata serves as low-confidence pseudo-text.
func (s *Service) buildJobText(ctx context.Context, jobEntity *job.Job) (string, matching.TextSource) {
	var parts []string
	source := matching.TextSourceParsed

	if desc := strings.TrimSpace(string(jobEntity.Description)); desc != "" {
		parts = append(parts, desc)
	}

	if jobEntity.HasDescriptionDocument() {
		data, err := s.files.ReadFile(ctx, jobEntity.JobDescriptionURL.String())
		if err != nil {
			logx.Warnf("Failed to read job description document for job %s: %v", jobEntity.ID, err)
		} else {
			text, docSource := s.engine.Recover(data, jobEntity.JobDescriptionURL.String())
			if docSource != matching.TextSourceFallback {
				parts = append(parts, text)
				if len(parts) == 1 {
					source = docSource
				}
			}
		}
	}

	if len(parts) == 0 {
		return jobEntity.MetadataText(), matching.TextSourceFallback
	}

	return strings.Join(parts, "\n\n"), source
}

// scoreApplication produces a result for one application. It never returns an
// error: applications that cannot be evaluated receive sentinel scores.
func (s *Service) scoreApplication(ctx context.Context, jobEntity *job.Job, app *application.Application, jobText string, matchedAt time.Time) (result *matching.MatchResult) {
	result = &matching.MatchResult{
		ID:            uuid.NewString(),
		JobID:         jobEntity.ID,
		ApplicationID: app.ID,
		MatchedAt:     matchedAt,
	}

	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("Scoring panicked for application %s: %v", app.ID, r)
			result.Score = matching.ScoreProcessingFailed
			result.Breakdown = matching.MatchBreakdown{OverallMatch: matching.ScoreProcessingFailed}
			result.Details = matching.MatchDetails{}
		}
	}()

	if !app.HasResume() {
		result.Score = matching.ScoreMissingResume
		result.Breakdown = matching.MatchBreakdown{OverallMatch: matching.ScoreMissingResume}
		result.ResumeTextSource = matching.TextSourceFallback
		return result
	}

	resumeText, resumeSource := s.recoverResumeText(ctx, app)

	evaluation := s.engine.Score(jobText, resumeText, jobEntity.RequiredSkills)

	result.Score = evaluation.Score
	result.Breakdown = evaluation.Breakdown
	result.Details = evaluation.Details
	result.ResumeTextSource = resumeSource

	return result
}

// recoverResumeText fetches and recovers the resume text. An unreadable
// document degrades to filename pseudo-text rather than failing.
func (s *Service) recoverResumeText(ctx context.Context, app *application.Application) (string, matching.TextSource) {
	locator := app.ResumeURL.String()

	data, err := s.files.ReadFile(ctx, locator)
	if err != nil {
		logx.Warnf("Failed to read resume for application %s: %v", app.ID, err)
		return matchengine.FallbackText(locator), matching.TextSourceFallback
	}

	return s.engine.Recover(data, locator)
}

// persistResult stores the result and stamps the application. Persistence
// failures are logged and skipped so one bad write cannot abort the batch.
func (s *Service) persistResult(ctx context.Context, app *application.Application, result *matching.MatchResult) {
	if err := s.results.Save(ctx, result); err != nil {
		logx.Errorf("Failed to save match result for application %s: %v", app.ID, err)
	}

	if err := s.appRepo.UpdateMatchScore(ctx, app.ID, result.Score, result.MatchedAt); err != nil {
		logx.Errorf("Failed to update match score for application %s: %v", app.ID, err)
	}
}
