package jobsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hirematch/engine/pkg/errx"
	"github.com/hirematch/engine/pkg/fsx"
	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/job"
	"github.com/hirematch/engine/recruitment/matching"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo      job.Repository
	matchResults matching.Repository
	files        fsx.FileSystem
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository, matchResults matching.Repository, files fsx.FileSystem) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		matchResults: matchResults,
		files:        files,
	}
}

// CreateJob creates a new job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if req.Title == "" || req.Description == "" {
		return nil, job.ErrInvalidJobData().WithDetail("reason", "title and description are required")
	}
	if req.RecruiterID.IsEmpty() {
		return nil, job.ErrInvalidJobData().WithDetail("reason", "recruiter_id is required")
	}

	newJob := &job.Job{
		ID:             kernel.NewJobID(uuid.NewString()),
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		SalaryRange:    req.SalaryRange,
		RecruiterID:    req.RecruiterID,
		Status:         job.JobStatusDraft, // Start as draft
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	return newJob, nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	resp := job.ToJobResponse(jobEntity)
	return &resp, nil
}

// ListJobs retrieves all jobs with pagination
func (s *JobService) ListJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	return s.toPaginatedResponse(jobs), nil
}

// ListPublishedJobs retrieves only published/active jobs
func (s *JobService) ListPublishedJobs(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListPublished(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list published jobs", errx.TypeInternal)
	}

	return s.toPaginatedResponse(jobs), nil
}

// ListJobsByRecruiter retrieves all jobs posted by a specific recruiter
func (s *JobService) ListJobsByRecruiter(ctx context.Context, recruiterID kernel.UserID, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	jobs, err := s.jobRepo.ListByRecruiterID(ctx, recruiterID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list recruiter jobs", errx.TypeInternal)
	}

	return s.toPaginatedResponse(jobs), nil
}

// UpdateJob updates an existing job
func (s *JobService) UpdateJob(ctx context.Context, jobID kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	updated := false

	if req.Title != nil && *req.Title != jobEntity.Title {
		jobEntity.Title = *req.Title
		updated = true
	}

	if req.Company != nil && *req.Company != jobEntity.Company {
		jobEntity.Company = *req.Company
		updated = true
	}

	if req.Location != nil && *req.Location != jobEntity.Location {
		jobEntity.Location = *req.Location
		updated = true
	}

	if req.Description != nil && *req.Description != jobEntity.Description {
		jobEntity.Description = *req.Description
		updated = true
	}

	if req.RequiredSkills != nil {
		jobEntity.RequiredSkills = *req.RequiredSkills
		updated = true
	}

	if req.SalaryRange != nil && *req.SalaryRange != jobEntity.SalaryRange {
		jobEntity.SalaryRange = *req.SalaryRange
		updated = true
	}

	if updated {
		jobEntity.UpdatedAt = time.Now()

		if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
			return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
		}
	}

	return jobEntity, nil
}

// AttachDescriptionDocument stores an uploaded job description document and
// links it to the job. The document participates in matching alongside the
// inline description text.
func (s *JobService) AttachDescriptionDocument(ctx context.Context, jobID kernel.JobID, data []byte, contentType string) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	key := "job-descriptions/" + jobID.String() + "/" + uuid.NewString() + ".pdf"
	if err := s.files.WriteFile(ctx, key, data, contentType); err != nil {
		return nil, errx.Wrap(err, "failed to store job description document", errx.TypeInternal)
	}

	url := kernel.BucketURL(key)
	jobEntity.JobDescriptionURL = &url
	jobEntity.UpdatedAt = time.Now()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to link job description document", errx.TypeInternal)
	}

	return jobEntity, nil
}

// PublishJob marks a job as published/active
func (s *JobService) PublishJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	if err := jobEntity.Publish(); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to publish job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// CloseJob marks a job as closed
func (s *JobService) CloseJob(ctx context.Context, jobID kernel.JobID) (*job.Job, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	jobEntity.Close()

	if err := s.jobRepo.Update(ctx, jobID, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to close job", errx.TypeInternal)
	}

	return jobEntity, nil
}

// DeleteJob deletes a job and its stored match results
func (s *JobService) DeleteJob(ctx context.Context, jobID kernel.JobID) error {
	applicationCount, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		return errx.Wrap(err, "failed to count applications", errx.TypeInternal)
	}

	if applicationCount > 0 {
		return job.ErrJobHasApplications().
			WithDetail("job_id", jobID.String()).
			WithDetail("application_count", applicationCount)
	}

	if err := s.matchResults.DeleteByJobID(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job match results", errx.TypeInternal)
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	return nil
}

// GetJobStats retrieves statistics for a job
func (s *JobService) GetJobStats(ctx context.Context, jobID kernel.JobID) (*job.JobStatsResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", jobID.String())
	}

	applicationCount, err := s.jobRepo.CountApplications(ctx, jobID)
	if err != nil {
		applicationCount = 0 // Default to 0 on error
	}

	return &job.JobStatsResponse{
		JobID:             jobID,
		Title:             jobEntity.Title,
		Status:            jobEntity.Status,
		TotalApplications: applicationCount,
		IsPublished:       jobEntity.IsPublished(),
		CreatedAt:         jobEntity.CreatedAt,
	}, nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *JobService) toPaginatedResponse(jobs *kernel.Paginated[job.Job]) *job.PaginatedJobsResponse {
	responses := make([]job.JobResponse, 0, len(jobs.Items))
	for _, j := range jobs.Items {
		responses = append(responses, job.ToJobResponse(&j))
	}

	return &kernel.Paginated[job.JobResponse]{
		Items:    responses,
		Total:    jobs.Total,
		Page:     jobs.Page,
		PageSize: jobs.PageSize,
	}
}
