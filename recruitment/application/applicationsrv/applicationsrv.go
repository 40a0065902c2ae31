package applicationsrv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hirematch/engine/pkg/errx"
	"github.com/hirematch/engine/pkg/fsx"
	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/application"
	"github.com/hirematch/engine/recruitment/candidate"
	"github.com/hirematch/engine/recruitment/job"
)

// maxResumeSize caps uploaded resume documents at 10MB.
const maxResumeSize = 10 * 1024 * 1024

// ApplicationService provides business operations for applications
type ApplicationService struct {
	applicationRepo application.Repository
	candidateRepo   candidate.Repository
	jobRepo         job.Repository
	fileSystem      fsx.FileSystem
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	candidateRepo candidate.Repository,
	jobRepo job.Repository,
	fileSystem fsx.FileSystem,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		candidateRepo:   candidateRepo,
		jobRepo:         jobRepo,
		fileSystem:      fileSystem,
	}
}

// SubmitApplication creates a new application for a published job
func (s *ApplicationService) SubmitApplication(ctx context.Context, req application.SubmitApplicationRequest) (*application.Application, error) {
	if req.ApplicantID.IsEmpty() {
		return nil, application.ErrInvalidRequest().WithDetail("applicant_id", "missing or empty")
	}

	// Validate candidate exists and may apply
	applicant, err := s.candidateRepo.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("applicant_id", req.ApplicantID.String())
	}

	if !applicant.CanApplyToJob() {
		return nil, candidate.ErrCandidateInactive().
			WithDetail("applicant_id", req.ApplicantID.String()).
			WithDetail("status", applicant.Status)
	}

	// Validate job exists and is published
	jobEntity, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, job.ErrJobNotFound().WithDetail("job_id", req.JobID.String())
	}

	if !jobEntity.IsPublished() {
		return nil, application.ErrJobNotPublished().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("status", jobEntity.Status)
	}

	// Business rule: one application per applicant per job
	exists, err := s.applicationRepo.ExistsByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}

	if exists {
		return nil, application.ErrApplicationAlreadyExists().
			WithDetail("job_id", req.JobID.String()).
			WithDetail("applicant_id", req.ApplicantID.String())
	}

	newApplication := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CoverLetter: req.CoverLetter,
		Status:      application.ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	return newApplication, nil
}

// UploadResume stores a resume document and links it to the application
func (s *ApplicationService) UploadResume(ctx context.Context, req application.UploadResumeRequest) (*application.UploadResumeResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", req.ApplicationID.String())
	}

	if len(req.FileData) == 0 {
		return nil, application.ErrInvalidRequest().WithDetail("file_data", "empty upload")
	}

	if len(req.FileData) > maxResumeSize {
		return nil, application.ErrFileSizeTooLarge().
			WithDetail("file_size", len(req.FileData)).
			WithDetail("max_size", maxResumeSize)
	}

	if !isAllowedResumeType(req.ContentType, req.FileName) {
		return nil, application.ErrInvalidFileType().WithDetail("content_type", req.ContentType)
	}

	storagePath := "resumes/" + app.ID.String() + "/" + req.FileName
	if err := s.fileSystem.WriteFile(ctx, storagePath, req.FileData, req.ContentType); err != nil {
		return nil, errx.Wrap(err, "failed to store resume", errx.TypeInternal)
	}

	url := kernel.BucketURL(storagePath)
	if err := s.applicationRepo.UpdateResumeURL(ctx, app.ID, url); err != nil {
		return nil, errx.Wrap(err, "failed to link resume", errx.TypeInternal)
	}

	return &application.UploadResumeResponse{
		ApplicationID: app.ID,
		ResumeURL:     url,
		FileName:      req.FileName,
		FileSize:      int64(len(req.FileData)),
		UploadedAt:    time.Now(),
	}, nil
}

// GetApplicationByID retrieves an application by ID
func (s *ApplicationService) GetApplicationByID(ctx context.Context, id kernel.ApplicationID) (*application.ApplicationResponse, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	resp := application.ToApplicationResponse(app)
	return &resp, nil
}

// ListApplicationsByJob retrieves applications for a job, best match first
func (s *ApplicationService) ListApplicationsByJob(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	apps, err := s.applicationRepo.ListByJobID(ctx, jobID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list job applications", errx.TypeInternal)
	}

	return s.toPaginatedResponse(apps), nil
}

// ListApplicationsByApplicant retrieves an applicant's applications
func (s *ApplicationService) ListApplicationsByApplicant(ctx context.Context, applicantID kernel.CandidateID, pagination kernel.PaginationOptions) (*application.PaginatedApplicationsResponse, error) {
	apps, err := s.applicationRepo.ListByApplicantID(ctx, applicantID, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applicant applications", errx.TypeInternal)
	}

	return s.toPaginatedResponse(apps), nil
}

// UpdateApplicationStatus transitions an application to a new status
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id kernel.ApplicationID, req application.UpdateStatusRequest) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if err := app.UpdateStatus(req.Status); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, id, app); err != nil {
		return nil, errx.Wrap(err, "failed to update application status", errx.TypeInternal)
	}

	return app, nil
}

// WithdrawApplication withdraws an application
func (s *ApplicationService) WithdrawApplication(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if err := app.Withdraw(); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, id, app); err != nil {
		return nil, errx.Wrap(err, "failed to withdraw application", errx.TypeInternal)
	}

	return app, nil
}

// DeleteApplication deletes an application and its stored resume
func (s *ApplicationService) DeleteApplication(ctx context.Context, id kernel.ApplicationID) error {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return application.ErrApplicationNotFound().WithDetail("application_id", id.String())
	}

	if app.HasResume() {
		// Best effort: a dangling object is preferable to a blocked delete.
		_ = s.fileSystem.DeleteFile(ctx, app.ResumeURL.String())
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete application", errx.TypeInternal)
	}

	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (s *ApplicationService) toPaginatedResponse(apps *kernel.Paginated[application.Application]) *application.PaginatedApplicationsResponse {
	responses := make([]application.ApplicationResponse, 0, len(apps.Items))
	for _, a := range apps.Items {
		responses = append(responses, application.ToApplicationResponse(&a))
	}

	return &kernel.Paginated[application.ApplicationResponse]{
		Items:    responses,
		Total:    apps.Total,
		Page:     apps.Page,
		PageSize: apps.PageSize,
	}
}

func isAllowedResumeType(contentType, fileName string) bool {
	lower := strings.ToLower(contentType)
	if strings.Contains(lower, "pdf") || strings.HasPrefix(lower, "text/") {
		return true
	}

	name := strings.ToLower(fileName)
	return strings.HasSuffix(name, ".pdf") || strings.HasSuffix(name, ".txt")
}
