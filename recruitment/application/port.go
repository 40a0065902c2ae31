package application

import (
	"context"
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

type Repository interface {
	// Create creates a new application
	Create(ctx context.Context, application *Application) error

	// Update updates an existing application
	Update(ctx context.Context, id kernel.ApplicationID, application *Application) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)

	// Delete deletes an application by ID
	Delete(ctx context.Context, id kernel.ApplicationID) error

	// ListByJobID retrieves applications for a specific job, best match first
	ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// ListAllByJobID retrieves every application for a job without pagination.
	// Used by matching runs, which score the full applicant pool.
	ListAllByJobID(ctx context.Context, jobID kernel.JobID) ([]*Application, error)

	// ListByApplicantID retrieves applications for a specific applicant
	ListByApplicantID(ctx context.Context, applicantID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[Application], error)

	// Exists checks if an application exists by ID
	Exists(ctx context.Context, id kernel.ApplicationID) (bool, error)

	// ExistsByJobAndApplicant checks if an applicant already applied to a job
	ExistsByJobAndApplicant(ctx context.Context, jobID kernel.JobID, applicantID kernel.CandidateID) (bool, error)

	// UpdateResumeURL updates the resume document location
	UpdateResumeURL(ctx context.Context, id kernel.ApplicationID, url kernel.BucketURL) error

	// UpdateMatchScore stores a matching run outcome on the application
	UpdateMatchScore(ctx context.Context, id kernel.ApplicationID, score float64, matchedAt time.Time) error

	// CountByJobID counts applications for a specific job
	CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error)
}
