package job

import (
	"context"

	"github.com/hirematch/engine/pkg/kernel"
)

type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Update updates an existing job
	Update(ctx context.Context, id kernel.JobID, job *Job) error

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id kernel.JobID) (*Job, error)

	// Delete deletes a job by ID
	Delete(ctx context.Context, id kernel.JobID) error

	// List retrieves all jobs with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListByRecruiterID retrieves jobs posted by a specific recruiter
	ListByRecruiterID(ctx context.Context, recruiterID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// ListPublished retrieves only published jobs
	ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Exists checks if a job exists by ID
	Exists(ctx context.Context, id kernel.JobID) (bool, error)

	// CountApplications counts the applications received by a job
	CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error)
}
