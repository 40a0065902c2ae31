package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type jobModel struct {
	ID                string         `db:"id"`
	Title             string         `db:"title"`
	Company           string         `db:"company"`
	Location          string         `db:"location"`
	Description       string         `db:"description"`
	RequiredSkills    pq.StringArray `db:"required_skills"`
	SalaryRange       sql.NullString `db:"salary_range"`
	JobDescriptionURL sql.NullString `db:"job_description_url"`
	RecruiterID       string         `db:"recruiter_id"`
	Status            string         `db:"status"`
	PublishedAt       *time.Time     `db:"published_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() *job.Job {
	entity := &job.Job{
		ID:             kernel.JobID(m.ID),
		Title:          kernel.JobTitle(m.Title),
		Company:        m.Company,
		Location:       m.Location,
		Description:    kernel.JobDescription(m.Description),
		RequiredSkills: []string(m.RequiredSkills),
		RecruiterID:    kernel.UserID(m.RecruiterID),
		Status:         job.JobStatus(m.Status),
		PublishedAt:    m.PublishedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.SalaryRange.Valid {
		entity.SalaryRange = m.SalaryRange.String
	}
	if m.JobDescriptionURL.Valid {
		url := kernel.BucketURL(m.JobDescriptionURL.String)
		entity.JobDescriptionURL = &url
	}

	return entity
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.Job) *jobModel {
	model := &jobModel{
		ID:             string(j.ID),
		Title:          string(j.Title),
		Company:        j.Company,
		Location:       j.Location,
		Description:    string(j.Description),
		RequiredSkills: pq.StringArray(j.RequiredSkills),
		RecruiterID:    string(j.RecruiterID),
		Status:         string(j.Status),
		PublishedAt:    j.PublishedAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}

	if j.SalaryRange != "" {
		model.SalaryRange = sql.NullString{String: j.SalaryRange, Valid: true}
	}
	if j.JobDescriptionURL != nil {
		model.JobDescriptionURL = sql.NullString{String: j.JobDescriptionURL.String(), Valid: true}
	}

	return model
}

const jobColumns = `
	id, title, company, location, description, required_skills,
	salary_range, job_description_url, recruiter_id, status,
	published_at, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.Job) error {
	model := fromEntity(jobEntity)

	query := `
		INSERT INTO jobs (
			id, title, company, location, description, required_skills,
			salary_range, job_description_url, recruiter_id, status,
			published_at, created_at, updated_at
		) VALUES (
			:id, :title, :company, :location, :description, :required_skills,
			:salary_range, :job_description_url, :recruiter_id, :status,
			:published_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// Update updates an existing job
func (r *PostgresJobRepository) Update(ctx context.Context, id kernel.JobID, jobEntity *job.Job) error {
	model := fromEntity(jobEntity)
	model.ID = string(id)

	query := `
		UPDATE jobs SET
			title = :title,
			company = :company,
			location = :location,
			description = :description,
			required_skills = :required_skills,
			salary_range = :salary_range,
			job_description_url = :job_description_url,
			status = :status,
			published_at = :published_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a job by ID
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return job.ErrJobNotFound()
	}

	return nil
}

// List retrieves all jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return toPaginated(models, total, pagination), nil
}

// ListByRecruiterID retrieves jobs posted by a specific recruiter
func (r *PostgresJobRepository) ListByRecruiterID(ctx context.Context, recruiterID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(recruiterID)); err != nil {
		return nil, fmt.Errorf("failed to count recruiter jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, string(recruiterID), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter jobs: %w", err)
	}

	return toPaginated(models, total, pagination), nil
}

// ListPublished retrieves only published jobs
func (r *PostgresJobRepository) ListPublished(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs WHERE status = 'PUBLISHED'`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count published jobs: %w", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'PUBLISHED' ORDER BY published_at DESC LIMIT $1 OFFSET $2`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list published jobs: %w", err)
	}

	return toPaginated(models, total, pagination), nil
}

func toPaginated(models []jobModel, total int64, pagination kernel.PaginationOptions) *kernel.Paginated[job.Job] {
	entities := make([]job.Job, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}
	return kernel.NewPaginated(entities, total, pagination)
}

// Exists checks if a job exists by ID
func (r *PostgresJobRepository) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}

// CountApplications counts applications for a specific job
func (r *PostgresJobRepository) CountApplications(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(jobID))
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	return count, nil
}
