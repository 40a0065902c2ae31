package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/application"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type applicationModel struct {
	ID            string          `db:"id"`
	JobID         string          `db:"job_id"`
	ApplicantID   string          `db:"applicant_id"`
	CoverLetter   sql.NullString  `db:"cover_letter"`
	ResumeURL     sql.NullString  `db:"resume_url"`
	Status        string          `db:"status"`
	MatchScore    sql.NullFloat64 `db:"match_score"`
	LastMatchedAt *time.Time      `db:"last_matched_at"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	entity := &application.Application{
		ID:            kernel.ApplicationID(m.ID),
		JobID:         kernel.JobID(m.JobID),
		ApplicantID:   kernel.CandidateID(m.ApplicantID),
		Status:        application.ApplicationStatus(m.Status),
		LastMatchedAt: m.LastMatchedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.CoverLetter.Valid {
		letter := m.CoverLetter.String
		entity.CoverLetter = &letter
	}
	if m.ResumeURL.Valid {
		url := kernel.BucketURL(m.ResumeURL.String)
		entity.ResumeURL = &url
	}
	if m.MatchScore.Valid {
		score := m.MatchScore.Float64
		entity.MatchScore = &score
	}

	return entity
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	model := &applicationModel{
		ID:            string(a.ID),
		JobID:         string(a.JobID),
		ApplicantID:   string(a.ApplicantID),
		Status:        string(a.Status),
		LastMatchedAt: a.LastMatchedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	if a.CoverLetter != nil {
		model.CoverLetter = sql.NullString{String: *a.CoverLetter, Valid: true}
	}
	if a.ResumeURL != nil {
		model.ResumeURL = sql.NullString{String: a.ResumeURL.String(), Valid: true}
	}
	if a.MatchScore != nil {
		model.MatchScore = sql.NullFloat64{Float64: *a.MatchScore, Valid: true}
	}

	return model
}

const applicationColumns = `
	id, job_id, applicant_id, cover_letter, resume_url, status,
	match_score, last_matched_at, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO applications (
			id, job_id, applicant_id, cover_letter, resume_url, status,
			match_score, last_matched_at, created_at, updated_at
		) VALUES (
			:id, :job_id, :applicant_id, :cover_letter, :resume_url, :status,
			:match_score, :last_matched_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return application.ErrApplicationAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}

	return nil
}

// Update updates an existing application
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, app *application.Application) error {
	model := fromEntity(app)
	model.ID = string(id)

	query := `
		UPDATE applications SET
			cover_letter = :cover_letter,
			resume_url = :resume_url,
			status = :status,
			match_score = :match_score,
			last_matched_at = :last_matched_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes an application by ID
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	query := `DELETE FROM applications WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// ListByJobID retrieves applications for a specific job, best match first.
// Unmatched applications sort last.
func (r *PostgresApplicationRepository) ListByJobID(ctx context.Context, jobID kernel.JobID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM applications WHERE job_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(jobID)); err != nil {
		return nil, fmt.Errorf("failed to count job applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1
		ORDER BY match_score DESC NULLS LAST, created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []applicationModel
	err := r.db.SelectContext(ctx, &models, query, string(jobID), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}

	return toPaginated(models, total, pagination), nil
}

// ListAllByJobID retrieves every application for a job without pagination
func (r *PostgresApplicationRepository) ListAllByJobID(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE job_id = $1
		ORDER BY created_at ASC
	`

	var models []applicationModel
	err := r.db.SelectContext(ctx, &models, query, string(jobID))
	if err != nil {
		return nil, fmt.Errorf("failed to list all job applications: %w", err)
	}

	entities := make([]*application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, model.toEntity())
	}

	return entities, nil
}

// ListByApplicantID retrieves applications for a specific applicant
func (r *PostgresApplicationRepository) ListByApplicantID(ctx context.Context, applicantID kernel.CandidateID, pagination kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM applications WHERE applicant_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(applicantID)); err != nil {
		return nil, fmt.Errorf("failed to count applicant applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []applicationModel
	err := r.db.SelectContext(ctx, &models, query, string(applicantID), pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list applicant applications: %w", err)
	}

	return toPaginated(models, total, pagination), nil
}

// Exists checks if an application exists by ID
func (r *PostgresApplicationRepository) Exists(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// ExistsByJobAndApplicant checks if an applicant already applied to a job
func (r *PostgresApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID kernel.JobID, applicantID kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(jobID), string(applicantID))
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate application: %w", err)
	}

	return exists, nil
}

// UpdateResumeURL updates the resume document location
func (r *PostgresApplicationRepository) UpdateResumeURL(ctx context.Context, id kernel.ApplicationID, url kernel.BucketURL) error {
	query := `UPDATE applications SET resume_url = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, url.String(), time.Now(), string(id))
	if err != nil {
		return fmt.Errorf("failed to update resume url: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// UpdateMatchScore stores a matching run outcome on the application
func (r *PostgresApplicationRepository) UpdateMatchScore(ctx context.Context, id kernel.ApplicationID, score float64, matchedAt time.Time) error {
	query := `UPDATE applications SET match_score = $1, last_matched_at = $2, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, score, matchedAt, string(id))
	if err != nil {
		return fmt.Errorf("failed to update match score: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// CountByJobID counts applications for a specific job
func (r *PostgresApplicationRepository) CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE job_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(jobID))
	if err != nil {
		return 0, fmt.Errorf("failed to count job applications: %w", err)
	}

	return count, nil
}

func toPaginated(models []applicationModel, total int64, pagination kernel.PaginationOptions) *kernel.Paginated[application.Application] {
	entities := make([]application.Application, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}
	return kernel.NewPaginated(entities, total, pagination)
}
