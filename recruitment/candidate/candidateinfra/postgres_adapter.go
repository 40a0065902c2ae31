package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/candidate"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository
func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type candidateModel struct {
	ID         string         `db:"id"`
	Email      string         `db:"email"`
	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Headline   sql.NullString `db:"headline"`
	Status     string         `db:"status"`
	ArchivedAt *time.Time     `db:"archived_at"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *candidateModel) toEntity() *candidate.Candidate {
	entity := &candidate.Candidate{
		ID:         kernel.CandidateID(m.ID),
		Email:      kernel.Email(m.Email),
		FirstName:  kernel.FirstName(m.FirstName),
		LastName:   kernel.LastName(m.LastName),
		Status:     candidate.CandidateStatus(m.Status),
		ArchivedAt: m.ArchivedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}

	if m.Headline.Valid {
		entity.Headline = m.Headline.String
	}

	return entity
}

// fromEntity converts domain entity to database model
func fromEntity(c *candidate.Candidate) *candidateModel {
	model := &candidateModel{
		ID:         string(c.ID),
		Email:      string(c.Email),
		FirstName:  string(c.FirstName),
		LastName:   string(c.LastName),
		Status:     string(c.Status),
		ArchivedAt: c.ArchivedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.Headline != "" {
		model.Headline = sql.NullString{String: c.Headline, Valid: true}
	}

	return model
}

const candidateColumns = `
	id, email, first_name, last_name, headline, status,
	archived_at, created_at, updated_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new candidate
func (r *PostgresCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	model := fromEntity(c)

	query := `
		INSERT INTO candidates (
			id, email, first_name, last_name, headline, status,
			archived_at, created_at, updated_at
		) VALUES (
			:id, :email, :first_name, :last_name, :headline, :status,
			:archived_at, :created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return candidate.ErrEmailAlreadyExists()
			}
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// Update updates an existing candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id kernel.CandidateID, c *candidate.Candidate) error {
	model := fromEntity(c)
	model.ID = string(id)

	query := `
		UPDATE candidates SET
			email = :email,
			first_name = :first_name,
			last_name = :last_name,
			headline = :headline,
			status = :status,
			archived_at = :archived_at,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// GetByID retrieves a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by id: %w", err)
	}

	return model.toEntity(), nil
}

// Delete deletes a candidate by ID
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id kernel.CandidateID) error {
	query := `DELETE FROM candidates WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return candidate.ErrCandidateNotFound()
	}

	return nil
}

// List retrieves all candidates with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM candidates`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := `
		SELECT ` + candidateColumns + `
		FROM candidates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []candidateModel
	err := r.db.SelectContext(ctx, &models, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	entities := make([]candidate.Candidate, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return kernel.NewPaginated(entities, total, pagination), nil
}

// GetByEmail retrieves a candidate by email
func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE email = $1`

	var model candidateModel
	err := r.db.GetContext(ctx, &model, query, string(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by email: %w", err)
	}

	return model.toEntity(), nil
}

// Exists checks if a candidate exists by ID
func (r *PostgresCandidateRepository) Exists(ctx context.Context, id kernel.CandidateID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(id))
	if err != nil {
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	return exists, nil
}

// CountApplications counts applications submitted by a candidate
func (r *PostgresCandidateRepository) CountApplications(ctx context.Context, candidateID kernel.CandidateID) (int64, error) {
	query := `SELECT COUNT(*) FROM applications WHERE applicant_id = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, string(candidateID))
	if err != nil {
		return 0, fmt.Errorf("failed to count candidate applications: %w", err)
	}

	return count, nil
}
