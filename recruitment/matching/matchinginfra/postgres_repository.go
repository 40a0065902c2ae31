package matchinginfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/matching"
)

// PostgresMatchRepository implements matching.Repository using PostgreSQL
type PostgresMatchRepository struct {
	db *sqlx.DB
}

// NewPostgresMatchRepository creates a new PostgreSQL match result repository
func NewPostgresMatchRepository(db *sqlx.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type matchResultModel struct {
	ID               string    `db:"id"`
	JobID            string    `db:"job_id"`
	ApplicationID    string    `db:"application_id"`
	Score            float64   `db:"score"`
	Breakdown        []byte    `db:"breakdown"`
	Details          []byte    `db:"details"`
	ResumeTextSource string    `db:"resume_text_source"`
	MatchedAt        time.Time `db:"matched_at"`
}

// toEntity converts database model to domain entity
func (m *matchResultModel) toEntity() (*matching.MatchResult, error) {
	entity := &matching.MatchResult{
		ID:               m.ID,
		JobID:            kernel.JobID(m.JobID),
		ApplicationID:    kernel.ApplicationID(m.ApplicationID),
		Score:            m.Score,
		ResumeTextSource: matching.TextSource(m.ResumeTextSource),
		MatchedAt:        m.MatchedAt,
	}

	if err := json.Unmarshal(m.Breakdown, &entity.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown for result %s: %w", m.ID, err)
	}
	if err := json.Unmarshal(m.Details, &entity.Details); err != nil {
		return nil, fmt.Errorf("unmarshal details for result %s: %w", m.ID, err)
	}

	return entity, nil
}

// fromEntity converts domain entity to database model
func fromEntity(r *matching.MatchResult) (*matchResultModel, error) {
	breakdown, err := json.Marshal(r.Breakdown)
	if err != nil {
		return nil, fmt.Errorf("marshal breakdown for result %s: %w", r.ID, err)
	}

	details, err := json.Marshal(r.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal details for result %s: %w", r.ID, err)
	}

	return &matchResultModel{
		ID:               r.ID,
		JobID:            r.JobID.String(),
		ApplicationID:    r.ApplicationID.String(),
		Score:            r.Score,
		Breakdown:        breakdown,
		Details:          details,
		ResumeTextSource: string(r.ResumeTextSource),
		MatchedAt:        r.MatchedAt,
	}, nil
}

const matchResultColumns = `
	id, job_id, application_id, score, breakdown, details,
	resume_text_source, matched_at
`

// ============================================================================
// Repository Implementation
// ============================================================================

// Save upserts the result for an application. A rerun replaces the previous
// outcome so each application carries at most one result per job.
func (r *PostgresMatchRepository) Save(ctx context.Context, result *matching.MatchResult) error {
	model, err := fromEntity(result)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO match_results (
			id, job_id, application_id, score, breakdown, details,
			resume_text_source, matched_at
		) VALUES (
			:id, :job_id, :application_id, :score, :breakdown, :details,
			:resume_text_source, :matched_at
		)
		ON CONFLICT (application_id) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			score = EXCLUDED.score,
			breakdown = EXCLUDED.breakdown,
			details = EXCLUDED.details,
			resume_text_source = EXCLUDED.resume_text_source,
			matched_at = EXCLUDED.matched_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

// GetByApplicationID retrieves the latest result for an application
func (r *PostgresMatchRepository) GetByApplicationID(ctx context.Context, id kernel.ApplicationID) (*matching.MatchResult, error) {
	query := `SELECT ` + matchResultColumns + ` FROM match_results WHERE application_id = $1`

	var model matchResultModel
	err := r.db.GetContext(ctx, &model, query, string(id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, matching.ErrResultNotFound()
		}
		return nil, fmt.Errorf("failed to get match result: %w", err)
	}

	return model.toEntity()
}

// ListByJobID retrieves all results for a job, highest score first
func (r *PostgresMatchRepository) ListByJobID(ctx context.Context, jobID kernel.JobID) ([]matching.MatchResult, error) {
	query := `
		SELECT ` + matchResultColumns + `
		FROM match_results
		WHERE job_id = $1
		ORDER BY score DESC, matched_at DESC
	`

	var models []matchResultModel
	err := r.db.SelectContext(ctx, &models, query, string(jobID))
	if err != nil {
		return nil, fmt.Errorf("failed to list match results: %w", err)
	}

	results := make([]matching.MatchResult, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		results = append(results, *entity)
	}

	return results, nil
}

// DeleteByJobID removes all results for a job
func (r *PostgresMatchRepository) DeleteByJobID(ctx context.Context, jobID kernel.JobID) error {
	query := `DELETE FROM match_results WHERE job_id = $1`

	if _, err := r.db.ExecContext(ctx, query, string(jobID)); err != nil {
		return fmt.Errorf("failed to delete match results: %w", err)
	}

	return nil
}
