package candidate

import (
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// CreateCandidateRequest - DTO for creating a new candidate
type CreateCandidateRequest struct {
	Email     kernel.Email     `json:"email" validate:"required,email"`
	FirstName kernel.FirstName `json:"first_name" validate:"required"`
	LastName  kernel.LastName  `json:"last_name" validate:"required"`
	Headline  string           `json:"headline,omitempty"`
}

// UpdateCandidateRequest - DTO for updating an existing candidate
type UpdateCandidateRequest struct {
	FirstName *kernel.FirstName `json:"first_name,omitempty"`
	LastName  *kernel.LastName  `json:"last_name,omitempty"`
	Headline  *string           `json:"headline,omitempty"`
}

// ListCandidatesRequest - DTO for listing all candidates
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[CandidateResponse]

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	ID        kernel.CandidateID `json:"id"`
	Email     kernel.Email       `json:"email"`
	FirstName kernel.FirstName   `json:"first_name"`
	LastName  kernel.LastName    `json:"last_name"`
	Headline  string             `json:"headline,omitempty"`
	Status    CandidateStatus    `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ToCandidateResponse maps a domain candidate to its response DTO
func ToCandidateResponse(c *Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Headline:  c.Headline,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CandidateStatsResponse - Statistics for a candidate
type CandidateStatsResponse struct {
	CandidateID       kernel.CandidateID `json:"candidate_id"`
	FullName          string             `json:"full_name"`
	Email             kernel.Email       `json:"email"`
	Status            CandidateStatus    `json:"status"`
	TotalApplications int64              `json:"total_applications"`
	IsArchived        bool               `json:"is_archived"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
