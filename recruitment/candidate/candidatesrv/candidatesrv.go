package candidatesrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hirematch/engine/pkg/errx"
	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/candidate"
)

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
	}
}

// CreateCandidate registers a new candidate profile
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.Candidate, error) {
	if !req.Email.IsValid() {
		return nil, candidate.ErrInvalidEmail().WithDetail("email", req.Email.String())
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, candidate.ErrInvalidRequest().WithDetail("name", "first and last name are required")
	}

	// Business rule: one profile per email
	if existing, err := s.candidateRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, candidate.ErrEmailAlreadyExists().WithDetail("email", req.Email.String())
	}

	newCandidate := &candidate.Candidate{
		ID:        kernel.NewCandidateID(uuid.NewString()),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Headline:  req.Headline,
		Status:    candidate.CandidateStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.candidateRepo.Create(ctx, newCandidate); err != nil {
		return nil, errx.Wrap(err, "failed to create candidate", errx.TypeInternal)
	}

	return newCandidate, nil
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	resp := candidate.ToCandidateResponse(c)
	return &resp, nil
}

// ListCandidates retrieves all candidates with pagination
func (s *CandidateService) ListCandidates(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	candidates, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates.Items))
	for _, c := range candidates.Items {
		responses = append(responses, candidate.ToCandidateResponse(&c))
	}

	return &kernel.Paginated[candidate.CandidateResponse]{
		Items:    responses,
		Total:    candidates.Total,
		Page:     candidates.Page,
		PageSize: candidates.PageSize,
	}, nil
}

// UpdateCandidate updates a candidate's profile
func (s *CandidateService) UpdateCandidate(ctx context.Context, id kernel.CandidateID, req candidate.UpdateCandidateRequest) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	firstName := c.FirstName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	lastName := c.LastName
	if req.LastName != nil {
		lastName = *req.LastName
	}
	headline := c.Headline
	if req.Headline != nil {
		headline = *req.Headline
	}

	c.UpdateProfile(firstName, lastName, headline)

	if err := s.candidateRepo.Update(ctx, id, c); err != nil {
		return nil, errx.Wrap(err, "failed to update candidate", errx.TypeInternal)
	}

	return c, nil
}

// ArchiveCandidate archives a candidate profile
func (s *CandidateService) ArchiveCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	if err := c.Archive(); err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Update(ctx, id, c); err != nil {
		return nil, errx.Wrap(err, "failed to archive candidate", errx.TypeInternal)
	}

	return c, nil
}

// UnarchiveCandidate restores an archived candidate profile
func (s *CandidateService) UnarchiveCandidate(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	if err := c.Unarchive(); err != nil {
		return nil, err
	}

	if err := s.candidateRepo.Update(ctx, id, c); err != nil {
		return nil, errx.Wrap(err, "failed to unarchive candidate", errx.TypeInternal)
	}

	return c, nil
}

// DeleteCandidate deletes a candidate without applications
func (s *CandidateService) DeleteCandidate(ctx context.Context, id kernel.CandidateID) error {
	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	count, err := s.candidateRepo.CountApplications(ctx, id)
	if err != nil {
		return errx.Wrap(err, "failed to count candidate applications", errx.TypeInternal)
	}

	if count > 0 {
		return candidate.ErrCandidateHasApplications().WithDetail("application_count", count)
	}

	if err := s.candidateRepo.Delete(ctx, id); err != nil {
		return errx.Wrap(err, "failed to delete candidate", errx.TypeInternal)
	}

	return nil
}

// GetCandidateStats returns profile statistics for a candidate
func (s *CandidateService) GetCandidateStats(ctx context.Context, id kernel.CandidateID) (*candidate.CandidateStatsResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", id.String())
	}

	count, err := s.candidateRepo.CountApplications(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to count candidate applications", errx.TypeInternal)
	}

	return &candidate.CandidateStatsResponse{
		CandidateID:       c.ID,
		FullName:          c.GetFullName(),
		Email:             c.Email,
		Status:            c.Status,
		TotalApplications: count,
		IsArchived:        c.IsArchived(),
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}, nil
}
