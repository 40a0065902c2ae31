package candidateapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/candidate"
	"github.com/hirematch/engine/recruitment/candidate/candidatesrv"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate registers a new candidate profile
// POST /api/candidates
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newCandidate, err := h.service.CreateCandidate(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newCandidate)
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/candidates/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetCandidateByID(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListCandidates retrieves all candidates
// GET /api/candidates
func (h *Handlers) ListCandidates(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	candidates, err := h.service.ListCandidates(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(candidates)
}

// UpdateCandidate updates a candidate's profile
// PUT /api/candidates/:id
func (h *Handlers) UpdateCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	var req candidate.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateCandidate(c.Context(), candidateID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// ArchiveCandidate archives a candidate profile
// POST /api/candidates/:id/archive
func (h *Handlers) ArchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	archived, err := h.service.ArchiveCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(archived)
}

// UnarchiveCandidate restores an archived candidate profile
// POST /api/candidates/:id/unarchive
func (h *Handlers) UnarchiveCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	restored, err := h.service.UnarchiveCandidate(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(restored)
}

// DeleteCandidate deletes a candidate
// DELETE /api/candidates/:id
func (h *Handlers) DeleteCandidate(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteCandidate(c.Context(), candidateID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetCandidateStats retrieves statistics for a candidate
// GET /api/candidates/:id/stats
func (h *Handlers) GetCandidateStats(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(c.Params("id"))
	if candidateID == "" {
		return candidate.ErrCandidateNotFound().WithDetail("id", "missing or empty")
	}

	stats, err := h.service.GetCandidateStats(c.Context(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", kernel.DefaultPageSize),
	}.Normalize()
}

// RegisterRoutes registers all candidate routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/candidates")

	api.Post("/", handlers.CreateCandidate)
	api.Get("/", handlers.ListCandidates)
	api.Get("/:id", handlers.GetCandidateByID)
	api.Put("/:id", handlers.UpdateCandidate)
	api.Post("/:id/archive", handlers.ArchiveCandidate)
	api.Post("/:id/unarchive", handlers.UnarchiveCandidate)
	api.Get("/:id/stats", handlers.GetCandidateStats)
	api.Delete("/:id", handlers.DeleteCandidate)
}
