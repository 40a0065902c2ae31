package matchingapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/matching"
	"github.com/hirematch/engine/recruitment/matching/matchingsrv"
)

// Handlers provides HTTP handlers for matching operations
type Handlers struct {
	service *matchingsrv.Service
}

// NewHandlers creates a new matching handlers instance
func NewHandlers(service *matchingsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RunJobMatching scores every application of a job. With ?async=true the run
// is queued and processed by the worker pool instead.
// POST /api/jobs/:jobId/match
func (h *Handlers) RunJobMatching(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID == "" {
		return matching.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	if c.QueryBool("async", false) {
		resp, err := h.service.EnqueueRun(c.Context(), jobID)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusAccepted).JSON(resp)
	}

	resp, err := h.service.RunJobMatching(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetJobResults retrieves stored match results for a job, best match first
// GET /api/jobs/:jobId/match-results
func (h *Handlers) GetJobResults(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID == "" {
		return matching.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	results, err := h.service.GetJobResults(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(results)
}

// GetApplicationResult retrieves the stored match result for one application
// GET /api/applications/:id/match-result
func (h *Handlers) GetApplicationResult(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return matching.ErrInvalidRequest().WithDetail("application_id", "missing or empty")
	}

	result, err := h.service.GetApplicationResult(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// RegisterRoutes registers all matching routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/api/jobs/:jobId/match", handlers.RunJobMatching)
	app.Get("/api/jobs/:jobId/match-results", handlers.GetJobResults)
	app.Get("/api/applications/:id/match-result", handlers.GetApplicationResult)
}
