package jobapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/job"
	"github.com/hirematch/engine/recruitment/job/jobsrv"
)

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service *jobsrv.JobService
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateJob creates a new job posting
// POST /api/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	newJob, err := h.service.CreateJob(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newJob)
}

// GetJobByID retrieves a job by ID
// GET /api/jobs/:id
func (h *Handlers) GetJobByID(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJobByID(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(jobResp)
}

// ListJobs retrieves all jobs with pagination
// GET /api/jobs
func (h *Handlers) ListJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListPublishedJobs retrieves only published/active jobs
// GET /api/jobs/published
func (h *Handlers) ListPublishedJobs(c *fiber.Ctx) error {
	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListPublishedJobs(c.Context(), pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// ListJobsByRecruiter retrieves jobs posted by a specific recruiter
// GET /api/jobs/by-recruiter/:recruiterId
func (h *Handlers) ListJobsByRecruiter(c *fiber.Ctx) error {
	recruiterID := kernel.UserID(c.Params("recruiterId"))
	if recruiterID == "" {
		return job.ErrInvalidJobData().WithDetail("recruiter_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	jobs, err := h.service.ListJobsByRecruiter(c.Context(), recruiterID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJob updates an existing job
// PUT /api/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	updatedJob, err := h.service.UpdateJob(c.Context(), jobID, req)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// UploadDescriptionDocument attaches a description document to a job
// POST /api/jobs/:id/description-document
func (h *Handlers) UploadDescriptionDocument(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return job.ErrInvalidJobData().WithDetail("document", "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return job.ErrInvalidJobData().WithDetail("document", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return job.ErrInvalidJobData().WithDetail("document", err.Error())
	}

	updatedJob, err := h.service.AttachDescriptionDocument(
		c.Context(),
		jobID,
		data,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return err
	}

	return c.JSON(updatedJob)
}

// PublishJob marks a job as published/active
// POST /api/jobs/:id/publish
func (h *Handlers) PublishJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	publishedJob, err := h.service.PublishJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(publishedJob)
}

// CloseJob marks a job as closed
// POST /api/jobs/:id/close
func (h *Handlers) CloseJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	closedJob, err := h.service.CloseJob(c.Context(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(closedJob)
}

// DeleteJob deletes a job
// DELETE /api/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteJob(c.Context(), jobID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetJobStats retrieves statistics for a job
// GET /api/jobs/:id/stats
func (h *Handlers) GetJobStats(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID == "" {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	stats, err := h.service.GetJobStats(c.Context(), jobID)
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

// RegisterRoutes registers all job routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/jobs")

	api.Get("/", handlers.ListJobs)
	api.Get("/published", handlers.ListPublishedJobs)
	api.Get("/by-recruiter/:recruiterId", handlers.ListJobsByRecruiter)
	api.Get("/:id", handlers.GetJobByID)
	api.Get("/:id/stats", handlers.GetJobStats)

	api.Post("/", handlers.CreateJob)
	api.Put("/:id", handlers.UpdateJob)
	api.Post("/:id/description-document", handlers.UploadDescriptionDocument)
	api.Post("/:id/publish", handlers.PublishJob)
	api.Post("/:id/close", handlers.CloseJob)
	api.Delete("/:id", handlers.DeleteJob)
}
