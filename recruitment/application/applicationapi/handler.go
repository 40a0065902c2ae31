package applicationapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/application"
	"github.com/hirematch/engine/recruitment/application/applicationsrv"
)

// Handlers provides HTTP handlers for application operations
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SubmitApplication creates a new application
// POST /api/applications
func (h *Handlers) SubmitApplication(c *fiber.Ctx) error {
	var req application.SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	newApplication, err := h.service.SubmitApplication(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newApplication)
}

// GetApplicationByID retrieves an application by ID
// GET /api/applications/:id
func (h *Handlers) GetApplicationByID(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetApplicationByID(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// UploadResume uploads a resume document for an application
// POST /api/applications/:id/resume
func (h *Handlers) UploadResume(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("resume", "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("resume", err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("resume", err.Error())
	}

	resp, err := h.service.UploadResume(c.Context(), application.UploadResumeRequest{
		ApplicationID: applicationID,
		FileData:      data,
		FileName:      fileHeader.Filename,
		FileSize:      fileHeader.Size,
		ContentType:   fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListApplicationsByJob retrieves applications for a job, best match first
// GET /api/jobs/:jobId/applications
func (h *Handlers) ListApplicationsByJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("jobId"))
	if jobID == "" {
		return application.ErrInvalidRequest().WithDetail("job_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListApplicationsByJob(c.Context(), jobID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// ListApplicationsByApplicant retrieves an applicant's applications
// GET /api/applications/by-applicant/:applicantId
func (h *Handlers) ListApplicationsByApplicant(c *fiber.Ctx) error {
	applicantID := kernel.CandidateID(c.Params("applicantId"))
	if applicantID == "" {
		return application.ErrInvalidRequest().WithDetail("applicant_id", "missing or empty")
	}

	pagination := parsePaginationOptions(c)

	apps, err := h.service.ListApplicationsByApplicant(c.Context(), applicantID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(apps)
}

// UpdateApplicationStatus transitions an application to a new status
// PATCH /api/applications/:id/status
func (h *Handlers) UpdateApplicationStatus(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateApplicationStatus(c.Context(), applicationID, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// WithdrawApplication withdraws an application
// POST /api/applications/:id/withdraw
func (h *Handlers) WithdrawApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	withdrawn, err := h.service.WithdrawApplication(c.Context(), applicationID)
	if err != nil {
		return err
	}

	return c.JSON(withdrawn)
}

// DeleteApplication deletes an application
// DELETE /api/applications/:id
func (h *Handlers) DeleteApplication(c *fiber.Ctx) error {
	applicationID := kernel.ApplicationID(c.Params("id"))
	if applicationID == "" {
		return application.ErrApplicationNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteApplication(c.Context(), applicationID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
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

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	api := app.Group("/api/applications")

	api.Post("/", handlers.SubmitApplication)
	api.Get("/by-applicant/:applicantId", handlers.ListApplicationsByApplicant)
	api.Get("/:id", handlers.GetApplicationByID)
	api.Post("/:id/resume", handlers.UploadResume)
	api.Patch("/:id/status", handlers.UpdateApplicationStatus)
	api.Post("/:id/withdraw", handlers.WithdrawApplication)
	api.Delete("/:id", handlers.DeleteApplication)

	// Job-scoped listing, ranked by match score
	app.Get("/api/jobs/:jobId/applications", handlers.ListApplicationsByJob)
}
