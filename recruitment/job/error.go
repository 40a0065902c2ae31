package job

import (
	"net/http"

	"github.com/hirematch/engine/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeJobAlreadyExists   = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Job already exists")
	CodeJobHasApplications = ErrRegistry.Register("HAS_APPLICATIONS", errx.TypeBusiness, http.StatusConflict, "Cannot delete job with applications")
	CodeCannotPublish      = ErrRegistry.Register("CANNOT_PUBLISH", errx.TypeBusiness, http.StatusBadRequest, "Job cannot be published in current state")
	CodeInvalidJobData     = ErrRegistry.Register("INVALID_DATA", errx.TypeValidation, http.StatusBadRequest, "Invalid job data")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeJobAlreadyExists)
}

func ErrJobHasApplications() *errx.Error {
	return ErrRegistry.New(CodeJobHasApplications)
}

func ErrCannotPublish() *errx.Error {
	return ErrRegistry.New(CodeCannotPublish)
}

func ErrInvalidJobData() *errx.Error {
	return ErrRegistry.New(CodeInvalidJobData)
}
