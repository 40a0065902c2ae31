package matching

import (
	"net/http"

	"github.com/hirematch/engine/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("MATCHING")

// Error codes
var (
	CodeJobNotFound            = ErrRegistry.Register("JOB_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeApplicationsLoadFailed = ErrRegistry.Register("APPLICATIONS_LOAD_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load applications for job")
	CodeResultNotFound         = ErrRegistry.Register("RESULT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Match result not found")
	CodeResultSaveFailed       = ErrRegistry.Register("RESULT_SAVE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to save match result")
	CodeQueueEnqueueFailed     = ErrRegistry.Register("QUEUE_ENQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to enqueue matching run")
	CodeQueueDequeueFailed     = ErrRegistry.Register("QUEUE_DEQUEUE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to dequeue matching run")
	CodeInvalidRequest         = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrApplicationsLoadFailed() *errx.Error {
	return ErrRegistry.New(CodeApplicationsLoadFailed)
}

func ErrResultNotFound() *errx.Error {
	return ErrRegistry.New(CodeResultNotFound)
}

func ErrResultSaveFailed() *errx.Error {
	return ErrRegistry.New(CodeResultSaveFailed)
}

func ErrQueueEnqueueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueEnqueueFailed)
}

func ErrQueueDequeueFailed() *errx.Error {
	return ErrRegistry.New(CodeQueueDequeueFailed)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
