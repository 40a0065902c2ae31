package candidate

import (
	"net/http"

	"github.com/hirematch/engine/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound        = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate not found")
	CodeEmailAlreadyExists       = ErrRegistry.Register("EMAIL_ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Email already registered")
	CodeInvalidEmail             = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email format")
	CodeCandidateArchived        = ErrRegistry.Register("ARCHIVED", errx.TypeBusiness, http.StatusForbidden, "Candidate is archived")
	CodeCandidateNotArchived     = ErrRegistry.Register("NOT_ARCHIVED", errx.TypeBusiness, http.StatusBadRequest, "Candidate is not archived")
	CodeCandidateAlreadyArchived = ErrRegistry.Register("ALREADY_ARCHIVED", errx.TypeBusiness, http.StatusConflict, "Candidate is already archived")
	CodeCandidateHasApplications = ErrRegistry.Register("HAS_APPLICATIONS", errx.TypeBusiness, http.StatusConflict, "Cannot delete candidate with applications")
	CodeCandidateInactive        = ErrRegistry.Register("INACTIVE", errx.TypeBusiness, http.StatusForbidden, "Candidate is inactive")
	CodeInvalidRequest           = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrEmailAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeEmailAlreadyExists)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrCandidateArchived() *errx.Error {
	return ErrRegistry.New(CodeCandidateArchived)
}

func ErrCandidateNotArchived() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotArchived)
}

func ErrCandidateAlreadyArchived() *errx.Error {
	return ErrRegistry.New(CodeCandidateAlreadyArchived)
}

func ErrCandidateHasApplications() *errx.Error {
	return ErrRegistry.New(CodeCandidateHasApplications)
}

func ErrCandidateInactive() *errx.Error {
	return ErrRegistry.New(CodeCandidateInactive)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
