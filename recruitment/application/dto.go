package application

import (
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// SubmitApplicationRequest - DTO for submitting a new application
type SubmitApplicationRequest struct {
	JobID       kernel.JobID       `json:"job_id" validate:"required"`
	ApplicantID kernel.CandidateID `json:"applicant_id" validate:"required"`
	CoverLetter *string            `json:"cover_letter,omitempty"`
}

// UploadResumeRequest - DTO for uploading a resume document
type UploadResumeRequest struct {
	ApplicationID kernel.ApplicationID `json:"application_id" validate:"required"`
	FileData      []byte               `json:"-"` // File data, not serialized
	FileName      string               `json:"file_name" validate:"required"`
	FileSize      int64                `json:"file_size" validate:"required,max=10485760"` // 10MB max
	ContentType   string               `json:"content_type" validate:"required"`
}

// UpdateStatusRequest - Request to update application status
type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required"`
	Reason string            `json:"reason,omitempty"`
}

// Response type alias for paginated applications
type PaginatedApplicationsResponse = kernel.Paginated[ApplicationResponse]

// ApplicationResponse - DTO for returning application data
type ApplicationResponse struct {
	ID            kernel.ApplicationID `json:"id"`
	JobID         kernel.JobID         `json:"job_id"`
	ApplicantID   kernel.CandidateID   `json:"applicant_id"`
	CoverLetter   *string              `json:"cover_letter,omitempty"`
	ResumeURL     *kernel.BucketURL    `json:"resume_url,omitempty"`
	Status        ApplicationStatus    `json:"status"`
	MatchScore    *float64             `json:"match_score,omitempty"`
	LastMatchedAt *time.Time           `json:"last_matched_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ToApplicationResponse maps a domain application to its response DTO
func ToApplicationResponse(a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		ApplicantID:   a.ApplicantID,
		CoverLetter:   a.CoverLetter,
		ResumeURL:     a.ResumeURL,
		Status:        a.Status,
		MatchScore:    a.MatchScore,
		LastMatchedAt: a.LastMatchedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// UploadResumeResponse - Response after uploading a resume
type UploadResumeResponse struct {
	ApplicationID kernel.ApplicationID `json:"application_id"`
	ResumeURL     kernel.BucketURL     `json:"resume_url"`
	FileName      string               `json:"file_name"`
	FileSize      int64                `json:"file_size"`
	UploadedAt    time.Time            `json:"uploaded_at"`
}

// WithdrawApplicationRequest - Request to withdraw an application
type WithdrawApplicationRequest struct {
	Reason string `json:"reason,omitempty"`
}
