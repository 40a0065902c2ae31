package job

import (
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// CreateJobRequest - DTO for creating a new job
type CreateJobRequest struct {
	Title          kernel.JobTitle       `json:"title" validate:"required"`
	Company        string                `json:"company" validate:"required"`
	Location       string                `json:"location"`
	Description    kernel.JobDescription `json:"description" validate:"required"`
	RequiredSkills []string              `json:"required_skills,omitempty"`
	SalaryRange    string                `json:"salary_range,omitempty"`
	RecruiterID    kernel.UserID         `json:"recruiter_id" validate:"required"`
}

// UpdateJobRequest - DTO for updating an existing job
type UpdateJobRequest struct {
	Title          *kernel.JobTitle       `json:"title,omitempty"`
	Company        *string                `json:"company,omitempty"`
	Location       *string                `json:"location,omitempty"`
	Description    *kernel.JobDescription `json:"description,omitempty"`
	RequiredSkills *[]string              `json:"required_skills,omitempty"`
	SalaryRange    *string                `json:"salary_range,omitempty"`
}

// ListJobsRequest - DTO for listing all jobs
type ListJobsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[JobResponse]

// JobResponse - DTO for returning job data
type JobResponse struct {
	ID                kernel.JobID          `json:"id"`
	Title             kernel.JobTitle       `json:"title"`
	Company           string                `json:"company"`
	Location          string                `json:"location"`
	Description       kernel.JobDescription `json:"description"`
	RequiredSkills    []string              `json:"required_skills"`
	SalaryRange       string                `json:"salary_range,omitempty"`
	JobDescriptionURL *kernel.BucketURL     `json:"job_description_url,omitempty"`
	RecruiterID       kernel.UserID         `json:"recruiter_id"`
	Status            JobStatus             `json:"status"`
	PublishedAt       *time.Time            `json:"published_at,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ToJobResponse maps a domain job to its response DTO
func ToJobResponse(j *Job) JobResponse {
	return JobResponse{
		ID:                j.ID,
		Title:             j.Title,
		Company:           j.Company,
		Location:          j.Location,
		Description:       j.Description,
		RequiredSkills:    j.RequiredSkills,
		SalaryRange:       j.SalaryRange,
		JobDescriptionURL: j.JobDescriptionURL,
		RecruiterID:       j.RecruiterID,
		Status:            j.Status,
		PublishedAt:       j.PublishedAt,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

// JobStatsResponse - Statistics for a job
type JobStatsResponse struct {
	JobID             kernel.JobID    `json:"job_id"`
	Title             kernel.JobTitle `json:"title"`
	Status            JobStatus       `json:"status"`
	TotalApplications int64           `json:"total_applications"`
	IsPublished       bool            `json:"is_published"`
	CreatedAt         time.Time       `json:"created_at"`
}
