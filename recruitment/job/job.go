package job

import (
	"strings"
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// JobStatus represents the status of a job posting
type JobStatus string

const (
	JobStatusDraft     JobStatus = "DRAFT"     // Created but not published
	JobStatusPublished JobStatus = "PUBLISHED" // Active and accepting applications
	JobStatusClosed    JobStatus = "CLOSED"    // No longer accepting applications
)

type Job struct {
	ID                kernel.JobID          `db:"id" json:"id"`
	Title             kernel.JobTitle       `db:"title" json:"title"`
	Company           string                `db:"company" json:"company"`
	Location          string                `db:"location" json:"location"`
	Description       kernel.JobDescription `db:"description" json:"description"`
	RequiredSkills    []string              `db:"required_skills" json:"required_skills"`
	SalaryRange       string                `db:"salary_range" json:"salary_range,omitempty"`
	JobDescriptionURL *kernel.BucketURL     `db:"job_description_url" json:"job_description_url,omitempty"`
	RecruiterID       kernel.UserID         `db:"recruiter_id" json:"recruiter_id"`
	Status            JobStatus             `db:"status" json:"status"`
	PublishedAt       *time.Time            `db:"published_at" json:"published_at,omitempty"`
	CreatedAt         time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsPublished checks if the job is currently published
func (j *Job) IsPublished() bool {
	return j.Status == JobStatusPublished
}

// IsDraft checks if the job is in draft status
func (j *Job) IsDraft() bool {
	return j.Status == JobStatusDraft
}

// IsClosed checks if the job is closed
func (j *Job) IsClosed() bool {
	return j.Status == JobStatusClosed
}

// CanBePublished checks if a job can be published
func (j *Job) CanBePublished() bool {
	return j.Status == JobStatusDraft
}

// Publish marks the job as published
func (j *Job) Publish() error {
	if !j.CanBePublished() {
		return ErrCannotPublish().WithDetail("current_status", j.Status)
	}

	now := time.Now()
	j.Status = JobStatusPublished
	j.PublishedAt = &now
	j.UpdatedAt = now
	return nil
}

// Close marks the job as closed
func (j *Job) Close() {
	j.Status = JobStatusClosed
	j.UpdatedAt = time.Now()
}

// HasDescriptionDocument checks if the job carries an uploaded description
// document in addition to its inline text
func (j *Job) HasDescriptionDocument() bool {
	return j.JobDescriptionURL != nil && !j.JobDescriptionURL.IsEmpty()
}

// MetadataText builds a bag-of-words stand-in for the job description from
// the posting's metadata. Used when a job has neither inline text nor a
// readable description document.
func (j *Job) MetadataText() string {
	parts := []string{
		string(j.Title),
		j.Company,
		j.Location,
		strings.Join(j.RequiredSkills, " "),
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// UpdateDetails updates job details
func (j *Job) UpdateDetails(title kernel.JobTitle, description kernel.JobDescription, company, location string) {
	if title != "" {
		j.Title = title
	}
	if description != "" {
		j.Description = description
	}
	if company != "" {
		j.Company = company
	}
	if location != "" {
		j.Location = location
	}
	j.UpdatedAt = time.Now()
}
