package application

import (
	"slices"
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// ApplicationStatus represents the status of an application
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"     // Initial submission
	ApplicationStatusReviewing   ApplicationStatus = "REVIEWING"   // Being reviewed
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED" // Interview completed
	ApplicationStatusAccepted    ApplicationStatus = "ACCEPTED"    // Accepted
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"    // Rejected
	ApplicationStatusWithdrawn   ApplicationStatus = "WITHDRAWN"   // Withdrawn by applicant
)

type Application struct {
	ID            kernel.ApplicationID `db:"id" json:"id"`
	JobID         kernel.JobID         `db:"job_id" json:"job_id"`
	ApplicantID   kernel.CandidateID   `db:"applicant_id" json:"applicant_id"`
	CoverLetter   *string              `db:"cover_letter" json:"cover_letter,omitempty"`
	ResumeURL     *kernel.BucketURL    `db:"resume_url" json:"resume_url,omitempty"`
	Status        ApplicationStatus    `db:"status" json:"status"`
	MatchScore    *float64             `db:"match_score" json:"match_score,omitempty"`
	LastMatchedAt *time.Time           `db:"last_matched_at" json:"last_matched_at,omitempty"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the application is in an active state
func (a *Application) IsActive() bool {
	return a.Status != ApplicationStatusRejected &&
		a.Status != ApplicationStatusWithdrawn
}

// HasResume checks if a resume document is attached
func (a *Application) HasResume() bool {
	return a.ResumeURL != nil && !a.ResumeURL.IsEmpty()
}

// HasBeenMatched checks if the application has been scored against its job
func (a *Application) HasBeenMatched() bool {
	return a.MatchScore != nil
}

// CanUpdateStatus checks if status can be changed
func (a *Application) CanUpdateStatus(newStatus ApplicationStatus) bool {
	// Define valid state transitions
	validTransitions := map[ApplicationStatus][]ApplicationStatus{
		ApplicationStatusPending: {
			ApplicationStatusReviewing,
			ApplicationStatusRejected,
			ApplicationStatusWithdrawn,
		},
		ApplicationStatusReviewing: {
			ApplicationStatusInterviewed,
			ApplicationStatusRejected,
			ApplicationStatusWithdrawn,
		},
		ApplicationStatusInterviewed: {
			ApplicationStatusAccepted,
			ApplicationStatusRejected,
			ApplicationStatusWithdrawn,
		},
	}

	allowedStatuses, ok := validTransitions[a.Status]
	if !ok {
		return false // Current status doesn't allow transitions
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// UpdateStatus updates the application status
func (a *Application) UpdateStatus(newStatus ApplicationStatus) error {
	if !a.CanUpdateStatus(newStatus) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", a.Status).
			WithDetail("new_status", newStatus)
	}

	a.Status = newStatus
	a.UpdatedAt = time.Now()
	return nil
}

// RecordMatchScore stores the outcome of a matching run on the application
func (a *Application) RecordMatchScore(score float64, matchedAt time.Time) {
	a.MatchScore = &score
	a.LastMatchedAt = &matchedAt
	a.UpdatedAt = matchedAt
}

// Withdraw marks the application as withdrawn
func (a *Application) Withdraw() error {
	if a.Status == ApplicationStatusAccepted || a.Status == ApplicationStatusRejected {
		return ErrCannotWithdraw().
			WithDetail("status", a.Status).
			WithDetail("message", "Cannot withdraw accepted or rejected applications")
	}

	a.Status = ApplicationStatusWithdrawn
	a.UpdatedAt = time.Now()
	return nil
}
