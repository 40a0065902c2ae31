package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/pkg/kernel"
)

func pendingApplication() *Application {
	return &Application{
		ID:          kernel.ApplicationID("app-1"),
		JobID:       kernel.JobID("job-1"),
		ApplicantID: kernel.CandidateID("cand-1"),
		Status:      ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{"pending to reviewing", ApplicationStatusPending, ApplicationStatusReviewing, true},
		{"pending to rejected", ApplicationStatusPending, ApplicationStatusRejected, true},
		{"pending to accepted skips interview", ApplicationStatusPending, ApplicationStatusAccepted, false},
		{"reviewing to interviewed", ApplicationStatusReviewing, ApplicationStatusInterviewed, true},
		{"interviewed to accepted", ApplicationStatusInterviewed, ApplicationStatusAccepted, true},
		{"accepted is terminal", ApplicationStatusAccepted, ApplicationStatusReviewing, false},
		{"rejected is terminal", ApplicationStatusRejected, ApplicationStatusPending, false},
		{"withdrawn is terminal", ApplicationStatusWithdrawn, ApplicationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := pendingApplication()
			app.Status = tt.from
			assert.Equal(t, tt.allowed, app.CanUpdateStatus(tt.to))
		})
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	app := pendingApplication()

	err := app.UpdateStatus(ApplicationStatusAccepted)
	require.Error(t, err)
	assert.Equal(t, ApplicationStatusPending, app.Status)

	require.NoError(t, app.UpdateStatus(ApplicationStatusReviewing))
	assert.Equal(t, ApplicationStatusReviewing, app.Status)
}

func TestWithdraw(t *testing.T) {
	app := pendingApplication()
	require.NoError(t, app.Withdraw())
	assert.Equal(t, ApplicationStatusWithdrawn, app.Status)
	assert.False(t, app.IsActive())

	accepted := pendingApplication()
	accepted.Status = ApplicationStatusAccepted
	assert.Error(t, accepted.Withdraw())
	assert.Equal(t, ApplicationStatusAccepted, accepted.Status)
}

func TestHasResume(t *testing.T) {
	app := pendingApplication()
	assert.False(t, app.HasResume())

	empty := kernel.BucketURL("")
	app.ResumeURL = &empty
	assert.False(t, app.HasResume())

	url := kernel.BucketURL("resumes/app-1/resume.pdf")
	app.ResumeURL = &url
	assert.True(t, app.HasResume())
}

func TestRecordMatchScore(t *testing.T) {
	app := pendingApplication()
	assert.False(t, app.HasBeenMatched())

	matchedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	app.RecordMatchScore(87.5, matchedAt)

	require.True(t, app.HasBeenMatched())
	assert.Equal(t, 87.5, *app.MatchScore)
	assert.Equal(t, matchedAt, *app.LastMatchedAt)
	assert.Equal(t, matchedAt, app.UpdatedAt)
}
