package candidate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/pkg/kernel"
)

func activeCandidate() *Candidate {
	return &Candidate{
		ID:        kernel.CandidateID("cand-1"),
		Email:     kernel.Email("jane@example.com"),
		FirstName: kernel.FirstName("Jane"),
		LastName:  kernel.LastName("Smith"),
		Status:    CandidateStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestArchiveLifecycle(t *testing.T) {
	c := activeCandidate()
	require.True(t, c.CanApplyToJob())

	require.NoError(t, c.Archive())
	assert.True(t, c.IsArchived())
	assert.NotNil(t, c.ArchivedAt)
	assert.False(t, c.CanApplyToJob())

	// Archiving twice is rejected.
	assert.Error(t, c.Archive())

	require.NoError(t, c.Unarchive())
	assert.True(t, c.IsActive())
	assert.Nil(t, c.ArchivedAt)

	// Unarchiving an active candidate is rejected.
	assert.Error(t, c.Unarchive())
}

func TestDeactivateBlocksApplications(t *testing.T) {
	c := activeCandidate()
	c.Deactivate()
	assert.False(t, c.CanApplyToJob())

	c.Activate()
	assert.True(t, c.CanApplyToJob())
}

func TestUpdateProfileIgnoresEmptyFields(t *testing.T) {
	c := activeCandidate()
	c.UpdateProfile("", "Doe", "Frontend Developer")

	assert.Equal(t, kernel.FirstName("Jane"), c.FirstName)
	assert.Equal(t, kernel.LastName("Doe"), c.LastName)
	assert.Equal(t, "Frontend Developer", c.Headline)
}

func TestGetFullName(t *testing.T) {
	c := activeCandidate()
	assert.Equal(t, "Jane Smith", c.GetFullName())
}
