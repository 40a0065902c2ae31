package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/pkg/kernel"
)

func draftJob() *Job {
	return &Job{
		ID:             kernel.JobID("job-1"),
		Title:          kernel.JobTitle("Backend Engineer"),
		Company:        "Acme Corp",
		Location:       "Lima",
		Description:    kernel.JobDescription("Build and operate services."),
		RequiredSkills: []string{"go", "postgres"},
		RecruiterID:    kernel.UserID("rec-1"),
		Status:         JobStatusDraft,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func TestPublish(t *testing.T) {
	j := draftJob()
	require.True(t, j.CanBePublished())

	require.NoError(t, j.Publish())
	assert.True(t, j.IsPublished())
	require.NotNil(t, j.PublishedAt)

	// Publishing twice is rejected.
	assert.Error(t, j.Publish())

	j.Close()
	assert.True(t, j.IsClosed())
	assert.Error(t, j.Publish())
}

func TestMetadataText(t *testing.T) {
	j := draftJob()
	assert.Equal(t, "Backend Engineer Acme Corp Lima go postgres", j.MetadataText())

	j.RequiredSkills = nil
	j.Location = ""
	assert.Equal(t, "Backend Engineer Acme Corp", j.MetadataText())
}

func TestHasDescriptionDocument(t *testing.T) {
	j := draftJob()
	assert.False(t, j.HasDescriptionDocument())

	url := kernel.BucketURL("job-descriptions/job-1/doc.pdf")
	j.JobDescriptionURL = &url
	assert.True(t, j.HasDescriptionDocument())
}

func TestUpdateDetailsIgnoresEmptyFields(t *testing.T) {
	j := draftJob()
	j.UpdateDetails("", "New description", "", "Remote")

	assert.Equal(t, kernel.JobTitle("Backend Engineer"), j.Title)
	assert.Equal(t, kernel.JobDescription("New description"), j.Description)
	assert.Equal(t, "Acme Corp", j.Company)
	assert.Equal(t, "Remote", j.Location)
}
