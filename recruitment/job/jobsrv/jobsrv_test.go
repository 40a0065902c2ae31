package jobsrv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/job"
	"github.com/hirematch/engine/recruitment/matching"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type fakeJobRepo struct {
	jobs             map[kernel.JobID]*job.Job
	applicationCount int64
}

func newFakeJobRepo(jobs ...*job.Job) *fakeJobRepo {
	repo := &fakeJobRepo{jobs: make(map[kernel.JobID]*job.Job)}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (r *fakeJobRepo) Create(ctx context.Context, j *job.Job) error {
	r.jobs[j.ID] = j
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, id kernel.JobID, j *job.Job) error {
	r.jobs[id] = j
	return nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	return j, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id kernel.JobID) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}

func (r *fakeJobRepo) ListByRecruiterID(ctx context.Context, id kernel.UserID, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}

func (r *fakeJobRepo) ListPublished(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return nil, nil
}

func (r *fakeJobRepo) Exists(ctx context.Context, id kernel.JobID) (bool, error) {
	_, ok := r.jobs[id]
	return ok, nil
}

func (r *fakeJobRepo) CountApplications(ctx context.Context, id kernel.JobID) (int64, error) {
	return r.applicationCount, nil
}

type fakeMatchResultRepo struct {
	resultsByJob map[kernel.JobID]int
}

func newFakeMatchResultRepo() *fakeMatchResultRepo {
	return &fakeMatchResultRepo{resultsByJob: make(map[kernel.JobID]int)}
}

func (r *fakeMatchResultRepo) Save(ctx context.Context, result *matching.MatchResult) error {
	r.resultsByJob[result.JobID]++
	return nil
}

func (r *fakeMatchResultRepo) GetByApplicationID(ctx context.Context, id kernel.ApplicationID) (*matching.MatchResult, error) {
	return nil, matching.ErrResultNotFound()
}

func (r *fakeMatchResultRepo) ListByJobID(ctx context.Context, jobID kernel.JobID) ([]matching.MatchResult, error) {
	return nil, nil
}

func (r *fakeMatchResultRepo) DeleteByJobID(ctx context.Context, jobID kernel.JobID) error {
	delete(r.resultsByJob, jobID)
	return nil
}

// ============================================================================
// Tests
// ============================================================================

func storedJob() *job.Job {
	return &job.Job{
		ID:          kernel.JobID("job-1"),
		Title:       kernel.JobTitle("Backend Engineer"),
		Company:     "Acme Corp",
		Description: kernel.JobDescription("Build and operate services."),
		RecruiterID: kernel.UserID("rec-1"),
		Status:      job.JobStatusDraft,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestDeleteJobRemovesMatchResults(t *testing.T) {
	jobEntity := storedJob()
	jobRepo := newFakeJobRepo(jobEntity)
	results := newFakeMatchResultRepo()
	results.resultsByJob[jobEntity.ID] = 3

	svc := NewJobService(jobRepo, results, nil)

	require.NoError(t, svc.DeleteJob(context.Background(), jobEntity.ID))

	_, gone := jobRepo.jobs[jobEntity.ID]
	assert.False(t, gone)
	assert.NotContains(t, results.resultsByJob, jobEntity.ID)
}

func TestDeleteJobBlockedByApplications(t *testing.T) {
	jobEntity := storedJob()
	jobRepo := newFakeJobRepo(jobEntity)
	jobRepo.applicationCount = 2
	results := newFakeMatchResultRepo()
	results.resultsByJob[jobEntity.ID] = 2

	svc := NewJobService(jobRepo, results, nil)

	require.Error(t, svc.DeleteJob(context.Background(), jobEntity.ID))

	// Neither the job nor its results were touched.
	assert.Contains(t, jobRepo.jobs, jobEntity.ID)
	assert.Equal(t, 2, results.resultsByJob[jobEntity.ID])
}
