package matchingsrv

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/pkg/kernel"
	"github.com/hirematch/engine/recruitment/application"
	"github.com/hirematch/engine/recruitment/job"
	"github.com/hirematch/engine/recruitment/matching"
	"github.com/hirematch/engine/recruitment/matching/matchengine"
)

// ============================================================================
// In-memory fakes
// ============================================================================

type fakeJobRepo struct {
	jobs map[kernel.JobID]*job.Job
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
	return 0, nil
}

type fakeApplicationRepo struct {
	apps    []*application.Application
	scores  map[kernel.ApplicationID]float64
	listErr error
}

func newFakeApplicationRepo(apps ...*application.Application) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:   apps,
		scores: make(map[kernel.ApplicationID]float64),
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, a *application.Application) error {
	r.apps = append(r.apps, a)
	return nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, id kernel.ApplicationID, a *application.Application) error {
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	for _, a := range r.apps {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, application.ErrApplicationNotFound()
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id kernel.ApplicationID) error {
	return nil
}

func (r *fakeApplicationRepo) ListByJobID(ctx context.Context, jobID kernel.JobID, p kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return nil, nil
}

func (r *fakeApplicationRepo) ListAllByJobID(ctx context.Context, jobID kernel.JobID) ([]*application.Application, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*application.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByApplicantID(ctx context.Context, id kernel.CandidateID, p kernel.PaginationOptions) (*kernel.Paginated[application.Application], error) {
	return nil, nil
}

func (r *fakeApplicationRepo) Exists(ctx context.Context, id kernel.ApplicationID) (bool, error) {
	return false, nil
}

func (r *fakeApplicationRepo) ExistsByJobAndApplicant(ctx context.Context, jobID kernel.JobID, applicantID kernel.CandidateID) (bool, error) {
	return false, nil
}

func (r *fakeApplicationRepo) UpdateResumeURL(ctx context.Context, id kernel.ApplicationID, url kernel.BucketURL) error {
	return nil
}

func (r *fakeApplicationRepo) UpdateMatchScore(ctx context.Context, id kernel.ApplicationID, score float64, matchedAt time.Time) error {
	r.scores[id] = score
	return nil
}

func (r *fakeApplicationRepo) CountByJobID(ctx context.Context, jobID kernel.JobID) (int64, error) {
	return int64(len(r.apps)), nil
}

type fakeResultRepo struct {
	saved   map[kernel.ApplicationID]*matching.MatchResult
	saveErr error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{saved: make(map[kernel.ApplicationID]*matching.MatchResult)}
}

func (r *fakeResultRepo) Save(ctx context.Context, result *matching.MatchResult) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[result.ApplicationID] = result
	return nil
}

func (r *fakeResultRepo) GetByApplicationID(ctx context.Context, id kernel.ApplicationID) (*matching.MatchResult, error) {
	result, ok := r.saved[id]
	if !ok {
		return nil, matching.ErrResultNotFound()
	}
	return result, nil
}

func (r *fakeResultRepo) ListByJobID(ctx context.Context, jobID kernel.JobID) ([]matching.MatchResult, error) {
	var out []matching.MatchResult
	for _, result := range r.saved {
		if result.JobID == jobID {
			out = append(out, *result)
		}
	}
	return out, nil
}

func (r *fakeResultRepo) DeleteByJobID(ctx context.Context, jobID kernel.JobID) error {
	return nil
}

type fakeFileReader struct {
	files map[string][]byte
}

func (f *fakeFileReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

type fakeQueue struct {
	items [][]byte
}

func (q *fakeQueue) Enqueue(ctx context.Context, run *matching.MatchRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	q.items = append(q.items, data)
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	if len(q.items) == 0 {
		return nil, nil
	}
	data := q.items[0]
	q.items = q.items[1:]
	return data, nil
}

func (q *fakeQueue) Size(ctx context.Context) (int64, error) {
	return int64(len(q.items)), nil
}

// ============================================================================
// Fixtures
// ============================================================================

const resumeDocument = `(Experienced frontend developer skilled in JavaScript, TypeScript and React with 5 years experience building web applications. Bachelor of Science in Computer Science.)`

func publishedJob() *job.Job {
	now := time.Now()
	return &job.Job{
		ID:             kernel.JobID("job-1"),
		Title:          kernel.JobTitle("Senior Frontend Developer"),
		Company:        "Acme Corp",
		Location:       "Remote",
		Description:    kernel.JobDescription("Senior Frontend Developer role. Requires 3 years experience building web applications with JavaScript, TypeScript and React. Bachelor degree in computer science preferred."),
		RequiredSkills: []string{"react", "typescript"},
		RecruiterID:    kernel.UserID("recruiter-1"),
		Status:         job.JobStatusPublished,
		PublishedAt:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func applicationWithResume(id, jobID, resumePath string) *application.Application {
	url := kernel.BucketURL(resumePath)
	return &application.Application{
		ID:          kernel.ApplicationID(id),
		JobID:       kernel.JobID(jobID),
		ApplicantID: kernel.CandidateID("candidate-" + id),
		ResumeURL:   &url,
		Status:      application.ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func applicationWithoutResume(id, jobID string) *application.Application {
	return &application.Application{
		ID:          kernel.ApplicationID(id),
		JobID:       kernel.JobID(jobID),
		ApplicantID: kernel.CandidateID("candidate-" + id),
		Status:      application.ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func newTestService(jobRepo *fakeJobRepo, appRepo *fakeApplicationRepo, results *fakeResultRepo, files *fakeFileReader, queue *fakeQueue) *Service {
	return NewService(jobRepo, appRepo, results, files, matchengine.New(), queue)
}

// ============================================================================
// Tests
// ============================================================================

func TestRunJobMatchingScoresEveryApplication(t *testing.T) {
	jobEntity := publishedJob()
	withResume := applicationWithResume("app-1", "job-1", "resumes/app-1/resume.pdf")
	withoutResume := applicationWithoutResume("app-2", "job-1")

	jobRepo := newFakeJobRepo(jobEntity)
	appRepo := newFakeApplicationRepo(withoutResume, withResume)
	results := newFakeResultRepo()
	files := &fakeFileReader{files: map[string][]byte{
		"resumes/app-1/resume.pdf": []byte(resumeDocument),
	}}

	svc := newTestService(jobRepo, appRepo, results, files, &fakeQueue{})

	resp, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, jobEntity.ID, resp.JobID)
	assert.NotEqual(t, matching.TextSourceFallback, resp.JobTextSource)

	// Results come back in application order, sentinel or not.
	first, second := resp.Results[0], resp.Results[1]
	assert.Equal(t, withoutResume.ID, first.ApplicationID)
	assert.Equal(t, matching.ScoreMissingResume, first.Score)
	assert.Equal(t, matching.ScoreMissingResume, first.Breakdown.OverallMatch)

	assert.Equal(t, withResume.ID, second.ApplicationID)
	assert.Greater(t, second.Score, matching.ScoreMissingResume)
	assert.NotEmpty(t, second.Details.MatchedSkills)

	// Both outcomes were persisted.
	assert.Len(t, results.saved, 2)
	assert.Equal(t, second.Score, appRepo.scores[withResume.ID])
	assert.Equal(t, matching.ScoreMissingResume, appRepo.scores[withoutResume.ID])
}

func TestRunJobMatchingPreservesApplicationOrder(t *testing.T) {
	jobEntity := publishedJob()
	apps := []*application.Application{
		applicationWithoutResume("app-a", "job-1"),
		applicationWithResume("app-b", "job-1", "resumes/app-b/resume.pdf"),
		applicationWithoutResume("app-c", "job-1"),
	}

	files := &fakeFileReader{files: map[string][]byte{
		"resumes/app-b/resume.pdf": []byte(resumeDocument),
	}}

	svc := newTestService(newFakeJobRepo(jobEntity), newFakeApplicationRepo(apps...), newFakeResultRepo(), files, &fakeQueue{})

	resp, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	// The high-scoring application must not be promoted past the sentinels.
	for i, app := range apps {
		assert.Equal(t, app.ID, resp.Results[i].ApplicationID)
	}
	assert.Greater(t, resp.Results[1].Score, resp.Results[0].Score)
}

func TestRunJobMatchingJobNotFound(t *testing.T) {
	svc := newTestService(newFakeJobRepo(), newFakeApplicationRepo(), newFakeResultRepo(), &fakeFileReader{}, &fakeQueue{})

	_, err := svc.RunJobMatching(context.Background(), kernel.JobID("missing"))
	require.Error(t, err)
}

func TestRunJobMatchingApplicationsLoadFailure(t *testing.T) {
	jobEntity := publishedJob()
	appRepo := newFakeApplicationRepo()
	appRepo.listErr = errors.New("connection reset")

	svc := newTestService(newFakeJobRepo(jobEntity), appRepo, newFakeResultRepo(), &fakeFileReader{}, &fakeQueue{})

	_, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.Error(t, err)
}

func TestRunJobMatchingUnreadableResumeDegrades(t *testing.T) {
	jobEntity := publishedJob()
	app := applicationWithResume("app-1", "job-1", "resumes/app-1/Jane_Smith-Frontend_Developer.pdf")

	// No stored object for the resume path.
	files := &fakeFileReader{files: map[string][]byte{}}
	appRepo := newFakeApplicationRepo(app)

	svc := newTestService(newFakeJobRepo(jobEntity), appRepo, newFakeResultRepo(), files, &fakeQueue{})

	resp, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)

	result := resp.Results[0]
	assert.Equal(t, matching.TextSourceFallback, result.ResumeTextSource)
	assert.Greater(t, result.Score, 0.0)
	assert.NotEqual(t, matching.ScoreMissingResume, result.Score)
	assert.NotEqual(t, matching.ScoreProcessingFailed, result.Score)
}

func TestRunJobMatchingMetadataFallback(t *testing.T) {
	jobEntity := publishedJob()
	jobEntity.Description = ""
	jobEntity.JobDescriptionURL = nil

	app := applicationWithResume("app-1", "job-1", "resumes/app-1/resume.pdf")
	files := &fakeFileReader{files: map[string][]byte{
		"resumes/app-1/resume.pdf": []byte(resumeDocument),
	}}

	svc := newTestService(newFakeJobRepo(jobEntity), newFakeApplicationRepo(app), newFakeResultRepo(), files, &fakeQueue{})

	resp, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)

	assert.Equal(t, matching.TextSourceFallback, resp.JobTextSource)
	require.Len(t, resp.Results, 1)
	assert.Greater(t, resp.Results[0].Score, 0.0)
}

func TestRunJobMatchingSaveFailureDoesNotAbort(t *testing.T) {
	jobEntity := publishedJob()
	app := applicationWithResume("app-1", "job-1", "resumes/app-1/resume.pdf")

	results := newFakeResultRepo()
	results.saveErr = errors.New("disk full")
	files := &fakeFileReader{files: map[string][]byte{
		"resumes/app-1/resume.pdf": []byte(resumeDocument),
	}}

	svc := newTestService(newFakeJobRepo(jobEntity), newFakeApplicationRepo(app), results, files, &fakeQueue{})

	resp, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Greater(t, resp.Results[0].Score, 0.0)
}

func TestEnqueueRun(t *testing.T) {
	jobEntity := publishedJob()
	queue := &fakeQueue{}

	svc := newTestService(newFakeJobRepo(jobEntity), newFakeApplicationRepo(), newFakeResultRepo(), &fakeFileReader{}, queue)

	resp, err := svc.EnqueueRun(context.Background(), jobEntity.ID)
	require.NoError(t, err)

	assert.Equal(t, jobEntity.ID, resp.JobID)
	assert.False(t, resp.RunID.IsEmpty())
	require.Len(t, queue.items, 1)

	var run matching.MatchRun
	require.NoError(t, json.Unmarshal(queue.items[0], &run))
	assert.Equal(t, jobEntity.ID, run.JobID)
	assert.Equal(t, resp.RunID, run.ID)
}

func TestEnqueueRunUnknownJob(t *testing.T) {
	svc := newTestService(newFakeJobRepo(), newFakeApplicationRepo(), newFakeResultRepo(), &fakeFileReader{}, &fakeQueue{})

	_, err := svc.EnqueueRun(context.Background(), kernel.JobID("missing"))
	require.Error(t, err)
}

func TestGetJobResults(t *testing.T) {
	jobEntity := publishedJob()
	app := applicationWithResume("app-1", "job-1", "resumes/app-1/resume.pdf")

	results := newFakeResultRepo()
	files := &fakeFileReader{files: map[string][]byte{
		"resumes/app-1/resume.pdf": []byte(resumeDocument),
	}}

	svc := newTestService(newFakeJobRepo(jobEntity), newFakeApplicationRepo(app), results, files, &fakeQueue{})

	_, err := svc.RunJobMatching(context.Background(), jobEntity.ID)
	require.NoError(t, err)

	stored, err := svc.GetJobResults(context.Background(), jobEntity.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, app.ID, stored[0].ApplicationID)
	assert.Greater(t, stored[0].Score, 0.0)
}
