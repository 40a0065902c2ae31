package matching

import (
	"time"

	"github.com/hirematch/engine/pkg/kernel"
)

// Sentinel scores assigned by the orchestrator when an application cannot be
// evaluated. Their exact values are policy, not invariants: missing-resume
// must stay distinguishable from a processing failure, and both must rank
// below any genuinely evaluated application.
const (
	// ScoreMissingResume is assigned when an application has no resume
	// attached ("cannot evaluate", distinct from "evaluated poorly").
	ScoreMissingResume = 10.0

	// ScoreProcessingFailed is assigned when scoring a single application
	// fails; lower than ScoreMissingResume so failures sort last.
	ScoreProcessingFailed = 5.0
)

// TextSource marks how a document's text was obtained, so low-confidence
// recoveries stay distinguishable from genuine content downstream.
type TextSource string

const (
	// TextSourceParsed means the text came from a real document parser.
	TextSourceParsed TextSource = "parsed"
	// TextSourceScanned means the text came from the low-confidence binary
	// literal scan.
	TextSourceScanned TextSource = "scanned"
	// TextSourceFallback means the text is pseudo-text derived from the
	// document locator or job metadata, not from document content.
	TextSourceFallback TextSource = "fallback"
)

// MatchBreakdown holds the five weighted sub-scores and the overall score,
// each in [0,100] and rounded to two decimal places.
type MatchBreakdown struct {
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	KeywordMatch    float64 `json:"keyword_match"`
	SectionMatch    float64 `json:"section_match"`
	OverallMatch    float64 `json:"overall_match"`
}

// MatchDetails carries the extracted resume signals and improvement
// suggestions behind a score.
type MatchDetails struct {
	ExtractedSkills []string `json:"extracted_skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`
	MatchedSkills   []string `json:"matched_skills"`
	Suggestions     []string `json:"suggestions"`
}

// Evaluation is the pure output of scoring one resume against one job.
type Evaluation struct {
	Score     float64        `json:"score"`
	Breakdown MatchBreakdown `json:"breakdown"`
	Details   MatchDetails   `json:"details"`
}

// MatchResult is one application's outcome of a matching run. Results are
// immutable once created; the caller owns persistence.
type MatchResult struct {
	ID               string               `db:"id" json:"id"`
	JobID            kernel.JobID         `db:"job_id" json:"job_id"`
	ApplicationID    kernel.ApplicationID `db:"application_id" json:"application_id"`
	Score            float64              `db:"score" json:"score"`
	Breakdown        MatchBreakdown       `db:"breakdown" json:"breakdown"`
	Details          MatchDetails         `db:"details" json:"details"`
	ResumeTextSource TextSource           `db:"resume_text_source" json:"resume_text_source"`
	MatchedAt        time.Time            `db:"matched_at" json:"matched_at"`
}

// MatchRun is a queued request to score every application of a job.
type MatchRun struct {
	ID          kernel.MatchRunID `json:"id"`
	JobID       kernel.JobID      `json:"job_id"`
	RequestedAt time.Time         `json:"requested_at"`
}
