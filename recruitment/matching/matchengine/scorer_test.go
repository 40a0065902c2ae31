package matchengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirematch/engine/recruitment/matching"
)

// testEngine pins the clock so open-ended date ranges ("2019-present")
// resolve the same way on every run.
func testEngine() *Engine {
	return NewWithClock(func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
}

const sampleJob = `Senior Frontend Developer
We are looking for a developer with React and Node.js expertise.
Requires 3 years experience building web applications with JavaScript and TypeScript.
Bachelor degree in computer science preferred.`

func TestScoreEndToEnd(t *testing.T) {
	eval := testEngine().Score(sampleJob, sampleResume, []string{"React", "Node.js"})

	assert.Greater(t, eval.Score, 80.0)
	assert.LessOrEqual(t, eval.Score, 100.0)

	assert.Equal(t, 100.0, eval.Breakdown.SkillsMatch)
	assert.Equal(t, 100.0, eval.Breakdown.ExperienceMatch)
	assert.Equal(t, 100.0, eval.Breakdown.SectionMatch)
	assert.Greater(t, eval.Breakdown.KeywordMatch, 0.0)

	assert.Equal(t, []string{"javascript", "typescript", "html", "css", "react", "node.js", "git"}, eval.Details.ExtractedSkills)
	assert.Contains(t, eval.Details.MatchedSkills, "react")
	assert.Contains(t, eval.Details.MatchedSkills, "node.js")
	assert.Equal(t, 5, eval.Details.ExperienceYears)
	assert.Empty(t, eval.Details.Suggestions)
}

func TestScoreIdempotent(t *testing.T) {
	e := testEngine()

	first := e.Score(sampleJob, sampleResume, []string{"React"})
	second := e.Score(sampleJob, sampleResume, []string{"React"})

	assert.Equal(t, first, second)
}

func TestScoreEmptyInputs(t *testing.T) {
	eval := testEngine().Score("", "", nil)

	// No skill signal on either side, neutral experience and education,
	// no keyword overlap, no sections.
	assert.Equal(t, 0.0, eval.Breakdown.SkillsMatch)
	assert.Equal(t, 50.0, eval.Breakdown.ExperienceMatch)
	assert.Equal(t, 70.0, eval.Breakdown.EducationMatch)
	assert.Equal(t, 0.0, eval.Breakdown.KeywordMatch)
	assert.Equal(t, 0.0, eval.Breakdown.SectionMatch)
	assert.Equal(t, 23.0, eval.Score)
}

func TestScoreBounds(t *testing.T) {
	inputs := []struct{ job, resume string }{
		{"", ""},
		{sampleJob, ""},
		{"", sampleResume},
		{sampleJob, sampleResume},
		{"!!!", "???"},
	}

	for _, in := range inputs {
		eval := testEngine().Score(in.job, in.resume, []string{"react"})

		for _, sub := range []float64{
			eval.Breakdown.SkillsMatch,
			eval.Breakdown.ExperienceMatch,
			eval.Breakdown.EducationMatch,
			eval.Breakdown.KeywordMatch,
			eval.Breakdown.SectionMatch,
			eval.Score,
		} {
			assert.GreaterOrEqual(t, sub, 0.0)
			assert.LessOrEqual(t, sub, 100.0)
		}
	}
}

func TestScoreWeightedSumIdentity(t *testing.T) {
	eval := testEngine().Score(sampleJob, sampleResume, []string{"React", "Go"})

	weighted := eval.Breakdown.SkillsMatch*weightSkills +
		eval.Breakdown.ExperienceMatch*weightExperience +
		eval.Breakdown.EducationMatch*weightEducation +
		eval.Breakdown.KeywordMatch*weightKeywords +
		eval.Breakdown.SectionMatch*weightSections

	assert.InDelta(t, eval.Score, weighted, 0.02)
	assert.Equal(t, eval.Score, eval.Breakdown.OverallMatch)
}

func TestScoreSkillsConsolation(t *testing.T) {
	job := "We are hiring a motivated team player to join our growing company."
	resume := "Skills\nReact, Python, Docker"

	eval := testEngine().Score(job, resume, nil)

	require.Empty(t, effectiveRequiredSkills(nil, extractSkills(job)))
	assert.Equal(t, float64(skillsConsolationScore), eval.Breakdown.SkillsMatch)
}

func TestEffectiveRequiredSkills(t *testing.T) {
	got := effectiveRequiredSkills([]string{" React ", "NODE.JS", ""}, []string{"react", "typescript"})

	assert.Equal(t, []string{"react", "node.js", "typescript"}, got)
}

func TestScoreExperienceTiers(t *testing.T) {
	assert.Equal(t, 50.0, scoreExperience(0, 12))
	assert.Equal(t, 100.0, scoreExperience(5, 7))
	assert.Equal(t, 100.0, scoreExperience(5, 5))
	assert.Equal(t, 80.0, scoreExperience(10, 7))
	assert.InDelta(t, 14.0, scoreExperience(10, 2), 1e-9)
	assert.Equal(t, 20.0, scoreExperience(10, 0))
}

func TestScoreEducationTiers(t *testing.T) {
	assert.Equal(t, 70.0, scoreEducation(nil, nil))
	assert.Equal(t, 30.0, scoreEducation(nil, []string{"bachelor"}))
	assert.Equal(t, 50.0, scoreEducation([]string{"bachelor", "computer science"}, []string{"bachelor", "degree"}))
	assert.Equal(t, 100.0, scoreEducation([]string{"bachelor"}, []string{"bachelor"}))
}

func TestScoreSectionCompleteness(t *testing.T) {
	full := map[string]string{
		matching.SectionContact:    "jane.doe@example.com | 555-0134",
		matching.SectionSummary:    "Frontend developer with a focus on accessibility.",
		matching.SectionExperience: "Senior Developer at Acme since 2019.",
		matching.SectionEducation:  "Bachelor of Science, State University",
		matching.SectionSkills:     "React, Node.js, TypeScript, CSS",
	}
	assert.Equal(t, 100.0, scoreSectionCompleteness(full))

	onlyExperience := map[string]string{
		matching.SectionExperience: "Senior Developer at Acme since 2019.",
	}
	assert.Equal(t, 30.0, scoreSectionCompleteness(onlyExperience))

	// A section at exactly the threshold does not count.
	atThreshold := map[string]string{
		matching.SectionSkills: "12345678901234567890",
	}
	assert.Equal(t, 0.0, scoreSectionCompleteness(atThreshold))
}

func TestBuildSuggestionsAll(t *testing.T) {
	got := buildSuggestions([]string{"react", "node.js"}, nil, []string{"java"}, 5, 2)

	assert.Equal(t, []string{
		"Consider highlighting these skills: react, node.js",
		"Job requires 5 years experience, emphasize relevant projects",
		"Add more technical skills to your resume",
	}, got)
}

func TestBuildSuggestionsMissingSkillsCapped(t *testing.T) {
	required := []string{"go", "rust", "scala", "elixir", "haskell"}

	got := buildSuggestions(required, nil, []string{"a", "b", "c", "d", "e"}, 0, 0)

	assert.Equal(t, []string{"Consider highlighting these skills: go, rust, scala"}, got)
}

func TestBuildSuggestionsNone(t *testing.T) {
	matched := []string{"react", "node.js"}
	resumeSkills := []string{"react", "node.js", "css", "html", "git"}

	assert.Empty(t, buildSuggestions([]string{"react", "node.js"}, matched, resumeSkills, 3, 5))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, round2(200.0/3))
	assert.Equal(t, 14.0, round2(0.2*70))
	assert.Equal(t, 0.0, round2(0))
}
