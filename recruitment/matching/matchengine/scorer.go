package matchengine

import (
	"fmt"
	"math"
	"strings"

	"github.com/hirematch/engine/recruitment/matching"
)

// Sub-score weights. They sum to exactly 1.00.
const (
	weightSkills     = 0.35
	weightExperience = 0.25
	weightEducation  = 0.15
	weightKeywords   = 0.15
	weightSections   = 0.10
)

// skillsConsolationScore is awarded when there are no required skills to
// match against but the resume does list skills. It is a skills-present
// consolation, not a true match.
const skillsConsolationScore = 40

// sectionWeights score resume completeness; a section counts when its
// extracted text exceeds minSectionLen characters.
var sectionWeights = map[string]float64{
	matching.SectionExperience: 30,
	matching.SectionSkills:     25,
	matching.SectionEducation:  20,
	matching.SectionSummary:    15,
	matching.SectionContact:    10,
}

const minSectionLen = 20

// maxSuggestedSkills bounds the skill-gap suggestion.
const maxSuggestedSkills = 3

// minResumeSkills is the threshold below which the engine advises adding
// more skills.
const minResumeSkills = 5

// Score evaluates a resume against a job and the job's declared required
// skills. It is pure and total: any pair of strings and any skill list
// (including empty) produces a well-formed evaluation with every sub-score
// and the overall score in [0,100], rounded to two decimal places.
func (e *Engine) Score(jobText, resumeText string, requiredSkills []string) matching.Evaluation {
	resume := e.ParseResume(resumeText)
	jobFeatures := e.ExtractJobFeatures(jobText)

	effectiveRequired := effectiveRequiredSkills(requiredSkills, jobFeatures.Skills)
	matched := matchSkills(resume.Skills, effectiveRequired)

	skillsScore := scoreSkills(matched, effectiveRequired, resume.Skills)
	experienceScore := scoreExperience(jobFeatures.ExperienceYears, resume.ExperienceYears)
	educationScore := scoreEducation(resume.Education, jobFeatures.Education)
	keywordScore := keywordSimilarity(extractKeywords(jobText), extractKeywords(resumeText))
	sectionScore := scoreSectionCompleteness(resume.Sections)

	overall := skillsScore*weightSkills +
		experienceScore*weightExperience +
		educationScore*weightEducation +
		keywordScore*weightKeywords +
		sectionScore*weightSections

	suggestions := buildSuggestions(effectiveRequired, matched, resume.Skills,
		jobFeatures.ExperienceYears, resume.ExperienceYears)

	return matching.Evaluation{
		Score: round2(overall),
		Breakdown: matching.MatchBreakdown{
			SkillsMatch:     round2(skillsScore),
			ExperienceMatch: round2(experienceScore),
			EducationMatch:  round2(educationScore),
			KeywordMatch:    round2(keywordScore),
			SectionMatch:    round2(sectionScore),
			OverallMatch:    round2(overall),
		},
		Details: matching.MatchDetails{
			ExtractedSkills: resume.Skills,
			ExperienceYears: resume.ExperienceYears,
			Education:       resume.Education,
			MatchedSkills:   matched,
			Suggestions:     suggestions,
		},
	}
}

// effectiveRequiredSkills is the deduplicated union of caller-declared
// required skills and skills auto-extracted from the job text, lower-cased
// and trimmed, with empty strings discarded.
func effectiveRequiredSkills(declared, jobSkills []string) []string {
	var all []string
	for _, s := range declared {
		all = append(all, strings.ToLower(strings.TrimSpace(s)))
	}
	for _, s := range jobSkills {
		all = append(all, strings.ToLower(strings.TrimSpace(s)))
	}

	var nonEmpty []string
	for _, s := range all {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return dedupeFold(nonEmpty)
}

// matchSkills returns the resume skills that fuzzy-match at least one
// effective required skill, preserving resume order and casing.
func matchSkills(resumeSkills, required []string) []string {
	var matched []string
	for _, skill := range resumeSkills {
		lower := strings.ToLower(skill)
		for _, req := range required {
			if fuzzyMatch(lower, req) {
				matched = append(matched, skill)
				break
			}
		}
	}
	return matched
}

func scoreSkills(matched, required, resumeSkills []string) float64 {
	if len(required) > 0 {
		return float64(len(matched)) / float64(len(required)) * 100
	}
	if len(resumeSkills) > 0 {
		return skillsConsolationScore
	}
	return 0
}

// scoreExperience compares required years against resume years. A job with
// no experience signal scores a neutral 50: absence of a requirement is not
// rewarded as a perfect match.
func scoreExperience(requiredYears, resumeYears int) float64 {
	if requiredYears == 0 {
		return 50
	}
	switch {
	case resumeYears >= requiredYears:
		return 100
	case float64(resumeYears) >= float64(requiredYears)*0.7:
		return 80
	case resumeYears > 0:
		return float64(resumeYears) / float64(requiredYears) * 70
	default:
		return 20
	}
}

// scoreEducation counts resume education terms that are a substring of, or
// contain, any job education term. A job with no education signal scores a
// neutral 70.
func scoreEducation(resumeEducation, jobEducation []string) float64 {
	if len(jobEducation) == 0 {
		return 70
	}

	matches := 0
	for _, re := range resumeEducation {
		for _, je := range jobEducation {
			if strings.Contains(re, je) || strings.Contains(je, re) {
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 30
	}
	return math.Min(float64(matches)/float64(len(jobEducation))*100, 100)
}

func scoreSectionCompleteness(sections map[string]string) float64 {
	var completeness float64
	for name, weight := range sectionWeights {
		if len(sections[name]) > minSectionLen {
			completeness += weight
		}
	}
	return completeness
}

// buildSuggestions produces up to three improvement suggestions in fixed
// order: missing required skills, experience gap, low skill count.
func buildSuggestions(required, matched, resumeSkills []string, requiredYears, resumeYears int) []string {
	var suggestions []string

	var missing []string
	for _, req := range required {
		found := false
		for _, m := range matched {
			if strings.Contains(strings.ToLower(m), req) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
			if len(missing) == maxSuggestedSkills {
				break
			}
		}
	}
	if len(missing) > 0 {
		suggestions = append(suggestions, "Consider highlighting these skills: "+strings.Join(missing, ", "))
	}

	if requiredYears > resumeYears {
		suggestions = append(suggestions, fmt.Sprintf("Job requires %d years experience, emphasize relevant projects", requiredYears))
	}

	if len(resumeSkills) < minResumeSkills {
		suggestions = append(suggestions, "Add more technical skills to your resume")
	}

	return suggestions
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
