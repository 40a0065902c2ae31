package matching

// Resume section names. A segmented resume always has exactly these five
// keys, each possibly mapping to an empty string.
const (
	SectionContact    = "contact"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// SectionNames lists the five canonical resume sections.
var SectionNames = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
}

// ResumeFeatures are the structured signals extracted from resume text.
// Skills are deduplicated case-insensitively, first-seen casing, at most 30
// entries. ExperienceYears is non-negative and capped at 50.
type ResumeFeatures struct {
	Skills          []string          `json:"skills"`
	ExperienceYears int               `json:"experience_years"`
	Education       []string          `json:"education"`
	Sections        map[string]string `json:"sections"`
	RawText         string            `json:"-"`
}

// JobFeatures are the signals extracted from job description text. Jobs are
// not segmented into sections; only skills, experience, and education are
// used by the scorer.
type JobFeatures struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`
}
