package matchengine

import "github.com/hirematch/engine/recruitment/matching"

// ParseResume segments the resume into sections and extracts its structured
// signals.
func (e *Engine) ParseResume(text string) matching.ResumeFeatures {
	return matching.ResumeFeatures{
		Skills:          extractSkills(text),
		ExperienceYears: extractExperienceYears(text, e.currentYear()),
		Education:       extractEducation(text),
		Sections:        e.segmentResume(text),
		RawText:         text,
	}
}

// ExtractJobFeatures extracts the job-side signals. Job text is not
// segmented into sections.
func (e *Engine) ExtractJobFeatures(text string) matching.JobFeatures {
	return matching.JobFeatures{
		Skills:          extractSkills(text),
		ExperienceYears: extractExperienceYears(text, e.currentYear()),
		Education:       extractEducation(text),
	}
}
