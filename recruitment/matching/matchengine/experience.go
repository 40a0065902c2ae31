package matchengine

import (
	"regexp"
	"strconv"
	"strings"
)

// maxExperienceYears caps explicit experience claims; anything above is
// treated as noise (a year number misparsed as a duration).
const maxExperienceYears = 50

// minRangeStartYear rejects year ranges starting implausibly early, which
// are usually phone numbers or zip codes split by a dash.
const minRangeStartYear = 1990

var explicitExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`(?i)experience\s*:?\s*(\d+)\+?\s*years?`),
}

var yearRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)

// extractExperienceYears derives a years-of-experience estimate from two
// signal families and returns the maximum candidate: explicit mentions
// ("8 years experience") and year ranges ("2018-2022", "2019-present").
// Returns 0 when no candidate survives validation.
func extractExperienceYears(text string, currentYear int) int {
	var candidates []int

	for _, pattern := range explicitExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			years, err := strconv.Atoi(m[1])
			if err == nil && years <= maxExperienceYears {
				candidates = append(candidates, years)
			}
		}
	}

	for _, m := range yearRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		end := currentYear
		if lower := strings.ToLower(m[2]); lower != "present" && lower != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}

		if start > minRangeStartYear && start <= end && end <= currentYear {
			candidates = append(candidates, end-start)
		}
	}

	best := 0
	for _, c := range candidates {
		if c > best {
			best = c
		}
	}
	return best
}
