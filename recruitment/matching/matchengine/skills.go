package matchengine

import (
	"regexp"
	"strings"
)

// maxSkills caps the number of skills extracted from one document.
const maxSkills = 30

// skillCategory groups catalogue skills. Categories are a slice, not a map,
// so extraction order is deterministic.
type skillCategory struct {
	name   string
	skills []string
}

var skillCatalogue = []skillCategory{
	{"programming", []string{
		"javascript", "typescript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin", "scala", "dart",
		"html", "css", "sass", "scss", "less",
	}},
	{"frameworks", []string{
		"react", "angular", "vue", "svelte", "express", "django", "flask", "spring", "laravel", "rails", "fastapi",
		"node.js", "nodejs", "next.js", "nuxt", "gatsby", "bootstrap", "tailwind",
	}},
	{"databases", []string{
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "sqlite", "oracle", "cassandra", "dynamodb",
	}},
	{"cloud", []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "netlify", "vercel", "digitalocean",
	}},
	{"devops", []string{
		"docker", "kubernetes", "jenkins", "terraform", "ansible", "ci/cd", "git", "github", "gitlab",
	}},
	{"mobile", []string{
		"react native", "flutter", "ios", "android", "xamarin", "ionic", "cordova",
	}},
	{"data", []string{
		"machine learning", "data science", "artificial intelligence", "tensorflow", "pytorch", "pandas", "numpy", "r", "matlab",
	}},
}

type catalogueEntry struct {
	skill string
	re    *regexp.Regexp
}

// catalogueMatchers holds a whole-word matcher per catalogue skill, built
// once in catalogue order.
var catalogueMatchers = buildCatalogueMatchers()

func buildCatalogueMatchers() []catalogueEntry {
	var entries []catalogueEntry
	for _, cat := range skillCatalogue {
		for _, skill := range cat.skills {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
			entries = append(entries, catalogueEntry{skill: skill, re: re})
		}
	}
	return entries
}

// skillPhrasePatterns capture free-text skill declarations; the captured
// group is split into candidate skills.
var skillPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)skilled?\s+in\s+([^.]+)`),
	regexp.MustCompile(`(?i)proficient\s+in\s+([^.]+)`),
	regexp.MustCompile(`(?i)experience\s+with\s+([^.]+)`),
	regexp.MustCompile(`(?i)knowledge\s+of\s+([^.]+)`),
}

var skillSplitRe = regexp.MustCompile(`[,&]`)

// extractSkills finds catalogue skills by whole-word match, then candidate
// skills from "skilled in ..." style phrases. The result is deduplicated
// case-insensitively preserving first-seen casing, capped at maxSkills.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for _, entry := range catalogueMatchers {
		if entry.re.MatchString(lower) {
			found = append(found, entry.skill)
		}
	}

	for _, pattern := range skillPhrasePatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			for _, candidate := range skillSplitRe.Split(m[1], -1) {
				candidate = strings.TrimSpace(candidate)
				if len(candidate) > 2 {
					found = append(found, candidate)
				}
			}
		}
	}

	deduped := dedupeFold(found)
	if len(deduped) > maxSkills {
		deduped = deduped[:maxSkills]
	}
	return deduped
}

// dedupeFold removes case-insensitive duplicates, keeping first-seen casing
// and order.
func dedupeFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
