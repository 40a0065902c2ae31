package matchengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testYear = 2024

func TestExtractExperienceExplicitMention(t *testing.T) {
	assert.Equal(t, 8, extractExperienceYears("8 years of experience in backend systems", testYear))
	assert.Equal(t, 5, extractExperienceYears("5+ years in software development", testYear))
	assert.Equal(t, 3, extractExperienceYears("Experience: 3 years", testYear))
}

func TestExtractExperienceRejectsImplausibleClaims(t *testing.T) {
	assert.Equal(t, 0, extractExperienceYears("over 60 years of experience", testYear))
}

func TestExtractExperienceYearRanges(t *testing.T) {
	assert.Equal(t, 4, extractExperienceYears("Developer at Acme 2018-2022", testYear))
	assert.Equal(t, 5, extractExperienceYears("Acme Corp, 2019-present", testYear))
	assert.Equal(t, 5, extractExperienceYears("Acme Corp, 2019 - Current", testYear))
}

func TestExtractExperienceRejectsInvalidRanges(t *testing.T) {
	// Start at or before 1990 is treated as noise, not a career start.
	assert.Equal(t, 0, extractExperienceYears("1985-1990", testYear))
	assert.Equal(t, 0, extractExperienceYears("1990-2000", testYear))
	// Inverted and future-ending ranges are discarded.
	assert.Equal(t, 0, extractExperienceYears("2022-2019", testYear))
	assert.Equal(t, 0, extractExperienceYears("2020-2030", testYear))
}

func TestExtractExperienceTakesMaximumCandidate(t *testing.T) {
	text := "3 years of experience\nSenior role 2015-2023"

	assert.Equal(t, 8, extractExperienceYears(text, testYear))
}

func TestExtractExperienceNoSignal(t *testing.T) {
	assert.Equal(t, 0, extractExperienceYears("a plain paragraph with no dates", testYear))
	assert.Equal(t, 0, extractExperienceYears("", testYear))
}
