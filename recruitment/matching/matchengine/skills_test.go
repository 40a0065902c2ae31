package matchengine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsCatalogueOrder(t *testing.T) {
	text := "Expert in JavaScript, TypeScript and React. Deployed on AWS with Docker."

	assert.Equal(t, []string{"javascript", "typescript", "react", "aws", "docker"}, extractSkills(text))
}

func TestExtractSkillsWholeWordOnly(t *testing.T) {
	assert.Empty(t, extractSkills("javascripted rustic philosophy"))
}

func TestExtractSkillsPhrasePatterns(t *testing.T) {
	text := "Proficient in GraphQL, Kafka & Redis streams."

	assert.Equal(t, []string{"redis", "graphql", "kafka", "redis streams"}, extractSkills(text))
}

func TestExtractSkillsDedupeCaseInsensitive(t *testing.T) {
	text := "Skilled in Python, python, PYTHON"

	assert.Equal(t, []string{"python"}, extractSkills(text))
}

func TestExtractSkillsCap(t *testing.T) {
	candidates := make([]string, 0, 40)
	for i := 1; i <= 40; i++ {
		candidates = append(candidates, fmt.Sprintf("qz%02d", i))
	}
	text := "Skilled in " + strings.Join(candidates, ", ")

	assert.Len(t, extractSkills(text), maxSkills)
}

func TestDedupeFoldKeepsFirstCasing(t *testing.T) {
	assert.Equal(t, []string{"React", "vue"}, dedupeFold([]string{"React", "react", "vue", "Vue"}))
}
