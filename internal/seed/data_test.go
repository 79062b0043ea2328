package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDataset(t *testing.T) {
	assert.NotEmpty(t, defaultProfile.Name)
	assert.NotEmpty(t, defaultProfile.Title)
	assert.NotEmpty(t, defaultProfile.EnTitle)
	assert.Greater(t, defaultProfile.StartYear, 2000)

	assert.NotEmpty(t, defaultSkills)
	for _, s := range defaultSkills {
		assert.NotEmpty(t, s.Name)
		assert.GreaterOrEqual(t, s.Level, 0)
		assert.LessOrEqual(t, s.Level, 100)
	}

	// Every project ships both languages and at least one tag.
	assert.NotEmpty(t, defaultProjects)
	for _, p := range defaultProjects {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.EnTitle)
		assert.NotEmpty(t, p.Technologies)
	}

	assert.NotEmpty(t, defaultExperiences)
	for _, e := range defaultExperiences {
		assert.NotZero(t, e.StartYear)
		assert.NotEmpty(t, e.Fr.Title)
		assert.NotEmpty(t, e.En.Title)
	}
}
