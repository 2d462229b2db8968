package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()

	assert.Equal(t, DateFilterYesterday, p.Dates.Filter)
	assert.Equal(t, 2000, p.Size)
	assert.Equal(t, map[string]bool{RepoPublished: true}, p.Repos)
	for _, k := range []string{MustNotCategories, MustNotGenre, MustNotIngestProviders, MustNotStages} {
		assert.Empty(t, p.MustNot[k])
	}
	assert.Len(t, p.Reports, 7)
	require.NoError(t, p.Validate())
}

func TestClone_IsDeep(t *testing.T) {
	p := DefaultParameters()
	p.MustNot[MustNotGenre] = []string{"Results"}

	c := p.Clone()
	assert.Equal(t, p, c)

	c.Repos[RepoArchived] = true
	c.MustNot[MustNotGenre][0] = "Comment"
	c.Reports[SectionKills] = false

	assert.False(t, p.Repos[RepoArchived])
	assert.Equal(t, "Results", p.MustNot[MustNotGenre][0])
	assert.True(t, p.Reports[SectionKills])
}

func TestReportEnabled(t *testing.T) {
	p := ReportParameters{Reports: map[string]bool{SectionKills: false, "unknown": false}}

	assert.False(t, p.ReportEnabled(SectionKills))
	assert.True(t, p.ReportEnabled(SectionSummary))
}

func TestValidate(t *testing.T) {
	p := DefaultParameters()
	p.Dates = DatesFilter{Filter: DateFilterRelative}
	assert.Error(t, p.Validate())

	p.Dates.Relative = 24
	assert.NoError(t, p.Validate())

	p.Dates.Filter = "tomorrow"
	assert.Error(t, p.Validate())

	p = DefaultParameters()
	p.Size = 0
	assert.Error(t, p.Validate())
}

func TestEnabledRepos(t *testing.T) {
	p := ReportParameters{Repos: map[string]bool{RepoArchived: true, RepoPublished: true}}
	assert.Equal(t, []string{RepoPublished, RepoArchived}, p.EnabledRepos())
}
