package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReportResult_Empty(t *testing.T) {
	r, err := DecodeReportResult([]byte(`{}`))
	require.NoError(t, err)
	assert.Zero(t, r.TotalStories)
	assert.Nil(t, r.NewStories.Categories)
	assert.Empty(t, r.Corrections)

	r, err = DecodeReportResult(nil)
	require.NoError(t, err)
	assert.Zero(t, r.TotalStories)
}

func TestDecodeReportResult_NullsAndTimestamps(t *testing.T) {
	raw := []byte(`{
		"total_stories": 12,
		"new_stories": null,
		"corrections": [
			{"versioncreated": "2018-06-29T01:00:00+0000", "slugline": "Fire", "ednote": null},
			{"_updated": "2018-06-29T02:30:00Z", "anpa_take_key": "2nd"},
			{"versioncreated": "not a date"}
		],
		"kills": null
	}`)

	r, err := DecodeReportResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 12, r.TotalStories)
	assert.Zero(t, r.NewStories.Count)
	require.Len(t, r.Corrections, 3)

	ts := r.Corrections[0].Timestamp()
	require.NotNil(t, ts)
	assert.True(t, ts.Equal(time.Date(2018, 6, 29, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Fire", r.Corrections[0].Slugline)
	assert.Equal(t, "", r.Corrections[0].Ednote)

	ts = r.Corrections[1].Timestamp()
	require.NotNil(t, ts)
	assert.Equal(t, 2, ts.Hour())

	assert.Nil(t, r.Corrections[2].Timestamp())
	assert.Nil(t, r.Kills)
}

func TestDecodeReportResult_Malformed(t *testing.T) {
	_, err := DecodeReportResult([]byte(`{"total_stories": `))
	assert.Error(t, err)
}

func TestSavedReportClone(t *testing.T) {
	s := DefaultReport()
	c := s.Clone()
	c.Params.Repos[RepoArchived] = true
	assert.False(t, s.Params.Repos[RepoArchived])
	assert.Equal(t, ReportName, c.Report)
}
