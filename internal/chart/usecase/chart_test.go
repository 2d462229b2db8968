package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

type fakeMetadata struct {
	categories []model.VocabularyItem
	err        error
	calls      int
}

func (f *fakeMetadata) Initialize(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeMetadata) Refresh(context.Context) error { return f.err }

func (f *fakeMetadata) Categories() []model.VocabularyItem { return f.categories }

func (f *fakeMetadata) Vocabulary(id string) []model.VocabularyItem {
	if id == model.VocabularyCategories {
		return f.categories
	}
	return nil
}

var fixedNow = time.Date(2018, 7, 3, 10, 0, 0, 0, time.UTC)

func newTestUseCase(meta *fakeMetadata) chart.UseCase {
	return New(log.NewNop(), meta, Config{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func ts(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestCreateChart_EmptyState(t *testing.T) {
	meta := &fakeMetadata{}
	uc := newTestUseCase(meta)

	list, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 0}, model.DefaultParameters())
	require.NoError(t, err)

	require.Len(t, list.Charts, 1)
	c := list.Charts[0]
	assert.Equal(t, chart.IDEmpty, c.ID)
	assert.Equal(t, chart.TypeTable, c.Type)
	assert.Equal(t, "There were no stories published", c.Title)
	assert.Empty(t, c.Rows)
	assert.Equal(t, 0, meta.calls)
}

func TestCreateChart_AllSectionsInOrder(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})

	list, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 10}, model.DefaultParameters())
	require.NoError(t, err)

	assert.Equal(t, []string{
		chart.IDSummary,
		chart.IDCategories,
		chart.IDCorrections,
		chart.IDKills,
		chart.IDTakedowns,
		chart.IDSMSAlerts,
		chart.IDUpdates,
	}, list.IDs())
	assert.False(t, list.MultiChart)
	assert.True(t, list.MarginBottom)
}

func TestCreateChart_DisabledSectionsKeepOrder(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	params := model.DefaultParameters()
	params.Reports[model.SectionCategories] = false
	params.Reports[model.SectionTakedowns] = false
	params.Reports[model.SectionUpdates] = false

	list, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 1}, params)
	require.NoError(t, err)

	assert.Equal(t, []string{
		chart.IDSummary,
		chart.IDCorrections,
		chart.IDKills,
		chart.IDSMSAlerts,
	}, list.IDs())
}

func TestCreateChart_AbsentReportKeysAreEnabled(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	params := model.DefaultParameters()
	params.Reports = map[string]bool{model.SectionSummary: false}

	list, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 1}, params)
	require.NoError(t, err)
	assert.Len(t, list.Charts, 6)
	assert.Equal(t, chart.IDCategories, list.Charts[0].ID)
}

func TestCreateChart_CategoryOrder(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{categories: []model.VocabularyItem{
		{QCode: "b", Name: "Bravo"},
		{QCode: "a", Name: "Alpha"},
		{QCode: "c", Name: "Charlie"},
	}})
	result := model.ReportResult{
		TotalStories: 8,
		NewStories:   model.NewStories{Count: 8, Categories: map[string]int{"b": 3, "a": 5}},
	}

	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	c, ok := list.Find(chart.IDCategories)
	require.True(t, ok)
	require.Len(t, c.Axes, 1)
	assert.Equal(t, []string{"a", "b"}, c.Axes[0].Categories)
	assert.Equal(t, []int{5, 3}, c.Axes[0].Series[0].Data)
	assert.Equal(t, map[string]string{"a": "Alpha (A)", "b": "Bravo (B)"}, c.Translations["category"].Names)
	assert.Equal(t, "bar", c.Axes[0].DefaultChartType)
	assert.True(t, c.Axes[0].StackLabels)
	require.NotNil(t, c.Axes[0].Series[0].Stack)
	assert.Equal(t, 0, *c.Axes[0].Series[0].Stack)
	assert.True(t, c.FullHeight)
}

func TestCreateChart_ResultsCategory(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{categories: []model.VocabularyItem{{QCode: "s", Name: "Sport"}}})
	result := model.ReportResult{
		TotalStories: 4,
		NewStories:   model.NewStories{Count: 4, Categories: map[string]int{"s": 2, "results": 2}},
	}

	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	c, _ := list.Find(chart.IDCategories)
	assert.Equal(t, []string{"results", "s"}, c.Axes[0].Categories)
	assert.Equal(t, "Results/Fields/Comment/Betting", c.Translations["category"].Names["results"])

	summary, _ := list.Find(chart.IDSummary)
	assert.Equal(t, []int{4, 4, 2, 0, 0, 0, 0}, summary.Axes[0].Series[0].Data)
}

func TestCreateChart_ZeroResultsCountIsNotListed(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	result := model.ReportResult{
		TotalStories: 1,
		NewStories:   model.NewStories{Categories: map[string]int{"results": 0}},
	}

	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	c, _ := list.Find(chart.IDCategories)
	assert.Empty(t, c.Axes[0].Categories)
}

func TestCreateChart_SummaryDefaultsToZero(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})

	list, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 1}, model.DefaultParameters())
	require.NoError(t, err)

	c, ok := list.Find(chart.IDSummary)
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0}, c.Axes[0].Series[0].Data)
	assert.Equal(t, []string{"total_stories", "new_stories", "results", "rewrites", "corrections", "kills", "takedowns"}, c.Axes[0].Categories)
	assert.Equal(t, 300, c.Height)
	assert.Equal(t, "line", c.Axes[0].DefaultChartType)
	assert.Equal(t, "Published Stories", c.Axes[0].YTitle)
	assert.Equal(t, "Monday, 02 July 2018", c.Subtitle)
	assert.Len(t, c.Translations["summary"].Names, 7)
}

func TestCreateChart_SummaryWithAllEmptyData(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	params := model.DefaultParameters()
	params.Dates = model.DatesFilter{Filter: model.DateFilterRelative, Relative: 12}

	// total_stories counts even when every other field is absent.
	var result model.ReportResult
	require.NoError(t, json.Unmarshal([]byte(`{"total_stories": 3, "new_stories": null}`), &result))

	list, err := uc.CreateChart(context.Background(), result, params)
	require.NoError(t, err)

	c, _ := list.Find(chart.IDSummary)
	assert.Equal(t, []int{3, 0, 0, 0, 0, 0, 0}, c.Axes[0].Series[0].Data)
	assert.Equal(t, "Last 12 hours", c.Subtitle)
}

func TestCreateChart_CorrectionRows(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	result := model.ReportResult{
		TotalStories: 2,
		Corrections: []model.StoryRecord{
			{VersionCreated: ts("2018-06-29T01:00:00Z"), Updated: ts("2018-06-30T01:00:00Z"), Slugline: "Fire", AnpaTakeKey: "2nd", Ednote: "Corrects name"},
			{Updated: ts("2018-06-29T14:05:00Z"), Slugline: "Flood"},
			{Slugline: "NoTime"},
		},
	}

	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	c, ok := list.Find(chart.IDCorrections)
	require.True(t, ok)
	assert.Equal(t, "There were 3 corrections issued", c.Title)
	assert.Equal(t, []string{"Sent", "Slugline", "TakeKey", "Ednote"}, c.Headers)
	assert.Equal(t, &chart.ChartOptions{Type: "column"}, c.Chart)
	assert.Equal(t, [][]string{
		{"29/06/2018 01:00", "Fire", "2nd", "Corrects name"},
		{"29/06/2018 14:05", "Flood", "", ""},
		{"", "NoTime", "", ""},
	}, c.Rows)
}

func TestCreateChart_TimestampsUseLocation(t *testing.T) {
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	uc := New(log.NewNop(), &fakeMetadata{}, Config{Location: sydney})

	result := model.ReportResult{
		TotalStories: 1,
		Kills:        []model.StoryRecord{{VersionCreated: ts("2018-06-29T01:00:00Z"), Slugline: "Kill", Reasons: "Legal"}},
	}
	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	c, _ := list.Find(chart.IDKills)
	assert.Equal(t, [][]string{{"29/06/2018 11:00", "Kill", "Legal"}}, c.Rows)
	assert.Equal(t, []string{"Sent", "Slugline", "Reasons"}, c.Headers)
	assert.Equal(t, "There were 1 kills issued", c.Title)
}

func TestCreateChart_CountOnlyTables(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{})
	result := model.ReportResult{TotalStories: 9, Rewrites: 4, SMSAlerts: 2}

	list, err := uc.CreateChart(context.Background(), result, model.DefaultParameters())
	require.NoError(t, err)

	updates, _ := list.Find(chart.IDUpdates)
	assert.Equal(t, "There were 4 updates issued", updates.Title)
	assert.Empty(t, updates.Rows)
	assert.NotNil(t, updates.Rows)

	sms, _ := list.Find(chart.IDSMSAlerts)
	assert.Equal(t, "There were 2 SMS alerts issued", sms.Title)
	assert.Equal(t, []string{"Send", "Slugline", "TakeKey", "Ednote"}, sms.Headers)

	takedowns, _ := list.Find(chart.IDTakedowns)
	assert.Equal(t, "There were 0 takedowns issued", takedowns.Title)
}

func TestCreateChart_MetadataFailure(t *testing.T) {
	uc := newTestUseCase(&fakeMetadata{err: errors.New("db down")})

	_, err := uc.CreateChart(context.Background(), model.ReportResult{TotalStories: 1}, model.DefaultParameters())
	assert.ErrorIs(t, err, chart.ErrMetadataUnavailable)
}

func TestConfigJSON_TableRowsAlwaysPresent(t *testing.T) {
	b, err := json.Marshal(chart.Config{ID: chart.IDUpdates, Type: chart.TypeTable})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"rows":[]`)

	b, err = json.Marshal(chart.Config{ID: chart.IDSummary, Type: chart.TypeChart})
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"rows"`)
}
