package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/missionreport/repository"
	"mission-report-srv/internal/model"
	"mission-report-srv/internal/savedreport"
)

type fakeExecutor struct {
	run func(ctx context.Context, params model.ReportParameters) (model.ReportResult, error)
}

func (f *fakeExecutor) Run(ctx context.Context, params model.ReportParameters) (model.ReportResult, error) {
	return f.run(ctx, params)
}

// fakeChart emits one config whose title is the total story count.
type fakeChart struct{}

func (fakeChart) CreateChart(ctx context.Context, result model.ReportResult, params model.ReportParameters) (chart.List, error) {
	return chart.List{
		Charts:       []chart.Config{{ID: chart.IDSummary, Type: chart.TypeChart, Title: strconv.Itoa(result.TotalStories)}},
		MarginBottom: true,
	}, nil
}

type published struct {
	info missionreport.GenerationInfo
	sc   model.Scope
	list chart.List
}

type recordingDisplay struct {
	mu    sync.Mutex
	items []published
}

func (d *recordingDisplay) Publish(ctx context.Context, sc model.Scope, list chart.List) error {
	info, _ := missionreport.GenerationFromContext(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = append(d.items, published{info: info, sc: sc, list: list})
	return nil
}

func (d *recordingDisplay) all() []published {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]published(nil), d.items...)
}

type recordingNotifier struct {
	mu   sync.Mutex
	errs []error
}

func (n *recordingNotifier) Error(ctx context.Context, sc model.Scope, err error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, err)
	return nil
}

func (n *recordingNotifier) all() []error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]error(nil), n.errs...)
}

type fakeSavedReports struct {
	savedreport.UseCase
	reports map[string]model.SavedReport
}

func (f *fakeSavedReports) Detail(ctx context.Context, sc model.Scope, id string) (model.SavedReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return model.SavedReport{}, savedreport.ErrNotFound
	}
	return r, nil
}

type fakeCache struct {
	mu      sync.Mutex
	results map[string]model.ReportResult
	charts  map[string]repository.ChartsEntry
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		results: map[string]model.ReportResult{},
		charts:  map[string]repository.ChartsEntry{},
	}
}

func (c *fakeCache) GetResult(ctx context.Context, key string) (model.ReportResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.results[key]
	if !ok {
		return model.ReportResult{}, repository.ErrCacheMiss
	}
	return r, nil
}

func (c *fakeCache) SetResult(ctx context.Context, key string, result model.ReportResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[key] = result
	return nil
}

func (c *fakeCache) GetLatestCharts(ctx context.Context, userID string) (repository.ChartsEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.charts[userID]
	if !ok {
		return repository.ChartsEntry{}, repository.ErrCacheMiss
	}
	return e, nil
}

func (c *fakeCache) SetLatestCharts(ctx context.Context, entry repository.ChartsEntry, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.charts[entry.UserID] = entry
	return nil
}

type fakeAggregator struct {
	mu    sync.Mutex
	calls []repository.AggregateOptions
	out   model.ReportResult
	err   error
}

func (a *fakeAggregator) Aggregate(ctx context.Context, opts repository.AggregateOptions) (model.ReportResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, opts)
	return a.out, a.err
}
