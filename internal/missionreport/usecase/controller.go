package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mission-report-srv/internal/chart"
	"mission-report-srv/internal/missionreport"
	"mission-report-srv/internal/model"
	"mission-report-srv/pkg/log"
)

type implController struct {
	l         log.Logger
	sc        model.Scope
	chartUC   chart.UseCase
	executor  missionreport.QueryExecutor
	displays  []missionreport.Display
	notifiers []missionreport.Notifier
	now       func() time.Time

	mu       sync.Mutex
	baseline model.SavedReport
	current  model.SavedReport
	seq      uint64
	cancel   context.CancelFunc

	// publishMu makes the latest-check and the publish one step.
	publishMu sync.Mutex
}

// NewController creates the controller of one editing session. Call InitializeDefaults before use.
func NewController(
	l log.Logger,
	sc model.Scope,
	chartUC chart.UseCase,
	executor missionreport.QueryExecutor,
	displays []missionreport.Display,
	notifiers []missionreport.Notifier,
	now func() time.Time,
) missionreport.Controller {
	if now == nil {
		now = time.Now
	}
	return &implController{
		l:         l,
		sc:        sc,
		chartUC:   chartUC,
		executor:  executor,
		displays:  displays,
		notifiers: notifiers,
		now:       now,
	}
}

func (c *implController) InitializeDefaults() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.baseline = model.DefaultReport()
	c.current = c.baseline.Clone()
}

func (c *implController) OnExternalReportSelected(report *model.SavedReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if report != nil && report.ID != "" {
		c.current = report.Clone()
		return
	}
	c.current = c.baseline.Clone()
}

func (c *implController) GetCurrentParameters(ctx context.Context) (model.ReportParameters, error) {
	if err := ctx.Err(); err != nil {
		return model.ReportParameters{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Params.Clone(), nil
}

func (c *implController) UpdateParameters(params model.ReportParameters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Params = params.Clone()
}

func (c *implController) CurrentReport() model.SavedReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Clone()
}

// IsDirty is always true: any state may be saved.
func (c *implController) IsDirty() bool {
	return true
}

// Generate supersedes any running generation and starts a new one on a snapshot of the
// current parameters. It does not wait for the query.
func (c *implController) Generate(ctx context.Context) missionreport.Generation {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	params := c.current.Params.Clone()
	genCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancel = cancel
	c.mu.Unlock()

	generationsStarted.Inc()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		c.run(genCtx, seq, params)
	}()

	return missionreport.Generation{Sequence: seq, Done: done}
}

func (c *implController) run(ctx context.Context, seq uint64, params model.ReportParameters) {
	result, err := c.executor.Run(ctx, params)
	if err != nil {
		if ctx.Err() != nil {
			c.l.Debugf(ctx, "missionreport.usecase.controller.run: Generation %d superseded during query", seq)
			generationsFinished.WithLabelValues(statusSuperseded).Inc()
			return
		}
		c.l.Errorf(ctx, "missionreport.usecase.controller.run: Query failed for generation %d: %v", seq, err)
		generationsFinished.WithLabelValues(statusQueryFailed).Inc()
		c.notify(ctx, seq, fmt.Errorf("%w: %v", missionreport.ErrQueryFailed, err))
		return
	}

	list, err := c.chartUC.CreateChart(ctx, result, params)
	if err != nil {
		if ctx.Err() != nil {
			generationsFinished.WithLabelValues(statusSuperseded).Inc()
			return
		}
		c.l.Errorf(ctx, "missionreport.usecase.controller.run: CreateChart failed for generation %d: %v", seq, err)
		generationsFinished.WithLabelValues(statusChartFailed).Inc()
		c.notify(ctx, seq, err)
		return
	}

	if !c.publishIfLatest(ctx, seq, list) {
		c.l.Debugf(ctx, "missionreport.usecase.controller.run: Dropping stale generation %d", seq)
		generationsFinished.WithLabelValues(statusSuperseded).Inc()
		return
	}
	generationsFinished.WithLabelValues(statusPublished).Inc()
}

// publishIfLatest publishes list when seq is still the latest generation.
func (c *implController) publishIfLatest(ctx context.Context, seq uint64, list chart.List) bool {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	c.mu.Lock()
	latest := c.seq == seq
	c.mu.Unlock()
	if !latest {
		return false
	}

	// Committed: a newer Generate may cancel ctx while the displays are written.
	pubCtx := missionreport.WithGeneration(context.WithoutCancel(ctx), missionreport.GenerationInfo{
		Sequence:    seq,
		GeneratedAt: c.now(),
	})
	for _, d := range c.displays {
		if err := d.Publish(pubCtx, c.sc, list); err != nil {
			c.l.Errorf(pubCtx, "missionreport.usecase.controller.publishIfLatest: Display publish failed: %v", err)
		}
	}
	return true
}

func (c *implController) notify(ctx context.Context, seq uint64, err error) {
	ctx = missionreport.WithGeneration(context.WithoutCancel(ctx), missionreport.GenerationInfo{
		Sequence:    seq,
		GeneratedAt: c.now(),
	})
	for _, n := range c.notifiers {
		if nerr := n.Error(ctx, c.sc, err); nerr != nil {
			c.l.Warnf(ctx, "missionreport.usecase.controller.notify: Notifier failed: %v", nerr)
		}
	}
}
