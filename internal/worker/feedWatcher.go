package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	defaultTick    = time.Second
	defaultRefresh = 30 * time.Second
)

type DealSource interface {
	Fetch(ctx context.Context, maxPages int) ([]entity.Deal, error)
	Refresh()
	Apply(deals []entity.Deal, filters value.Filters) entity.Result
}

type resultObserver interface {
	ObserveResult(res entity.Result)
}

// Renderer получает каждую новую выдачу.
type Renderer func(res entity.Result)

// FeedWatcher держит ленту в памяти: раз в refresh перезагружает её из API, а
// на каждый тик заново классифицирует без сети, чтобы бейджи и обратный
// отсчёт шли по часам.
type FeedWatcher struct {
	svc DealSource
	out chan<- entity.Listing

	tick    time.Duration
	refresh time.Duration
	render  Renderer
	metrics resultObserver

	deals  []entity.Deal
	loaded atomic.Bool

	// Control fields
	mu         sync.Mutex
	filters    value.Filters
	last       entity.Result
	alerted    map[string]struct{}
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

// NewFeedWatcher out может быть nil, тогда уведомления не отправляются.
func NewFeedWatcher(svc DealSource, out chan<- entity.Listing) *FeedWatcher {
	return &FeedWatcher{
		svc:     svc,
		out:     out,
		tick:    defaultTick,
		refresh: defaultRefresh,
		render:  func(entity.Result) {},
		alerted: make(map[string]struct{}),
	}
}

func (w *FeedWatcher) WithFilters(filters value.Filters) *FeedWatcher {
	w.filters = filters
	return w
}

func (w *FeedWatcher) WithTick(d time.Duration) *FeedWatcher {
	if d > 0 {
		w.tick = d
	}
	return w
}

func (w *FeedWatcher) WithRefreshInterval(d time.Duration) *FeedWatcher {
	if d > 0 {
		w.refresh = d
	}
	return w
}

func (w *FeedWatcher) WithRenderer(r Renderer) *FeedWatcher {
	if r != nil {
		w.render = r
	}
	return w
}

func (w *FeedWatcher) WithMetrics(m resultObserver) *FeedWatcher {
	w.metrics = m
	return w
}

func (w *FeedWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("watcher is already running")
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("watcher stopped with error", logx.Error(err))
		}
	}()

	return nil
}

func (w *FeedWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *FeedWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *FeedWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("feed watcher started",
		slog.Duration("tick", w.tick),
		slog.Duration("refresh", w.refresh),
	)

	w.reload(ctx)
	if err := w.classify(ctx); err != nil {
		return err
	}

	tick := time.NewTicker(w.tick)
	defer tick.Stop()

	refresh := time.NewTicker(w.refresh)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("feed watcher stopped")
			return ctx.Err()
		case <-refresh.C:
			w.reload(ctx)
		case <-tick.C:
		}

		if err := w.classify(ctx); err != nil {
			return err
		}
	}
}

// reload ошибку сети только логирует: остаётся прошлая выдача, следующая
// попытка будет на следующем интервале.
func (w *FeedWatcher) reload(ctx context.Context) {
	w.svc.Refresh()

	deals, err := w.svc.Fetch(ctx, 0)
	if err != nil {
		logger(ctx).Error("failed to refresh feed", logx.Error(err))
		return
	}

	w.deals = deals
	w.loaded.Store(true)
}

// Ready true после первой успешной загрузки ленты.
func (w *FeedWatcher) Ready() bool {
	return w.loaded.Load()
}

func (w *FeedWatcher) classify(ctx context.Context) error {
	res := w.svc.Apply(w.deals, w.Filters())

	w.mu.Lock()
	w.last = res
	w.mu.Unlock()

	if w.metrics != nil {
		w.metrics.ObserveResult(res)
	}

	w.render(res)

	return w.alert(ctx, res)
}

// alert отправляет каждую сделку не больше одного раза за время жизни
// наблюдателя (до ResetAlerts).
func (w *FeedWatcher) alert(ctx context.Context, res entity.Result) error {
	if w.out == nil {
		return nil
	}

	for _, l := range res.Listings {
		if l.Urgency != value.UrgencyCritical || !w.markAlerted(l.Deal.ID) {
			continue
		}

		logger(ctx).Info("deal became critical",
			slog.String(logx.FieldDealID, l.Deal.ID),
			slog.String(logx.FieldUrgency, l.UrgencyLabel),
		)

		select {
		case w.out <- l:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
