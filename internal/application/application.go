package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/xid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"deal_feed/internal/config"
	"deal_feed/internal/domain"
	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/service/deal"
	"deal_feed/internal/domain/value"
	"deal_feed/internal/infrastructure/dealsapi"
	"deal_feed/internal/infrastructure/metrics"
	"deal_feed/internal/infrastructure/notifier"
	"deal_feed/internal/transport/bot"
	"deal_feed/internal/transport/cli"
	"deal_feed/internal/worker"
	"deal_feed/pkg/application/modules"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/errcodes"
	"deal_feed/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	alertsBuffer      = 100
	stopNoticeTimeout = 5 * time.Second
)

type Application struct {
	cfg      config.Config
	stdout   io.Writer
	svc      *deal.DealService
	registry *prometheus.Registry
	metrics  *metrics.FeedMetrics
}

// Run читает конфиг, поднимает логгер и выполняет команду из аргументов.
// Логи идут в stderr, выдача в stdout.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.New(stderr, logx.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)
	ctx = contextx.WithTraceID(ctx, contextx.TraceID(xid.New().String()))

	if cfg.App.UserID != "" {
		ctx = contextx.WithUserID(ctx, contextx.UserID(cfg.App.UserID))
	}

	app, err := New(cfg, stdout)
	if err != nil {
		return fmt.Errorf("application.New: %w", err)
	}

	return app.Run(ctx)
}

func New(cfg config.Config, stdout io.Writer) (*Application, error) {
	client, err := dealsapi.NewClient(dealsapi.Config{
		BaseURL:       cfg.DealsAPI.URL,
		Token:         cfg.DealsAPI.Token,
		Timeout:       cfg.DealsAPI.Timeout,
		LogBodyMaxLen: cfg.DealsAPI.LogBodyMaxLen,
		MaskFields:    cfg.DealsAPI.LogMaskFields,
	})
	if err != nil {
		return nil, fmt.Errorf("dealsapi.NewClient: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	feedMetrics := metrics.NewFeedMetrics(registry)

	svc := deal.NewDealService(client).
		WithPageSize(cfg.DealsAPI.PageSize).
		WithMaxPages(cfg.DealsAPI.MaxPages).
		WithCacheTTL(cfg.DealsAPI.CacheTTL).
		WithMetrics(feedMetrics)

	return &Application{
		cfg:      cfg,
		stdout:   stdout,
		svc:      svc,
		registry: registry,
		metrics:  feedMetrics,
	}, nil
}

func (a *Application) Run(ctx context.Context) error {
	switch a.cfg.CLI.Command {
	case config.CommandDeal:
		return a.showDeal(ctx)
	case config.CommandWatch:
		return a.watch(ctx)
	default:
		return a.list(ctx)
	}
}

func (a *Application) render() cli.Renderer {
	return lo.Ternary[cli.Renderer](a.cfg.CLI.JSON, cli.RenderJSON, cli.Render)
}

func (a *Application) filters(ctx context.Context) (value.Filters, error) {
	filters, err := value.NewFilters(a.cfg.CLI.Filters)
	if err != nil {
		return value.Filters{}, fmt.Errorf("value.NewFilters: %w", err)
	}

	if !a.cfg.CLI.Mine {
		return filters, nil
	}

	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return value.Filters{}, domain.WrapError(err, errcodes.Unauthorized, "-mine needs DEALS_USER_ID or -user")
	}

	filters.SellerID = userID.String()

	return filters, nil
}

func (a *Application) list(ctx context.Context) error {
	filters, err := a.filters(ctx)
	if err != nil {
		return err
	}

	res, err := a.svc.Browse(ctx, filters)
	if err != nil {
		return fmt.Errorf("svc.Browse: %w", err)
	}

	a.metrics.ObserveResult(res)

	return a.render()(a.stdout, res)
}

func (a *Application) showDeal(ctx context.Context) error {
	listing, err := a.svc.Deal(ctx, a.cfg.CLI.DealID)
	if err != nil {
		return fmt.Errorf("svc.Deal: %w", err)
	}

	return a.render()(a.stdout, entity.Result{
		Listings: []entity.Listing{listing},
		Total:    1,
		Now:      a.svc.Now(),
	})
}

func (a *Application) watch(ctx context.Context) error {
	filters, err := a.filters(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	var alerts chan entity.Listing
	if a.cfg.Bot.Enabled() {
		alerts = make(chan entity.Listing, alertsBuffer)
	}

	watcher := worker.NewFeedWatcher(a.svc, alerts).
		WithFilters(filters).
		WithTick(a.cfg.Watch.Tick).
		WithRefreshInterval(a.cfg.Watch.Refresh).
		WithRenderer(a.watchRenderer(ctx)).
		WithMetrics(a.metrics)

	if a.cfg.Bot.Enabled() {
		if err := a.runBots(ctx, g, watcher, alerts); err != nil {
			return err
		}
	}

	modules.MetricServer{
		ListenAddress: a.cfg.Observability.MetricsAddress,
		Gatherer:      a.registry,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       a.cfg.App.Version,
		ListenAddress: a.cfg.Observability.ProbeAddress,
		Ready:         watcher.Ready,
	}.Run(ctx, g)

	// Жизненным циклом наблюдателя управляет и бот (/startwatch, /stopwatch).
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("watcher.Start: %w", err)
	}

	g.Go(func() error {
		<-ctx.Done()
		watcher.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// runBots уведомления о горящих сделках и командный бот на одном токене.
func (a *Application) runBots(
	ctx context.Context,
	g *errgroup.Group,
	watcher *worker.FeedWatcher,
	alerts <-chan entity.Listing,
) error {
	alertBot, err := notifier.NewTelegramBot(a.cfg.Bot.Token, a.cfg.Bot.ChatID)
	if err != nil {
		return fmt.Errorf("notifier.NewTelegramBot: %w", err)
	}
	alertBot.WithMetrics(a.metrics)

	commands, err := bot.New(ctx, a.cfg.Bot.Token, a.cfg.Bot.Admin(), watcher)
	if err != nil {
		return fmt.Errorf("bot.New: %w", err)
	}

	g.Go(func() error {
		if err := alertBot.SendText(ctx, notifier.FormatStarted(a.cfg.App.Name, a.cfg.App.Version)); err != nil {
			logger(ctx).Warn("failed to send start notice", logx.Error(err))
		}

		runErr := alertBot.Run(ctx, alerts)

		stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopNoticeTimeout)
		defer cancel()

		if err := alertBot.SendText(stopCtx, notifier.FormatStopped(a.cfg.App.Name)); err != nil {
			logger(ctx).Warn("failed to send stop notice", logx.Error(err))
		}

		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			return fmt.Errorf("alertBot.Run: %w", runErr)
		}
		return nil
	})

	g.Go(func() error {
		if err := commands.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("commands.Run: %w", err)
		}
		return nil
	})

	logger(ctx).Info("telegram bot enabled", slog.Int64("chat-id", a.cfg.Bot.ChatID))

	return nil
}

// watchRenderer перерисовывает экран на каждом тике. В режиме JSON экран не
// очищается, каждая выдача печатается отдельным документом.
func (a *Application) watchRenderer(ctx context.Context) worker.Renderer {
	return func(res entity.Result) {
		var err error

		if a.cfg.CLI.JSON {
			err = cli.RenderJSON(a.stdout, res)
		} else {
			_, _ = io.WriteString(a.stdout, "\033[H\033[2J")
			err = cli.RenderCountdown(a.stdout, res)
		}

		if err != nil {
			logger(ctx).Error("render failed", logx.Error(err))
		}
	}
}
