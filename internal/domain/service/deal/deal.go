// Package deal достаёт сделки из API (с коротким кешем страниц) и прогоняет
// их через классификатор ленты.
package deal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/patrickmn/go-cache"

	"deal_feed/internal/domain"
	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/service/feed"
	"deal_feed/internal/domain/value"
	"deal_feed/pkg/contextx"
	"deal_feed/pkg/errcodes"
	"deal_feed/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	pageCacheTTL    = time.Minute
	defaultPageSize = 20
	defaultMaxPages = 5
)

//go:generate moq -rm -out deals_api_mock.gen.go . DealsAPI:DealsAPIMock
type DealsAPI interface {
	ListDeals(ctx context.Context, skip, take int) ([]entity.Deal, error)
	GetDeal(ctx context.Context, id string) (entity.Deal, error)
}

type fetchObserver interface {
	ObserveFetch(err error, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveFetch(error, time.Duration) {}

type DealService struct {
	api      DealsAPI
	clock    feed.Clock
	cache    *cache.Cache
	pageSize int
	maxPages int
	metrics  fetchObserver
}

func NewDealService(api DealsAPI) *DealService {
	return &DealService{
		api:      api,
		clock:    feed.SystemClock{},
		cache:    cache.New(pageCacheTTL, 2*pageCacheTTL),
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
		metrics:  nopObserver{},
	}
}

func (s *DealService) WithClock(clock feed.Clock) *DealService {
	s.clock = clock
	return s
}

func (s *DealService) WithPageSize(take int) *DealService {
	if take > 0 {
		s.pageSize = take
	}
	return s
}

func (s *DealService) WithMaxPages(n int) *DealService {
	if n > 0 {
		s.maxPages = n
	}
	return s
}

// WithCacheTTL ttl <= 0 отключает кеш.
func (s *DealService) WithCacheTTL(ttl time.Duration) *DealService {
	if ttl <= 0 {
		s.cache = nil
		return s
	}
	s.cache = cache.New(ttl, 2*ttl)
	return s
}

func (s *DealService) WithMetrics(m fetchObserver) *DealService {
	s.metrics = m
	return s
}

func (s *DealService) Now() time.Time {
	return s.clock.Now()
}

// Page одна страница ленты.
func (s *DealService) Page(ctx context.Context, skip, take int) ([]entity.Deal, error) {
	if skip < 0 || take <= 0 {
		return nil, failure.NewInvalidArgumentError(
			fmt.Sprintf("invalid paging skip=%d take=%d", skip, take),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription("skip must be >= 0 and take must be > 0"),
		)
	}

	key := fmt.Sprintf("page:%d:%d", skip, take)

	if deals, ok := s.cached(key); ok {
		return deals.([]entity.Deal), nil //nolint:forcetypeassert
	}

	start := time.Now()
	deals, err := s.api.ListDeals(ctx, skip, take)
	s.metrics.ObserveFetch(err, time.Since(start))

	if err != nil {
		return nil, fmt.Errorf("api.ListDeals: %w", err)
	}

	s.store(key, deals)

	return deals, nil
}

// Fetch страницы по pageSize, пока не придёт неполная страница или не
// наберётся maxPages. maxPages <= 0 означает значение из настроек.
func (s *DealService) Fetch(ctx context.Context, maxPages int) ([]entity.Deal, error) {
	if maxPages <= 0 {
		maxPages = s.maxPages
	}

	var all []entity.Deal

	for page := range maxPages {
		deals, err := s.Page(ctx, page*s.pageSize, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("s.Page: %w", err)
		}

		all = append(all, deals...)

		if len(deals) < s.pageSize {
			break
		}
	}

	logger(ctx).Debug("deals fetched", slog.Int(logx.FieldTotal, len(all)))

	return all, nil
}

// Refresh сбрасывает кеш; следующий запрос пойдёт в сеть.
func (s *DealService) Refresh() {
	if s.cache != nil {
		s.cache.Flush()
	}
}

// Get одна сделка по id.
func (s *DealService) Get(ctx context.Context, id string) (entity.Deal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entity.Deal{}, failure.NewInvalidArgumentError(
			"empty deal id",
			failure.WithCode(errcodes.InvalidDealID),
		)
	}

	key := "deal:" + id

	if deal, ok := s.cached(key); ok {
		return deal.(entity.Deal), nil //nolint:forcetypeassert
	}

	start := time.Now()
	deal, err := s.api.GetDeal(ctx, id)
	s.metrics.ObserveFetch(err, time.Since(start))

	if err != nil {
		return entity.Deal{}, fmt.Errorf("api.GetDeal: %w", err)
	}

	s.store(key, deal)

	return deal, nil
}

// Apply классифицирует уже загруженные сделки на текущий момент часов.
func (s *DealService) Apply(deals []entity.Deal, filters value.Filters) entity.Result {
	return feed.Apply(deals, filters, s.clock.Now())
}

// Browse загружает ленту и применяет фильтры.
func (s *DealService) Browse(ctx context.Context, filters value.Filters) (entity.Result, error) {
	deals, err := s.Fetch(ctx, 0)
	if err != nil {
		return entity.Result{}, fmt.Errorf("s.Fetch: %w", err)
	}

	res := s.Apply(deals, filters)

	logger(ctx).Info("feed classified",
		slog.Int(logx.FieldTotal, res.Total),
		slog.Int(logx.FieldListings, len(res.Listings)),
		slog.String(logx.FieldCategory, filters.Normalized().Category.String()),
		slog.String(logx.FieldTimeWindow, filters.Normalized().TimeWindow.String()),
	)

	return res, nil
}

// Mine лента "мои сделки" для пользователя из контекста.
func (s *DealService) Mine(ctx context.Context, filters value.Filters) (entity.Result, error) {
	userID, err := contextx.UserIDFromContext(ctx)
	if err != nil {
		return entity.Result{}, domain.WrapError(err, errcodes.Unauthorized, "user is not signed in")
	}

	filters.SellerID = userID.String()

	return s.Browse(ctx, filters)
}

// Deal одна сделка с производными полями.
func (s *DealService) Deal(ctx context.Context, id string) (entity.Listing, error) {
	deal, err := s.Get(ctx, id)
	if err != nil {
		return entity.Listing{}, fmt.Errorf("s.Get: %w", err)
	}

	return feed.Derive(deal, s.clock.Now()), nil
}

func (s *DealService) cached(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(key)
}

func (s *DealService) store(key string, v any) {
	if s.cache != nil {
		s.cache.Set(key, v, cache.DefaultExpiration)
	}
}
