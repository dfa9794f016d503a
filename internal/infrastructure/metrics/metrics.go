package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"deal_feed/internal/domain/entity"
	"deal_feed/internal/domain/value"
)

const namespace = "deal_feed"

const (
	resultOK    = "ok"
	resultError = "error"
)

// FeedMetrics метрики клиента ленты
type FeedMetrics struct {
	// Запросы к API сделок
	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram

	// Сколько сделок в выдаче по классам срочности
	Listings *prometheus.GaugeVec

	// Отправленные уведомления о горящих сделках
	AlertsTotal prometheus.Counter
}

// NewFeedMetrics регистрирует метрики в reg; nil означает
// prometheus.DefaultRegisterer.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &FeedMetrics{
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_total",
				Help:      "Количество запросов к API сделок",
			},
			[]string{"result"},
		),

		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Длительность запросов к API сделок",
				Buckets:   prometheus.DefBuckets,
			},
		),

		Listings: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "listings",
				Help:      "Сделки в последней выдаче по классам срочности",
			},
			[]string{"urgency"},
		),

		AlertsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_total",
				Help:      "Количество отправленных уведомлений",
			},
		),
	}
}

func (m *FeedMetrics) ObserveFetch(err error, elapsed time.Duration) {
	result := resultOK
	if err != nil {
		result = resultError
	}

	m.FetchTotal.WithLabelValues(result).Inc()
	m.FetchDuration.Observe(elapsed.Seconds())
}

// ObserveResult перезаписывает gauge целиком, чтобы пропавшие классы
// обнулялись.
func (m *FeedMetrics) ObserveResult(res entity.Result) {
	counts := make(map[value.Urgency]int, 5) //nolint:mnd // skip
	for _, l := range res.Listings {
		counts[l.Urgency]++
	}

	for _, u := range []value.Urgency{
		value.UrgencyNormal,
		value.UrgencyExpired,
		value.UrgencyCritical,
		value.UrgencyWarning,
		value.UrgencyCaution,
	} {
		m.Listings.WithLabelValues(u.String()).Set(float64(counts[u]))
	}
}

func (m *FeedMetrics) IncAlerts() {
	m.AlertsTotal.Inc()
}
