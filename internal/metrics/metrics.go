// Package metrics exposes the Prometheus counters and histograms the
// nightly pipeline's processes publish, grounded on
// services/weatherService/pkg/metrics.go's InitMetrics/promauto shape,
// retargeted from weather-crawl/FCM counters to scrape/chunk/skip
// counters.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	ScrapeDuration *prometheus.HistogramVec
	ScrapeErrors   *prometheus.CounterVec
	ScrapeCities   *prometheus.GaugeVec

	ChunksPublished prometheus.Counter
	RoutesPublished prometheus.Counter
	PublishResidue  prometheus.Counter

	ChunksProcessed  prometheus.Counter
	RoutesSkipped    prometheus.Counter
	ForecastDuration prometheus.Histogram
)

// Init registers every metric exactly once per process; safe to call from
// every cmd entrypoint even though only a subset of metrics apply to any
// one process.
func Init() {
	once.Do(func() {
		ScrapeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "commutecast_scrape_duration_seconds",
			Help:    "Duration of a nightly scraper run.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"})

		ScrapeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "commutecast_scrape_errors_total",
			Help: "Scraper runs that failed as a whole; per-city failures are logged, not counted.",
		}, []string{"provider"})

		ScrapeCities = promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "commutecast_scrape_active_cities",
			Help: "Number of active cities considered in the last scrape run.",
		}, []string{"provider"})

		ChunksPublished = promauto.NewCounter(prometheus.CounterOpts{
			Name: "commutecast_orchestrator_chunks_published_total",
			Help: "Route chunks published to the forecast queue.",
		})
		RoutesPublished = promauto.NewCounter(prometheus.CounterOpts{
			Name: "commutecast_orchestrator_routes_published_total",
			Help: "Routes included across all published chunks.",
		})
		PublishResidue = promauto.NewCounter(prometheus.CounterOpts{
			Name: "commutecast_orchestrator_publish_residue_total",
			Help: "Queue entries left unsent after retry exhaustion.",
		})

		ChunksProcessed = promauto.NewCounter(prometheus.CounterOpts{
			Name: "commutecast_worker_chunks_processed_total",
			Help: "Forecast chunks successfully processed.",
		})
		RoutesSkipped = promauto.NewCounter(prometheus.CounterOpts{
			Name: "commutecast_worker_routes_skipped_total",
			Help: "Per-route forecast failures caught and skipped within a chunk.",
		})
		ForecastDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "commutecast_worker_chunk_duration_seconds",
			Help:    "Duration of processing one forecast chunk.",
			Buckets: prometheus.DefBuckets,
		})
	})
}
