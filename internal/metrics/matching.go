package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/styleloom/stylist/internal/domain"
)

// Matching Prometheus metrics.
var (
	MatchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "match_requests_total",
			Help:      "Total number of match requests",
		},
		[]string{"mode"},
	)

	MatchResultSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stylist",
			Name:      "match_result_size",
			Help:      "Number of items returned per match request",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12, 20},
		},
		[]string{"mode"},
	)

	MatchTopScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stylist",
			Name:      "match_top_score",
			Help:      "Score of the best-ranked item per match request",
			Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"mode"},
	)

	OutfitsAssembledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "outfits_assembled_total",
			Help:      "Total number of outfits assembled",
		},
	)

	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stylist",
			Name:      "catalog_items",
			Help:      "Number of items in the loaded catalog",
		},
	)
)

var matchMetricsRegistered bool

// RegisterMatchingMetrics registers matching metrics. Must be called once from main.
func RegisterMatchingMetrics() {
	if matchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MatchRequestsTotal)
	prometheus.MustRegister(MatchResultSize)
	prometheus.MustRegister(MatchTopScore)
	prometheus.MustRegister(OutfitsAssembledTotal)
	prometheus.MustRegister(CatalogItems)
	matchMetricsRegistered = true
}

// ObserveMatch records one match request outcome. Safe to call whether or not
// RegisterMatchingMetrics ran; unregistered metrics just go nowhere.
func ObserveMatch(mode string, results []domain.ScoredItem) {
	MatchRequestsTotal.WithLabelValues(mode).Inc()
	MatchResultSize.WithLabelValues(mode).Observe(float64(len(results)))
	if len(results) > 0 {
		MatchTopScore.WithLabelValues(mode).Observe(float64(results[0].Score))
	}
}
