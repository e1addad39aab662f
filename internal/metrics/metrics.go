package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	OutfitsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutfitsBought,
			Help: HelpTextOutfitsBought,
		},
		[]string{LabelOutfit},
	)

	OutfitsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutfitsSold,
			Help: HelpTextOutfitsSold,
		},
		[]string{LabelOutfit},
	)

	OutfitsPlundered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutfitsPlundered,
			Help: HelpTextOutfitsPlundered,
		},
		[]string{LabelOutfit},
	)

	OutfitsTransferred = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOutfitsTransferred,
			Help: HelpTextOutfitsTransferred,
		},
		[]string{LabelOutfit},
	)

	WearDaysApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWearDaysApplied,
			Help: HelpTextWearDaysApplied,
		},
	)

	CreditsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsEarned,
			Help: HelpTextCreditsEarned,
		},
	)

	CreditsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsSpent,
			Help: HelpTextCreditsSpent,
		},
	)
)
