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

// Event Metrics
var (
	HostEventsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHostEventsReceived,
			Help: HelpTextHostEventsReceived,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Domain Metrics
var (
	LevelUpEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpEvents,
			Help: HelpTextLevelUpEvents,
		},
		[]string{LabelOutcome},
	)

	LevelsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelsProcessed,
			Help: HelpTextLevelsProcessed,
		},
		[]string{LabelMatch},
	)

	PerkPointsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePerkPointsGranted,
			Help: HelpTextPerkPointsGranted,
		},
	)

	ConfigEntriesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConfigEntriesRejected,
			Help: HelpTextConfigEntriesRejected,
		},
		[]string{LabelReason},
	)

	RateTableEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRateTableEntries,
			Help: HelpTextRateTableEntries,
		},
	)

	SaveRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveRecords,
			Help: HelpTextSaveRecords,
		},
		[]string{LabelOp, LabelResult},
	)
)
