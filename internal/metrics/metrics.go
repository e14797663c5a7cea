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
	PlayersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersCreated,
			Help: HelpTextPlayersCreated,
		},
	)

	PlayersDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlayersDeleted,
			Help: HelpTextPlayersDeleted,
		},
	)

	StatsEdits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatsEdits,
			Help: HelpTextStatsEdits,
		},
	)

	QuestsAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsAccepted,
			Help: HelpTextQuestsAccepted,
		},
	)

	QuestsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
	)

	AchievementsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsEarned,
			Help: HelpTextAchievementsEarned,
		},
	)

	LeaderboardExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardExports,
			Help: HelpTextLeaderboardExports,
		},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLogins,
			Help: HelpTextLogins,
		},
		[]string{LabelRole},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)
)
