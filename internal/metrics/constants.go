package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlayersCreated     = "players_created_total"
	MetricNamePlayersDeleted     = "players_deleted_total"
	MetricNameStatsEdits         = "stat_edits_total"
	MetricNameQuestsAccepted     = "quests_accepted_total"
	MetricNameQuestsCompleted    = "quests_completed_total"
	MetricNameAchievementsEarned = "achievements_earned_total"
	MetricNameLeaderboardExports = "leaderboard_exports_total"
	MetricNameLogins             = "logins_total"
	MetricNameSearchesPerformed  = "searches_performed_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlayersCreated     = "Total number of players added to the leaderboard"
	HelpTextPlayersDeleted     = "Total number of players removed from the leaderboard"
	HelpTextStatsEdits         = "Total number of admin stat edits"
	HelpTextQuestsAccepted     = "Total number of quests accepted by players"
	HelpTextQuestsCompleted    = "Total number of quests completed"
	HelpTextAchievementsEarned = "Total number of achievements earned"
	HelpTextLeaderboardExports = "Total number of leaderboard CSV exports"
	HelpTextLogins             = "Total number of successful logins"
	HelpTextSearchesPerformed  = "Total number of player searches performed"
)

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelRole   = "role"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms up to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
