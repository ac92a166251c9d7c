package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "ppc_http_requests_total"
	MetricNameHTTPRequestDuration  = "ppc_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "ppc_http_requests_in_flight"
)

// Event metric names
const (
	MetricNameHostEventsReceived = "ppc_host_events_received_total"
	MetricNameEventHandlerErrors = "ppc_event_handler_errors_total"
)

// Domain metric names
const (
	MetricNameLevelUpEvents         = "ppc_level_up_events_total"
	MetricNameLevelsProcessed       = "ppc_levels_processed_total"
	MetricNamePerkPointsGranted     = "ppc_perk_points_granted_total"
	MetricNameConfigEntriesRejected = "ppc_config_entries_rejected_total"
	MetricNameRateTableEntries      = "ppc_rate_table_entries"
	MetricNameSaveRecords           = "ppc_save_records_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal     = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration   = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight  = "Current number of HTTP requests being served"
	HelpTextHostEventsReceived    = "Host notifications received, by type"
	HelpTextEventHandlerErrors    = "Errors returned by event handlers, by type"
	HelpTextLevelUpEvents         = "Perk point increase events, by classification"
	HelpTextLevelsProcessed       = "Levels resolved, by whether a configured rate matched"
	HelpTextPerkPointsGranted     = "Perk points granted by the resolver"
	HelpTextConfigEntriesRejected = "Rate configuration entries skipped, by reason"
	HelpTextRateTableEntries      = "Entries in the active rate table"
	HelpTextSaveRecords           = "Save channel record operations, by operation and result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelMatch   = "match"
	LabelReason  = "reason"
	LabelOp      = "op"
	LabelResult  = "result"
)

// Label values
const (
	MatchConfigured = "configured"
	MatchNatural    = "natural"

	OpSave   = "save"
	OpLoad   = "load"
	OpRevert = "revert"

	ResultOK      = "ok"
	ResultDefault = "default"
	ResultFailed  = "failed"
)

// HTTPLatencyBuckets are the histogram buckets for the debug server
var HTTPLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1}

// Log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
