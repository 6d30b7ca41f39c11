package internaldefs

import (
	boardclient "github.com/taskhive/boardclient"
)

// CounterDef defines a public type used by boardclient APIs.
type CounterDef struct {
	ID   boardclient.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by boardclient APIs.
type HistogramDef struct {
	ID   boardclient.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the API client.
var CounterDefs = []CounterDef{
	{ID: boardclient.MetricRequestIssued, Name: "boardclient_request_issued_total", Help: "Outgoing API requests."},
	{ID: boardclient.MetricRequestFailure, Name: "boardclient_request_failure_total", Help: "API requests that ended in a transport error or non-2xx status."},
	{ID: boardclient.MetricUnauthorizedResponse, Name: "boardclient_unauthorized_response_total", Help: "Responses with status 401."},
	{ID: boardclient.MetricForcedLogout, Name: "boardclient_forced_logout_total", Help: "Sessions forced anonymous by a 401."},
	{ID: boardclient.MetricLoginSuccess, Name: "boardclient_login_success_total", Help: "Successful logins."},
	{ID: boardclient.MetricLoginFailure, Name: "boardclient_login_failure_total", Help: "Failed logins."},
	{ID: boardclient.MetricRegisterSuccess, Name: "boardclient_register_success_total", Help: "Successful registrations."},
	{ID: boardclient.MetricRegisterFailure, Name: "boardclient_register_failure_total", Help: "Failed registrations."},
	{ID: boardclient.MetricFetchUserFailure, Name: "boardclient_fetch_user_failure_total", Help: "Profile refreshes rejected by the backend."},
	{ID: boardclient.MetricLogout, Name: "boardclient_logout_total", Help: "Explicit logouts."},
	{ID: boardclient.MetricNotificationPoll, Name: "boardclient_notification_poll_total", Help: "Successful notification feed fetches."},
	{ID: boardclient.MetricCredentialPersistFailure, Name: "boardclient_credential_persist_failure_total", Help: "Failures persisting the bearer token."},
}

// HistogramDefs is an exported constant or variable used by the API client.
var HistogramDefs = []HistogramDef{
	{ID: boardclient.MetricRequestLatency, Name: "boardclient_request_latency_seconds", Help: "API request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the API client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the API client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to the cumulative form
// Prometheus histograms expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
