package internaldefs

import (
	fixit "github.com/Fix-It-project/fixit-go"
)

// CounterDef defines a public type used by fixit-go APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   fixit.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by fixit-go APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   fixit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the auth client.
var CounterDefs = []CounterDef{
	{ID: fixit.MetricSignInSuccess, Name: "fixit_client_signin_success_total", Help: "Successful sign-in operations."},
	{ID: fixit.MetricSignInFailure, Name: "fixit_client_signin_failure_total", Help: "Failed sign-in operations."},
	{ID: fixit.MetricSignUpSuccess, Name: "fixit_client_signup_success_total", Help: "Successful account registrations."},
	{ID: fixit.MetricSignUpFailure, Name: "fixit_client_signup_failure_total", Help: "Failed account registrations."},
	{ID: fixit.MetricSignOut, Name: "fixit_client_signout_total", Help: "Sign-out operations."},
	{ID: fixit.MetricRenewSuccess, Name: "fixit_client_renew_success_total", Help: "Successful token renewals."},
	{ID: fixit.MetricRenewFailure, Name: "fixit_client_renew_failure_total", Help: "Failed token renewals."},
	{ID: fixit.MetricRenewJoined, Name: "fixit_client_renew_joined_total", Help: "Callers that attached to an in-flight renewal."},
	{ID: fixit.MetricProactiveRenew, Name: "fixit_client_proactive_renew_total", Help: "Renewals triggered by the pre-send expiry check."},
	{ID: fixit.MetricReactiveRetry, Name: "fixit_client_reactive_retry_total", Help: "Renewals triggered by a 401 response."},
	{ID: fixit.MetricRetryExhausted, Name: "fixit_client_retry_exhausted_total", Help: "Requests rejected after the single 401 retry."},
	{ID: fixit.MetricSessionRestored, Name: "fixit_client_session_restored_total", Help: "Sessions restored from the store at startup."},
	{ID: fixit.MetricSessionLoadEmpty, Name: "fixit_client_session_load_empty_total", Help: "Startup loads that found no stored session."},
	{ID: fixit.MetricSessionHealed, Name: "fixit_client_session_healed_total", Help: "Stored sessions wiped because they were partial or corrupt."},
	{ID: fixit.MetricSessionCleared, Name: "fixit_client_session_cleared_total", Help: "Session clear operations."},
	{ID: fixit.MetricStoreWriteFailure, Name: "fixit_client_store_write_failure_total", Help: "Session store writes that failed."},
}

// HistogramDefs is an exported constant or variable used by the auth client.
var HistogramDefs = []HistogramDef{
	{ID: fixit.MetricRenewLatency, Name: "fixit_client_renew_latency_seconds", Help: "Token renewal latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the auth client.
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

// HistogramBoundSuffix is an exported constant or variable used by the auth client.
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

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
