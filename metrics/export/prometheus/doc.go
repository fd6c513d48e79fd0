// Package prometheus provides Prometheus collectors for fixit client metrics.
//
// [NewPrometheusExporter] accepts a [fixit.Client] and exposes an [http.Handler]
// that renders all client counters and histograms in Prometheus text exposition
// format. Counter names are prefixed fixit_client_*_total; the single histogram
// is fixit_client_renew_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate client state.
package prometheus
