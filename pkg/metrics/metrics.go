// Package metrics documents the Prometheus metrics exported by the client.
// Collectors are declared in the packages that update them (client,
// pagination, store) and registered through promauto.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the registerer all ptcg collectors are registered with.
var Registry = prometheus.DefaultRegisterer

// Gatherer is the gatherer WriteTextfile reads from.
var Gatherer prometheus.Gatherer = prometheus.DefaultGatherer

// WriteTextfile writes every ptcg metric to path in the text exposition
// format, for the node_exporter textfile collector. The file is replaced
// atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Names lists every metric exported by this module.
var Names = []string{
	"ptcg_requests_total",
	"ptcg_request_duration_seconds",
	"ptcg_errors_total",
	"ptcg_pages_fetched_total",
	"ptcg_store_operations_total",
}

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - ptcg_requests_total{endpoint, status} (Counter): requests by endpoint and HTTP status
//   - ptcg_request_duration_seconds{endpoint} (Histogram): request duration by endpoint
//   - ptcg_errors_total{kind} (Counter): failed calls by error kind
//
// Pagination Metrics (pkg/pagination):
//   - ptcg_pages_fetched_total{resource} (Counter): pages fetched by get-all calls
//
// Store Metrics (pkg/store):
//   - ptcg_store_operations_total{operation, result} (Counter): snapshot store operations
//
// Endpoint labels collapse IDs: /cards/base1-4 is reported as /cards/:id.
//
// Example Prometheus Queries:
//
//   # API error rate by kind
//   sum by (kind) (rate(ptcg_errors_total[5m]))
//
//   # P95 request latency
//   histogram_quantile(0.95, rate(ptcg_request_duration_seconds_bucket[5m]))
//
//   # Pages per get-all
//   rate(ptcg_pages_fetched_total[1h])
