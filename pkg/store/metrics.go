package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results.
const (
	resultOK    = "ok"
	resultMiss  = "miss"
	resultError = "error"
)

// Operations tracks store operations by operation and result.
var Operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ptcg_store_operations_total",
		Help: "Total number of snapshot store operations",
	},
	[]string{"operation", "result"}, // "save", "get", "list", "snapshot" / "ok", "miss", "error"
)
