package db

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type StoreMetrics struct {
	Writes       *prometheus.CounterVec
	CorruptReads *prometheus.CounterVec
}

// NewStoreMetrics registers the store collectors on registerer. A nil
// registerer yields working but unregistered collectors.
func NewStoreMetrics(registerer prometheus.Registerer) *StoreMetrics {
	factory := promauto.With(registerer)
	return &StoreMetrics{
		Writes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cyclezen_store_writes_total",
				Help: "Record store writes by collection and operation",
			},
			[]string{"collection", "operation"},
		),
		CorruptReads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cyclezen_store_corrupt_reads_total",
				Help: "Persisted blobs that could not be read and were treated as empty",
			},
			[]string{"key"},
		),
	}
}

func (metrics *StoreMetrics) recordWrite(collection string, operation string) {
	if metrics == nil {
		return
	}
	metrics.Writes.WithLabelValues(collection, operation).Inc()
}

func (metrics *StoreMetrics) recordCorruptRead(key string) {
	if metrics == nil {
		return
	}
	metrics.CorruptReads.WithLabelValues(key).Inc()
}
