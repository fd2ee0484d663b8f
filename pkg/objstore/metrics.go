package objstore

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/treeverse/revwalk/pkg/ident"
)

var requestHistograms = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "objstore_request_duration_seconds",
		Help:    "request durations for the object Store",
		Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	},
	[]string{"store", "operation"})

// StoreMetricsWrapper wraps any Store with metrics
type StoreMetricsWrapper struct {
	Store     Store
	storeType string
}

func NewStoreMetricsWrapper(store Store, storeType string) *StoreMetricsWrapper {
	return &StoreMetricsWrapper{Store: store, storeType: storeType}
}

func (s *StoreMetricsWrapper) wrapWithMetrics(op string, f func()) {
	start := time.Now()
	f()
	requestHistograms.WithLabelValues(s.storeType, op).Observe(time.Since(start).Seconds())
}

func (s *StoreMetricsWrapper) Open(ctx context.Context, id ident.ID) (*Loader, error) {
	var res *Loader
	var err error

	s.wrapWithMetrics("Open", func() {
		res, err = s.Store.Open(ctx, id)
	})
	return res, err
}

func (s *StoreMetricsWrapper) Put(ctx context.Context, typ Type, data []byte) (ident.ID, error) {
	var res ident.ID
	var err error

	s.wrapWithMetrics("Put", func() {
		res, err = s.Store.Put(ctx, typ, data)
	})
	return res, err
}

func (s *StoreMetricsWrapper) Close() {
	s.wrapWithMetrics("Close", func() {
		s.Store.Close()
	})
}
