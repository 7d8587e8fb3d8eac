package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

type metricsUseCaseObserver struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsUseCaseObserver registers use-case counters and latency
// histograms on reg and records every observed event.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (UseCaseObserver, error) {
	o := &metricsUseCaseObserver{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "herdsync",
			Name:      "use_case_total",
			Help:      "Service use cases executed, by result.",
		}, []string{"use_case", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "herdsync",
			Name:      "use_case_duration_seconds",
			Help:      "Service use-case latency.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"use_case"}),
	}
	if err := reg.Register(o.total); err != nil {
		return nil, err
	}
	if err := reg.Register(o.duration); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *metricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.total.WithLabelValues(event.Name, event.Outcome()).Inc()
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

// WriteMetricsTextfile dumps the gathered registry in the node_exporter
// textfile format.
func WriteMetricsTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
