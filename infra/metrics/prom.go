package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	coremetrics "github.com/kilianp07/linpredict/core/metrics"
)

// PromSink records prediction events in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	values      prometheus.Histogram
}

// NewPromSink registers prediction metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "predictions_total",
		Help: "Total number of evaluated predictions",
	}, []string{"mode"})
	values := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "prediction_value",
		Help:    "Distribution of predicted values",
		Buckets: prometheus.LinearBuckets(0, 2.5, 10),
	})

	if err := reg.Register(predictions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			predictions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(values); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			values = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	return &PromSink{predictions: predictions, values: values}, nil
}

// RecordPredictions increments the counter and observes the value of each event.
func (s *PromSink) RecordPredictions(events []coremetrics.PredictionEvent) error {
	for _, ev := range events {
		s.predictions.WithLabelValues(string(ev.Mode)).Inc()
		s.values.Observe(ev.Output)
	}
	return nil
}

// PredictionCount returns the number of predictions recorded across all modes.
func (s *PromSink) PredictionCount() float64 {
	var total float64
	for _, mode := range []coremetrics.Mode{coremetrics.ModeSingle, coremetrics.ModeBatch} {
		var m dto.Metric
		if err := s.predictions.WithLabelValues(string(mode)).Write(&m); err != nil {
			continue
		}
		total += m.GetCounter().GetValue()
	}
	return total
}
