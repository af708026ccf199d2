package metrics

import coremetrics "github.com/kilianp07/linpredict/core/metrics"

// MultiSink fanouts prediction events to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPredictions forwards the events to all sinks, returning the first error encountered.
func (m *MultiSink) RecordPredictions(events []coremetrics.PredictionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordPredictions(events); err != nil {
			return err
		}
	}
	return nil
}

// PredictionCount reports the count of the first sink able to provide one.
func (m *MultiSink) PredictionCount() float64 {
	for _, s := range m.Sinks {
		if c, ok := s.(coremetrics.PredictionCounter); ok {
			return c.PredictionCount()
		}
	}
	return 0
}
