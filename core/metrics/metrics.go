package metrics

import "time"

// Mode tells how a prediction was computed.
type Mode string

const (
	ModeSingle Mode = "single"
	ModeBatch  Mode = "batch"
)

// PredictionEvent represents one evaluated observation.
type PredictionEvent struct {
	Mode   Mode
	Input  float64
	Output float64
	Time   time.Time
}

// MetricsSink records prediction events for observability purposes.
type MetricsSink interface {
	RecordPredictions(events []PredictionEvent) error
}

// PredictionCounter is implemented by sinks able to report how many
// predictions they have recorded.
type PredictionCounter interface {
	PredictionCount() float64
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPredictions([]PredictionEvent) error { return nil }
