package prediction

import (
	"time"

	"gonum.org/v1/gonum/floats"

	coremetrics "github.com/kilianp07/linpredict/core/metrics"
	"github.com/kilianp07/linpredict/core/model"
)

// Engine evaluates the prediction model.
type Engine interface {
	// Predict returns the prediction for a single observation.
	Predict(x float64) float64
	// PredictBatch returns one prediction per observation, in order.
	PredictBatch(xs []float64) []float64
}

// LinearEngine evaluates model.Predict and reports to a metrics sink.
type LinearEngine struct {
	sink coremetrics.MetricsSink
	now  func() time.Time
	// OnSinkError is called when the sink rejects events. Predictions are
	// returned regardless.
	OnSinkError func(error)
}

// NewLinearEngine returns an engine reporting to sink. A nil sink discards events.
func NewLinearEngine(sink coremetrics.MetricsSink) *LinearEngine {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &LinearEngine{sink: sink, now: time.Now}
}

func (e *LinearEngine) Predict(x float64) float64 {
	y := model.Predict(x)
	e.record(coremetrics.ModeSingle, []float64{x}, []float64{y})
	return y
}

// PredictBatch scales the inputs by model.Coef and shifts them by
// model.Intercept in two vector passes.
func (e *LinearEngine) PredictBatch(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	ys := make([]float64, len(xs))
	floats.ScaleTo(ys, model.Coef, xs)
	floats.AddConst(model.Intercept, ys)
	e.record(coremetrics.ModeBatch, xs, ys)
	return ys
}

func (e *LinearEngine) record(mode coremetrics.Mode, xs, ys []float64) {
	now := e.now()
	events := make([]coremetrics.PredictionEvent, len(xs))
	for i := range xs {
		events[i] = coremetrics.PredictionEvent{Mode: mode, Input: xs[i], Output: ys[i], Time: now}
	}
	if err := e.sink.RecordPredictions(events); err != nil && e.OnSinkError != nil {
		e.OnSinkError(err)
	}
}

// Series returns the integer observations start, start+1, ..., end-1.
// It is empty when end <= start.
func Series(start, end int) []float64 {
	n := end - start
	if n <= 0 {
		return nil
	}
	xs := make([]float64, n)
	if n == 1 {
		xs[0] = float64(start)
		return xs
	}
	return floats.Span(xs, float64(start), float64(end-1))
}
