package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/linpredict/core/metrics"
	"github.com/kilianp07/linpredict/infra/logger"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordPredictions(ev []coremetrics.PredictionEvent) error {
	r.count += len(ev)
	return r.err
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	require.NoError(t, m.RecordPredictions(make([]coremetrics.PredictionEvent, 2)))
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
	assert.Equal(t, 0.0, m.PredictionCount())
}

func TestMultiSink_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	assert.ErrorIs(t, m.RecordPredictions(make([]coremetrics.PredictionEvent, 1)), boom)
	assert.Equal(t, 0, s2.count)
}

func TestNewSinkFromConfig(t *testing.T) {
	l := logger.NopLogger{}

	sink, err := NewSinkFromConfig(coremetrics.Config{}, prometheus.NewRegistry(), l)
	require.NoError(t, err)
	assert.IsType(t, coremetrics.NopSink{}, sink)

	sink, err = NewSinkFromConfig(coremetrics.Config{PrometheusEnabled: true}, prometheus.NewRegistry(), l)
	require.NoError(t, err)
	assert.IsType(t, &PromSink{}, sink)

	sink, err = NewSinkFromConfig(coremetrics.Config{PrometheusEnabled: true, LogEnabled: true}, prometheus.NewRegistry(), l)
	require.NoError(t, err)
	multi, ok := sink.(*MultiSink)
	require.True(t, ok)
	assert.Len(t, multi.Sinks, 2)

	require.NoError(t, multi.RecordPredictions([]coremetrics.PredictionEvent{{Mode: coremetrics.ModeSingle, Output: 5}}))
	assert.Equal(t, 1.0, multi.PredictionCount())
}
