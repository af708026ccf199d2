package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	corelogger "github.com/kilianp07/linpredict/core/logger"
	coremetrics "github.com/kilianp07/linpredict/core/metrics"
)

// NewSinkFromConfig builds the sink described by cfg. Prometheus collectors
// are registered on reg. A single enabled sink is returned as is, several are
// combined in a MultiSink and none yields NopSink.
func NewSinkFromConfig(cfg coremetrics.Config, reg prometheus.Registerer, l corelogger.StructuredLogger) (coremetrics.MetricsSink, error) {
	var sinks []coremetrics.MetricsSink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSinkWithRegistry(reg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
	}
	if cfg.LogEnabled && l != nil {
		sinks = append(sinks, NewLogSink(l))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
