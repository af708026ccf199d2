// Package metrics defines the sink interface the prediction engine reports
// to. Implementations live in infra/metrics; NopSink is the default when
// nothing is configured.
package metrics
