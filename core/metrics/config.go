package metrics

// Config defines settings for metrics sinks.
type Config struct {
	// PrometheusEnabled registers prediction collectors on a Prometheus registry.
	PrometheusEnabled bool `json:"prometheus_enabled"`
	// LogEnabled emits every prediction as a structured debug record.
	LogEnabled bool `json:"log_enabled"`
}
