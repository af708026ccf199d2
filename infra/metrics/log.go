package metrics

import (
	corelogger "github.com/kilianp07/linpredict/core/logger"
	coremetrics "github.com/kilianp07/linpredict/core/metrics"
)

// LogSink writes each prediction as a structured debug record.
type LogSink struct {
	log corelogger.StructuredLogger
}

// NewLogSink returns a sink logging through l.
func NewLogSink(l corelogger.StructuredLogger) *LogSink {
	return &LogSink{log: l}
}

func (s *LogSink) RecordPredictions(events []coremetrics.PredictionEvent) error {
	for _, ev := range events {
		s.log.Debugw("prediction", map[string]any{
			"mode":   string(ev.Mode),
			"input":  ev.Input,
			"output": ev.Output,
		})
	}
	return nil
}
