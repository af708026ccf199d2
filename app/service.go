package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/linpredict/config"
	coremetrics "github.com/kilianp07/linpredict/core/metrics"
	"github.com/kilianp07/linpredict/core/model"
	"github.com/kilianp07/linpredict/core/prediction"
	"github.com/kilianp07/linpredict/infra/logger"
	"github.com/kilianp07/linpredict/infra/metrics"
	"github.com/kilianp07/linpredict/internal/numfmt"
)

// Service prints predictions for the configured range or for explicit inputs.
type Service struct {
	Engine *prediction.LinearEngine
	RunID  string
	sink   coremetrics.MetricsSink
	rng    config.RangeConfig
	log    logger.Logger
}

// New creates a Service from the configuration. Prometheus collectors are
// registered on reg; nil selects the default registerer.
func New(cfg *config.Config, reg prometheus.Registerer, logw io.Writer) (*Service, error) {
	base, err := logger.NewZerologLogger("service", logger.Options{
		Output: logw,
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	runID := uuid.NewString()
	logg := base.With("run_id", runID)

	sink, err := metrics.NewSinkFromConfig(cfg.Metrics, reg, logg)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	eng := prediction.NewLinearEngine(sink)
	eng.OnSinkError = func(err error) { logg.Warnf("record predictions: %v", err) }

	return &Service{Engine: eng, RunID: runID, sink: sink, rng: cfg.Range, log: logg}, nil
}

// Run writes one "f(<x>) = <y>" line per integer x of the configured range.
// It stops early with the context error when ctx is cancelled.
func (s *Service) Run(ctx context.Context, w io.Writer) error {
	s.log.Debugf("evaluating range [%d, %d)", s.rng.Start, s.rng.End)
	for _, x := range prediction.Series(s.rng.Start, s.rng.End) {
		if err := ctx.Err(); err != nil {
			return err
		}
		y := s.Engine.Predict(x)
		if err := writeLine(w, numfmt.FormatInt(int(x)), y); err != nil {
			return err
		}
	}
	s.logCount()
	return nil
}

// Eval parses every input, predicts them as one batch and writes a line per
// input. Nothing is written when an input is invalid.
func (s *Service) Eval(w io.Writer, inputs []string) error {
	xs := make([]float64, len(inputs))
	for i, in := range inputs {
		x, err := model.ParseInput(in)
		if err != nil {
			return err
		}
		xs[i] = x
	}
	for i, y := range s.Engine.PredictBatch(xs) {
		if err := writeLine(w, strings.TrimSpace(inputs[i]), y); err != nil {
			return err
		}
	}
	s.logCount()
	return nil
}

func (s *Service) logCount() {
	if c, ok := s.sink.(coremetrics.PredictionCounter); ok {
		s.log.Infof("predictions recorded: %.0f", c.PredictionCount())
	}
}

func writeLine(w io.Writer, x string, y float64) error {
	if _, err := fmt.Fprintf(w, "f(%s) = %s\n", x, numfmt.FormatFloat(y)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
