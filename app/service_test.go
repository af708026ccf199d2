package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/linpredict/config"
	"github.com/kilianp07/linpredict/core/model"
)

func newTestService(t *testing.T, cfg *config.Config) (*Service, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	svc, err := New(cfg, prometheus.NewRegistry(), &logs)
	require.NoError(t, err)
	return svc, &logs
}

func TestServiceRun_DefaultRange(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	var out bytes.Buffer
	require.NoError(t, svc.Run(context.Background(), &out))

	want := []string{
		"f(0) = 5.0",
		"f(1) = 5.7",
		"f(2) = 6.4",
		"f(3) = 7.1",
		"f(4) = 7.8",
		"f(5) = 8.5",
		"f(6) = 9.2",
		"f(7) = 9.899999999999999",
		"f(8) = 10.6",
		"f(9) = 11.3",
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, want, lines)
}

func TestServiceRun_CustomRange(t *testing.T) {
	cfg := config.Default()
	cfg.Range = config.RangeConfig{Start: 10, End: 11}
	svc, _ := newTestService(t, cfg)
	var out bytes.Buffer
	require.NoError(t, svc.Run(context.Background(), &out))
	assert.Equal(t, "f(10) = 12.0\n", out.String())
}

func TestServiceRun_Cancelled(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	assert.ErrorIs(t, svc.Run(ctx, &out), context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestServiceRun_WriteError(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	err := svc.Run(context.Background(), failingWriter{})
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
}

func TestServiceEval(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	var out bytes.Buffer
	require.NoError(t, svc.Eval(&out, []string{"0", " 10 ", "-10"}))
	assert.Equal(t, "f(0) = 5.0\nf(10) = 12.0\nf(-10) = -2.0\n", out.String())
}

func TestServiceEval_EchoesInputAsGiven(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	var out bytes.Buffer
	require.NoError(t, svc.Eval(&out, []string{"1e3", "2.50"}))
	assert.Equal(t, "f(1e3) = 705.0\nf(2.50) = 6.75\n", out.String())
}

func TestServiceRun_QuietAtInfo(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	svc, logs := newTestService(t, cfg)
	require.NoError(t, svc.Run(context.Background(), io.Discard))
	assert.Empty(t, logs.String())
}

func TestServiceEval_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t, config.Default())
	var out bytes.Buffer
	err := svc.Eval(&out, []string{"1", "two"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Empty(t, out.String())
}

func TestServiceMetrics(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.PrometheusEnabled = true
	cfg.Logging.Format = "json"
	svc, logs := newTestService(t, cfg)
	require.NoError(t, svc.Run(context.Background(), io.Discard))
	require.NoError(t, svc.Eval(io.Discard, []string{"1", "2"}))

	assert.Contains(t, logs.String(), "predictions recorded: 10")
	assert.Contains(t, logs.String(), "predictions recorded: 12")
	assert.Contains(t, logs.String(), svc.RunID)
}
