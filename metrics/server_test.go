package metrics_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/metrics"
)

func TestServer(t *testing.T) {
	config := metrics.DefaultConfig()
	config.Namespace = "beu_test"
	config.Host = "127.0.0.1"
	config.Port = 0
	instrumentation := metrics.NewCommitmentInstrumentation(config.Namespace)

	srv, err := metrics.StartMetricsServer(config, instrumentation, zerolog.Nop(), "v0.0.1")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, srv.Stop())
	}()

	instrumentation.CounterVecs[metrics.InstrumentationTypeCacheRequestCount].WithLabelValues(metrics.LabelHit).Inc()

	t.Run(
		"Should serve registered metrics", func(t *testing.T) {
			resp, err := http.Get("http://" + srv.Addr() + config.Path)
			require.NoError(t, err)
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, string(body), `beu_test_tree_cache_requests_total{result="hit"} 1`)
			assert.Contains(t, string(body), `beu_test_version{version="v0.0.1"} 1`)
		},
	)

	t.Run(
		"Should not start twice", func(t *testing.T) {
			assert.ErrorIs(t, srv.Start(), metrics.ErrMetricsRunning)
		},
	)

	t.Run(
		"Should not start when disabled", func(t *testing.T) {
			disabled := metrics.NewServer(metrics.WithEnabled(false))
			assert.ErrorIs(t, disabled.Start(), metrics.ErrMetricsDisabled)
			assert.ErrorIs(t, disabled.Stop(), metrics.ErrMetricsDisabled)
		},
	)
}
