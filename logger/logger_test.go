package logger_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/logger"
)

func TestLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.log")

	l1, err := logger.New("debug", file, false)
	require.NoError(t, err)
	l2, err := logger.NewThreadSafeLogger("debug", file, false)
	require.NoError(t, err)
	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		l1.Info().Msg("test1")
		wg.Done()
	}()

	go func() {
		l2.Info().Msg("test2")
		// Need to give it some time to write to the file
		time.Sleep(20 * time.Millisecond)
		wg.Done()
	}()

	wg.Wait()

	require.NoError(t, logger.Close())

	contents, err := os.ReadFile(file)
	require.NoError(t, err)

	require.Contains(t, string(contents), "test1")
	require.Contains(t, string(contents), "test2")
}

func TestNew(t *testing.T) {
	t.Run(
		"Should reject an unknown level", func(t *testing.T) {
			_, err := logger.New("loud", "", false)
			assert.Error(t, err)
		},
	)

	t.Run(
		"Should filter below the configured level", func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "warn.log")
			l, err := logger.New("warn", file, false)
			require.NoError(t, err)
			l.Info().Msg("quiet")
			l.Warn().Msg("loud")
			require.NoError(t, logger.Close())

			contents, err := os.ReadFile(file)
			require.NoError(t, err)
			assert.NotContains(t, string(contents), "quiet")
			assert.Contains(t, string(contents), "loud")
		},
	)

	t.Run(
		"Should fail on an unwritable path", func(t *testing.T) {
			_, err := logger.New("info", filepath.Join(t.TempDir(), "missing", "x.log"), false)
			assert.Error(t, err)
		},
	)
}

func TestGlobal(t *testing.T) {
	t.Setenv("BEU_LOG_DIR", t.TempDir())
	t.Setenv("BEU_SERVICE_NAME", "beu-test")

	t.Run(
		"Should return the same logger until fields are added", func(t *testing.T) {
			first := logger.Global()
			require.NotNil(t, first)
			assert.Same(t, first, logger.Global())

			logger.AddFieldsToGlobal(map[string]any{"batch": 7})
			assert.NotSame(t, first, logger.Global())
		},
	)
}
