package metrics

import "github.com/dora-network/batch-exchange-utils/errors"

var (
	ErrMetricsDisabled   = errors.New(errors.InvalidInputError, "metrics server is disabled")
	ErrMetricsRunning    = errors.New(errors.InternalError, "metrics server is already running")
	ErrMetricsNotRunning = errors.New(errors.InternalError, "metrics server is not running")
)
