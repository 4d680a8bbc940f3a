package metrics

import "time"

// Config configures the metrics endpoint. Namespace prefixes every collector created by
// NewCommitmentInstrumentation.
type Config struct {
	Enabled           bool          `mapstructure:"enabled" json:"enabled"`
	Namespace         string        `mapstructure:"namespace" json:"namespace"`
	Path              string        `mapstructure:"path" json:"path"`
	Host              string        `mapstructure:"host" json:"host"`
	Port              int           `mapstructure:"port" json:"port"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout" json:"read_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" json:"read_header_timeout"`
}

func DefaultConfig() Config {
	return Config{
		Enabled:           true,
		Namespace:         "batch_exchange",
		Path:              "/metrics",
		Port:              defaultPort,
		ReadTimeout:       defaultReadTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}
}
