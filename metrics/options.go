package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

type (
	Option                func(*Server)
	InstrumentationOption func(instrumentation *Instrumentation)
)

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.log = logger
	}
}

func WithEnabled(enabled bool) Option {
	return func(s *Server) {
		s.enabled = enabled
	}
}

// WithConfig applies the listener, path and timeouts of config. Zero values keep the defaults,
// except Port 0 which asks the OS for a free port.
func WithConfig(config Config) Option {
	return func(s *Server) {
		s.enabled = config.Enabled
		s.host = config.Host
		s.port = config.Port
		if config.Path != "" {
			s.path = config.Path
		}
		if config.ReadTimeout > 0 {
			s.readTimeout = config.ReadTimeout
		}
		if config.ReadHeaderTimeout > 0 {
			s.readHeaderTimeout = config.ReadHeaderTimeout
		}
	}
}

func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.reg = reg
	}
}

func WithPrometheusHandlerOpts(opts promhttp.HandlerOpts) Option {
	return func(s *Server) {
		s.opts = opts
	}
}

func WithCounter(typ InstrumentationType, name, help string) InstrumentationOption {
	return func(i *Instrumentation) {
		i.Counters[typ] = prometheus.NewCounter(prometheus.CounterOpts(i.opts(name, help)))
	}
}

func WithCounterVec(typ InstrumentationType, name, help string, labels []string) InstrumentationOption {
	return func(i *Instrumentation) {
		i.CounterVecs[typ] = prometheus.NewCounterVec(prometheus.CounterOpts(i.opts(name, help)), labels)
	}
}

func WithGauge(typ InstrumentationType, name, help string) InstrumentationOption {
	return func(i *Instrumentation) {
		i.Gauges[typ] = prometheus.NewGauge(prometheus.GaugeOpts(i.opts(name, help)))
	}
}

func WithGaugeVec(typ InstrumentationType, name, help string, labels []string) InstrumentationOption {
	return func(i *Instrumentation) {
		i.GaugeVecs[typ] = prometheus.NewGaugeVec(prometheus.GaugeOpts(i.opts(name, help)), labels)
	}
}

func WithHistogram(typ InstrumentationType, name, help string, buckets []float64) InstrumentationOption {
	return func(i *Instrumentation) {
		i.Histograms[typ] = prometheus.NewHistogram(i.histogramOpts(name, help, buckets))
	}
}

func WithHistogramVec(typ InstrumentationType, name, help string, labels []string, buckets []float64) InstrumentationOption {
	return func(i *Instrumentation) {
		i.HistogramVecs[typ] = prometheus.NewHistogramVec(i.histogramOpts(name, help, buckets), labels)
	}
}

func (i *Instrumentation) opts(name, help string) prometheus.Opts {
	return prometheus.Opts{
		Namespace: i.namespace,
		Name:      name,
		Help:      help,
	}
}

func (i *Instrumentation) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: i.namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
}
