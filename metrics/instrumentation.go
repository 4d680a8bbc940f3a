package metrics

import "github.com/prometheus/client_golang/prometheus"

// InstrumentationType is the type of instrumentation the metric is capturing
// Use this type to define your own instrumentation types e.g.:
// const (
//     InstrumentationTypeHttpRequests InstrumentationType = iota
//     InstrumentationTypeDatabaseQueries
// )
type InstrumentationType uint64

const (
	InstrumentationTypeVersion InstrumentationType = iota
	InstrumentationTypeCacheRequestCount
	InstrumentationTypeCacheSize
	InstrumentationTypeTreeBuildDuration
	InstrumentationTypeTreeBuildFailure
	InstrumentationTypeOrdersDecoded
	InstrumentationTypeOrdersDecodeFailure
	InstrumentationTypeNetworkRequestDuration
)

const (
	LabelHit  = "hit"
	LabelMiss = "miss"
)

type Instrumentation struct {
	namespace     string
	Counters      map[InstrumentationType]prometheus.Counter
	CounterVecs   map[InstrumentationType]*prometheus.CounterVec
	Gauges        map[InstrumentationType]prometheus.Gauge
	GaugeVecs     map[InstrumentationType]*prometheus.GaugeVec
	Histograms    map[InstrumentationType]prometheus.Histogram
	HistogramVecs map[InstrumentationType]*prometheus.HistogramVec
}

func NewInstrumentation(namespace string, opts ...InstrumentationOption) *Instrumentation {
	instrumentation := &Instrumentation{
		namespace:     namespace,
		Counters:      make(map[InstrumentationType]prometheus.Counter),
		CounterVecs:   make(map[InstrumentationType]*prometheus.CounterVec),
		Gauges:        make(map[InstrumentationType]prometheus.Gauge),
		GaugeVecs:     make(map[InstrumentationType]*prometheus.GaugeVec),
		Histograms:    make(map[InstrumentationType]prometheus.Histogram),
		HistogramVecs: make(map[InstrumentationType]*prometheus.HistogramVec),
	}

	for _, opt := range opts {
		opt(instrumentation)
	}
	return instrumentation
}

// NewCommitmentInstrumentation returns the metrics recorded by the tree cache and the order feed.
func NewCommitmentInstrumentation(namespace string) *Instrumentation {
	return NewInstrumentation(
		namespace,
		WithGaugeVec(InstrumentationTypeVersion, "version", "Version of the running service", []string{"version"}),
		WithCounterVec(InstrumentationTypeCacheRequestCount, "tree_cache_requests_total", "Memoized tree requests by result", []string{"result"}),
		WithGauge(InstrumentationTypeCacheSize, "tree_cache_entries", "Number of trees held by the memoized builder"),
		WithHistogram(InstrumentationTypeTreeBuildDuration, "tree_build_duration_seconds", "Time spent building commitment trees", prometheus.DefBuckets),
		WithCounter(InstrumentationTypeTreeBuildFailure, "tree_build_failures_total", "Tree builds rejected because of invalid input"),
		WithCounter(InstrumentationTypeOrdersDecoded, "orders_decoded_total", "Auction orders decoded from snapshots"),
		WithCounter(InstrumentationTypeOrdersDecodeFailure, "orders_decode_failures_total", "Order snapshots that could not be decoded"),
		WithHistogramVec(InstrumentationTypeNetworkRequestDuration, "rpc_request_duration_seconds", "JSON-RPC request latency by method", []string{"method"}, prometheus.DefBuckets),
	)
}

func (i *Instrumentation) Collectors() (collectors []prometheus.Collector) {
	for _, counters := range i.Counters {
		collectors = append(collectors, counters)
	}
	for _, counterVecs := range i.CounterVecs {
		collectors = append(collectors, counterVecs)
	}
	for _, gauges := range i.Gauges {
		collectors = append(collectors, gauges)
	}
	for _, gaugeVecs := range i.GaugeVecs {
		collectors = append(collectors, gaugeVecs)
	}
	for _, histograms := range i.Histograms {
		collectors = append(collectors, histograms)
	}
	for _, histogramVecs := range i.HistogramVecs {
		collectors = append(collectors, histogramVecs)
	}
	return
}
