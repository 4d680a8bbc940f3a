package feed

import (
	"context"
	"slices"
	"sync"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/kafka"
	"github.com/dora-network/batch-exchange-utils/metrics"
	"github.com/dora-network/batch-exchange-utils/orders"
	"github.com/dora-network/batch-exchange-utils/validation"
)

var (
	ErrNotInitialized = errors.New(errors.InternalError, "feed not initialized")
	ErrRunning        = errors.New(errors.InternalError, "feed already running")
	ErrNotRunning     = errors.New(errors.InternalError, "feed not running")
)

// Feed keeps the latest order snapshot of every batch seen on the orders topic.
// Records are keyed by batch id and hold the encoded orders of that batch; a newer
// record for the same batch replaces the older one.
type Feed struct {
	mu         sync.RWMutex
	options    options
	ownsClient bool
	cancelFunc context.CancelFunc
	done       chan struct{}
	snapshots  map[uint32][]orders.AuctionOrder
	status     Status
	metricsSrv *metrics.Server
}

// New creates a new feed with the provided options.
func New(opts ...Option) *Feed {
	return &Feed{
		options:   applyOptions(opts...),
		snapshots: make(map[uint32][]orders.AuctionOrder),
		status:    StatusNotReady,
	}
}

// Ready returns true if the feed is ready to be started.
func (f *Feed) Ready() bool {
	return f.Status() == StatusReady
}

// Init creates the Kafka client from the configuration, unless one was provided in the options.
func (f *Feed) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.options.schema.Validate(); err != nil {
		return err
	}
	if f.options.metricsConfig != nil && f.options.instrumentation == nil {
		f.options.instrumentation = metrics.NewCommitmentInstrumentation(f.options.metricsConfig.Namespace)
	}

	if f.options.client != nil {
		f.status = StatusReady
		return nil
	}

	client, err := kafka.NewClient(f.options.config, "", f.options.consumerGroup, f.options.config.OrdersTopic)
	if err != nil {
		return err
	}
	f.options.client = client
	f.ownsClient = true
	f.status = StatusReady
	return nil
}

// Start polls the orders topic in the background until Stop is called or parent is done.
func (f *Feed) Start(parent context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.status == StatusNotReady, f.options.client == nil:
		return ErrNotInitialized
	case f.status == StatusRunning:
		return ErrRunning
	}

	if cfg := f.options.metricsConfig; cfg != nil && cfg.Enabled {
		srv, err := metrics.StartMetricsServer(*cfg, f.options.instrumentation, f.options.logger, f.options.version)
		if err != nil {
			return err
		}
		f.metricsSrv = srv
	}

	ctx, cancel := context.WithCancel(parent)
	f.cancelFunc = cancel
	f.done = make(chan struct{})
	f.status = StatusRunning
	go f.run(ctx, f.done)
	return nil
}

func (f *Feed) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		default:
			pollCtx, cancel := context.WithTimeout(ctx, f.options.pollTimeout)
			fetches := f.options.client.PollRecords(pollCtx, f.options.maxPollRecords)
			cancel()
			f.process(ctx, fetches)
		}
	}
}

func (f *Feed) process(ctx context.Context, fetches kgo.Fetches) {
	log := f.options.logger
	for _, fetch := range fetches {
		for _, topic := range fetch.Topics {
			for _, partition := range topic.Partitions {
				if partition.Err != nil {
					if ctx.Err() == nil {
						log.Error().
							Str("topic", topic.Topic).
							Int32("partition", partition.Partition).
							Err(partition.Err).
							Msg("error fetching order snapshots")
					}
					continue
				}
				for _, record := range partition.Records {
					f.apply(ctx, record)
				}
			}
		}
	}
}

func (f *Feed) apply(ctx context.Context, record *kgo.Record) {
	log := f.options.logger.With().
		Str("topic", record.Topic).
		Int32("partition", record.Partition).
		Int64("offset", record.Offset).
		Logger()

	batchID, err := kafka.ParseBatchKey(record.Key)
	if err != nil {
		f.count(metrics.InstrumentationTypeOrdersDecodeFailure, 1)
		log.Warn().Err(err).Msg("skipping order snapshot")
		return
	}

	snapshot, err := f.options.schema.Decode(record.Value)
	if err != nil {
		f.count(metrics.InstrumentationTypeOrdersDecodeFailure, 1)
		log.Warn().Err(err).Uint32("batch_id", batchID).Msg("skipping order snapshot")
		return
	}
	if f.options.validate {
		if err := validation.ValidateOrders(snapshot); err != nil {
			f.count(metrics.InstrumentationTypeOrdersDecodeFailure, 1)
			log.Warn().Err(err).Uint32("batch_id", batchID).Msg("skipping invalid order snapshot")
			return
		}
	}

	f.mu.Lock()
	f.snapshots[batchID] = snapshot
	f.mu.Unlock()
	f.count(metrics.InstrumentationTypeOrdersDecoded, len(snapshot))
	log.Debug().Uint32("batch_id", batchID).Int("orders", len(snapshot)).Msg("stored order snapshot")

	if f.options.handler != nil {
		if err := f.options.handler(ctx, batchID, slices.Clone(snapshot)); err != nil {
			log.Error().Err(err).Uint32("batch_id", batchID).Msg("failed to handle order snapshot")
		}
	}
}

func (f *Feed) count(typ metrics.InstrumentationType, n int) {
	if f.options.instrumentation == nil {
		return
	}
	if c, ok := f.options.instrumentation.Counters[typ]; ok {
		c.Add(float64(n))
	}
}

// Stop stops polling and waits for the poll loop to exit. A client created by Init is closed,
// so Init must be called again before a restart.
func (f *Feed) Stop() error {
	f.mu.Lock()
	if f.status != StatusRunning {
		f.mu.Unlock()
		return ErrNotRunning
	}
	f.status = StatusStopped
	cancel, done, srv := f.cancelFunc, f.done, f.metricsSrv
	f.metricsSrv = nil
	f.mu.Unlock()

	cancel()
	<-done

	var err error
	if srv != nil {
		err = srv.Stop()
	}

	if f.ownsClient {
		f.mu.Lock()
		f.options.client.Close()
		f.options.client = nil
		f.ownsClient = false
		f.mu.Unlock()
	}
	return err
}

// MetricsAddr is the address the metrics server listens on, or "" when none is running.
func (f *Feed) MetricsAddr() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.metricsSrv == nil {
		return ""
	}
	return f.metricsSrv.Addr()
}

// Status returns the current status of the feed.
func (f *Feed) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Orders returns the latest snapshot of a batch.
func (f *Feed) Orders(batchID uint32) ([]orders.AuctionOrder, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	s, ok := f.snapshots[batchID]
	return slices.Clone(s), ok
}

// Batches returns the ids of every batch with a snapshot, ascending.
func (f *Feed) Batches() []uint32 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := make([]uint32, 0, len(f.snapshots))
	for id := range f.snapshots {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
