package feed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/dora-network/batch-exchange-utils/kafka"
	"github.com/dora-network/batch-exchange-utils/metrics"
	"github.com/dora-network/batch-exchange-utils/orders"
)

// SnapshotHandler is called after a snapshot has been decoded and stored.
type SnapshotHandler func(ctx context.Context, batchID uint32, snapshot []orders.AuctionOrder) error

type options struct {
	config          kafka.Config
	consumerGroup   string
	pollTimeout     time.Duration
	maxPollRecords  int
	schema          orders.Schema
	validate        bool
	handler         SnapshotHandler
	logger          zerolog.Logger
	instrumentation *metrics.Instrumentation
	metricsConfig   *metrics.Config
	version         string
	client          kafka.Client
}

type Option func(options) options

// WithKafkaConfig sets the brokers, the orders topic and the credentials of the feed.
func WithKafkaConfig(config kafka.Config) Option {
	return func(o options) options {
		o.config = config
		return o
	}
}

// WithBrokers sets the Kafka brokers for the feed.
func WithBrokers(brokers ...string) Option {
	return func(o options) options {
		o.config.Brokers = brokers
		return o
	}
}

// WithValidation drops snapshots holding an order that fails validation.ValidateOrder.
func WithValidation() Option {
	return func(o options) options {
		o.validate = true
		return o
	}
}

// WithConsumerGroup sets the consumer group used when consuming the orders topic.
func WithConsumerGroup(consumerGroup string) Option {
	return func(o options) options {
		o.consumerGroup = consumerGroup
		return o
	}
}

// WithPollTimeout bounds a single poll of the orders topic.
func WithPollTimeout(timeout time.Duration) Option {
	return func(o options) options {
		o.pollTimeout = timeout
		return o
	}
}

// WithMaxPollRecords sets the maximum number of records to poll from Kafka.
func WithMaxPollRecords(records int) Option {
	return func(o options) options {
		o.maxPollRecords = records
		return o
	}
}

// WithSchema selects the record layout snapshots are decoded with.
func WithSchema(schema orders.Schema) Option {
	return func(o options) options {
		o.schema = schema
		return o
	}
}

// WithSnapshotHandler registers a function run for every decoded snapshot.
func WithSnapshotHandler(handler SnapshotHandler) Option {
	return func(o options) options {
		o.handler = handler
		return o
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o options) options {
		o.logger = logger
		return o
	}
}

// WithInstrumentation counts decoded orders and rejected snapshots.
func WithInstrumentation(instrumentation *metrics.Instrumentation) Option {
	return func(o options) options {
		o.instrumentation = instrumentation
		return o
	}
}

// WithMetricsServer serves the feed metrics while it runs. Without WithInstrumentation the feed
// creates its own collectors in config.Namespace. version is exported as the version gauge.
func WithMetricsServer(config metrics.Config, version string) Option {
	return func(o options) options {
		o.metricsConfig = &config
		o.version = version
		return o
	}
}

// WithClient sets the Kafka client for the feed. Useful for testing.
func WithClient(client kafka.Client) Option {
	return func(o options) options {
		o.client = client
		return o
	}
}

func defaultOptions() options {
	return options{
		config:        kafka.DefaultConfig(),
		consumerGroup: kafka.ConsumerGroup(kafka.FeedComponent),
		pollTimeout:   time.Second,
		schema:        orders.PackedSchema(),
		logger:        zerolog.Nop(),
	}
}

func applyOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}
	return o
}
