package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Client is the part of *kgo.Client the publishers and the order feed use.
//
//counterfeiter:generate . Client
type Client interface {
	// Close closes the client.
	Close()
	// Ping checks brokers to see if any are available
	Ping(ctx context.Context) error
	// ProduceSync sends records to Kafka and waits for them to be acknowledged.
	ProduceSync(ctx context.Context, record ...*kgo.Record) kgo.ProduceResults
	// PollRecords fetches at most maxPollRecords records from Kafka, or all buffered records when it is not positive.
	PollRecords(ctx context.Context, maxPollRecords int) kgo.Fetches
	// CommitUncommittedOffsets issues a synchronous offset commit for any
	// partition that has been consumed from that has uncommitted offsets.
	CommitUncommittedOffsets(ctx context.Context) error
}

type NewClientFunc func(config Config, produceTopic, consumerGroup string, consumeTopics ...string) (Client, error)

func NewClient(config Config, produceTopic, consumerGroup string, consumeTopics ...string) (Client, error) {
	client, err := newKgoClient(config, produceTopic, consumerGroup, consumeTopics...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newKgoClient(config Config, produceTopic, consumerGroup string, consumeTopics ...string) (*kgo.Client, error) {
	opts := make([]kgo.Opt, 0)
	opts = append(opts, kgo.SeedBrokers(config.Brokers...))

	if produceTopic != "" {
		opts = append(opts, kgo.DefaultProduceTopic(produceTopic))
	}

	if consumerGroup != "" {
		opts = append(opts, kgo.ConsumerGroup(consumerGroup))
	}

	if len(consumeTopics) > 0 {
		opts = append(opts, kgo.ConsumeTopics(consumeTopics...))
	}

	if config.Authentication.Username != "" && config.Authentication.Password != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: config.Authentication.Username,
			Pass: config.Authentication.Password,
		}.AsMechanism()))
	}

	return kgo.NewClient(opts...)
}
