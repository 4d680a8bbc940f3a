package kafka_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/kafka"
	"github.com/dora-network/batch-exchange-utils/kafka/kafkafakes"
	"github.com/dora-network/batch-exchange-utils/merkle"
	"github.com/dora-network/batch-exchange-utils/orders"
	"github.com/dora-network/batch-exchange-utils/testing/integration"
)

func testBlob(t *testing.T) []byte {
	t.Helper()
	blob, err := orders.Encode(orders.AuctionOrder{
		User:             orders.MustParseAddress("0x627306090abab3a6e1400e9345bc60c78a8bef57"),
		SellTokenBalance: big.NewInt(100),
		BuyToken:         1,
		ValidUntil:       5,
		PriceNumerator:   big.NewInt(1),
		PriceDenominator: big.NewInt(1),
		RemainingAmount:  big.NewInt(100),
	})
	require.NoError(t, err)
	return blob
}

func TestPublishCommitment(t *testing.T) {
	ctx := context.Background()
	tree, err := merkle.NewBuilder(merkle.SHA256).BuildInterleaved(0, "x", 3, "y")
	require.NoError(t, err)
	commitment := merkle.NewCommitment(7, tree)

	t.Run(
		"Should publish one JSON record per commitment", func(t *testing.T) {
			client := &kafkafakes.FakeClient{}
			require.NoError(t, kafka.PublishCommitment(ctx, client, kafka.DefaultCommitmentsTopic, commitment))

			require.Equal(t, 1, client.ProduceSyncCallCount())
			_, records := client.ProduceSyncArgsForCall(0)
			require.Len(t, records, 1)
			assert.Equal(t, kafka.DefaultCommitmentsTopic, records[0].Topic)
			assert.Equal(t, []byte("7"), records[0].Key)

			var got merkle.Commitment
			require.NoError(t, json.Unmarshal(records[0].Value, &got))
			assert.Equal(t, commitment, got)
			assert.JSONEq(
				t,
				`{"batch_id":7,"root":"0x226c6c39171028844dde804dd05b40f0508e6fb9ccc25b98cedaebc820deec73"}`,
				string(records[0].Value),
			)
		},
	)

	t.Run(
		"Should return produce failures", func(t *testing.T) {
			client := &kafkafakes.FakeClient{}
			failure := errors.NewInternal("broker down")
			client.ProduceSyncReturns(kgo.ProduceResults{{Err: failure}})
			assert.ErrorIs(t, kafka.PublishCommitment(ctx, client, "t", commitment), failure)
		},
	)
}

func TestPublishOrders(t *testing.T) {
	ctx := context.Background()

	t.Run(
		"Should key snapshots by batch id", func(t *testing.T) {
			client := &kafkafakes.FakeClient{}
			blob := testBlob(t)
			require.NoError(t, kafka.PublishOrders(ctx, client, kafka.DefaultOrdersTopic, 3, blob))

			_, records := client.ProduceSyncArgsForCall(0)
			require.Len(t, records, 1)
			assert.Equal(t, []byte("3"), records[0].Key)
			assert.Equal(t, blob, records[0].Value)
		},
	)

	t.Run(
		"Should not publish malformed snapshots", func(t *testing.T) {
			client := &kafkafakes.FakeClient{}
			err := kafka.PublishOrders(ctx, client, kafka.DefaultOrdersTopic, 3, []byte{1, 2, 3})
			assert.True(t, errors.Is(err, errors.MalformedInputError))
			assert.Equal(t, 0, client.ProduceSyncCallCount())
		},
	)
}

func TestPublishAndLag(t *testing.T) {
	n, err := integration.NewNetwork(t)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, n.Cleanup())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	config := kafka.DefaultConfig()
	require.NoError(t, n.CreateKafkaResource(t, ctx, config.OrdersTopic))
	config.Brokers = n.KafkaBrokers()

	producer, err := kafka.NewClient(config, config.OrdersTopic, "")
	require.NoError(t, err)
	defer producer.Close()
	require.NoError(t, producer.Ping(ctx))

	for batch := uint32(1); batch <= 3; batch++ {
		require.NoError(t, kafka.PublishOrders(ctx, producer, config.OrdersTopic, batch, testBlob(t)))
	}

	group := "lag-test"
	consumer, err := n.GetKafkaClient(
		kgo.ConsumerGroup(group),
		kgo.ConsumeTopics(config.OrdersTopic),
		kgo.DisableAutoCommit(),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollRecords(ctx, 1)
	require.Empty(t, fetches.Errors())
	records := fetches.Records()
	require.Len(t, records, 1)
	require.NoError(t, consumer.CommitRecords(ctx, records...))

	lags, err := kafka.CollectConsumerLag(ctx, consumer, group)
	require.NoError(t, err)
	assert.Equal(t, int64(2), kafka.TotalLag(lags, config.OrdersTopic))
}
