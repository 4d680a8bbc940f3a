package kafka

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/dora-network/batch-exchange-utils/merkle"
	"github.com/dora-network/batch-exchange-utils/orders"
)

// BatchKey is the record key used for everything published about a batch.
func BatchKey(batchID uint32) []byte {
	return []byte(strconv.FormatUint(uint64(batchID), 10))
}

// ParseBatchKey is the inverse of BatchKey.
func ParseBatchKey(key []byte) (uint32, error) {
	id, err := strconv.ParseUint(string(key), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid batch key %q: %w", key, err)
	}
	return uint32(id), nil
}

// PublishOrders sends the encoded order snapshot of a batch. The blob is checked to decode
// before it is sent.
func PublishOrders(ctx context.Context, client Client, topic string, batchID uint32, blob []byte) error {
	if _, err := orders.Decode(blob); err != nil {
		return err
	}
	return client.ProduceSync(ctx, &kgo.Record{
		Topic: topic,
		Key:   BatchKey(batchID),
		Value: blob,
	}).FirstErr()
}

// PublishCommitment sends commitments as JSON, one record per batch.
func PublishCommitment(ctx context.Context, client Client, topic string, commitments ...merkle.Commitment) error {
	records := make([]*kgo.Record, 0, len(commitments))
	for _, c := range commitments {
		bs, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal commitment of batch %d: %w", c.BatchID, err)
		}
		records = append(records, &kgo.Record{
			Topic: topic,
			Key:   BatchKey(c.BatchID),
			Value: bs,
		})
	}
	return client.ProduceSync(ctx, records...).FirstErr()
}
