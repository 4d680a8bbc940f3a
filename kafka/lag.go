package kafka

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

// ConsumerLag holds lag information for a specific topic-partition.
type ConsumerLag struct {
	Topic           string
	Partition       int32
	CommittedOffset int64
	LogEndOffset    int64
	Lag             int64
}

// CollectConsumerLag retrieves lag for every topic-partition the group has committed offsets for.
func CollectConsumerLag(ctx context.Context, client *kgo.Client, group string) ([]ConsumerLag, error) {
	admin := kadm.NewClient(client)

	offsetsResp, err := admin.FetchOffsets(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch committed offsets: %w", err)
	}
	if err := offsetsResp.Error(); err != nil {
		return nil, fmt.Errorf("failed to fetch committed offsets: %w", err)
	}

	topics := make([]string, 0, len(offsetsResp))
	for tp := range offsetsResp {
		topics = append(topics, tp)
	}
	if len(topics) == 0 {
		return nil, nil
	}

	endOffsetsResp, err := admin.ListEndOffsets(ctx, topics...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch log end offsets: %w", err)
	}

	var lags []ConsumerLag
	for tp, partitionOffset := range offsetsResp {
		for partition, committed := range partitionOffset {
			endOffset, exists := endOffsetsResp[tp][partition]
			if !exists {
				continue
			}

			lag := endOffset.Offset - committed.Offset.At
			if lag < 0 {
				lag = 0
			}

			lags = append(
				lags, ConsumerLag{
					Topic:           tp,
					Partition:       partition,
					CommittedOffset: committed.Offset.At,
					LogEndOffset:    endOffset.Offset,
					Lag:             lag,
				},
			)
		}
	}

	return lags, nil
}

// TotalLag sums the lag of every partition of topic, or of all topics when topic is empty.
func TotalLag(lags []ConsumerLag, topic string) int64 {
	var total int64
	for _, l := range lags {
		if topic == "" || l.Topic == topic {
			total += l.Lag
		}
	}
	return total
}
