package redis

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/dora-network/batch-exchange-utils/orders"
	"github.com/dora-network/batch-exchange-utils/redis"
)

// SetBatchOrders stores the encoded order snapshot of a batch, replacing any previous one.
// The blob is decoded first, so only well formed snapshots are stored.
func SetBatchOrders(
	ctx context.Context,
	rdb redis.Client,
	timeout time.Duration,
	batchID uint32,
	blob []byte,
) error {
	if _, err := orders.Decode(blob); err != nil {
		return err
	}

	key := redis.BatchOrdersKey(batchID)
	txFunc := func(tx *redisv9.Tx) error {
		_, err := tx.TxPipelined(ctx, func(p redisv9.Pipeliner) error {
			return p.Set(ctx, key, blob, 0).Err()
		})
		return err
	}

	return redis.TryTransaction(
		ctx,
		rdb,
		txFunc,
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(timeout)),
		key,
	)
}

// GetBatchOrders returns the decoded snapshots of the given batches, in the order requested.
// A batch with no snapshot yields an empty slice.
func GetBatchOrders(
	ctx context.Context,
	rdb redis.Client,
	timeout time.Duration,
	batchIDs ...uint32,
) ([][]orders.AuctionOrder, error) {
	keys := make([]string, 0, len(batchIDs))
	for _, id := range batchIDs {
		keys = append(keys, redis.BatchOrdersKey(id))
	}

	var result [][]orders.AuctionOrder
	f := func(tx *redisv9.Tx) error {
		result = make([][]orders.AuctionOrder, 0, len(keys))
		for _, key := range keys {
			blob, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				if errors.Is(err, redisv9.Nil) {
					result = append(result, []orders.AuctionOrder{})
					continue
				}
				return err
			}

			decoded, err := orders.Decode(blob)
			if err != nil {
				return err
			}
			result = append(result, decoded)
		}
		return nil
	}

	if err := redis.TryTransaction(
		ctx,
		rdb,
		f,
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(timeout)),
		keys...,
	); err != nil {
		return nil, err
	}

	return result, nil
}
