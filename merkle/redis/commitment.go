package redis

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	redisv9 "github.com/redis/go-redis/v9"

	beuerrors "github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/merkle"
	"github.com/dora-network/batch-exchange-utils/redis"
)

// SetCommitment stores the full tree built for a batch so that proofs can be served later.
func SetCommitment(
	ctx context.Context,
	rdb redis.Client,
	timeout time.Duration,
	batchID uint32,
	tree *merkle.Tree,
) error {
	b, err := tree.MarshalBinary()
	if err != nil {
		return err
	}

	key := redis.CommitmentKey(batchID)
	txFunc := func(tx *redisv9.Tx) error {
		_, err := tx.TxPipelined(ctx, func(p redisv9.Pipeliner) error {
			return p.Set(ctx, key, b, 0).Err()
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

// GetCommitment returns the tree stored for a batch. A batch with no tree is a NotFound error.
func GetCommitment(
	ctx context.Context,
	rdb redis.Client,
	timeout time.Duration,
	batchID uint32,
) (*merkle.Tree, error) {
	key := redis.CommitmentKey(batchID)
	var tree *merkle.Tree

	f := func(tx *redisv9.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redisv9.Nil) {
				return beuerrors.Wrap(beuerrors.NotFoundError, beuerrors.ErrCommitmentNotFound, key)
			}
			return err
		}
		tree, err = merkle.UnmarshalTree(b)
		return err
	}

	if err := redis.TryTransaction(
		ctx,
		rdb,
		f,
		backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(timeout)),
		key,
	); err != nil {
		return nil, err
	}

	return tree, nil
}
