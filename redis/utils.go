package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/dora-network/batch-exchange-utils/errors"
)

const (
	BatchOrdersPrefix = "batch_orders"
	CommitmentPrefix  = "commitment"
)

// BatchOrdersKey returns the key of the encoded order snapshot of a batch.
func BatchOrdersKey(batchID uint32) string {
	return Key(BatchOrdersPrefix, strconv.FormatUint(uint64(batchID), 10))
}

// CommitmentKey returns the key of the commitment tree of a batch.
func CommitmentKey(batchID uint32) string {
	return Key(CommitmentPrefix, strconv.FormatUint(uint64(batchID), 10))
}

// Key constructs a redis key from the given elements. The elements should be provided in the
// order they should appear in the key. A key's format should follow the following pattern:
// - data type
// - record ID
// - additional distinguishing information
// for example: "batch_orders:42"
func Key(elems ...string) string {
	return strings.Join(elems, ":")
}

// TryTransaction retries the given transaction function until it succeeds or the backoff strategy gives up.
// Only optimistic lock failures are retried, any other error is returned as is.
func TryTransaction(ctx context.Context, rdb Client, f func(tx *redis.Tx) error, backoffStrategy backoff.BackOff, keys ...string) error {
	retryFn := func() error {
		err := rdb.Watch(ctx, f, keys...)
		if err == nil || err == redis.TxFailedErr {
			return err
		}
		return backoff.Permanent(err)
	}

	return backoff.Retry(retryFn, backoff.WithContext(backoffStrategy, ctx))
}

func NewClient(config Config) (Client, error) {
	if len(config.Address) == 0 {
		return nil, errors.New(errors.InvalidInputError, "redis address must be provided")
	}

	switch config.ClientType {
	case ClientTypeCluster:
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:            config.Address,
			Protocol:         config.Protocol,
			Username:         config.Username,
			Password:         config.Password,
			DisableIndentity: config.DisableIdentity,
		}), nil
	case ClientTypeFailover:
		if config.MasterName == "" {
			return nil, errors.New(errors.InvalidInputError, "redis master name must be provided for a failover client")
		}
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       config.MasterName,
			SentinelAddrs:    config.Address,
			Protocol:         config.Protocol,
			Username:         config.Username,
			Password:         config.Password,
			DB:               config.DB,
			DisableIndentity: config.DisableIdentity,
		}), nil
	case ClientTypeRegular:
		return redis.NewClient(&redis.Options{
			Addr:             config.Address[0],
			Protocol:         config.Protocol,
			Username:         config.Username,
			Password:         config.Password,
			DB:               config.DB,
			DisableIndentity: config.DisableIdentity,
		}), nil
	default:
		return nil, errors.Newf(errors.InvalidInputError, "unsupported redis client type %d", config.ClientType)
	}
}
