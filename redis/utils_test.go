package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/batch-exchange-utils/errors"
	"github.com/dora-network/batch-exchange-utils/redis"
	"github.com/dora-network/batch-exchange-utils/testing/integration"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "batch_orders:42", redis.BatchOrdersKey(42))
	assert.Equal(t, "commitment:4294967295", redis.CommitmentKey(^uint32(0)))
	assert.Equal(t, "a:b:c", redis.Key("a", "b", "c"))
}

func TestClientType(t *testing.T) {
	for _, typ := range []redis.ClientType{redis.ClientTypeRegular, redis.ClientTypeCluster, redis.ClientTypeFailover} {
		assert.Equal(t, typ, redis.ClientTypeFromString(typ.String()))
	}
	assert.Equal(t, redis.ClientTypeRegular, redis.ClientTypeFromString("anything"))
	assert.Equal(t, "unspecified", redis.ClientType(9).String())
}

func TestNewClient(t *testing.T) {
	t.Run(
		"Should require an address", func(t *testing.T) {
			_, err := redis.NewClient(redis.Config{})
			assert.True(t, errors.Is(err, errors.InvalidInputError))
		},
	)

	t.Run(
		"Should require a master name for failover", func(t *testing.T) {
			config := redis.DefaultConfig()
			config.ClientType = redis.ClientTypeFailover
			_, err := redis.NewClient(config)
			assert.True(t, errors.Is(err, errors.InvalidInputError))
		},
	)

	t.Run(
		"Should honour the client type", func(t *testing.T) {
			config := redis.DefaultConfig()
			rdb, err := redis.NewClient(config)
			require.NoError(t, err)
			assert.IsType(t, &redisv9.Client{}, rdb)
			require.NoError(t, rdb.Close())

			config.ClientType = redis.ClientTypeCluster
			rdb, err = redis.NewClient(config)
			require.NoError(t, err)
			assert.IsType(t, &redisv9.ClusterClient{}, rdb)
			require.NoError(t, rdb.Close())
		},
	)

	t.Run(
		"Should reject unknown client types", func(t *testing.T) {
			config := redis.DefaultConfig()
			config.ClientType = redis.ClientType(7)
			_, err := redis.NewClient(config)
			assert.True(t, errors.Is(err, errors.InvalidInputError))
		},
	)
}

func TestTryTransaction(t *testing.T) {
	n, err := integration.NewNetwork(t)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, n.Cleanup())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, n.CreateRedisResource(t, ctx))

	config := redis.DefaultConfig()
	config.Address = []string{n.RedisAddress()}
	rdb, err := redis.NewClient(config)
	require.NoError(t, err)
	defer rdb.Close()

	t.Run(
		"Should not retry errors other than lock failures", func(t *testing.T) {
			calls := 0
			permanent := errors.NewInternal("boom")
			err := redis.TryTransaction(
				ctx, rdb, func(tx *redisv9.Tx) error {
					calls++
					return permanent
				}, backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(time.Second)), "k",
			)
			assert.ErrorIs(t, err, permanent)
			assert.Equal(t, 1, calls)
		},
	)

	t.Run(
		"Should commit a transaction", func(t *testing.T) {
			err := redis.TryTransaction(
				ctx, rdb, func(tx *redisv9.Tx) error {
					_, err := tx.TxPipelined(ctx, func(p redisv9.Pipeliner) error {
						return p.Set(ctx, "k", "v", 0).Err()
					})
					return err
				}, backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(time.Second)), "k",
			)
			require.NoError(t, err)
			got, err := rdb.Get(ctx, "k").Result()
			require.NoError(t, err)
			assert.Equal(t, "v", got)
		},
	)
}
