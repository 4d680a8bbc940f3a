package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client is what the snapshot stores need from a connection: the command set plus optimistic
// transactions. NewClient returns one for every ClientType.
type Client interface {
	redis.Cmdable
	Close() error
	Watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error
}

var (
	_ Client = (*redis.Client)(nil)
	_ Client = (*redis.ClusterClient)(nil)
)
