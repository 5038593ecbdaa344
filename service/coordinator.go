package service

import (
	"context"

	"shardcommit/domain"
)

// Coordinator is the caller-facing write path of the shard cluster.
type Coordinator interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Gather(ctx context.Context, key string) (map[string][]byte, error)

	GetStatus(ctx context.Context, txID string) (domain.Status, error)
}
