package matchinginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hirematch/engine/recruitment/matching"
)

// RedisRunQueue implements matching.RunQueue using a Redis list
type RedisRunQueue struct {
	client    *redis.Client
	queueName string
}

// NewRedisRunQueue creates a new Redis-based run queue
func NewRedisRunQueue(client *redis.Client, queueName string) matching.RunQueue {
	return &RedisRunQueue{
		client:    client,
		queueName: queueName,
	}
}

// Enqueue adds a run to the queue
func (q *RedisRunQueue) Enqueue(ctx context.Context, run *matching.MatchRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run %s: %w", run.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue run %s: %w", run.ID, err)
	}

	return nil
}

// Dequeue pops a run from the queue, blocking up to timeout
func (q *RedisRunQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil means the timeout elapsed with the queue empty
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue run: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	return []byte(result[1]), nil
}

// Size returns the number of queued runs
func (q *RedisRunQueue) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("get queue size: %w", err)
	}
	return size, nil
}

// Ping checks if the Redis connection is alive
func (q *RedisRunQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
