package broker

import (
	"context"
	"errors"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/redis/go-redis/v9"

	"diary/internal/domain/repository/broker"
)

const readErrorPause = time.Second

type Receiver struct {
	redis     *redis.Client
	stream    string
	group     string
	blockTime time.Duration
	batchSize int64
}

func NewReceiver(client *Client, cfg ReceiverConfig) *Receiver {
	r := &Receiver{
		redis:     client.redis,
		stream:    client.resultStream,
		group:     client.group,
		blockTime: time.Duration(cfg.BlockInMs) * time.Millisecond,
		batchSize: cfg.BatchSize,
	}

	if r.blockTime <= 0 {
		r.blockTime = 5 * time.Second
	}
	if r.batchSize <= 0 {
		r.batchSize = 1
	}

	return r
}

func (r *Receiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	if r.redis == nil {
		logger.Error("redis client is nil in receiver")

		return nil, errors.New("redis not initialized")
	}

	out := make(chan broker.Message)
	go r.consumeLoop(ctx, out, consumerName)

	return out, nil
}

func (r *Receiver) consumeLoop(ctx context.Context, out chan broker.Message, consumerName string) {
	defer close(out)

	r.replayPending(ctx, out, consumerName)

	for {
		select {
		case <-ctx.Done():
			logger.Info("analysis result consumer stopped", "consumer", consumerName)

			return
		default:
			r.readAndEmit(ctx, out, consumerName, ">", r.blockTime)
		}
	}
}

// replayPending re-emits entries delivered to consumerName earlier but never
// acked, oldest first, before new entries are read.
func (r *Receiver) replayPending(ctx context.Context, out chan broker.Message, consumerName string) {
	cursor := "0"
	for ctx.Err() == nil {
		lastID, n := r.readAndEmit(ctx, out, consumerName, cursor, -1)
		if n == 0 {
			return
		}
		cursor = lastID
	}
}

// readAndEmit reads one batch starting after startID. A negative block returns
// immediately. It reports the last entry ID seen and how many entries were read.
func (r *Receiver) readAndEmit(ctx context.Context, out chan broker.Message, consumerName, startID string,
	block time.Duration,
) (string, int) {
	entries, err := r.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: consumerName,
		Streams:  []string{r.stream, startID},
		Count:    r.batchSize,
		Block:    block,
	}).Result()

	if err != nil && !errors.Is(err, redis.Nil) {
		if ctx.Err() != nil {
			return startID, 0
		}
		logger.Error("failed to read from redis stream group", "stream", r.stream, "err", err)

		// avoid spinning on a broken connection
		select {
		case <-ctx.Done():
		case <-time.After(readErrorPause):
		}

		return startID, 0
	}

	lastID, n := startID, 0
	for _, stream := range entries {
		for _, msg := range stream.Messages {
			lastID = msg.ID
			n++

			body, ok := msg.Values["body"].(string)
			if !ok {
				logger.Error("invalid body type in redis message", "id", msg.ID)
				if err := r.redis.XAck(ctx, r.stream, r.group, msg.ID).Err(); err != nil {
					logger.Error("failed to ack invalid message", "id", msg.ID, "err", err)
				}

				continue
			}

			select {
			case out <- &RedisMessage{
				stream:      r.stream,
				group:       r.group,
				id:          msg.ID,
				body:        body,
				redisClient: r.redis,
			}:
			case <-ctx.Done():
				return lastID, n
			}
		}
	}

	return lastID, n
}
