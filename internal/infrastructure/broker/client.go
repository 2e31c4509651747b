package broker

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis         *redis.Client
	requestStream string
	resultStream  string
	group         string
}

// NewClient connects to redis and creates the result consumer group if needed.
func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, err
	}

	err = rdb.XGroupCreateMkStream(ctx, cfg.ResultStream, cfg.GroupName, "$").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, err
	}

	return &Client{
		redis:         rdb,
		requestStream: cfg.RequestStream,
		resultStream:  cfg.ResultStream,
		group:         cfg.GroupName,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
