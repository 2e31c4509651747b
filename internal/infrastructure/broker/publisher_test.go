package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"diary/internal/domain/dto"
)

const (
	RedisImage    = "redis:7-alpine"
	RequestStream = "test-requests"
	ResultStream  = "test-results"
	GroupName     = "test-group"
	Consumer      = "test-consumer"
)

func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        RedisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start Redis container: %v", err)
	}
	t.Cleanup(func() {
		_ = redisC.Terminate(context.Background())
	})

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get Redis container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("failed to get Redis container port: %v", err)
	}

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(Config{
		URI:           setupRedis(t),
		RequestStream: RequestStream,
		ResultStream:  ResultStream,
		GroupName:     GroupName,
		Timeout:       5000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestNewClientToleratesExistingGroup(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	again, err := NewClient(Config{
		URI:           "redis://" + client.redis.Options().Addr,
		RequestStream: RequestStream,
		ResultStream:  ResultStream,
		GroupName:     GroupName,
		Timeout:       5000,
	})
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestPublish(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		requests []dto.AnalysisRequest
	}{
		{"one request", []dto.AnalysisRequest{{DiaryID: "d1", ImageURL: "http://x/uploads/a.png"}}},
		{"several requests", []dto.AnalysisRequest{
			{DiaryID: "d1", ImageURL: "http://x/uploads/a.png"},
			{DiaryID: "d2", ImageURL: "http://x/uploads/b.png"},
			{DiaryID: "d3", ImageURL: "http://x/uploads/c.png"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t)
			publisher := NewPublisher(client, PublisherConfig{Timeout: 1000, MaxLen: 100})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			for _, req := range tt.requests {
				assert.NoError(t, publisher.Publish(ctx, req))
			}

			read, err := client.redis.XRange(ctx, RequestStream, "-", "+").Result()
			require.NoError(t, err)
			require.Len(t, read, len(tt.requests))

			for i, msg := range read {
				var got dto.AnalysisRequest
				require.NoError(t, json.Unmarshal([]byte(msg.Values["body"].(string)), &got))
				assert.Equal(t, tt.requests[i], got)
			}
		})
	}
}

func TestPublishWithoutClient(t *testing.T) {
	t.Parallel()

	publisher := NewPublisher(&Client{}, PublisherConfig{Timeout: 1000})
	assert.Error(t, publisher.Publish(context.Background(), dto.AnalysisRequest{DiaryID: "d1"}))
}

func addResults(t *testing.T, ctx context.Context, client *Client, bodies []string) {
	t.Helper()

	for _, body := range bodies {
		err := client.redis.XAdd(ctx, &redis.XAddArgs{
			Stream: ResultStream,
			Values: map[string]interface{}{"body": body},
		}).Err()
		require.NoError(t, err)
	}
}
