package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultStreamMaxLen = 10000

// RedisPublisher appends events to a Redis stream with an approximate
// length cap so the stream cannot grow without bound.
type RedisPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// RedisPublisherConfig configures the stream publisher.
type RedisPublisherConfig struct {
	Addr     string
	Password string
	Stream   string
	MaxLen   int64
}

// NewRedisPublisher creates a stream-backed event publisher.
func NewRedisPublisher(cfg RedisPublisherConfig) (*RedisPublisher, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("redis addr required")
	}
	stream := strings.TrimSpace(cfg.Stream)
	if stream == "" {
		stream = "mrgcar:events"
	}
	maxLen := cfg.MaxLen
	if maxLen <= 0 {
		maxLen = defaultStreamMaxLen
	}
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Password,
		}),
		stream: stream,
		maxLen: maxLen,
	}, nil
}

// Publish appends one event to the stream.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"type":    event.Type,
			"payload": payload,
		},
	}).Err(); err != nil {
		return fmt.Errorf("xadd event: %w", err)
	}
	return nil
}
