package queue

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisPublisherAppendsToStream(t *testing.T) {
	mr := miniredis.RunT(t)

	pub, err := NewRedisPublisher(RedisPublisherConfig{Addr: mr.Addr(), Stream: "test:events"})
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}

	if err := pub.Publish(context.Background(), Event{Type: EventForumPostCreated, EntityID: "post-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := pub.Publish(context.Background(), Event{Type: EventCarListed, EntityID: "car-1"}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	entries, err := mr.Stream("test:events")
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 stream entries, got %d", len(entries))
	}
}

func TestNewRedisPublisherRequiresAddr(t *testing.T) {
	if _, err := NewRedisPublisher(RedisPublisherConfig{}); err == nil {
		t.Fatal("expected error for missing addr")
	}
}
