// Package queue publishes domain events so downstream workers (search
// indexing, notifications) can react without coupling to the API.
package queue

import (
	"context"
	"time"
)

const (
	EventCarListed        = "car.listed"
	EventForumPostCreated = "forum.post.created"
)

// Event is a single domain event.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher delivers events; delivery is best-effort from the caller's
// point of view.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
