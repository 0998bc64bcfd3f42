package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "case_status_events"
)

// CaseStatusEvent is the payload delivered when a case status changes.
type CaseStatusEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	CaseNumber string    `json:"case_number"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewCaseStatusEvent builds an event with a fresh event ID.
func NewCaseStatusEvent(caseNumber, status, notes string, updatedAt time.Time) CaseStatusEvent {
	return CaseStatusEvent{
		EventID:    uuid.New(),
		CaseNumber: caseNumber,
		Status:     status,
		Notes:      notes,
		UpdatedAt:  updatedAt,
	}
}

// Publisher is the contract for queuing case status events.
type Publisher interface {
	Publish(ctx context.Context, event CaseStatusEvent) error
}

// RedisPublisher implements Publisher on top of a Redis list.
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher.
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the event onto the Redis queue.
func (p *RedisPublisher) Publish(ctx context.Context, event CaseStatusEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal case status event: %w", err)
	}

	// LPUSH pairs with the worker's BRPop on the other end
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish case status event to Redis: %w", err)
	}
	return nil
}
