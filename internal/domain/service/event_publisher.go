package service

import (
	"context"
	"time"
)

// LedgerEventType names an audit event.
type LedgerEventType string

const (
	EventClaimCreated    LedgerEventType = "claim.created"
	EventClaimReleased   LedgerEventType = "claim.released"
	EventCodeIssued      LedgerEventType = "code.issued"
	EventRatingSubmitted LedgerEventType = "rating.submitted"
)

// Known reports whether t is one of the published event types.
func (t LedgerEventType) Known() bool {
	switch t {
	case EventClaimCreated, EventClaimReleased, EventCodeIssued, EventRatingSubmitted:
		return true
	default:
		return false
	}
}

// LedgerEvent is published after a state change commits.
type LedgerEvent struct {
	Type       LedgerEventType   `json:"type"`
	RequestID  string            `json:"request_id,omitempty"`
	AccountID  string            `json:"account_id"`
	ClaimID    string            `json:"claim_id"`
	Location   string            `json:"location,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	Publish(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
