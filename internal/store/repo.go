package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// EventKind names the mutation recorded by a progress event.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventProgress EventKind = "progress"
	EventLifeLost EventKind = "life_lost"
	EventFinalize EventKind = "finalize"
	EventSync     EventKind = "sync"
	EventGrant    EventKind = "grant"
)

// Event is one applied mutation of a player's progress row.
type Event struct {
	Sequence   int64
	PlayerID   string
	Kind       EventKind
	QuestionID string
	Amount     int
	CreatedAt  time.Time
}

// EventRepo provides read access to the progress event log.
type EventRepo interface {
	// Recent returns a player's events, newest first.
	Recent(ctx context.Context, playerID string, opts QueryOpts) ([]Event, error)
}
