// Package events publishes audit events for team membership changes.
package events

import (
	"context"
	"time"
)

// Event types and methods emitted by the roster importer.
const (
	TypeLearnerAdded   = "team.learner_added"
	TypeLearnerRemoved = "team.learner_removed"

	MethodTeamCSVImport = "team_csv_import"
)

// Event is a single audit record of a membership change.
type Event struct {
	Type      string    `json:"type"`
	CourseID  string    `json:"course_id"`
	TeamID    string    `json:"team_id"`
	UserID    int64     `json:"user_id"`
	Method    string    `json:"method"`
	EmittedAt time.Time `json:"emitted_at"`
}

// Publisher delivers audit events to the event bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }
