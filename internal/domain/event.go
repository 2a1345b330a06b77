package domain

import (
	"context"
	"time"
)

type EventType string

const (
	EventCreate EventType = "create"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event describes a committed mutation. For deletes it carries the snapshot taken
// before removal.
type Event struct {
	Type     EventType
	Category Category
	RecordID int64
	Key      string
	Details  []Detail
	// Actor is the Discord user id that triggered the change, if any.
	Actor string
	At    time.Time
}

type actorKey struct{}

func WithActor(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

func ActorFrom(ctx context.Context) string {
	v, _ := ctx.Value(actorKey{}).(string)
	return v
}
