// Package watcher reacts to client writes. A row trigger on the clients
// table notifies every change with before/after snapshots; the watcher
// publishes exactly one feed event when a client first reaches the
// terminal HOMEOWNER state.
//
// Delivery is at-least-once: the listener can reconnect and the trigger
// can refire on unrelated edits, so the decision is keyed purely off the
// previous/new status pair and stays idempotent.
package watcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/propertypasalo/backend/internal/domain"
)

// Transition is the trigger payload: the parts of the before and after
// snapshots the watcher needs.
type Transition struct {
	ClientID       string  `json:"client_id"`
	PreviousStatus *string `json:"previous_status"`
	NewStatus      *string `json:"new_status"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Location       *string `json:"location"`
}

// eventRepo defines the feed repository interface needed by the watcher.
type eventRepo interface {
	Create(ctx context.Context, e domain.Event) (domain.Event, error)
}

// Watcher consumes client change notifications.
type Watcher struct {
	log    *slog.Logger
	events eventRepo
}

// New creates a Watcher.
func New(logger *slog.Logger, events eventRepo) *Watcher {
	return &Watcher{
		log:    logger.With("component", "watcher"),
		events: events,
	}
}

// HandleNotification decodes one trigger payload and applies it. Errors
// are returned for logging only; nobody retries on our behalf beyond the
// at-least-once delivery of the channel itself.
func (w *Watcher) HandleNotification(ctx context.Context, payload string) error {
	var t Transition
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return fmt.Errorf("decode client change payload: %w", err)
	}
	return w.Apply(ctx, t)
}

// Apply publishes the homeowner event when, and only when, the write is
// the client's first entry into HOMEOWNER.
func (w *Watcher) Apply(ctx context.Context, t Transition) error {
	if !isHomeownerTransition(t) {
		return nil
	}

	event := domain.NewHomeownerEvent(deref(t.FirstName), deref(t.LastName), deref(t.Location))
	if _, err := w.events.Create(ctx, event); err != nil {
		return fmt.Errorf("publish homeowner event: %w", err)
	}

	w.log.InfoContext(ctx, "homeowner event published",
		slog.String("client_id", t.ClientID),
	)

	return nil
}

// isHomeownerTransition mirrors the guard order of the original trigger:
// skip deletions, skip clients already HOMEOWNER before the write, and
// skip writes that do not land on HOMEOWNER.
func isHomeownerTransition(t Transition) bool {
	if t.NewStatus == nil {
		return false // deleted
	}
	if t.PreviousStatus != nil && *t.PreviousStatus == domain.ClientStatusHomeowner.String() {
		return false // already fired
	}
	return *t.NewStatus == domain.ClientStatusHomeowner.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
