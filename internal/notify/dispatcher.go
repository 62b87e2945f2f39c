// Package notify appends invitation notifications to invitees' profiles.
package notify

import (
	"context"
	"log/slog"

	"github.com/mmynk/tripmate/internal/metrics"
	"github.com/mmynk/tripmate/internal/models"
)

// NotificationStore appends one notification to a user's list.
type NotificationStore interface {
	AppendNotification(ctx context.Context, userID string, n models.Notification) error
}

// Invite is one invitee to notify.
type Invite struct {
	UserID    string
	InvitedAt int64
	IsLeader  bool
}

// Result is the delivery outcome for one invitee. Err is nil on success.
type Result struct {
	UserID string
	Err    error
}

// Dispatcher writes invitation notifications.
// There is no idempotency key: dispatching the same invite twice appends two records.
type Dispatcher struct {
	store NotificationStore
}

// NewDispatcher creates a Dispatcher writing through store.
func NewDispatcher(store NotificationStore) *Dispatcher {
	return &Dispatcher{store: store}
}

// Dispatch notifies each invitee in order. A failure is logged and recorded in
// that invitee's Result; it never stops the remaining invitees.
func (d *Dispatcher) Dispatch(ctx context.Context, groupID int64, invites []Invite) []Result {
	results := make([]Result, 0, len(invites))
	for _, inv := range invites {
		err := d.store.AppendNotification(ctx, inv.UserID, models.Notification{
			GroupID:   groupID,
			InvitedAt: inv.InvitedAt,
			IsLeader:  inv.IsLeader,
		})
		metrics.ObserveInvitation(err)
		if err != nil {
			slog.Warn("Invitation notification failed",
				"group_id", groupID,
				"user_id", inv.UserID,
				"error", err,
			)
		} else {
			slog.Debug("Invitation notification sent", "group_id", groupID, "user_id", inv.UserID)
		}
		results = append(results, Result{UserID: inv.UserID, Err: err})
	}
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
