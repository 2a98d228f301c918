package service

import (
	"context"
	"errors"

	"questnotifier/internal/model"
	"questnotifier/internal/repository"
	"questnotifier/pkg/logger"

	"go.uber.org/zap"
)

// Dispatcher delivers one notification to all of a user's devices. It is
// best-effort end to end: every failure path logs and returns, nothing
// propagates to the caller.
type Dispatcher struct {
	users  UserRepository
	pusher Pusher
}

func NewDispatcher(users UserRepository, pusher Pusher) *Dispatcher {
	return &Dispatcher{
		users:  users,
		pusher: pusher,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, userID string, t model.NotificationType, title, body string) {
	log := logger.Logger()

	user, err := d.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return
		}
		log.Error("failed to fetch user for notification",
			zap.String("user_id", userID), zap.Error(err))
		return
	}

	if !user.Allows(t) {
		return
	}

	tokens := user.DeviceTokens()
	if len(tokens) == 0 {
		return
	}

	newBadge := user.BadgeCount + 1

	err = d.pusher.Send(ctx, tokens, &PushMessage{
		Title: title,
		Body:  body,
		Badge: newBadge,
	})
	if err != nil {
		log.Error("failed to send push notification",
			zap.String("user_id", userID),
			zap.String("type", string(t)),
			zap.Error(err))
		return
	}

	// The badge is persisted only after a successful send so a failed send
	// never drifts the stored count. Concurrent notifies may reuse a badge
	// value; the count is advisory UI state, not a correctness counter.
	if err := d.users.UpdateBadgeCount(ctx, userID, newBadge); err != nil {
		log.Error("failed to persist badge count",
			zap.String("user_id", userID), zap.Error(err))
	}
}
