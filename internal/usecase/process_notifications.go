package usecase

import (
	"context"

	"github.com/technohippy/aiid/internal/domain"
)

// ProcessNotifications drains pending notifications: it resolves the
// recipients for each, hands them to the Notifier, and marks the
// notification processed. Delivery order follows insertion order; a
// delivery failure stops the drain so the remaining notifications stay
// pending.
type ProcessNotifications struct {
	Notifications NotificationRepository
	Subscriptions SubscriptionRepository
	Notifier      Notifier
}

func (uc *ProcessNotifications) Execute(ctx context.Context) (int, error) {
	pending, err := uc.Notifications.FindPending(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, notification := range pending {
		recipients, err := uc.recipients(ctx, notification)
		if err != nil {
			return processed, err
		}
		if err := uc.Notifier.Notify(ctx, notification, recipients); err != nil {
			return processed, err
		}
		if err := uc.Notifications.MarkProcessed(ctx, notification.ID); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

func (uc *ProcessNotifications) recipients(ctx context.Context, notification domain.Notification) ([]string, error) {
	switch notification.Type {
	case domain.NotificationTypeSubmissionPromoted:
		if notification.UserID == "" {
			return nil, nil
		}
		return []string{notification.UserID}, nil
	case domain.NotificationTypeNewIncidents:
		return uc.subscribers(ctx, notification.Type, 0)
	default:
		return uc.subscribers(ctx, notification.Type, notification.IncidentID)
	}
}

func (uc *ProcessNotifications) subscribers(ctx context.Context, subscriptionType string, incidentID int32) ([]string, error) {
	subscriptions, err := uc.Subscriptions.FindByType(ctx, subscriptionType, incidentID)
	if err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(subscriptions))
	seen := make(map[string]bool, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.UserID == "" || seen[subscription.UserID] {
			continue
		}
		seen[subscription.UserID] = true
		userIDs = append(userIDs, subscription.UserID)
	}
	return userIDs, nil
}
