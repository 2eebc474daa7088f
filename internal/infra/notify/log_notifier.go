package notify

import (
	"context"

	"github.com/technohippy/aiid/internal/domain"
	"github.com/technohippy/aiid/internal/platform/logger"
)

// LogNotifier records deliveries in the service log. It stands in for a
// mail or push channel; the drain marks notifications processed either
// way.
type LogNotifier struct {
	Log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notification domain.Notification, userIDs []string) error {
	n.Log.Info("notification delivered",
		"type", notification.Type,
		"incident_id", notification.IncidentID,
		"recipients", userIDs,
	)
	return nil
}
