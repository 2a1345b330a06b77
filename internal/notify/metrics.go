package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/CodeZF375/crimsonbot/internal/domain"
)

const (
	resultSent    = "sent"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

var notificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "crimsonbot_notifications_total",
		Help: "Change notifications by category, event type and outcome",
	},
	[]string{"category", "type", "result"},
)

func observe(event domain.Event, result string) {
	notificationsTotal.WithLabelValues(string(event.Category), string(event.Type), result).Inc()
}
