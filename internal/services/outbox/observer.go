package outbox

import (
	"context"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const (
	statusSent   = "sent"
	statusFailed = "failed"
)

var deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "messenger_webview",
	Name:      "send_api_deliveries_total",
	Help:      "Outbound Send API deliveries by outcome.",
}, []string{"status"})

// MetricsObserver logs every delivery outcome and counts it in Prometheus.
type MetricsObserver struct {
	logger  zerolog.Logger
	counter *prometheus.CounterVec
}

// NewMetricsObserver creates an Observer backed by the process-wide delivery counter.
func NewMetricsObserver(logger zerolog.Logger) *MetricsObserver {
	return &MetricsObserver{
		logger:  logger,
		counter: deliveriesTotal,
	}
}

func (m *MetricsObserver) DeliverySucceeded(_ context.Context, deliveryID string, req *messenger.SendRequest) {
	m.counter.WithLabelValues(statusSent).Inc()
	m.logger.Info().
		Str("deliveryId", deliveryID).
		Str("recipientId", req.Recipient.ID).
		Msg("message sent!")
}

func (m *MetricsObserver) DeliveryFailed(_ context.Context, deliveryID string, req *messenger.SendRequest, err error) {
	m.counter.WithLabelValues(statusFailed).Inc()
	event := m.logger.Error().Err(err).Str("deliveryId", deliveryID)
	if req != nil {
		event = event.Str("recipientId", req.Recipient.ID)
	}
	event.Msg("Unable to send message")
}
