package wire

import (
	"cab-dispatch/internal/adaptor"
	"cab-dispatch/internal/realtime"
	"cab-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLocation(r chi.Router, locationHandler *adaptor.LocationHandler) {
	// POST /api/location - rider or driver position report
	r.Post("/api/location", locationHandler.UpdateLocation)

	// GET /api/topics/{driver-location|user-location}/{id} - SSE push stream
	r.Get("/api/topics/{kind}/{id}", locationHandler.Stream)
}

// wirePublisher fans pushes out to the in-process hub and, when brokers are
// configured, mirrors them to Kafka.
func (a *App) wirePublisher(config *utils.Config, logger *zap.Logger) (realtime.Publisher, error) {
	if len(config.Kafka.Brokers) == 0 {
		logger.Info("Kafka disabled, pushes stay in process")
		return a.Hub, nil
	}

	kafkaPublisher, err := realtime.NewKafkaPublisher(config.Kafka.Brokers, config.Kafka.PushTopic, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, kafkaPublisher)

	logger.Info("Kafka push mirror enabled",
		zap.Strings("brokers", config.Kafka.Brokers),
		zap.String("topic", config.Kafka.PushTopic),
	)
	return realtime.Fanout(a.Hub, kafkaPublisher), nil
}
