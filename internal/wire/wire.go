package wire

import (
	"errors"
	"io"
	"net/http"

	"cab-dispatch/internal/adaptor"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/realtime"
	"cab-dispatch/internal/usecase"
	"cab-dispatch/pkg/middleware"
	"cab-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
	Hub    *realtime.Hub
	// Consumer is nil when no Kafka brokers are configured
	Consumer *realtime.KafkaConsumer

	closers []io.Closer
}

// Wiring builds the push fan-out, notification sinks, services and routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	app := &App{
		Hub: realtime.NewHub(config.Relay.SubscriberBuffer, logger),
	}

	publisher, err := app.wirePublisher(config, logger)
	if err != nil {
		app.Close()
		return nil, err
	}

	confirm, sms := wireNotifications(config, logger)

	service := usecase.NewService(repo, publisher, confirm, sms, config, logger)
	handler := adaptor.NewHandler(service, app.Hub, logger)

	if len(config.Kafka.Brokers) > 0 {
		consumer, err := realtime.NewKafkaConsumer(
			config.Kafka.Brokers,
			config.Kafka.LocationTopic,
			config.Kafka.GroupID,
			service.Location.HandleInbound,
			logger,
		)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Consumer = consumer
		app.closers = append(app.closers, consumer)
	}

	app.Router = setupRouter(handler, app.Hub, logger)
	return app, nil
}

// Close releases Kafka clients
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func setupRouter(handler *adaptor.Handler, hub *realtime.Hub, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireBooking(r, handler.Booking)
	wireLocation(r, handler.Location)
	wireNotification(r, handler.Notification)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]int64{"relay_dropped": hub.Dropped()})
	})

	return r
}
