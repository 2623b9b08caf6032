package adaptor

import (
	"cab-dispatch/internal/realtime"
	"cab-dispatch/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Booking      *BookingHandler
	Location     *LocationHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Booking:      NewBookingHandler(service.Assignment, service.Booking, log),
		Location:     NewLocationHandler(service.Location, hub, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}
