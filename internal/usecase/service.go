package usecase

import (
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/notify"
	"cab-dispatch/internal/realtime"
	"cab-dispatch/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Assignment   AssignmentService
	Booking      BookingService
	Location     LocationService
	Notification NotificationService
}

// NewService wires the use cases. confirm receives booking confirmations,
// sms serves ad-hoc text messages; either may be nil.
func NewService(repo *repository.Repository, publisher realtime.Publisher, confirm, sms notify.Sink, config *utils.Config, log *zap.Logger) *Service {
	notification := NewNotificationService(repo.Party, confirm, sms, config.Notify.Timeout, log)

	return &Service{
		Assignment:   NewAssignmentService(repo, notification, log),
		Booking:      NewBookingService(repo, log),
		Location:     NewLocationService(repo, publisher, log),
		Notification: notification,
	}
}
