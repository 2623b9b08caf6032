package usecase

import (
	"context"
	"fmt"
	"time"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/notify"

	"go.uber.org/zap"
)

const defaultNotifyTimeout = 5 * time.Second

type NotificationService interface {
	// Confirm builds the confirmation snapshot for booking and delivers it.
	Confirm(ctx context.Context, booking *entity.Booking) bool
	// Notify delivers a rendered confirmation. It never fails the caller:
	// sink errors, timeouts and panics all report false.
	Notify(ctx context.Context, snapshot notify.Confirmation) bool
	SendSMS(ctx context.Context, req *request.SendSMSRequest) error
}

type notificationService struct {
	party   repository.PartyRepository
	sink    notify.Sink
	sms     notify.Sink
	timeout time.Duration
	log     *zap.Logger
}

func NewNotificationService(party repository.PartyRepository, sink, sms notify.Sink, timeout time.Duration, log *zap.Logger) NotificationService {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &notificationService{
		party:   party,
		sink:    sink,
		sms:     sms,
		timeout: timeout,
		log:     log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) Confirm(ctx context.Context, booking *entity.Booking) bool {
	snapshot, err := s.snapshot(ctx, booking)
	if err != nil {
		s.log.Warn("Failed to build confirmation snapshot", zap.Error(err), zap.Int64("booking_id", booking.ID))
		return false
	}
	return s.Notify(ctx, snapshot)
}

func (s *notificationService) Notify(ctx context.Context, snapshot notify.Confirmation) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Notification sink panicked", zap.Any("panic", r), zap.String("book_id", snapshot.BookID))
			ok = false
		}
	}()

	if s.sink == nil {
		s.log.Warn("No notification sink configured", zap.String("book_id", snapshot.BookID))
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sink.Send(ctx, notify.ConfirmationMessage(snapshot)); err != nil {
		s.log.Warn("Booking confirmation not delivered", zap.Error(err), zap.String("book_id", snapshot.BookID))
		return false
	}

	s.log.Info("Booking confirmation sent", zap.String("book_id", snapshot.BookID))
	return true
}

func (s *notificationService) SendSMS(ctx context.Context, req *request.SendSMSRequest) error {
	if err := validate(req); err != nil {
		return err
	}
	if s.sms == nil {
		return fmt.Errorf("sms: %w", notify.ErrDisabled)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sms.Send(ctx, notify.Message{Phone: req.Phone, Text: req.Message}); err != nil {
		s.log.Error("Failed to send SMS", zap.Error(err))
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

// snapshot resolves the vehicle and driver details of the active path.
// Missing party records leave the fields blank.
func (s *notificationService) snapshot(ctx context.Context, b *entity.Booking) (notify.Confirmation, error) {
	c := notify.Confirmation{
		BookID:   b.BookID,
		Name:     b.Name,
		Email:    b.Email,
		Phone:    b.Phone,
		Pickup:   b.Pickup,
		Drop:     b.Drop,
		TripType: b.TripType,
		Date:     b.Date,
		Time:     b.Time,
		Amount:   b.Amount,
	}

	switch b.Fulfillment.Path() {
	case entity.PathVendor:
		v := b.Fulfillment.Vendor()
		if v.CabID != nil {
			cab, err := s.party.FindVendorCab(ctx, *v.CabID)
			if err != nil {
				return c, fmt.Errorf("find vendor cab %d: %w", *v.CabID, err)
			}
			if cab != nil {
				c.CabName, c.VehicleNo = cab.CarName, cab.VehicleNo
			}
		}
		if v.DriverID != nil {
			driver, err := s.party.FindVendorDriver(ctx, *v.DriverID)
			if err != nil {
				return c, fmt.Errorf("find vendor driver %d: %w", *v.DriverID, err)
			}
			if driver != nil {
				c.DriverName, c.DriverContact = driver.DriverName, driver.ContactNo
			}
		}
	case entity.PathAdmin:
		a := b.Fulfillment.Admin()
		if a.CabAdminID != nil {
			cab, err := s.party.FindCabAdmin(ctx, *a.CabAdminID)
			if err != nil {
				return c, fmt.Errorf("find cab admin %d: %w", *a.CabAdminID, err)
			}
			if cab != nil {
				c.CabName, c.VehicleNo = cab.CarName, cab.VehicleNo
			}
		}
		if a.DriveAdminID != nil {
			driver, err := s.party.FindDriveAdmin(ctx, *a.DriveAdminID)
			if err != nil {
				return c, fmt.Errorf("find drive admin %d: %w", *a.DriveAdminID, err)
			}
			if driver != nil {
				c.DriverName, c.DriverContact = driver.DriverName, driver.ContactNo
			}
		}
	}

	return c, nil
}
