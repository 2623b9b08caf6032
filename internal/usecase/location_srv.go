package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/dto/response"
	"cab-dispatch/internal/realtime"

	"go.uber.org/zap"
)

type LocationService interface {
	UpdateLocation(ctx context.Context, req *request.LocationUpdateRequest) (*response.RelayResult, error)
	// HandleInbound adapts a stream message to UpdateLocation.
	HandleInbound(ctx context.Context, msg realtime.InboundLocation) error
}

type locationService struct {
	bookings  repository.BookingRepository
	party     repository.PartyRepository
	publisher realtime.Publisher
	now       func() time.Time
	log       *zap.Logger
}

func NewLocationService(repo *repository.Repository, publisher realtime.Publisher, log *zap.Logger) LocationService {
	return &locationService{
		bookings:  repo.Booking,
		party:     repo.Party,
		publisher: publisher,
		now:       time.Now,
		log:       log.With(zap.String("service", "location")),
	}
}

func (s *locationService) UpdateLocation(ctx context.Context, req *request.LocationUpdateRequest) (*response.RelayResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	return s.relay(ctx, entity.LocationUpdate{
		BookingID: req.BookingID,
		SenderID:  req.UserID,
		Role:      entity.ParseRole(req.Role),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: s.now(),
	})
}

func (s *locationService) HandleInbound(ctx context.Context, msg realtime.InboundLocation) error {
	_, err := s.UpdateLocation(ctx, &request.LocationUpdateRequest{
		BookingID: msg.BookingID,
		UserID:    msg.UserID,
		Role:      msg.Role,
		Latitude:  msg.Latitude,
		Longitude: msg.Longitude,
	})
	return err
}

func (s *locationService) relay(ctx context.Context, u entity.LocationUpdate) (*response.RelayResult, error) {
	booking, err := s.bookings.FindByID(ctx, u.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %d: %w", u.BookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d: %w", u.BookingID, ErrNotFound)
	}

	driverID, hasDriver := booking.Fulfillment.DriverID()

	if u.Role == entity.RoleDriver {
		if !hasDriver || driverID != u.SenderID {
			s.log.Warn("Driver is not assigned to booking",
				zap.Int64("booking_id", u.BookingID), zap.Int64("sender_id", u.SenderID))
			return nil, fmt.Errorf("driver %d on booking %d: %w", u.SenderID, u.BookingID, ErrUnauthorized)
		}
		err = s.party.UpdateDriverCoordinates(ctx, u.SenderID, u.Latitude, u.Longitude)
	} else {
		if booking.RiderID != u.SenderID {
			s.log.Warn("Rider does not own booking",
				zap.Int64("booking_id", u.BookingID), zap.Int64("sender_id", u.SenderID))
			return nil, fmt.Errorf("rider %d on booking %d: %w", u.SenderID, u.BookingID, ErrUnauthorized)
		}
		err = s.party.UpdateRiderCoordinates(ctx, u.SenderID, u.Latitude, u.Longitude)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", u.Role, u.SenderID, ErrNotFound)
		}
		return nil, fmt.Errorf("store %s location: %w", u.Role, err)
	}

	result := &response.RelayResult{Persisted: true}

	var topic string
	var recipient int64
	switch {
	case u.Role == entity.RoleDriver:
		topic, recipient = realtime.UserTopic(booking.RiderID), booking.RiderID
	case hasDriver:
		topic, recipient = realtime.DriverTopic(driverID), driverID
	default:
		s.log.Debug("No driver assigned, push skipped", zap.Int64("booking_id", u.BookingID))
		return result, nil
	}

	msg := realtime.LocationMessage{
		Latitude:    u.Latitude,
		Longitude:   u.Longitude,
		UserID:      u.SenderID,
		Role:        string(u.Role),
		RecipientID: recipient,
		Timestamp:   u.Timestamp,
	}

	if err := s.publisher.Publish(ctx, topic, msg); err != nil {
		s.log.Warn("Location push failed", zap.Error(err), zap.String("topic", topic))
		return result, nil
	}

	s.log.Debug("Location pushed",
		zap.String("topic", topic),
		zap.String("recipient_role", string(u.Role.Counterpart())),
	)

	result.Pushed = true
	result.Topic = topic
	result.Message = &msg
	return result, nil
}
