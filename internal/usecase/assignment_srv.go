package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/dto/response"
	"cab-dispatch/pkg/keylock"

	"go.uber.org/zap"
)

type AssignmentService interface {
	AssignVendor(ctx context.Context, bookingID, vendorID int64) (*response.BookingResponse, error)
	AssignVendorCab(ctx context.Context, bookingID, cabID int64) (*response.BookingResponse, error)
	AssignVendorDriver(ctx context.Context, bookingID, driverID int64) (*response.BookingResponse, error)
	AssignCabAdmin(ctx context.Context, bookingID, cabAdminID int64) (*response.BookingResponse, error)
	AssignDriveAdmin(ctx context.Context, bookingID, driveAdminID int64) (*response.BookingResponse, error)

	// UpdateStatus enforces the transition table unless force is set.
	UpdateStatus(ctx context.Context, bookingID int64, status int, force bool) (*response.BookingResponse, error)
	// DeleteBooking reports true when the booking was removed and
	// ErrNotFound when there was nothing to remove.
	DeleteBooking(ctx context.Context, bookingID int64) (bool, error)
}

type assignmentService struct {
	bookings repository.BookingRepository
	party    repository.PartyRepository
	notifier NotificationService
	locks    *keylock.KeyedMutex[int64]
	now      func() time.Time
	log      *zap.Logger
}

func NewAssignmentService(repo *repository.Repository, notifier NotificationService, log *zap.Logger) AssignmentService {
	return &assignmentService{
		bookings: repo.Booking,
		party:    repo.Party,
		notifier: notifier,
		locks:    keylock.New[int64](),
		now:      time.Now,
		log:      log.With(zap.String("service", "assignment")),
	}
}

type partyLookup func(ctx context.Context, id int64) (bool, error)

type assignFunc func(f entity.Fulfillment, id int64) (entity.Fulfillment, bool)

// assignment describes one assign operation. pairing is set for the
// cab and driver slots; a vendor change alone never triggers a confirmation.
type assignment struct {
	kind    string
	pairing bool
	exists  partyLookup
	apply   assignFunc
}

func found[T any](find func(context.Context, int64) (*T, error)) partyLookup {
	return func(ctx context.Context, id int64) (bool, error) {
		record, err := find(ctx, id)
		return record != nil, err
	}
}

func (s *assignmentService) AssignVendor(ctx context.Context, bookingID, vendorID int64) (*response.BookingResponse, error) {
	return s.assign(ctx, bookingID, vendorID, assignment{kind: "vendor", exists: found(s.party.FindVendor), apply: entity.Fulfillment.AssignVendor})
}

func (s *assignmentService) AssignVendorCab(ctx context.Context, bookingID, cabID int64) (*response.BookingResponse, error) {
	return s.assign(ctx, bookingID, cabID, assignment{kind: "vendor cab", pairing: true, exists: found(s.party.FindVendorCab), apply: entity.Fulfillment.AssignVendorCab})
}

func (s *assignmentService) AssignVendorDriver(ctx context.Context, bookingID, driverID int64) (*response.BookingResponse, error) {
	return s.assign(ctx, bookingID, driverID, assignment{kind: "vendor driver", pairing: true, exists: found(s.party.FindVendorDriver), apply: entity.Fulfillment.AssignVendorDriver})
}

func (s *assignmentService) AssignCabAdmin(ctx context.Context, bookingID, cabAdminID int64) (*response.BookingResponse, error) {
	return s.assign(ctx, bookingID, cabAdminID, assignment{kind: "cab admin", pairing: true, exists: found(s.party.FindCabAdmin), apply: entity.Fulfillment.AssignCabAdmin})
}

func (s *assignmentService) AssignDriveAdmin(ctx context.Context, bookingID, driveAdminID int64) (*response.BookingResponse, error) {
	return s.assign(ctx, bookingID, driveAdminID, assignment{kind: "drive admin", pairing: true, exists: found(s.party.FindDriveAdmin), apply: entity.Fulfillment.AssignDriveAdmin})
}

func (s *assignmentService) assign(ctx context.Context, bookingID, partyID int64, op assignment) (*response.BookingResponse, error) {
	kind := op.kind
	unlock, err := s.locks.Lock(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("lock booking %d: %w", bookingID, err)
	}
	defer unlock()

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	ok, err := op.exists(ctx, partyID)
	if err != nil {
		s.log.Error("Failed to resolve party", zap.Error(err), zap.String("kind", kind), zap.Int64("party_id", partyID))
		return nil, fmt.Errorf("find %s %d: %w", kind, partyID, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s %d: %w", kind, partyID, ErrNotFound)
	}

	next, changed := op.apply(booking.Fulfillment, partyID)
	if !changed {
		s.log.Debug("Assignment unchanged", zap.Int64("booking_id", bookingID), zap.String("kind", kind))
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	previous := booking.Fulfillment.Path()
	booking.Fulfillment = next
	booking.UpdatedAt = s.now()

	if err := s.bookings.UpdateAssignment(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("assign %s: %w", kind, err)
	}

	fields := []zap.Field{
		zap.Int64("booking_id", bookingID),
		zap.String("kind", kind),
		zap.Int64("party_id", partyID),
	}
	if previous != entity.PathUnassigned && previous != next.Path() {
		fields = append(fields, zap.Stringer("switched_from", previous))
	}
	s.log.Info("Booking assignment updated", fields...)

	if op.pairing && next.PairingComplete() {
		// the confirmation outlives a disconnected client; the notifier timeout bounds it
		if !s.notifier.Confirm(context.WithoutCancel(ctx), booking) {
			s.log.Warn("Confirmation not delivered, assignment kept", zap.Int64("booking_id", bookingID))
		}
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *assignmentService) UpdateStatus(ctx context.Context, bookingID int64, code int, force bool) (*response.BookingResponse, error) {
	status := entity.BookingStatus(code)
	if !status.Valid() {
		return nil, fmt.Errorf("status code %d: %w", code, ErrInvalidArgument)
	}

	unlock, err := s.locks.Lock(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("lock booking %d: %w", bookingID, err)
	}
	defer unlock()

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		resp := response.BookingToResponse(booking)
		return &resp, nil
	}

	if !force && !booking.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("booking %d cannot move from %s to %s: %w", bookingID, booking.Status, status, ErrInvalidArgument)
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.Int64("booking_id", bookingID),
		zap.Stringer("from", booking.Status),
		zap.Stringer("to", status),
		zap.Bool("force", force),
	)

	booking.Status = status
	booking.UpdatedAt = s.now()
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *assignmentService) DeleteBooking(ctx context.Context, bookingID int64) (bool, error) {
	unlock, err := s.locks.Lock(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("lock booking %d: %w", bookingID, err)
	}
	defer unlock()

	deleted, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		return false, fmt.Errorf("delete booking %d: %w", bookingID, err)
	}
	if !deleted {
		return false, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}

	s.log.Info("Booking deleted", zap.Int64("booking_id", bookingID))
	return true, nil
}

func (s *assignmentService) loadBooking(ctx context.Context, bookingID int64) (*entity.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	return booking, nil
}
