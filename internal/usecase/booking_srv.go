package usecase

import (
	"context"
	"fmt"
	"time"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/dto/response"
	"cab-dispatch/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID int64) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListByStatus(ctx context.Context, status int) ([]response.BookingResponse, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]response.BookingResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	party    repository.PartyRepository
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: repo.Booking,
		party:    repo.Party,
		now:      time.Now,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	rider, err := s.party.FindRider(ctx, req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("find rider %d: %w", req.RiderID, err)
	}
	if rider == nil {
		return nil, fmt.Errorf("rider %d: %w", req.RiderID, ErrNotFound)
	}

	now := s.now()
	booking := &entity.Booking{
		Base:     entity.Base{CreatedAt: now, UpdatedAt: now},
		BookID:   utils.GenerateBookID(now),
		RiderID:  req.RiderID,
		Status:   entity.BookingStatusPending,
		TripType: req.TripType,
		Pickup:   req.Pickup,
		Drop:     req.Drop,
		Date:     req.Date,
		Time:     req.Time,
		Amount:   req.Amount,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("book_id", booking.BookID),
		zap.Int64("rider_id", booking.RiderID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %d: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) ListByStatus(ctx context.Context, code int) ([]response.BookingResponse, error) {
	status := entity.BookingStatus(code)
	if !status.Valid() {
		return nil, fmt.Errorf("status code %d: %w", code, ErrInvalidArgument)
	}

	bookings, err := s.bookings.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list bookings by status: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) ListByVendor(ctx context.Context, vendorID int64) ([]response.BookingResponse, error) {
	vendor, err := s.party.FindVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("find vendor %d: %w", vendorID, err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor %d: %w", vendorID, ErrNotFound)
	}

	bookings, err := s.bookings.FindByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by vendor: %w", err)
	}
	return response.BookingsToResponse(bookings), nil
}
