package adaptor

import (
	"context"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/dto/response"
	"cab-dispatch/internal/notify"
	"cab-dispatch/internal/realtime"

	"github.com/stretchr/testify/mock"
)

type mockAssignmentService struct {
	mock.Mock
}

func (m *mockAssignmentService) booking(args mock.Arguments) (*response.BookingResponse, error) {
	b, _ := args.Get(0).(*response.BookingResponse)
	return b, args.Error(1)
}

func (m *mockAssignmentService) AssignVendor(ctx context.Context, bookingID, vendorID int64) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, vendorID))
}

func (m *mockAssignmentService) AssignVendorCab(ctx context.Context, bookingID, cabID int64) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, cabID))
}

func (m *mockAssignmentService) AssignVendorDriver(ctx context.Context, bookingID, driverID int64) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, driverID))
}

func (m *mockAssignmentService) AssignCabAdmin(ctx context.Context, bookingID, cabAdminID int64) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, cabAdminID))
}

func (m *mockAssignmentService) AssignDriveAdmin(ctx context.Context, bookingID, driveAdminID int64) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, driveAdminID))
}

func (m *mockAssignmentService) UpdateStatus(ctx context.Context, bookingID int64, status int, force bool) (*response.BookingResponse, error) {
	return m.booking(m.Called(ctx, bookingID, status, force))
}

func (m *mockAssignmentService) DeleteBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*response.BookingResponse)
	return b, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, bookingID int64) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID)
	b, _ := args.Get(0).(*response.BookingResponse)
	return b, args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*response.PaginatedResponse[response.BookingResponse])
	return p, args.Error(1)
}

func (m *mockBookingService) ListByStatus(ctx context.Context, status int) ([]response.BookingResponse, error) {
	args := m.Called(ctx, status)
	b, _ := args.Get(0).([]response.BookingResponse)
	return b, args.Error(1)
}

func (m *mockBookingService) ListByVendor(ctx context.Context, vendorID int64) ([]response.BookingResponse, error) {
	args := m.Called(ctx, vendorID)
	b, _ := args.Get(0).([]response.BookingResponse)
	return b, args.Error(1)
}

type mockLocationService struct {
	mock.Mock
}

func (m *mockLocationService) UpdateLocation(ctx context.Context, req *request.LocationUpdateRequest) (*response.RelayResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*response.RelayResult)
	return r, args.Error(1)
}

func (m *mockLocationService) HandleInbound(ctx context.Context, msg realtime.InboundLocation) error {
	return m.Called(ctx, msg).Error(0)
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) Confirm(ctx context.Context, booking *entity.Booking) bool {
	return m.Called(ctx, booking).Bool(0)
}

func (m *mockNotificationService) Notify(ctx context.Context, snapshot notify.Confirmation) bool {
	return m.Called(ctx, snapshot).Bool(0)
}

func (m *mockNotificationService) SendSMS(ctx context.Context, req *request.SendSMSRequest) error {
	return m.Called(ctx, req).Error(0)
}
