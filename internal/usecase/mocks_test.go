package usecase

import (
	"context"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/internal/data/repository"
	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/notify"
	"cab-dispatch/internal/realtime"

	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, limit, offset)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	args := m.Called(ctx, status)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindByVendorID(ctx context.Context, vendorID int64) ([]*entity.Booking, error) {
	args := m.Called(ctx, vendorID)
	b, _ := args.Get(0).([]*entity.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateAssignment(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockPartyRepo struct {
	mock.Mock
}

func (m *mockPartyRepo) FindRider(ctx context.Context, id int64) (*entity.Rider, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entity.Rider)
	return r, args.Error(1)
}

func (m *mockPartyRepo) FindVendor(ctx context.Context, id int64) (*entity.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.Vendor)
	return v, args.Error(1)
}

func (m *mockPartyRepo) FindVendorCab(ctx context.Context, id int64) (*entity.VendorCab, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.VendorCab)
	return c, args.Error(1)
}

func (m *mockPartyRepo) FindVendorDriver(ctx context.Context, id int64) (*entity.VendorDriver, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.VendorDriver)
	return d, args.Error(1)
}

func (m *mockPartyRepo) FindCabAdmin(ctx context.Context, id int64) (*entity.CabAdmin, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.CabAdmin)
	return c, args.Error(1)
}

func (m *mockPartyRepo) FindDriveAdmin(ctx context.Context, id int64) (*entity.DriveAdmin, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.DriveAdmin)
	return d, args.Error(1)
}

func (m *mockPartyRepo) UpdateRiderCoordinates(ctx context.Context, id int64, lat, lon float64) error {
	return m.Called(ctx, id, lat, lon).Error(0)
}

func (m *mockPartyRepo) UpdateDriverCoordinates(ctx context.Context, id int64, lat, lon float64) error {
	return m.Called(ctx, id, lat, lon).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic string, msg realtime.LocationMessage) error {
	return m.Called(ctx, topic, msg).Error(0)
}

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Send(ctx context.Context, msg notify.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Confirm(ctx context.Context, booking *entity.Booking) bool {
	return m.Called(ctx, booking).Bool(0)
}

func (m *mockNotifier) Notify(ctx context.Context, snapshot notify.Confirmation) bool {
	return m.Called(ctx, snapshot).Bool(0)
}

func (m *mockNotifier) SendSMS(ctx context.Context, req *request.SendSMSRequest) error {
	return m.Called(ctx, req).Error(0)
}

func newTestRepo() (*repository.Repository, *mockBookingRepo, *mockPartyRepo) {
	bookings := &mockBookingRepo{}
	party := &mockPartyRepo{}
	return &repository.Repository{Booking: bookings, Party: party}, bookings, party
}
