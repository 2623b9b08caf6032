package repository

import (
	"context"
	"errors"
	"fmt"

	"cab-dispatch/internal/data/entity"
	"cab-dispatch/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context) (int64, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
	FindByVendorID(ctx context.Context, vendorID int64) ([]*entity.Booking, error)

	// UpdateAssignment writes every fulfillment reference in one statement
	UpdateAssignment(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error
	// Delete reports false when no row matched
	Delete(ctx context.Context, id int64) (bool, error)
}

const bookingColumns = `id, book_id, rider_id, status, trip_type, user_pickup, user_drop, date, time,
	amount, name, email, phone, vendor_id, vendor_cab_id, vendor_driver_id, cab_admin_id, drive_admin_id,
	created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// status travels as int16 in both directions; BookingStatus is a
// fmt.Stringer and would otherwise be text-encoded by name
func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		b      entity.Booking
		status int16
		vendor entity.VendorAssignment
		admin  entity.AdminAssignment
	)

	err := row.Scan(
		&b.ID,
		&b.BookID,
		&b.RiderID,
		&status,
		&b.TripType,
		&b.Pickup,
		&b.Drop,
		&b.Date,
		&b.Time,
		&b.Amount,
		&b.Name,
		&b.Email,
		&b.Phone,
		&vendor.VendorID,
		&vendor.CabID,
		&vendor.DriverID,
		&admin.CabAdminID,
		&admin.DriveAdminID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = entity.BookingStatus(status)
	b.Fulfillment = entity.NewFulfillment(vendor, admin)
	return &b, nil
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (book_id, rider_id, status, trip_type, user_pickup, user_drop, date, time,
			amount, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		booking.BookID,
		booking.RiderID,
		int16(booking.Status),
		booking.TripType,
		booking.Pickup,
		booking.Drop,
		booking.Date,
		booking.Time,
		booking.Amount,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("book_id", booking.BookID),
			zap.Int64("rider_id", booking.RiderID),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID", zap.Error(err), zap.Int64("booking_id", id))
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	bookings, err := r.queryBookings(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at DESC`

	bookings, err := r.queryBookings(ctx, query, int16(status))
	if err != nil {
		r.log.Error("Failed to find bookings by status", zap.Error(err), zap.Stringer("status", status))
		return nil, fmt.Errorf("find bookings by status %s: %w", status, err)
	}
	return bookings, nil
}

func (r *bookingRepository) FindByVendorID(ctx context.Context, vendorID int64) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE vendor_id = $1 ORDER BY created_at DESC`

	bookings, err := r.queryBookings(ctx, query, vendorID)
	if err != nil {
		r.log.Error("Failed to find bookings by vendor", zap.Error(err), zap.Int64("vendor_id", vendorID))
		return nil, fmt.Errorf("find bookings by vendor %d: %w", vendorID, err)
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateAssignment(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET vendor_id = $2, vendor_cab_id = $3, vendor_driver_id = $4,
		    cab_admin_id = $5, drive_admin_id = $6, updated_at = $7
		WHERE id = $1
	`

	vendor := booking.Fulfillment.Vendor()
	admin := booking.Fulfillment.Admin()

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		vendor.VendorID,
		vendor.CabID,
		vendor.DriverID,
		admin.CabAdminID,
		admin.DriveAdminID,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking assignment", zap.Error(err), zap.Int64("booking_id", booking.ID))
		return fmt.Errorf("update booking %d assignment: %w", booking.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", booking.ID, ErrNoRows)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, int16(status))
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.Stringer("status", status),
		)
		return fmt.Errorf("update booking %d status to %s: %w", id, status, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNoRows)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking", zap.Error(err), zap.Int64("booking_id", id))
		return false, fmt.Errorf("delete booking %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
