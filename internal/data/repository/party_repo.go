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

// PartyRepository is the directory of everyone a booking can reference.
// Finders return (nil, nil) when the id does not resolve.
type PartyRepository interface {
	FindRider(ctx context.Context, id int64) (*entity.Rider, error)
	FindVendor(ctx context.Context, id int64) (*entity.Vendor, error)
	FindVendorCab(ctx context.Context, id int64) (*entity.VendorCab, error)
	FindVendorDriver(ctx context.Context, id int64) (*entity.VendorDriver, error)
	FindCabAdmin(ctx context.Context, id int64) (*entity.CabAdmin, error)
	FindDriveAdmin(ctx context.Context, id int64) (*entity.DriveAdmin, error)

	// Coordinate updates return ErrNoRows when the party does not exist
	UpdateRiderCoordinates(ctx context.Context, id int64, lat, lon float64) error
	UpdateDriverCoordinates(ctx context.Context, id int64, lat, lon float64) error
}

type partyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPartyRepository(db database.PgxIface, log *zap.Logger) PartyRepository {
	return &partyRepository{
		db:  db,
		log: log.With(zap.String("repository", "party")),
	}
}

// findOne runs a single-row lookup and maps pgx.ErrNoRows to a nil result
func findOne[T any](ctx context.Context, r *partyRepository, kind string, id int64, query string, scan func(pgx.Row, *T) error) (*T, error) {
	var out T
	err := scan(r.db.QueryRow(ctx, query, id), &out)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find "+kind, zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("find %s %d: %w", kind, id, err)
	}
	return &out, nil
}

func (r *partyRepository) FindRider(ctx context.Context, id int64) (*entity.Rider, error) {
	query := `SELECT id, username, email, phone, latitude, longitude, created_at, updated_at FROM riders WHERE id = $1`
	return findOne(ctx, r, "rider", id, query, func(row pgx.Row, u *entity.Rider) error {
		return row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Latitude, &u.Longitude, &u.CreatedAt, &u.UpdatedAt)
	})
}

func (r *partyRepository) FindVendor(ctx context.Context, id int64) (*entity.Vendor, error) {
	query := `SELECT id, company_name, email, phone, created_at, updated_at FROM vendors WHERE id = $1`
	return findOne(ctx, r, "vendor", id, query, func(row pgx.Row, v *entity.Vendor) error {
		return row.Scan(&v.ID, &v.CompanyName, &v.Email, &v.Phone, &v.CreatedAt, &v.UpdatedAt)
	})
}

func (r *partyRepository) FindVendorCab(ctx context.Context, id int64) (*entity.VendorCab, error) {
	query := `SELECT id, vendor_id, car_name, vehicle_no, created_at, updated_at FROM vendor_cabs WHERE id = $1`
	return findOne(ctx, r, "vendor cab", id, query, func(row pgx.Row, c *entity.VendorCab) error {
		return row.Scan(&c.ID, &c.VendorID, &c.CarName, &c.VehicleNo, &c.CreatedAt, &c.UpdatedAt)
	})
}

func (r *partyRepository) FindVendorDriver(ctx context.Context, id int64) (*entity.VendorDriver, error) {
	query := `
		SELECT id, vendor_id, driver_name, contact_no, latitude, longitude, created_at, updated_at
		FROM vendor_drivers WHERE id = $1
	`
	return findOne(ctx, r, "vendor driver", id, query, func(row pgx.Row, d *entity.VendorDriver) error {
		return row.Scan(&d.ID, &d.VendorID, &d.DriverName, &d.ContactNo, &d.Latitude, &d.Longitude, &d.CreatedAt, &d.UpdatedAt)
	})
}

func (r *partyRepository) FindCabAdmin(ctx context.Context, id int64) (*entity.CabAdmin, error) {
	query := `SELECT id, car_name, vehicle_no, created_at, updated_at FROM cab_admins WHERE id = $1`
	return findOne(ctx, r, "cab admin", id, query, func(row pgx.Row, c *entity.CabAdmin) error {
		return row.Scan(&c.ID, &c.CarName, &c.VehicleNo, &c.CreatedAt, &c.UpdatedAt)
	})
}

func (r *partyRepository) FindDriveAdmin(ctx context.Context, id int64) (*entity.DriveAdmin, error) {
	query := `SELECT id, driver_name, contact_no, created_at, updated_at FROM drive_admins WHERE id = $1`
	return findOne(ctx, r, "drive admin", id, query, func(row pgx.Row, d *entity.DriveAdmin) error {
		return row.Scan(&d.ID, &d.DriverName, &d.ContactNo, &d.CreatedAt, &d.UpdatedAt)
	})
}

func (r *partyRepository) UpdateRiderCoordinates(ctx context.Context, id int64, lat, lon float64) error {
	return r.updateCoordinates(ctx, "riders", id, lat, lon)
}

func (r *partyRepository) UpdateDriverCoordinates(ctx context.Context, id int64, lat, lon float64) error {
	return r.updateCoordinates(ctx, "vendor_drivers", id, lat, lon)
}

// table is always one of the two constants above, never caller input
func (r *partyRepository) updateCoordinates(ctx context.Context, table string, id int64, lat, lon float64) error {
	query := `UPDATE ` + table + ` SET latitude = $2, longitude = $3, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, lat, lon)
	if err != nil {
		r.log.Error("Failed to update coordinates",
			zap.Error(err),
			zap.String("table", table),
			zap.Int64("id", id),
		)
		return fmt.Errorf("update %s %d coordinates: %w", table, id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", table, id, ErrNoRows)
	}

	return nil
}
