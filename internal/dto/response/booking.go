package response

import (
	"time"

	"cab-dispatch/internal/data/entity"
)

type BookingResponse struct {
	ID             int64     `json:"id"`
	BookID         string    `json:"book_id"`
	RiderID        int64     `json:"rider_id"`
	Status         int       `json:"status"`
	StatusName     string    `json:"status_name"`
	Terminal       bool      `json:"terminal"`
	TripType       string    `json:"trip_type"`
	Pickup         string    `json:"pickup"`
	Drop           string    `json:"drop"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Amount         float64   `json:"amount"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Fulfillment    string    `json:"fulfillment"`
	VendorID       *int64    `json:"vendor_id,omitempty"`
	VendorCabID    *int64    `json:"vendor_cab_id,omitempty"`
	VendorDriverID *int64    `json:"vendor_driver_id,omitempty"`
	CabAdminID     *int64    `json:"cab_admin_id,omitempty"`
	DriveAdminID   *int64    `json:"drive_admin_id,omitempty"`
	PairingDone    bool      `json:"pairing_complete"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	vendor := b.Fulfillment.Vendor()
	admin := b.Fulfillment.Admin()

	return BookingResponse{
		ID:             b.ID,
		BookID:         b.BookID,
		RiderID:        b.RiderID,
		Status:         int(b.Status),
		StatusName:     b.Status.String(),
		Terminal:       b.Status.Terminal(),
		TripType:       b.TripType,
		Pickup:         b.Pickup,
		Drop:           b.Drop,
		Date:           b.Date,
		Time:           b.Time,
		Amount:         b.Amount,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Fulfillment:    b.Fulfillment.Path().String(),
		VendorID:       vendor.VendorID,
		VendorCabID:    vendor.CabID,
		VendorDriverID: vendor.DriverID,
		CabAdminID:     admin.CabAdminID,
		DriveAdminID:   admin.DriveAdminID,
		PairingDone:    b.Fulfillment.PairingComplete(),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}
