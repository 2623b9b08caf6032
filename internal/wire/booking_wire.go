package wire

import (
	"cab-dispatch/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - page through bookings, ?status=N filters by status
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create a custom booking
		r.Post("/", bookingHandler.CreateBooking)

		r.Get("/{id}", bookingHandler.GetBooking)
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		// PUT /api/bookings/{id}/status - {"status": n, "force": bool}
		r.Put("/{id}/status", bookingHandler.UpdateStatus)

		// Vendor path
		r.Put("/{id}/vendor/{vendorId}", bookingHandler.AssignVendor)
		r.Put("/{id}/vendor-cab/{cabId}", bookingHandler.AssignVendorCab)
		r.Put("/{id}/vendor-driver/{driverId}", bookingHandler.AssignVendorDriver)

		// In-house path
		r.Put("/{id}/cab-admin/{cabAdminId}", bookingHandler.AssignCabAdmin)
		r.Put("/{id}/drive-admin/{driveAdminId}", bookingHandler.AssignDriveAdmin)
	})

	r.Get("/api/vendors/{vendorId}/bookings", bookingHandler.ListVendorBookings)
}
