package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/dto/response"
	"cab-dispatch/internal/usecase"
	"cab-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	assignment usecase.AssignmentService
	booking    usecase.BookingService
	log        *zap.Logger
}

func NewBookingHandler(assignment usecase.AssignmentService, booking usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		assignment: assignment,
		booking:    booking,
		log:        log.With(zap.String("handler", "booking")),
	}
}

type assignFunc func(ctx context.Context, bookingID, partyID int64) (*response.BookingResponse, error)

// AssignVendor handles PUT /api/bookings/{id}/vendor/{vendorId}
func (h *BookingHandler) AssignVendor(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "vendorId", "assign vendor", h.assignment.AssignVendor)
}

// AssignVendorCab handles PUT /api/bookings/{id}/vendor-cab/{cabId}
func (h *BookingHandler) AssignVendorCab(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "cabId", "assign vendor cab", h.assignment.AssignVendorCab)
}

// AssignVendorDriver handles PUT /api/bookings/{id}/vendor-driver/{driverId}
func (h *BookingHandler) AssignVendorDriver(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "driverId", "assign vendor driver", h.assignment.AssignVendorDriver)
}

// AssignCabAdmin handles PUT /api/bookings/{id}/cab-admin/{cabAdminId}
func (h *BookingHandler) AssignCabAdmin(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "cabAdminId", "assign cab admin", h.assignment.AssignCabAdmin)
}

// AssignDriveAdmin handles PUT /api/bookings/{id}/drive-admin/{driveAdminId}
func (h *BookingHandler) AssignDriveAdmin(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, "driveAdminId", "assign drive admin", h.assignment.AssignDriveAdmin)
}

func (h *BookingHandler) assign(w http.ResponseWriter, r *http.Request, param, operation string, fn assignFunc) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	partyID, err := utils.ParseID(chi.URLParam(r, param))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+param, nil)
		return
	}

	booking, err := fn(r.Context(), bookingID, partyID)
	if err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateStatus handles PUT /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.assignment.UpdateStatus(r.Context(), bookingID, *req.Status, req.Force)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/bookings/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if _, err := h.assignment.DeleteBooking(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted successfully", nil)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	booking, err := h.booking.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListBookings handles GET /api/bookings. With ?status=N it filters by
// status, otherwise it pages through all bookings.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		status, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid status", nil)
			return
		}

		bookings, err := h.booking.ListByStatus(r.Context(), status)
		if err != nil {
			handleServiceError(w, h.log, err, "list bookings by status")
			return
		}

		utils.ResponseSuccess(w, "success", bookings)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.booking.ListBookings(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListVendorBookings handles GET /api/vendors/{vendorId}/bookings
func (h *BookingHandler) ListVendorBookings(w http.ResponseWriter, r *http.Request) {
	vendorID, err := utils.ParseID(chi.URLParam(r, "vendorId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	bookings, err := h.booking.ListByVendor(r.Context(), vendorID)
	if err != nil {
		handleServiceError(w, h.log, err, "list vendor bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.booking.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}
