package request

// LocationUpdateRequest uses the camelCase names the mobile clients send.
type LocationUpdateRequest struct {
	BookingID int64   `json:"bookingId" validate:"required,gt=0"`
	UserID    int64   `json:"userId" validate:"required,gt=0"`
	Role      string  `json:"role"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}
