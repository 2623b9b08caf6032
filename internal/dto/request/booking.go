package request

type CreateBookingRequest struct {
	RiderID  int64   `json:"rider_id" validate:"required,gt=0"`
	TripType string  `json:"trip_type" validate:"required,max=32"`
	Pickup   string  `json:"pickup" validate:"required"`
	Drop     string  `json:"drop" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Time     string  `json:"time" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,min=6,max=20"`
}

// UpdateStatusRequest carries a status code. Status is a pointer so that
// pending (0) still passes the required check.
type UpdateStatusRequest struct {
	Status *int `json:"status" validate:"required"`
	Force  bool `json:"force"`
}
