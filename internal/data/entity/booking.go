package entity

type Booking struct {
	Base
	BookID      string        `db:"book_id"`
	RiderID     int64         `db:"rider_id"`
	Status      BookingStatus `db:"status"`
	TripType    string        `db:"trip_type"`
	Pickup      string        `db:"user_pickup"`
	Drop        string        `db:"user_drop"`
	Date        string        `db:"date"`
	Time        string        `db:"time"`
	Amount      float64       `db:"amount"`
	Name        string        `db:"name"`
	Email       string        `db:"email"`
	Phone       string        `db:"phone"`
	Fulfillment Fulfillment
}
