package realtime

import (
	"fmt"
	"time"
)

const (
	DriverTopicPrefix = "driver-location"
	UserTopicPrefix   = "user-location"
)

// DriverTopic is where riders' positions are pushed for driver id.
func DriverTopic(driverID int64) string {
	return fmt.Sprintf("%s/%d", DriverTopicPrefix, driverID)
}

// UserTopic is where drivers' positions are pushed for rider id.
func UserTopic(riderID int64) string {
	return fmt.Sprintf("%s/%d", UserTopicPrefix, riderID)
}

// LocationMessage is the push payload. UserID and Role describe the sender
// whose position it is; RecipientID is the party the topic belongs to.
type LocationMessage struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	UserID      int64     `json:"userId"`
	Role        string    `json:"role"`
	RecipientID int64     `json:"recipientId"`
	Timestamp   time.Time `json:"timestamp"`
}

// InboundLocation is the wire shape of a location update on the stream.
type InboundLocation struct {
	BookingID int64   `json:"bookingId"`
	UserID    int64   `json:"userId"`
	Role      string  `json:"role"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
