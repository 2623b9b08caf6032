package entity

import "time"

type Role string

const (
	RoleRider  Role = "RIDER"
	RoleDriver Role = "DRIVER"
)

// ParseRole maps a wire role to a participant role. Anything other than
// DRIVER is treated as the rider.
func ParseRole(s string) Role {
	if Role(s) == RoleDriver {
		return RoleDriver
	}
	return RoleRider
}

func (r Role) Counterpart() Role {
	if r == RoleDriver {
		return RoleRider
	}
	return RoleDriver
}

// LocationUpdate is a position report from one participant of a booking.
// It is never persisted as its own record.
type LocationUpdate struct {
	BookingID int64
	SenderID  int64
	Role      Role
	Latitude  float64
	Longitude float64
	Timestamp time.Time
}
