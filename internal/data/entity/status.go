package entity

import "fmt"

type BookingStatus int

const (
	BookingStatusPending BookingStatus = iota
	BookingStatusConfirmed
	BookingStatusAssigned
	BookingStatusOngoing
	BookingStatusCompleted
	BookingStatusCancelled
)

var bookingStatusNames = map[BookingStatus]string{
	BookingStatusPending:   "pending",
	BookingStatusConfirmed: "confirmed",
	BookingStatusAssigned:  "assigned",
	BookingStatusOngoing:   "ongoing",
	BookingStatusCompleted: "completed",
	BookingStatusCancelled: "cancelled",
}

// bookingTransitions lists the successors allowed from each status.
// Completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusAssigned, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusAssigned, BookingStatusCancelled},
	BookingStatusAssigned:  {BookingStatusConfirmed, BookingStatusOngoing, BookingStatusCancelled},
	BookingStatusOngoing:   {BookingStatusCompleted, BookingStatusCancelled},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingStatusNames[s]
	return ok
}

func (s BookingStatus) String() string {
	if name, ok := bookingStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
// Staying in the same status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
