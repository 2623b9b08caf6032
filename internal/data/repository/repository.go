package repository

import (
	"errors"

	"cab-dispatch/pkg/database"

	"go.uber.org/zap"
)

// ErrNoRows is returned by writes that matched no record
var ErrNoRows = errors.New("no rows affected")

type Repository struct {
	Booking BookingRepository
	Party   PartyRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Party:   NewPartyRepository(db, log),
	}
}
