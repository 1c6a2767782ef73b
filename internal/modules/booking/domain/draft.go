package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

// Distinct validation failures: the pages show a different message for
// each, so they must stay distinguishable with errors.Is.
var (
	ErrMissingFields = errors.New("missing required fields")
	ErrDateOrder     = errors.New("check-out must be after check-in")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrGuestCount    = errors.New("guest count must be at least 1")
)

// ReservationDraft is the transient, page-local form state. It is never
// persisted: it either becomes a backend reservation or is discarded.
type ReservationDraft struct {
	FirstName  string    `validate:"required"`
	LastName   string    `validate:"required"`
	Email      string    `validate:"required,email"`
	Phone      string    `validate:"omitempty"`
	RoomKey    string    `validate:"required"`
	CheckIn    time.Time `validate:"required"`
	CheckOut   time.Time `validate:"required"`
	GuestCount int       `validate:"required"`
	Message    string    `validate:"omitempty"`
}

var draftValidator = validator.New()

// Validate checks the draft and resolves its room. Field presence, date
// order, guest count and room key produce distinct error kinds.
func (d ReservationDraft) Validate() (Room, error) {
	if err := draftValidator.Struct(d); err != nil {
		return Room{}, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}
	if !d.CheckOut.After(d.CheckIn) {
		return Room{}, ErrDateOrder
	}
	if d.GuestCount < 1 {
		return Room{}, ErrGuestCount
	}
	room, ok := RoomByKey(d.RoomKey)
	if !ok {
		return Room{}, fmt.Errorf("%w: %q", ErrUnknownRoom, d.RoomKey)
	}
	return room, nil
}

// Nights derives the length of the stay over the half-open window
// [CheckIn, CheckOut): the checkout day itself is not occupied. A window
// that is not strictly forward counts zero nights.
func (d ReservationDraft) Nights() int {
	if !d.CheckOut.After(d.CheckIn) {
		return 0
	}
	return int(math.Ceil(d.CheckOut.Sub(d.CheckIn).Hours() / 24))
}

// TotalPrice derives nights times the catalog nightly price. Unknown rooms
// and empty windows price at zero.
func (d ReservationDraft) TotalPrice() float64 {
	room, ok := RoomByKey(d.RoomKey)
	if !ok {
		return 0
	}
	return float64(d.Nights()) * room.PricePerNight
}
