package port

import (
	"context"
	"errors"

	"cachetteWeb/internal/modules/booking/domain"
)

// Typed outcomes the workflows branch on. "Not applicable" is control
// flow inside the endpoint-fallback chain; the rest surface to callers.
var (
	// ErrEndpointNotApplicable marks a 404/403 on a candidate endpoint:
	// try the next one, this is not a failure.
	ErrEndpointNotApplicable = errors.New("endpoint not applicable")
	// ErrConflict is the backend's authoritative 409 on create: the window
	// was claimed between check and submit.
	ErrConflict = errors.New("dates no longer available")
	// ErrInvalidData is a 400 on create; the server message rides along.
	ErrInvalidData = errors.New("invalid reservation data")
	// ErrAvailabilityUnknown covers any transport or parse failure during
	// the advisory availability check. Callers treat unknown as not safe
	// to book.
	ErrAvailabilityUnknown = errors.New("cannot verify availability")
	// ErrBackend is the generic retry-suggesting failure.
	ErrBackend = errors.New("booking service unavailable")
	// ErrStatsUnavailable reports that no stats endpoint applied; the
	// caller computes figures from the reservation list instead.
	ErrStatsUnavailable = errors.New("no stats endpoint available")
)

// Availability is the normalized answer of the advisory check.
type Availability struct {
	IsAvailable bool
	Conflicts   []domain.Reservation
}

// AvailabilityChecker asks the backend whether a room is free for a
// half-open date window.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, token string, roomID int, checkInDate, checkOutDate string) (Availability, error)
}

// CreateReservationRequest is the backend-shaped submission payload.
type CreateReservationRequest struct {
	RoomID       int
	CustomerID   string
	CheckInDate  string
	CheckOutDate string
	GuestCount   int
	TotalCost    float64
	Message      string
	// RequestID is a client-generated idempotency id so a retried timeout
	// does not silently double-book.
	RequestID string
}

// ReservationGateway covers every reservation endpoint the client
// consumes. List operations run the endpoint-fallback chain internally and
// return an empty slice when every candidate answered 404/403.
type ReservationGateway interface {
	Create(ctx context.Context, token string, req CreateReservationRequest) (domain.Reservation, error)
	MyReservations(ctx context.Context, token, userID string) ([]domain.Reservation, error)
	AllReservations(ctx context.Context, token string) ([]domain.Reservation, error)
	Confirm(ctx context.Context, token, reservationID string) (domain.Reservation, error)
	Cancel(ctx context.Context, token, reservationID, reason string) (domain.Reservation, error)
	Stats(ctx context.Context, token string) (domain.ReservationStats, error)
}
