package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

// ErrDatesBlocked reports that the advisory availability check came back
// negative: submission must not proceed, the customer picks new dates.
var ErrDatesBlocked = errors.New("requested window is not available")

type SubmitReservationInput struct {
	SessionID string
	Draft     domain.ReservationDraft
}

type SubmitReservationOutput struct {
	Reservation domain.Reservation
	Nights      int
	TotalPrice  float64
}

// SubmitReservationUseCase turns a draft into a persisted reservation.
// Each attempt walks validate, identity resolve, availability pre-check,
// submit; every stage short-circuits with its own error kind so the page
// can tell the customer exactly what to fix.
//
// Submission is not idempotent on the backend side; the generated
// request id is the only guard against a retried timeout double-booking.
type SubmitReservationUseCase struct {
	Identity port.IdentityProvider
	Checker  port.AvailabilityChecker
	Gateway  port.ReservationGateway
	// newRequestID is swappable in tests.
	newRequestID func() string
}

func NewSubmitReservationUseCase(identity port.IdentityProvider, checker port.AvailabilityChecker, gateway port.ReservationGateway) *SubmitReservationUseCase {
	return &SubmitReservationUseCase{
		Identity:     identity,
		Checker:      checker,
		Gateway:      gateway,
		newRequestID: uuid.NewString,
	}
}

func (uc *SubmitReservationUseCase) Execute(ctx context.Context, input SubmitReservationInput) (*SubmitReservationOutput, error) {
	room, err := input.Draft.Validate()
	if err != nil {
		return nil, err
	}

	caller, err := uc.Identity.RequireCaller(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	checkIn := input.Draft.CheckIn.Format(isoDate)
	checkOut := input.Draft.CheckOut.Format(isoDate)

	// Advisory pre-check, made with the caller's token since the backend
	// may gate the route. Unknown availability is treated as blocked:
	// safer to make the customer retry than to submit blind.
	availability, err := uc.Checker.CheckAvailability(ctx, caller.Token, room.BackendID, checkIn, checkOut)
	if err != nil {
		slog.Warn("submission pre-check failed", slog.String("room", room.Key), slog.Any("error", err))
		return nil, err
	}
	if !availability.IsAvailable {
		slog.Info("submission blocked by availability", slog.String("room", room.Key), slog.Int("conflicts", len(availability.Conflicts)))
		return nil, ErrDatesBlocked
	}

	nights := input.Draft.Nights()
	totalPrice := input.Draft.TotalPrice()
	requestID := uc.newRequestID()

	created, err := uc.Gateway.Create(ctx, caller.Token, port.CreateReservationRequest{
		RoomID:       room.BackendID,
		CustomerID:   caller.UserID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   input.Draft.GuestCount,
		TotalCost:    totalPrice,
		Message:      input.Draft.Message,
		RequestID:    requestID,
	})
	if err != nil {
		slog.Warn("reservation submission failed",
			slog.String("room", room.Key),
			slog.String("requestId", requestID),
			slog.Any("error", err))
		return nil, err
	}

	slog.Info("reservation created",
		slog.String("reservationId", created.ID),
		slog.String("room", room.Key),
		slog.Int("nights", nights),
		slog.Float64("totalPrice", totalPrice))

	return &SubmitReservationOutput{Reservation: created, Nights: nights, TotalPrice: totalPrice}, nil
}
