package usecase

import (
	"context"
	"log/slog"
	"time"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

const isoDate = "2006-01-02"

type CheckAvailabilityInput struct {
	Token    string
	RoomKey  string
	CheckIn  time.Time
	CheckOut time.Time
}

type CheckAvailabilityOutput struct {
	Room         domain.Room
	IsAvailable  bool
	Conflicts    []domain.Reservation
	CheckInDate  string
	CheckOutDate string
}

// CheckAvailabilityUseCase answers "is room R free for [checkIn,
// checkOut)". The answer is advisory: the backend re-checks atomically at
// submission time and its 409 wins over a stale "available" here.
type CheckAvailabilityUseCase struct {
	Checker port.AvailabilityChecker
}

func NewCheckAvailabilityUseCase(checker port.AvailabilityChecker) *CheckAvailabilityUseCase {
	return &CheckAvailabilityUseCase{Checker: checker}
}

func (uc *CheckAvailabilityUseCase) Execute(ctx context.Context, input CheckAvailabilityInput) (*CheckAvailabilityOutput, error) {
	room, ok := domain.RoomByKey(input.RoomKey)
	if !ok {
		return nil, domain.ErrUnknownRoom
	}
	// Date-order violations never reach the network.
	if !input.CheckOut.After(input.CheckIn) {
		return nil, domain.ErrDateOrder
	}

	checkIn := input.CheckIn.Format(isoDate)
	checkOut := input.CheckOut.Format(isoDate)

	availability, err := uc.Checker.CheckAvailability(ctx, input.Token, room.BackendID, checkIn, checkOut)
	if err != nil {
		slog.Warn("availability check failed", slog.String("room", room.Key), slog.Any("error", err))
		return nil, err
	}

	slog.Info("availability checked",
		slog.String("room", room.Key),
		slog.String("checkIn", checkIn),
		slog.String("checkOut", checkOut),
		slog.Bool("available", availability.IsAvailable))

	return &CheckAvailabilityOutput{
		Room:         room,
		IsAvailable:  availability.IsAvailable,
		Conflicts:    availability.Conflicts,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}
