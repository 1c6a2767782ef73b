package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

var ErrMissingReservationID = errors.New("missing reservation id")

// ConfirmReservationUseCase flips a pending reservation to confirmed from
// the admin console.
type ConfirmReservationUseCase struct {
	Identity port.IdentityProvider
	Gateway  port.ReservationGateway
}

func NewConfirmReservationUseCase(identity port.IdentityProvider, gateway port.ReservationGateway) *ConfirmReservationUseCase {
	return &ConfirmReservationUseCase{Identity: identity, Gateway: gateway}
}

func (uc *ConfirmReservationUseCase) Execute(ctx context.Context, sessionID, reservationID string) (domain.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return domain.Reservation{}, ErrMissingReservationID
	}

	caller, err := uc.Identity.RequireCaller(ctx, sessionID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !caller.Admin {
		return domain.Reservation{}, port.ErrForbidden
	}

	updated, err := uc.Gateway.Confirm(ctx, caller.Token, reservationID)
	if err != nil {
		slog.Error("confirm failed", slog.String("reservationId", reservationID), slog.Any("error", err))
		return domain.Reservation{}, err
	}
	slog.Info("reservation confirmed", slog.String("reservationId", reservationID))
	return updated, nil
}

// CancelReservationUseCase cancels a reservation with an optional reason.
type CancelReservationUseCase struct {
	Identity port.IdentityProvider
	Gateway  port.ReservationGateway
}

func NewCancelReservationUseCase(identity port.IdentityProvider, gateway port.ReservationGateway) *CancelReservationUseCase {
	return &CancelReservationUseCase{Identity: identity, Gateway: gateway}
}

func (uc *CancelReservationUseCase) Execute(ctx context.Context, sessionID, reservationID, reason string) (domain.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return domain.Reservation{}, ErrMissingReservationID
	}

	caller, err := uc.Identity.RequireCaller(ctx, sessionID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !caller.Admin {
		return domain.Reservation{}, port.ErrForbidden
	}

	updated, err := uc.Gateway.Cancel(ctx, caller.Token, reservationID, reason)
	if err != nil {
		slog.Error("cancel failed", slog.String("reservationId", reservationID), slog.Any("error", err))
		return domain.Reservation{}, err
	}
	slog.Info("reservation cancelled", slog.String("reservationId", reservationID))
	return updated, nil
}
