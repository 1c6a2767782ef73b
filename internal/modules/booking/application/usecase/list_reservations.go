package usecase

import (
	"context"
	"log/slog"
	"time"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

type ListMyReservationsInput struct {
	SessionID string
	Filter    domain.ReservationFilter
}

// ListMyReservationsUseCase fetches the caller's reservation history. The
// gateway runs the endpoint-fallback chain; this layer resolves the caller
// and applies the page-level upcoming/past/cancelled filter.
type ListMyReservationsUseCase struct {
	Identity port.IdentityProvider
	Gateway  port.ReservationGateway
	now      func() time.Time
}

func NewListMyReservationsUseCase(identity port.IdentityProvider, gateway port.ReservationGateway) *ListMyReservationsUseCase {
	return &ListMyReservationsUseCase{Identity: identity, Gateway: gateway, now: time.Now}
}

func (uc *ListMyReservationsUseCase) Execute(ctx context.Context, input ListMyReservationsInput) ([]domain.Reservation, error) {
	caller, err := uc.Identity.RequireCaller(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	items, err := uc.Gateway.MyReservations(ctx, caller.Token, caller.UserID)
	if err != nil {
		slog.Error("my-reservations fetch failed", slog.String("userId", caller.UserID), slog.Any("error", err))
		return nil, err
	}

	today := uc.now().Format(isoDate)
	filtered := domain.FilterReservations(items, input.Filter, today)
	slog.Info("my-reservations fetched", slog.String("userId", caller.UserID), slog.Int("total", len(items)), slog.Int("shown", len(filtered)))
	return filtered, nil
}

// ListAllReservationsUseCase is the admin console view over every
// reservation. The admin capability is checked against session state
// before any request goes out.
type ListAllReservationsUseCase struct {
	Identity port.IdentityProvider
	Gateway  port.ReservationGateway
}

func NewListAllReservationsUseCase(identity port.IdentityProvider, gateway port.ReservationGateway) *ListAllReservationsUseCase {
	return &ListAllReservationsUseCase{Identity: identity, Gateway: gateway}
}

func (uc *ListAllReservationsUseCase) Execute(ctx context.Context, sessionID string) ([]domain.Reservation, error) {
	caller, err := uc.Identity.RequireCaller(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !caller.Admin {
		return nil, port.ErrForbidden
	}

	items, err := uc.Gateway.AllReservations(ctx, caller.Token)
	if err != nil {
		slog.Error("all-reservations fetch failed", slog.Any("error", err))
		return nil, err
	}
	slog.Info("all-reservations fetched", slog.Int("total", len(items)))
	return items, nil
}
