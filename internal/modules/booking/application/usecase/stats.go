package usecase

import (
	"context"
	"errors"
	"log/slog"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

// ReservationStatsUseCase serves the admin dashboard figures. Dedicated
// stats endpoints are preferred; when none applies the figures are reduced
// from the full reservation list. OccupancyRate stays zero in the computed
// path: without room inventory calendar data it cannot be derived here.
type ReservationStatsUseCase struct {
	Identity port.IdentityProvider
	Gateway  port.ReservationGateway
}

func NewReservationStatsUseCase(identity port.IdentityProvider, gateway port.ReservationGateway) *ReservationStatsUseCase {
	return &ReservationStatsUseCase{Identity: identity, Gateway: gateway}
}

func (uc *ReservationStatsUseCase) Execute(ctx context.Context, sessionID string) (domain.ReservationStats, error) {
	caller, err := uc.Identity.RequireCaller(ctx, sessionID)
	if err != nil {
		return domain.ReservationStats{}, err
	}
	if !caller.Admin {
		return domain.ReservationStats{}, port.ErrForbidden
	}

	stats, err := uc.Gateway.Stats(ctx, caller.Token)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, port.ErrStatsUnavailable) {
		slog.Error("stats fetch failed", slog.Any("error", err))
		return domain.ReservationStats{}, err
	}

	slog.Info("no stats endpoint applied, reducing over reservation list")
	items, err := uc.Gateway.AllReservations(ctx, caller.Token)
	if err != nil {
		return domain.ReservationStats{}, err
	}
	return domain.ComputeStats(items), nil
}
