package usecase

import (
	"context"
	"log/slog"
	"time"

	bookingdomain "cachetteWeb/internal/modules/booking/domain"
	"cachetteWeb/internal/modules/rooms/application/port"
	"cachetteWeb/internal/modules/rooms/domain"
)

type ListRoomsInput struct {
	// CheckIn/CheckOut optionally narrow the listing to rooms free over
	// the window. Both must be set for the narrowing to apply.
	CheckIn  time.Time
	CheckOut time.Time
}

// ListRoomsUseCase serves the room browsing pages. Backend inventory is
// the source of truth; when it cannot be reached the fixed catalog keeps
// the pages rendering with names and prices.
type ListRoomsUseCase struct {
	Fetcher port.RoomsFetcher
}

func NewListRoomsUseCase(fetcher port.RoomsFetcher) *ListRoomsUseCase {
	return &ListRoomsUseCase{Fetcher: fetcher}
}

func (uc *ListRoomsUseCase) Execute(ctx context.Context, input ListRoomsInput) ([]domain.RoomRecord, error) {
	if !input.CheckIn.IsZero() && !input.CheckOut.IsZero() && input.CheckOut.After(input.CheckIn) {
		rooms, err := uc.Fetcher.AvailableRooms(ctx, input.CheckIn.Format("2006-01-02"), input.CheckOut.Format("2006-01-02"))
		if err == nil {
			return rooms, nil
		}
		slog.Warn("available-rooms lookup failed, listing full inventory", slog.Any("error", err))
	}

	rooms, err := uc.Fetcher.ListRooms(ctx)
	if err != nil {
		slog.Warn("room inventory unreachable, serving catalog fallback", slog.Any("error", err))
		return catalogFallback(), nil
	}
	return rooms, nil
}

// catalogFallback projects the hard-coded catalog into room records so
// browsing still works while the backend is down.
func catalogFallback() []domain.RoomRecord {
	catalog := bookingdomain.Catalog()
	rooms := make([]domain.RoomRecord, 0, len(catalog))
	for _, entry := range catalog {
		rooms = append(rooms, domain.RoomRecord{
			ID:            entry.Key,
			Name:          entry.Label,
			PricePerNight: entry.PricePerNight,
			Available:     true,
		})
	}
	return rooms
}
