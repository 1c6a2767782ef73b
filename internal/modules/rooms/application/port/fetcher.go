package port

import (
	"context"
	"errors"

	"cachetteWeb/internal/modules/rooms/domain"
)

var ErrRoomsUnavailable = errors.New("rooms service unavailable")

// RoomsFetcher reads the backend room inventory.
type RoomsFetcher interface {
	ListRooms(ctx context.Context) ([]domain.RoomRecord, error)
	// AvailableRooms narrows the inventory to rooms free over the given
	// half-open date window.
	AvailableRooms(ctx context.Context, checkInDate, checkOutDate string) ([]domain.RoomRecord, error)
}
