package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"cachetteWeb/internal/modules/rooms/application/port"
	"cachetteWeb/internal/modules/rooms/domain"
	"cachetteWeb/internal/shared/rest"
)

// RoomsHTTPClient implements RoomsFetcher against the backend room routes.
type RoomsHTTPClient struct {
	rest *rest.Client
}

func NewRoomsHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *RoomsHTTPClient {
	return &RoomsHTTPClient{rest: rest.NewClient(baseURL, timeout, client)}
}

func (c *RoomsHTTPClient) ListRooms(ctx context.Context) ([]domain.RoomRecord, error) {
	return c.fetch(ctx, "rooms", nil)
}

func (c *RoomsHTTPClient) AvailableRooms(ctx context.Context, checkInDate, checkOutDate string) ([]domain.RoomRecord, error) {
	values := url.Values{}
	values.Set("check_in_date", checkInDate)
	values.Set("check_out_date", checkOutDate)
	return c.fetch(ctx, "reservations/available-rooms", values)
}

func (c *RoomsHTTPClient) fetch(ctx context.Context, path string, query url.Values) ([]domain.RoomRecord, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrRoomsUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("rooms request error", slog.String("path", path), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", port.ErrRoomsUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		slog.Error("rooms unexpected status", slog.String("path", path), slog.Int("status", res.StatusCode))
		return nil, fmt.Errorf("%w: status %d", port.ErrRoomsUnavailable, res.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", port.ErrRoomsUnavailable, err)
	}

	rooms, ok := domain.BuildRoomList(payload)
	if !ok {
		return nil, fmt.Errorf("%w: no room list in response", port.ErrRoomsUnavailable)
	}
	return rooms, nil
}

var _ port.RoomsFetcher = (*RoomsHTTPClient)(nil)
