package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
	"cachetteWeb/internal/shared/normalization"
	"cachetteWeb/internal/shared/rest"
)

// AvailabilityHTTPClient implements the advisory availability check. Any
// failure here means "unknown", and unknown is never safe to book against.
type AvailabilityHTTPClient struct {
	rest *rest.Client
}

func NewAvailabilityHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *AvailabilityHTTPClient {
	return &AvailabilityHTTPClient{rest: rest.NewClient(baseURL, timeout, client)}
}

func (c *AvailabilityHTTPClient) CheckAvailability(ctx context.Context, token string, roomID int, checkInDate, checkOutDate string) (port.Availability, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "reservations/check-availability", nil)
	if err != nil {
		return port.Availability{}, fmt.Errorf("%w: %v", port.ErrAvailabilityUnknown, err)
	}
	applyHeaders(req, token)

	values := url.Values{}
	values.Set("room_id", strconv.Itoa(roomID))
	values.Set("check_in_date", checkInDate)
	values.Set("check_out_date", checkOutDate)
	req.URL.RawQuery = values.Encode()

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("availability request error", slog.Int("roomId", roomID), slog.Any("error", err))
		return port.Availability{}, fmt.Errorf("%w: %v", port.ErrAvailabilityUnknown, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		slog.Error("availability unexpected status", slog.Int("roomId", roomID), slog.Int("status", res.StatusCode))
		return port.Availability{}, fmt.Errorf("%w: status %d", port.ErrAvailabilityUnknown, res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return port.Availability{}, fmt.Errorf("%w: decode: %v", port.ErrAvailabilityUnknown, err)
	}

	// A missing flag reads as unavailable: fail closed.
	availability := port.Availability{IsAvailable: normalization.AsBool(payload["available"])}
	if conflicts, ok := domain.BuildReservationList(payload["conflicting_reservations"]); ok {
		availability.Conflicts = conflicts
	}
	return availability, nil
}

var _ port.AvailabilityChecker = (*AvailabilityHTTPClient)(nil)
