package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
	"cachetteWeb/internal/shared/normalization"
	"cachetteWeb/internal/shared/rest"
)

// ReservationHTTPClient implements ReservationGateway against the booking
// backend. List operations walk the candidate chains in reservation_paths.go
// sequentially; exactly one request is in flight at a time and the first
// usable list short-circuits the rest.
type ReservationHTTPClient struct {
	rest *rest.Client
}

func NewReservationHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *ReservationHTTPClient {
	return &ReservationHTTPClient{rest: rest.NewClient(baseURL, timeout, client)}
}

func (c *ReservationHTTPClient) Create(ctx context.Context, token string, req port.CreateReservationRequest) (domain.Reservation, error) {
	payload := map[string]any{
		"id_room":        req.RoomID,
		"id_customer":    scalarID(req.CustomerID),
		"check_in_date":  req.CheckInDate,
		"check_out_date": req.CheckOutDate,
		"guest_count":    req.GuestCount,
		"total_cost":     req.TotalCost,
		"request_id":     req.RequestID,
	}
	if strings.TrimSpace(req.Message) != "" {
		payload["message"] = req.Message
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("encode reservation payload: %w", err)
	}

	httpReq, err := c.rest.NewRequest(ctx, http.MethodPost, "reservations", bytes.NewReader(body))
	if err != nil {
		return domain.Reservation{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	applyHeaders(httpReq, token)

	res, err := c.rest.Do(httpReq)
	if err != nil {
		slog.Error("create reservation request error", slog.Any("error", err))
		return domain.Reservation{}, fmt.Errorf("%w: %v", port.ErrBackend, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusConflict:
		// Authoritative: the window was claimed between pre-check and
		// submit. Expected race, not a bug.
		return domain.Reservation{}, port.ErrConflict
	case res.StatusCode == http.StatusBadRequest:
		message := serverMessage(res.Body)
		if message == "" {
			return domain.Reservation{}, port.ErrInvalidData
		}
		return domain.Reservation{}, fmt.Errorf("%w: %s", port.ErrInvalidData, message)
	case res.StatusCode >= http.StatusMultipleChoices:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("create reservation unexpected status", slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(raw))))
		return domain.Reservation{}, fmt.Errorf("%w: status %d", port.ErrBackend, res.StatusCode)
	}

	return decodeReservation(res.Body)
}

func (c *ReservationHTTPClient) MyReservations(ctx context.Context, token, userID string) ([]domain.Reservation, error) {
	return c.fetchList(ctx, token, userID, myReservationCandidates)
}

func (c *ReservationHTTPClient) AllReservations(ctx context.Context, token string) ([]domain.Reservation, error) {
	return c.fetchList(ctx, token, "", allReservationCandidates)
}

// fetchList walks the candidate chain. A 404/403 (or a payload with no
// array in it) means "this endpoint doesn't apply, try the next one". If
// the chain runs out that way the result is an empty list. Any harder
// failure is remembered and surfaced only after exhaustion.
func (c *ReservationHTTPClient) fetchList(ctx context.Context, token, userID string, candidates []listCandidate) ([]domain.Reservation, error) {
	var hardErr error

	for _, candidate := range candidates {
		path, query := candidate.pathBuilder(userID)
		items, err := c.performListRequest(ctx, token, path, query)
		if err != nil {
			if errors.Is(err, port.ErrEndpointNotApplicable) {
				slog.Debug("reservation endpoint not applicable", slog.String("candidate", candidate.name))
				continue
			}
			slog.Warn("reservation endpoint attempt failed", slog.String("candidate", candidate.name), slog.Any("error", err))
			hardErr = err
			continue
		}

		if candidate.filterOwner {
			items = filterByOwner(items, userID)
		}
		slog.Info("reservation list resolved", slog.String("candidate", candidate.name), slog.Int("count", len(items)))
		return items, nil
	}

	if hardErr != nil {
		return nil, hardErr
	}
	return []domain.Reservation{}, nil
}

func (c *ReservationHTTPClient) performListRequest(ctx context.Context, token, path string, query url.Values) ([]domain.Reservation, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrBackend, err)
	}
	applyHeaders(req, token)
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrBackend, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusForbidden {
		return nil, port.ErrEndpointNotApplicable
	}
	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return nil, fmt.Errorf("%w: status %d %s", port.ErrBackend, res.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode list: %v", port.ErrBackend, err)
	}

	items, ok := domain.BuildReservationList(payload)
	if !ok {
		// A 200 whose body holds no array behaves like a missing endpoint.
		return nil, port.ErrEndpointNotApplicable
	}
	return items, nil
}

func filterByOwner(items []domain.Reservation, userID string) []domain.Reservation {
	owned := make([]domain.Reservation, 0, len(items))
	for _, item := range items {
		if item.OwnedBy(userID) {
			owned = append(owned, item)
		}
	}
	return owned
}

func (c *ReservationHTTPClient) Confirm(ctx context.Context, token, reservationID string) (domain.Reservation, error) {
	path := "reservations/" + url.PathEscape(reservationID) + "/confirm"
	return c.performAction(ctx, token, http.MethodPost, path, nil)
}

func (c *ReservationHTTPClient) Cancel(ctx context.Context, token, reservationID, reason string) (domain.Reservation, error) {
	path := "reservations/" + url.PathEscape(reservationID) + "/cancel"
	body, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("encode cancel payload: %w", err)
	}
	return c.performAction(ctx, token, http.MethodPatch, path, body)
}

func (c *ReservationHTTPClient) performAction(ctx context.Context, token, method, path string, body []byte) (domain.Reservation, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := c.rest.NewRequest(ctx, method, path, reader)
	if err != nil {
		return domain.Reservation{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applyHeaders(req, token)

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("reservation action request error", slog.String("path", path), slog.Any("error", err))
		return domain.Reservation{}, fmt.Errorf("%w: %v", port.ErrBackend, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return domain.Reservation{}, fmt.Errorf("%w: reservation not found", port.ErrInvalidData)
	case res.StatusCode == http.StatusBadRequest:
		message := serverMessage(res.Body)
		if message == "" {
			return domain.Reservation{}, port.ErrInvalidData
		}
		return domain.Reservation{}, fmt.Errorf("%w: %s", port.ErrInvalidData, message)
	case res.StatusCode >= http.StatusMultipleChoices:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("reservation action unexpected status", slog.String("path", path), slog.Int("status", res.StatusCode), slog.String("body", strings.TrimSpace(string(raw))))
		return domain.Reservation{}, fmt.Errorf("%w: status %d", port.ErrBackend, res.StatusCode)
	}

	return decodeReservation(res.Body)
}

// Stats walks the stats candidates the same way fetchList walks list
// candidates: 404/403 and non-stats bodies mean "try the next one", harder
// failures are remembered and the chain keeps going. Stats are an optional
// extra for the dashboard, so even a remembered hard failure surfaces as
// ErrStatsUnavailable and callers fall back to computing figures from the
// reservation list.
func (c *ReservationHTTPClient) Stats(ctx context.Context, token string) (domain.ReservationStats, error) {
	var hardErr error
	for _, path := range statsCandidates {
		req, err := c.rest.NewRequest(ctx, http.MethodGet, path, nil)
		if err != nil {
			hardErr = fmt.Errorf("%w: %v", port.ErrBackend, err)
			continue
		}
		applyHeaders(req, token)

		res, err := c.rest.Do(req)
		if err != nil {
			hardErr = fmt.Errorf("%w: %v", port.ErrBackend, err)
			continue
		}

		stats, ok, err := decodeStatsResponse(res)
		if err != nil {
			slog.Warn("stats endpoint attempt failed", slog.String("path", path), slog.Any("error", err))
			hardErr = err
			continue
		}
		if ok {
			slog.Info("stats endpoint resolved", slog.String("path", path))
			return stats, nil
		}
		slog.Debug("stats endpoint not applicable", slog.String("path", path))
	}
	if hardErr != nil {
		return domain.ReservationStats{}, fmt.Errorf("%w: %v", port.ErrStatsUnavailable, hardErr)
	}
	return domain.ReservationStats{}, port.ErrStatsUnavailable
}

func decodeStatsResponse(res *http.Response) (domain.ReservationStats, bool, error) {
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound || res.StatusCode == http.StatusForbidden {
		return domain.ReservationStats{}, false, nil
	}
	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return domain.ReservationStats{}, false, fmt.Errorf("%w: status %d %s", port.ErrBackend, res.StatusCode, strings.TrimSpace(string(raw)))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return domain.ReservationStats{}, false, fmt.Errorf("%w: decode stats: %v", port.ErrBackend, err)
	}
	stats, ok := domain.NormalizeStats(payload)
	return stats, ok, nil
}

func decodeReservation(body io.Reader) (domain.Reservation, error) {
	var payload any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: decode reservation: %v", port.ErrBackend, err)
	}

	container := normalization.MapFromPayload(payload)
	if nested, ok := container["reservation"].(map[string]any); ok {
		container = nested
	}
	reservation, ok := domain.NormalizeReservation(container)
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: reservation response without id", port.ErrBackend)
	}
	return reservation, nil
}

// serverMessage pulls a human-readable message out of an error body when
// the backend provided one.
func serverMessage(body io.Reader) string {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return normalization.FirstString(payload, "message", "error", "detail")
}

// scalarID sends numeric-looking ids as numbers, matching what most
// backend revisions expect, and falls back to the raw string.
func scalarID(id string) any {
	if parsed, err := strconv.Atoi(strings.TrimSpace(id)); err == nil {
		return parsed
	}
	return id
}

func applyHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		req.Header.Set("Authorization", "Bearer "+trimmed)
	}
}

var _ port.ReservationGateway = (*ReservationHTTPClient)(nil)
