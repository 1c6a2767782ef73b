package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/domain"
)

func newReservationClient(t *testing.T, handler http.HandlerFunc) *ReservationHTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewReservationHTTPClient(server.URL, 0, nil)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func TestMyReservations_WalksFallbackChain(t *testing.T) {
	var visited []string
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		visited = append(visited, r.URL.Path)
		if r.URL.Path == "/reservations" && r.URL.Query().Get("customer_id") == "7" {
			writeJSON(t, w, http.StatusOK, map[string]any{"data": []any{
				map[string]any{"id": float64(12), "customer_id": float64(7), "check_in_date": "2025-10-15"},
			}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	items, err := client.MyReservations(context.Background(), "jwt", "7")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "12" {
		t.Fatalf("expected the record from the fourth candidate, got %+v", items)
	}

	expectedOrder := []string{"/reservations/my", "/reservations/customer/7", "/customers/7/reservations", "/reservations"}
	if len(visited) != len(expectedOrder) {
		t.Fatalf("expected %d attempts, got %v", len(expectedOrder), visited)
	}
	for i, path := range expectedOrder {
		if visited[i] != path {
			t.Fatalf("expected attempt %d at %s, got %s", i, path, visited[i])
		}
	}
}

func TestMyReservations_CollectionFallbackFiltersOwner(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Only the unfiltered collection exists on this deployment.
		if r.URL.Path == "/reservations" && len(r.URL.Query()) == 0 {
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{"id": float64(1), "customer_id": float64(7)},
				map[string]any{"id": float64(2), "customer_id": float64(8)},
				map[string]any{"id": float64(3), "id_customer": "7"},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	items, err := client.MyReservations(context.Background(), "jwt", "7")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected two owned records, got %+v", items)
	}
	if items[0].ID != "1" || items[1].ID != "3" {
		t.Fatalf("expected records 1 and 3, got %+v", items)
	}
}

func TestMyReservations_ExhaustedChainYieldsEmptyList(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	items, err := client.MyReservations(context.Background(), "jwt", "7")
	if err != nil {
		t.Fatalf("expected empty list, got error %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no records, got %+v", items)
	}
}

func TestMyReservations_HardErrorSurfacesAfterExhaustion(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/my" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.MyReservations(context.Background(), "jwt", "7")
	if !errors.Is(err, port.ErrBackend) {
		t.Fatalf("expected remembered hard error, got %v", err)
	}
}

func TestMyReservations_NonListBodyBehavesLikeMissingEndpoint(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/my" {
			writeJSON(t, w, http.StatusOK, map[string]any{"message": "nothing here"})
			return
		}
		if r.URL.Path == "/reservations/customer/7" {
			writeJSON(t, w, http.StatusOK, map[string]any{"reservations": []any{
				map[string]any{"id": "9", "customer_id": "7"},
			}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	items, err := client.MyReservations(context.Background(), "jwt", "7")
	if err != nil {
		t.Fatalf("expected fallback past arrayless body, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "9" {
		t.Fatalf("expected the record from the next candidate, got %+v", items)
	}
}

func TestAllReservations_PrefersAdminRoute(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/admin/all" {
			writeJSON(t, w, http.StatusOK, []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}})
			return
		}
		t.Fatalf("unexpected request to %s", r.URL.Path)
	})

	items, err := client.AllReservations(context.Background(), "jwt")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %+v", items)
	}
}

func TestCreateReservation_PayloadAndOutcomes(t *testing.T) {
	var received map[string]any
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reservations" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer jwt" {
			t.Fatalf("expected bearer token, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{"reservation": map[string]any{
			"id": float64(55), "id_room": float64(1), "id_customer": float64(7), "status": "en_attente",
		}})
	})

	created, err := client.Create(context.Background(), "jwt", port.CreateReservationRequest{
		RoomID:       1,
		CustomerID:   "7",
		CheckInDate:  "2025-10-15",
		CheckOutDate: "2025-10-18",
		GuestCount:   2,
		TotalCost:    450,
		RequestID:    "req-1",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if created.ID != "55" || created.Status != domain.ReservationStatusPending {
		t.Fatalf("unexpected created record: %+v", created)
	}

	if received["id_room"] != float64(1) {
		t.Fatalf("expected numeric id_room, got %v", received["id_room"])
	}
	if received["id_customer"] != float64(7) {
		t.Fatalf("expected numeric-looking owner id sent as number, got %v", received["id_customer"])
	}
	if received["check_in_date"] != "2025-10-15" || received["check_out_date"] != "2025-10-18" {
		t.Fatalf("unexpected dates: %v", received)
	}
	if received["request_id"] != "req-1" {
		t.Fatalf("expected request id in payload, got %v", received["request_id"])
	}
	if _, present := received["message"]; present {
		t.Fatalf("empty message must be omitted, got %v", received["message"])
	}
}

func TestCreateReservation_ConflictAndValidation(t *testing.T) {
	status := http.StatusConflict
	body := map[string]any{}
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, status, body)
	})

	_, err := client.Create(context.Background(), "jwt", port.CreateReservationRequest{RoomID: 1, CustomerID: "7"})
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	status = http.StatusBadRequest
	body = map[string]any{"message": "guest_count must be positive"}
	_, err = client.Create(context.Background(), "jwt", port.CreateReservationRequest{RoomID: 1, CustomerID: "7"})
	if !errors.Is(err, port.ErrInvalidData) {
		t.Fatalf("expected invalid data, got %v", err)
	}
	if !strings.Contains(err.Error(), "guest_count must be positive") {
		t.Fatalf("expected server message to ride along, got %v", err)
	}

	status = http.StatusServiceUnavailable
	body = map[string]any{}
	_, err = client.Create(context.Background(), "jwt", port.CreateReservationRequest{RoomID: 1, CustomerID: "7"})
	if !errors.Is(err, port.ErrBackend) {
		t.Fatalf("expected generic backend error, got %v", err)
	}
}

func TestStats_FallsThroughToSentinel(t *testing.T) {
	var visited []string
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		visited = append(visited, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Stats(context.Background(), "jwt")
	if !errors.Is(err, port.ErrStatsUnavailable) {
		t.Fatalf("expected stats sentinel, got %v", err)
	}
	if len(visited) != 3 {
		t.Fatalf("expected all three stats candidates probed, got %v", visited)
	}
}

func TestStats_SecondCandidateWins(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/stats" {
			writeJSON(t, w, http.StatusOK, map[string]any{"totalReservations": float64(4), "totalRevenue": float64(1200)})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	stats, err := client.Stats(context.Background(), "jwt")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if stats.TotalReservations != 4 || stats.TotalRevenue != 1200 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStats_ServerErrorStillYieldsSentinel(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/stats") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/reservations/admin/all" {
			writeJSON(t, w, http.StatusOK, []any{
				map[string]any{"id": "1", "status": "confirme", "total_cost": float64(300)},
			})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Stats(context.Background(), "jwt")
	if !errors.Is(err, port.ErrStatsUnavailable) {
		t.Fatalf("expected stats sentinel after server errors, got %v", err)
	}

	// The list stays reachable, so the dashboard can still reduce its own
	// figures after the stats chain comes back empty.
	items, err := client.AllReservations(context.Background(), "jwt")
	if err != nil {
		t.Fatalf("expected list to remain reachable, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one reservation, got %d", len(items))
	}
}

func TestStats_LaterCandidateWinsAfterServerError(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reservations/admin/stats":
			w.WriteHeader(http.StatusInternalServerError)
		case "/reservations/stats":
			writeJSON(t, w, http.StatusOK, map[string]any{"totalReservations": float64(2), "totalRevenue": float64(640)})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	stats, err := client.Stats(context.Background(), "jwt")
	if err != nil {
		t.Fatalf("expected second candidate to serve stats, got %v", err)
	}
	if stats.TotalReservations != 2 || stats.TotalRevenue != 640 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestConfirmAndCancelActions(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/reservations/5/confirm":
			writeJSON(t, w, http.StatusOK, map[string]any{"id": "5", "status": "confirme"})
		case r.Method == http.MethodPatch && r.URL.Path == "/reservations/5/cancel":
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode cancel body: %v", err)
			}
			if body["reason"] != "double booking" {
				t.Fatalf("expected reason in body, got %v", body)
			}
			writeJSON(t, w, http.StatusOK, map[string]any{"id": "5", "status": "annule"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	confirmed, err := client.Confirm(context.Background(), "jwt", "5")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != domain.ReservationStatusConfirmed {
		t.Fatalf("expected confirmed status, got %+v", confirmed)
	}

	cancelled, err := client.Cancel(context.Background(), "jwt", "5", "double booking")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != domain.ReservationStatusCancelled {
		t.Fatalf("expected cancelled status, got %+v", cancelled)
	}
}

func TestActions_NotFoundReadsAsInvalidData(t *testing.T) {
	client := newReservationClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Confirm(context.Background(), "jwt", "999")
	if !errors.Is(err, port.ErrInvalidData) {
		t.Fatalf("expected invalid data for unknown reservation, got %v", err)
	}
}
