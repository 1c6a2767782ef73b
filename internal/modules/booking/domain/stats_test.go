package domain

import "testing"

func TestNormalizeStats(t *testing.T) {
	cases := []struct {
		name     string
		payload  any
		expected ReservationStats
		ok       bool
	}{
		{
			name: "camel case",
			payload: map[string]any{
				"totalReservations": float64(12),
				"totalRevenue":      float64(5400),
				"averageStayNights": 2.5,
				"occupancyRate":     0.8,
			},
			expected: ReservationStats{TotalReservations: 12, TotalRevenue: 5400, AverageStayNights: 2.5, OccupancyRate: 0.8},
			ok:       true,
		},
		{
			name: "snake case in stats envelope",
			payload: map[string]any{"stats": map[string]any{
				"total_reservations": float64(3),
				"total_revenue":      float64(900),
			}},
			expected: ReservationStats{TotalReservations: 3, TotalRevenue: 900},
			ok:       true,
		},
		{
			name:     "data envelope",
			payload:  map[string]any{"data": map[string]any{"total": float64(7)}},
			expected: ReservationStats{TotalReservations: 7},
			ok:       true,
		},
		{name: "no total", payload: map[string]any{"revenue": float64(100)}, ok: false},
		{name: "not a map", payload: []any{}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeStats(tc.payload)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	items := []Reservation{
		{ID: "1", TotalCost: 450, CheckInDate: "2025-10-15", CheckOutDate: "2025-10-18"},
		{ID: "2", TotalCost: 140, CheckInDate: "2025-11-01", CheckOutDate: "2025-11-02"},
	}

	stats := ComputeStats(items)
	if stats.TotalReservations != 2 {
		t.Fatalf("expected 2 reservations, got %d", stats.TotalReservations)
	}
	if stats.TotalRevenue != 590 {
		t.Fatalf("expected 590 revenue, got %v", stats.TotalRevenue)
	}
	if stats.AverageStayNights != 2 {
		t.Fatalf("expected average of 2 nights, got %v", stats.AverageStayNights)
	}
	if stats.OccupancyRate != 0 {
		t.Fatalf("occupancy cannot be derived here, expected 0, got %v", stats.OccupancyRate)
	}

	empty := ComputeStats(nil)
	if empty.TotalReservations != 0 || empty.AverageStayNights != 0 {
		t.Fatalf("expected zeroed stats for empty input, got %+v", empty)
	}
}
