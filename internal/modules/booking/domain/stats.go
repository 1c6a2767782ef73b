package domain

import "cachetteWeb/internal/shared/normalization"

// ReservationStats is the admin dashboard summary. OccupancyRate cannot be
// derived client-side (no room inventory calendar), so it stays zero
// unless a backend stats endpoint provides it.
type ReservationStats struct {
	TotalReservations int     `json:"totalReservations"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageStayNights float64 `json:"averageStayNights"`
	OccupancyRate     float64 `json:"occupancyRate"`
}

// NormalizeStats reads a stats payload, probing the alias spellings the
// stats endpoints have used. A payload without a total count is not a
// usable stats object.
func NormalizeStats(payload any) (ReservationStats, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return ReservationStats{}, false
	}
	if nested, ok := container["stats"].(map[string]any); ok {
		container = nested
	}

	total := normalization.FirstValue(container, "totalReservations", "total_reservations", "total")
	if total == nil {
		return ReservationStats{}, false
	}

	return ReservationStats{
		TotalReservations: normalization.AsInt(total),
		TotalRevenue:      normalization.AsFloat64(normalization.FirstValue(container, "totalRevenue", "total_revenue", "revenue")),
		AverageStayNights: normalization.AsFloat64(normalization.FirstValue(container, "averageStayNights", "average_stay_nights", "averageStay")),
		OccupancyRate:     normalization.AsFloat64(normalization.FirstValue(container, "occupancyRate", "occupancy_rate")),
	}, true
}

// ComputeStats reduces a reservation list into the summary figures. This
// is the fallback when no stats endpoint applies.
func ComputeStats(items []Reservation) ReservationStats {
	stats := ReservationStats{TotalReservations: len(items)}
	if len(items) == 0 {
		return stats
	}
	totalNights := 0
	for _, item := range items {
		stats.TotalRevenue += item.TotalCost
		totalNights += item.Nights()
	}
	stats.AverageStayNights = float64(totalNights) / float64(len(items))
	return stats
}
