package domain

import "strings"

// ReservationFilter selects which slice of the customer's history a page
// shows.
type ReservationFilter string

const (
	FilterAll       ReservationFilter = "all"
	FilterUpcoming  ReservationFilter = "upcoming"
	FilterPast      ReservationFilter = "past"
	FilterCancelled ReservationFilter = "cancelled"
)

// NormalizeReservationFilter maps a query value to a known filter,
// defaulting to all.
func NormalizeReservationFilter(raw string) ReservationFilter {
	switch ReservationFilter(strings.ToLower(strings.TrimSpace(raw))) {
	case FilterUpcoming:
		return FilterUpcoming
	case FilterPast:
		return FilterPast
	case FilterCancelled:
		return FilterCancelled
	default:
		return FilterAll
	}
}

// FilterReservations keeps the records matching the filter relative to
// today (an ISO date string, lexically comparable).
func FilterReservations(items []Reservation, filter ReservationFilter, today string) []Reservation {
	if filter == FilterAll {
		return items
	}
	kept := make([]Reservation, 0, len(items))
	for _, item := range items {
		switch filter {
		case FilterUpcoming:
			if item.CheckInDate >= today && item.Status != ReservationStatusCancelled {
				kept = append(kept, item)
			}
		case FilterPast:
			if item.CheckOutDate < today || item.Status == ReservationStatusCompleted {
				kept = append(kept, item)
			}
		case FilterCancelled:
			if item.Status == ReservationStatusCancelled {
				kept = append(kept, item)
			}
		}
	}
	return kept
}
