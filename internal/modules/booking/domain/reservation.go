package domain

import (
	"time"

	"cachetteWeb/internal/shared/normalization"
)

// Reservation is the server-owned booking record as read back from the
// API. Field names vary between endpoints, so instances are only ever
// built through NormalizeReservation.
type Reservation struct {
	ID           string
	RoomID       int
	RoomName     string
	CustomerID   string
	CheckInDate  string
	CheckOutDate string
	GuestCount   int
	TotalCost    float64
	Status       ReservationStatus
}

// NormalizeReservation constructs a Reservation from a loosely typed map,
// probing the id/owner/date aliases the various endpoints emit. Records
// without any id are dropped.
func NormalizeReservation(raw map[string]any) (Reservation, bool) {
	id := normalization.FirstScalarString(raw, "id", "id_reservation", "reservation_id")
	if id == "" {
		return Reservation{}, false
	}

	reservation := Reservation{
		ID:           id,
		RoomID:       normalization.AsInt(normalization.FirstValue(raw, "room_id", "id_room", "roomId")),
		RoomName:     normalization.FirstString(raw, "room_name", "roomName"),
		CustomerID:   normalization.FirstScalarString(raw, "customer_id", "id_customer", "customerId", "user_id", "userId"),
		CheckInDate:  normalization.FirstString(raw, "check_in_date", "checkIn", "check_in"),
		CheckOutDate: normalization.FirstString(raw, "check_out_date", "checkOut", "check_out"),
		GuestCount:   normalization.AsInt(normalization.FirstValue(raw, "guest_count", "guests", "guestCount")),
		TotalCost:    normalization.AsFloat64(normalization.FirstValue(raw, "total_cost", "totalCost", "total_price", "totalPrice")),
	}

	status := NormalizeReservationStatus(normalization.FirstValue(raw, "status", "reservation_status", "state"))
	reservation.Status = status

	if reservation.RoomName == "" {
		if room, ok := RoomByBackendID(reservation.RoomID); ok {
			reservation.RoomName = room.Label
		}
	}

	return reservation, true
}

// BuildReservationList projects an arbitrary endpoint payload into a slice
// of reservations. The payload may be a bare array, {reservations: [...]},
// or {data: [...]}; whichever is array-valued wins. A payload with no
// array anywhere yields ok=false so callers can try the next endpoint.
func BuildReservationList(payload any) ([]Reservation, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if rawItems == nil {
		container, isMap := payload.(map[string]any)
		if !isMap {
			return nil, false
		}
		for _, key := range []string{"reservations", "data", "items"} {
			if items := normalization.AsInterfaceSlice(container[key]); items != nil {
				rawItems = items
				break
			}
		}
		if rawItems == nil {
			return nil, false
		}
	}

	result := make([]Reservation, 0, len(rawItems))
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if reservation, ok := NormalizeReservation(rawMap); ok {
				result = append(result, reservation)
			}
		}
	}
	return result, true
}

// Nights reports the stay length from the stored date strings, zero when
// either date is unparseable or the window is not forward.
func (r Reservation) Nights() int {
	checkIn, errIn := time.Parse("2006-01-02", r.CheckInDate)
	checkOut, errOut := time.Parse("2006-01-02", r.CheckOutDate)
	if errIn != nil || errOut != nil || !checkOut.After(checkIn) {
		return 0
	}
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// OwnedBy compares the reservation's owner against a caller id using
// string coercion, since endpoints disagree on the id type.
func (r Reservation) OwnedBy(userID string) bool {
	return r.CustomerID != "" && r.CustomerID == userID
}
