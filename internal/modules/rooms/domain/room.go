package domain

import "cachetteWeb/internal/shared/normalization"

// RoomRecord is a backend room row, normalized from whichever field
// spelling the rooms endpoint returned.
type RoomRecord struct {
	ID            string
	Name          string
	Description   string
	PricePerNight float64
	Capacity      int
	Available     bool
}

// NormalizeRoom constructs a RoomRecord from a loosely typed map. Records
// without an id are dropped.
func NormalizeRoom(raw map[string]any) (RoomRecord, bool) {
	id := normalization.FirstScalarString(raw, "id", "id_room", "room_id")
	if id == "" {
		return RoomRecord{}, false
	}
	return RoomRecord{
		ID:            id,
		Name:          normalization.FirstString(raw, "room_name", "name", "nom"),
		Description:   normalization.FirstString(raw, "description"),
		PricePerNight: normalization.AsFloat64(normalization.FirstValue(raw, "price_per_night", "pricePerNight", "price")),
		Capacity:      normalization.AsInt(normalization.FirstValue(raw, "capacity", "max_guests", "maxGuests")),
		Available:     normalization.AsBool(normalization.FirstValue(raw, "available", "is_available")),
	}, true
}

// BuildRoomList projects an arbitrary rooms payload into records,
// accepting a bare array or the {rooms: [...]} / {data: [...]} envelopes.
func BuildRoomList(payload any) ([]RoomRecord, bool) {
	rawItems := normalization.AsInterfaceSlice(payload)
	if rawItems == nil {
		container, isMap := payload.(map[string]any)
		if !isMap {
			return nil, false
		}
		for _, key := range []string{"rooms", "data", "items"} {
			if items := normalization.AsInterfaceSlice(container[key]); items != nil {
				rawItems = items
				break
			}
		}
		if rawItems == nil {
			return nil, false
		}
	}

	result := make([]RoomRecord, 0, len(rawItems))
	for _, item := range rawItems {
		if rawMap, ok := item.(map[string]any); ok {
			if room, ok := NormalizeRoom(rawMap); ok {
				result = append(result, room)
			}
		}
	}
	return result, true
}
