package domain

import "strings"

// Room is one entry of the fixed catalog. Keys are the stable slugs the
// pages use; the backend only understands the numeric id.
type Room struct {
	Key           string
	Label         string
	BackendID     int
	PricePerNight float64
}

// roomCatalog is the hard-coded list of the four bookable rooms. Prices
// are per night in euros and match the backend's seed data.
var roomCatalog = []Room{
	{Key: "nid-wallaby", Label: "Le Nid du Wallaby", BackendID: 1, PricePerNight: 150},
	{Key: "prairie-sautillante", Label: "La Prairie Sautillante", BackendID: 2, PricePerNight: 140},
	{Key: "oasis-marsupiaux", Label: "L'Oasis des Marsupiaux", BackendID: 3, PricePerNight: 180},
	{Key: "repos-kangourou", Label: "Le Repos du Kangourou", BackendID: 4, PricePerNight: 120},
}

// Catalog returns a copy of the room catalog in display order.
func Catalog() []Room {
	rooms := make([]Room, len(roomCatalog))
	copy(rooms, roomCatalog)
	return rooms
}

// RoomByKey resolves a user-facing room key to its catalog entry.
func RoomByKey(key string) (Room, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	for _, room := range roomCatalog {
		if room.Key == trimmed {
			return room, true
		}
	}
	return Room{}, false
}

// RoomByBackendID resolves a backend numeric id back to a catalog entry,
// used when rendering reservations fetched from the API.
func RoomByBackendID(id int) (Room, bool) {
	for _, room := range roomCatalog {
		if room.BackendID == id {
			return room, true
		}
	}
	return Room{}, false
}
