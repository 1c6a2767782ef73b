package domain

import "strings"

// ReservationStatus represents the lifecycle of a reservation as exposed
// by the REST API. The wire values are the backend's French labels.
type ReservationStatus string

const (
	ReservationStatusUnknown   ReservationStatus = ""
	ReservationStatusPending   ReservationStatus = "en_attente"
	ReservationStatusConfirmed ReservationStatus = "confirme"
	ReservationStatusCancelled ReservationStatus = "annule"
	ReservationStatusCompleted ReservationStatus = "termine"
)

// statusAliases folds the spellings the backend has used across revisions
// (with and without the en_ prefix, English equivalents) into the
// canonical wire labels.
var statusAliases = map[string]ReservationStatus{
	"en_attente": ReservationStatusPending,
	"attente":    ReservationStatusPending,
	"pending":    ReservationStatusPending,
	"confirme":   ReservationStatusConfirmed,
	"confirmed":  ReservationStatusConfirmed,
	"annule":     ReservationStatusCancelled,
	"cancelled":  ReservationStatusCancelled,
	"canceled":   ReservationStatusCancelled,
	"termine":    ReservationStatusCompleted,
	"completed":  ReservationStatusCompleted,
}

// NormalizeReservationStatus returns the canonical status for the given
// input. Unknown statuses are lowercased and returned as-is to avoid data
// loss.
func NormalizeReservationStatus(value any) ReservationStatus {
	s, ok := value.(string)
	if !ok {
		return ReservationStatusUnknown
	}
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return ReservationStatusUnknown
	}
	if status, ok := statusAliases[trimmed]; ok {
		return status
	}
	return ReservationStatus(trimmed)
}

// DisplayLabel returns the French label shown on the pages.
func (s ReservationStatus) DisplayLabel() string {
	switch s {
	case ReservationStatusPending:
		return "En attente"
	case ReservationStatusConfirmed:
		return "Confirmée"
	case ReservationStatusCancelled:
		return "Annulée"
	case ReservationStatusCompleted:
		return "Terminée"
	default:
		return string(s)
	}
}
