package infrastructure

import (
	"net/url"
	"strings"
)

// listCandidate is one attempt of the endpoint-fallback chain: a request
// recipe plus a flag for the last-resort client-side ownership filter.
// The backend's reservation routes have drifted across revisions and are
// not all present on every deployment, so candidates are probed strictly
// in order until one yields a usable list.
type listCandidate struct {
	name        string
	pathBuilder func(userID string) (string, url.Values)
	// filterOwner marks the unfiltered-collection fallback: keep only the
	// records whose owner id string-matches the caller.
	filterOwner bool
}

func staticListPath(path string) func(string) (string, url.Values) {
	trimmed := strings.TrimSpace(path)
	return func(string) (string, url.Values) {
		return trimmed, nil
	}
}

func userPathCandidate(format string) func(string) (string, url.Values) {
	trimmed := strings.TrimSpace(format)
	return func(userID string) (string, url.Values) {
		return strings.Replace(trimmed, "%s", url.PathEscape(userID), 1), nil
	}
}

func userQueryCandidate(path, key string) func(string) (string, url.Values) {
	trimmed := strings.TrimSpace(path)
	return func(userID string) (string, url.Values) {
		values := url.Values{}
		values.Set(key, userID)
		return trimmed, values
	}
}

// myReservationCandidates is the ordered chain for "my reservations":
// dedicated current-user route, id-in-path variants, id-as-query
// variants, then the whole collection narrowed client-side.
var myReservationCandidates = []listCandidate{
	{name: "my", pathBuilder: staticListPath("reservations/my")},
	{name: "customer-path", pathBuilder: userPathCandidate("reservations/customer/%s")},
	{name: "user-path", pathBuilder: userPathCandidate("customers/%s/reservations")},
	{name: "customer-query", pathBuilder: userQueryCandidate("reservations", "customer_id")},
	{name: "id-customer-query", pathBuilder: userQueryCandidate("reservations", "id_customer")},
	{name: "collection-filter", pathBuilder: staticListPath("reservations"), filterOwner: true},
}

// allReservationCandidates is the admin chain; no ownership narrowing
// applies to the final unfiltered fallback.
var allReservationCandidates = []listCandidate{
	{name: "admin-all", pathBuilder: staticListPath("reservations/admin/all")},
	{name: "admin-reservations", pathBuilder: staticListPath("admin/reservations")},
	{name: "reservations-all", pathBuilder: staticListPath("reservations/all")},
	{name: "collection", pathBuilder: staticListPath("reservations")},
}

// statsCandidates is probed before falling back to reducing the list
// client-side.
var statsCandidates = []string{
	"reservations/admin/stats",
	"reservations/stats",
	"admin/reservations/stats",
}
