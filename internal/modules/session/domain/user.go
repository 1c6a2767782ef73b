package domain

import (
	"log/slog"
	"time"

	"cachetteWeb/internal/shared/normalization"
)

// Roles the backend actually knows about. The marketing copy mentions
// manager/super_admin tiers, but server-side there is a single admin role;
// everything finer grained is a display label.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// AdminDisplayLabel is the cosmetic tier shown to admins. It grants
// nothing beyond what RoleAdmin already does.
const AdminDisplayLabel = "super_admin"

// UserRecord is the normalized customer identity persisted alongside the
// token. It is rebuilt wholesale on every login and register response.
type UserRecord struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Role             string `json:"role"`
	RegistrationDate string `json:"registration_date"`
}

// NormalizeUser coalesces the field-name aliases the backend has shipped
// over time into one canonical record. Alias lists are priority ordered:
// the first populated source key wins.
func NormalizeUser(raw map[string]any) UserRecord {
	record := UserRecord{
		ID:               normalization.FirstScalarString(raw, "id", "id_customer", "customer_id"),
		FirstName:        normalization.FirstString(raw, "first_name", "firstName", "prenom", "firstname"),
		LastName:         normalization.FirstString(raw, "last_name", "lastName", "nom", "lastname"),
		Email:            normalization.FirstString(raw, "email"),
		Phone:            normalization.FirstString(raw, "phone", "telephone", "tel"),
		Role:             normalization.FirstString(raw, "role"),
		RegistrationDate: normalization.FirstString(raw, "registration_date", "created_at"),
	}

	if record.Role == "" {
		record.Role = RoleUser
	}
	if record.RegistrationDate == "" {
		record.RegistrationDate = time.Now().UTC().Format(time.RFC3339)
	}
	if record.FirstName == "" && record.LastName == "" {
		// Data-quality signal only: the record is still stored, downstream
		// views just have nothing to greet the customer with.
		slog.Warn("user record has no name after normalization", slog.String("email", record.Email))
	}

	return record
}

// IsAdmin reports whether the record carries the one real elevated role.
func (u UserRecord) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleOrDefault returns the stored role, defaulting to user.
func (u UserRecord) RoleOrDefault() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}

// AdminLabel returns the cosmetic admin tier for display, or empty when
// the record is not an admin.
func (u UserRecord) AdminLabel() string {
	if !u.IsAdmin() {
		return ""
	}
	return AdminDisplayLabel
}

// HasIdentity reports whether the record can stand in as a reservation
// owner. Identity comparisons downstream need a non-empty id.
func (u UserRecord) HasIdentity() bool {
	return u.ID != ""
}
