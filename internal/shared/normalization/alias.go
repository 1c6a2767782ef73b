package normalization

import "strings"

// FirstString walks the alias keys in priority order and returns the first
// non-empty string value found in the raw payload. This centralizes the
// field-name coalescing that was previously duplicated across services:
// the backend has shipped several payload conventions over time
// (firstName/first_name/prenom and friends), and every consumer is
// expected to accept all of them.
//
// Example:
//
//	FirstString(raw, "first_name", "firstName", "prenom") => "Ana"
func FirstString(raw map[string]any, aliases ...string) string {
	if len(raw) == 0 {
		return ""
	}
	for _, key := range aliases {
		if value := AsString(raw[key]); value != "" {
			return value
		}
	}
	return ""
}

// FirstValue returns the first non-nil raw value among the alias keys,
// preserving the original type for callers that need numeric ids as-is.
func FirstValue(raw map[string]any, aliases ...string) any {
	if len(raw) == 0 {
		return nil
	}
	for _, key := range aliases {
		if value, ok := raw[key]; ok && value != nil {
			if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
				continue
			}
			return value
		}
	}
	return nil
}

// FirstScalarString stringifies the first usable value among the alias
// keys. Numeric ids and string ids both collapse to their string form so
// identity comparisons work regardless of how the backend typed the field.
func FirstScalarString(raw map[string]any, aliases ...string) string {
	return ScalarString(FirstValue(raw, aliases...))
}
