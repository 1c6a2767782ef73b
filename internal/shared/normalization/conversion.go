package normalization

import (
	"strconv"
	"strings"
)

// AsString trims and returns the string representation of value when possible.
func AsString(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// AsInt coerces numeric values supported by the REST layer into Go ints.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := strconv.Atoi(trimmed); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// AsFloat64 coerces numeric values (including numeric strings) into float64.
func AsFloat64(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		if trimmed := strings.TrimSpace(typed); trimmed != "" {
			if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// AsBool coerces the loose boolean encodings the backend has been seen
// emitting (true, "true", 1) into a Go bool. Anything unrecognized is false
// so callers fail closed.
func AsBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	default:
		return false
	}
}

// ScalarString stringifies scalar values (strings and JSON numbers) so ids
// can be compared regardless of how an endpoint typed them. Whole-valued
// floats render without a decimal part: 7.0 => "7".
func ScalarString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return ScalarString(float64(typed))
	case int:
		return strconv.Itoa(typed)
	case int32:
		return strconv.FormatInt(int64(typed), 10)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// AsInterfaceSlice normalizes different collection types into a []any.
func AsInterfaceSlice(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []map[string]any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, entry)
		}
		return items
	default:
		return nil
	}
}

// MapFromPayload attempts to unwrap common envelope structures (e.g. {"data": {...}})
// into a plain map for normalization routines.
func MapFromPayload(value any) map[string]any {
	if value == nil {
		return nil
	}
	if typed, ok := value.(map[string]any); ok {
		if data, ok := typed["data"].(map[string]any); ok {
			return data
		}
		return typed
	}
	return nil
}
