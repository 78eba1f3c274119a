package search

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParsePriceCeiling reads a raw ceiling from loosely typed input. Anything
// that does not parse to a positive number means "no ceiling".
func ParsePriceCeiling(v any) *float64 {
	value, ok := toFloat64(v)
	if !ok || value <= 0 {
		return nil
	}
	return &value
}

// ParseColors accepts a comma separated string or a list.
func ParseColors(v any) []string {
	out := make([]string, 0)
	for _, c := range toStringSlice(v) {
		for _, part := range strings.Split(c, ",") {
			if trimmed := strings.ToLower(strings.TrimSpace(part)); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func toStringSlice(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			result = append(result, strings.TrimSpace(toString(item)))
		}
		return result
	default:
		str := strings.TrimSpace(toString(val))
		if str == "" {
			return nil
		}
		return []string{str}
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	default:
		b, _ := json.Marshal(val)
		return strings.Trim(string(b), `"`)
	}
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case *float64:
		if val == nil {
			return 0, false
		}
		return *val, true
	case json.Number:
		parsed, err := val.Float64()
		return parsed, err == nil
	case string:
		clean := strings.TrimSpace(val)
		clean = strings.TrimPrefix(clean, "₹")
		clean = strings.ReplaceAll(clean, ",", "")
		parsed, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}
