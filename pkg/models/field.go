package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseFieldValue converts raw form input into a custom field value.
// Numeric text becomes a number, "true"/"false" a boolean, anything else
// stays a string.
func ParseFieldValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed != "" {
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

// NormalizeFieldValue coerces decoded values into the canonical field
// types (string, float64, bool). Decoders produce ints for YAML integers;
// those become float64 so a document compares equal whichever encoding it
// came from.
func NormalizeFieldValue(v any) (any, error) {
	switch x := v.(type) {
	case string, bool, float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	default:
		return nil, fmt.Errorf("unsupported custom field value of type %T", v)
	}
}

// FormatFieldValue renders a custom field value for display.
func FormatFieldValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}
