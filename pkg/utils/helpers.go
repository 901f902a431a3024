package utils

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func ParseValue(s string) interface{} {
	// Trim whitespace first
	s = strings.TrimSpace(s)

	// try int
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// Numeric safely converts supported types to float64. ok is false for
// non-numeric values.
func Numeric(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	default:
		if v == nil {
			return 0, false
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 {
			return rv.Convert(reflect.TypeOf(float64(0))).Float(), true
		}
		return 0, false
	}
}

// IsIntegral reports whether f has no fractional part.
func IsIntegral(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// ParseFloatParam parses an optional numeric query parameter, returning dflt
// when s is empty.
func ParseFloatParam(name, s string, dflt float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dflt, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return f, nil
}

// CleanHeader trims whitespace and removes quotes from a CSV header cell.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	return strings.ReplaceAll(h, `"`, "")
}
