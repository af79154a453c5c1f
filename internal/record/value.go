package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsNull reports whether the value is a null cell: nil or a floating NaN
// artifact from numeric coercion upstream.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// IsBlank reports whether the value is null or trims to the empty string.
func IsBlank(v any) bool {
	if IsNull(v) {
		return true
	}
	return strings.TrimSpace(String(v)) == ""
}

// String renders a cell value for comparison and output. Null renders as the
// empty string. Integral floats render without a fractional part so that type
// drift in upstream extracts (2016 vs 2016.0) produces one representation.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// TrimString returns the trimmed string form of a value.
func TrimString(v any) string {
	return strings.TrimSpace(String(v))
}

// YearString coerces an election year to a plain 4-digit-style integer string.
// Numeric representations (2016, 2016.0, "2016.0") all yield "2016" so that
// upstream type drift never changes derived identity. Returns "" when the
// value is null, blank, or not coercible to an integer.
func YearString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.Itoa(int(val))
	case float32:
		return strconv.Itoa(int(val))
	}
	s := strings.TrimSpace(String(v))
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.Itoa(int(f))
	}
	return s
}

// StripFloatSuffix removes a trailing ".0" artifact left by numeric coercion
// of string-typed fields such as phone numbers and ZIP codes.
func StripFloatSuffix(s string) string {
	return strings.TrimSuffix(s, ".0")
}
