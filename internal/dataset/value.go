package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var numericCleaner = strings.NewReplacer(",", "", "%", "")

// Number coerces a stat value to float64. Thousands separators and percent
// signs are stripped from strings first ("1,234" → 1234, "45.5%" → 45.5).
//
// Returns ok=false for nil, booleans, the Unknown marker and anything else
// that does not parse.
func Number(val any) (float64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, false
	case json.Number:
		return parseNumeric(v.String())
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		return parseNumeric(v)
	default:
		return 0, false
	}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(numericCleaner.Replace(s))
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Display renders a stat value for humans. nil renders as Unknown.
func Display(val any) string {
	switch v := val.(type) {
	case nil:
		return Unknown
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber prints f with the fewest digits that round-trip (10, 0.45).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
