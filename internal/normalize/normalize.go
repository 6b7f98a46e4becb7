// Package normalize converts heterogeneous raw record shapes into canonical
// domain records. Raw records arrive from fixture dumps and remote record
// APIs in mixed naming conventions (camelCase mock fields, snake_case backend
// fields); each canonical field resolves through an explicit ordered alias
// list, most specific name first. Normalization never raises: a record that
// cannot be reconciled is dropped with a logged reason so a batch of N raw
// records can yield fewer than N canonical records without aborting.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// first returns the first defined value among the aliases, in order. JSON
// null counts as undefined.
func first(raw map[string]any, aliases ...string) (any, bool) {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String coerces a value to a trimmed string. Nil becomes empty; structured
// values (maps, slices) are not stringified because a composite where a
// scalar belongs is garbage, not data.
func String(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	case map[string]any, []any:
		return ""
	default:
		return ""
	}
}

// Number coerces a value to a non-negative number. Booleans, NaN, infinities,
// and non-numeric strings become def; negative results clamp to 0.
func Number(v any, def float64) float64 {
	var n float64
	switch t := v.(type) {
	case nil:
		return def
	case bool:
		return def
	case float64:
		n = t
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return def
		}
		n = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return def
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return math.Max(0, n)
}

// stringField resolves a string field through its alias list.
func stringField(raw map[string]any, aliases ...string) string {
	v, ok := first(raw, aliases...)
	if !ok {
		return ""
	}
	return String(v)
}

// numberField resolves a numeric field through its alias list.
func numberField(raw map[string]any, def float64, aliases ...string) float64 {
	v, ok := first(raw, aliases...)
	if !ok {
		return def
	}
	return Number(v, def)
}

// idField resolves an identifier field. The bool result is false when no
// alias yields a positive integer, which callers treat as "drop the record".
func idField(raw map[string]any, aliases ...string) (int, bool) {
	v, ok := first(raw, aliases...)
	if !ok {
		return 0, false
	}
	n := Number(v, math.NaN())
	if math.IsNaN(n) || n <= 0 || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// intField resolves an optional integer reference, 0 when absent.
func intField(raw map[string]any, aliases ...string) int {
	id, ok := idField(raw, aliases...)
	if !ok {
		return 0
	}
	return id
}

// dateField resolves a date-like field, passing the raw value through as a
// string. Dates are re-parsed at validation or formatting time, never here.
func dateField(raw map[string]any, aliases ...string) string {
	return stringField(raw, aliases...)
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// timestampField resolves a creation timestamp, zero when absent or
// unparsable.
func timestampField(raw map[string]any, aliases ...string) time.Time {
	s := stringField(raw, aliases...)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// optionalString resolves a field that is absent rather than empty when
// unset, such as signing tokens and paid dates.
func optionalString(raw map[string]any, aliases ...string) *string {
	s := stringField(raw, aliases...)
	if s == "" {
		return nil
	}
	return &s
}
