package validation

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FormValue is a scalar form field. Browser forms submit strings while API
// callers submit numbers; both decode to the same value so the validators can
// flag unparsable input instead of failing at decode time.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(data)
	return nil
}

func (v FormValue) String() string {
	return string(v)
}

// Int parses the value as an integer, returning 0 when empty or unparsable.
// Callers validate first; this is the post-validation conversion.
func (v FormValue) Int() int {
	n, err := strconv.Atoi(string(v))
	if err != nil {
		return 0
	}
	return n
}

// Float parses the value as a number, returning 0 when empty or unparsable.
func (v FormValue) Float() float64 {
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return 0
	}
	return f
}
