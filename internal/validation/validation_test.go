package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsAddFirstProblemWins(t *testing.T) {
	errs := Errors{}
	errs.Add("title", "first")
	errs.Add("title", "second")
	require.Equal(t, "first", errs["title"])
	require.False(t, errs.Valid())
}

func TestNewError(t *testing.T) {
	require.NoError(t, NewError(Errors{}))

	err := NewError(Errors{"title": "Project title is required", "client_id": "Client ID is required"})
	require.Error(t, err)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	require.Equal(t, "validation failed: client_id: Client ID is required; title: Project title is required", verr.Error())
}

func TestRequireClientID(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", "Client ID is required"},
		{"  ", "Client ID is required"},
		{"abc", "Client ID must be a valid positive number"},
		{"0", "Client ID must be a valid positive number"},
		{"-4", "Client ID must be a valid positive number"},
		{"2.5", "Client ID must be a valid positive number"},
		{"3", ""},
	}
	for _, tc := range cases {
		errs := Errors{}
		RequireClientID(errs, tc.raw)
		if tc.want == "" {
			require.True(t, errs.Valid(), "input %q", tc.raw)
		} else {
			require.Equal(t, tc.want, errs["client_id"], "input %q", tc.raw)
		}
	}
}

func TestCheckMoney(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"0", ""},
		{"1250.50", ""},
		{"9999999", ""},
		{"10000001", "Must be less than $10,000,000"},
		{"-1", "Must be a valid positive number"},
		{"abc", "Must be a valid positive number"},
	}
	for _, tc := range cases {
		errs := Errors{}
		CheckMoney(errs, "budget", tc.raw)
		if tc.want == "" {
			require.True(t, errs.Valid(), "input %q", tc.raw)
		} else {
			require.Equal(t, tc.want, errs["budget"], "input %q", tc.raw)
		}
	}
}

func TestCheckDateRange(t *testing.T) {
	t.Run("either side empty passes", func(t *testing.T) {
		errs := Errors{}
		CheckDateRange(errs, "end_date", "", "2025-01-01")
		CheckDateRange(errs, "end_date", "2025-01-01", "")
		require.True(t, errs.Valid())
	})

	t.Run("ordered passes", func(t *testing.T) {
		errs := Errors{}
		CheckDateRange(errs, "end_date", "2025-01-10", "2025-03-28")
		require.True(t, errs.Valid())
	})

	t.Run("same day passes", func(t *testing.T) {
		errs := Errors{}
		CheckDateRange(errs, "end_date", "2025-01-10", "2025-01-10")
		require.True(t, errs.Valid())
	})

	t.Run("reversed fails", func(t *testing.T) {
		errs := Errors{}
		CheckDateRange(errs, "end_date", "2025-03-28", "2025-01-10")
		require.Equal(t, "End date must be after start date", errs["end_date"])
	})

	t.Run("unparsable flagged distinctly", func(t *testing.T) {
		errs := Errors{}
		CheckDateRange(errs, "due_date", "2025-01-10", "someday")
		require.Equal(t, "Invalid date format", errs["due_date"])
	})
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	require.Equal(t, 15, got.Day())

	got, err = ParseDate("2025-01-15T09:30:00Z")
	require.NoError(t, err)
	require.Equal(t, 9, got.Hour())

	_, err = ParseDate("Jan 15 2025")
	require.Error(t, err)
}

func TestFormValueDecodesStringsAndNumbers(t *testing.T) {
	var in struct {
		ClientID FormValue `json:"client_id"`
		Budget   FormValue `json:"budget"`
		Notes    FormValue `json:"notes"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"client_id": 3, "budget": "1800.50", "notes": null}`), &in))
	require.Equal(t, 3, in.ClientID.Int())
	require.Equal(t, 1800.50, in.Budget.Float())
	require.Equal(t, "", in.Notes.String())
}
