package dates

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

var now = time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

func TestResolveRelative(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "days", input: "10 days ago", want: "05-03-2026"},
		{name: "single day", input: "1 day ago", want: "14-03-2026"},
		{name: "months are thirty days", input: "6 months ago", want: "16-09-2025"},
		{name: "years are 365 days", input: "1 year ago", want: "15-03-2025"},
		{name: "mixed case and spaces", input: "  3 Days Ago ", want: "12-03-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input, now)
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, Format(got))
		})
	}
}

func TestResolveAbsolute(t *testing.T) {
	got, err := Resolve("15-08-2025", now)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "bad unit", input: "3 weeks ago", want: ErrInvalidUnit},
		{name: "bad number", input: "few days ago", want: ErrInvalidNumber},
		{name: "lonely ago", input: "ago", want: ErrInvalidNumber},
		{name: "iso layout", input: "2025-08-15", want: ErrInvalidFormat},
		{name: "unknown", input: "unknown", want: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input, now)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestResolveRelativeDropsClock(t *testing.T) {
	got, err := Resolve("10 days ago", now)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, true, SameDay(a, b))
	assert.Equal(t, false, SameDay(b, c))
}
