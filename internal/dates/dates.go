// Package dates resolves the absolute and relative dates users type into chat.
//
// Months are 30 days and years are 365 days. The approximation matches what
// the intent prompt asks the model to do, so both paths agree on the result.
package dates

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const Layout = "02-01-2006"

const (
	daysPerMonth = 30
	daysPerYear  = 365
)

var (
	ErrInvalidUnit   = errors.New("Invalid time format. Please use days, months, or years.")
	ErrInvalidNumber = errors.New("Invalid time format. Use numbers followed by days/months/years.")
	ErrInvalidFormat = errors.New("Invalid date format. Please use DD-MM-YYYY.")
)

// Resolve turns "N days/months/years ago" or a DD-MM-YYYY string into a calendar
// day in now's location.
func Resolve(s string, now time.Time) (time.Time, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.Contains(s, "ago") {
		fields := strings.Fields(s)
		if len(fields) < 2 {
			return time.Time{}, ErrInvalidNumber
		}

		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return time.Time{}, ErrInvalidNumber
		}

		unit := fields[1]
		var days int
		switch {
		case strings.Contains(unit, "day"):
			days = n
		case strings.Contains(unit, "month"):
			days = n * daysPerMonth
		case strings.Contains(unit, "year"):
			days = n * daysPerYear
		default:
			return time.Time{}, ErrInvalidUnit
		}

		return Day(now.AddDate(0, 0, -days)), nil
	}

	t, err := time.ParseInLocation(Layout, s, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return t, nil
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// DaysAgo formats the day n days before now; used for prompt examples.
func DaysAgo(now time.Time, n int) string {
	return Format(now.AddDate(0, 0, -n))
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
