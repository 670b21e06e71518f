package testutil

import (
	"time"

	"github.com/EmersonKing1/Teamdle-Project/internal/timeutil"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustDate parses a YYYY-MM-DD date or panics; intended for tests.
func MustDate(v string) timeutil.Date {
	d, err := timeutil.ParseCalendarDate(v)
	if err != nil {
		panic(err)
	}
	return d
}
