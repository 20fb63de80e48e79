package types

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day and no zone, rendered as
// YYYY-MM-DD in both JSON and the stored CBOR value.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Today returns the current date on the server clock, in UTC.
func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	// A zero Date renders as "0000-00-00", which time.Parse rejects.
	// Accept it so the type round-trips its own zero value.
	if string(text) == (Date{}).String() {
		*d = Date{}
		return nil
	}
	t, err := time.Parse("2006-01-02", string(text))
	if err != nil {
		return fmt.Errorf("parse date %q: %w", text, err)
	}
	d.Year, d.Month, d.Day = t.Date()
	return nil
}
