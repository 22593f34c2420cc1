package entity

import (
	"database/sql/driver"
	"errors"
	"time"

	"availability-api/core/constants"
)

// Date is a calendar date ("2006-01-02") with no time or timezone
// component. Because the layout is fixed-width ISO, plain string comparison
// orders dates chronologically, which is how all past/future checks work.
type Date string

func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(constants.DateLayout, s); err != nil {
		return "", err
	}
	return Date(s), nil
}

// DateOf truncates a time to its calendar date in the time's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(constants.DateLayout))
}

func Today() Date {
	return DateOf(time.Now())
}

// Time returns midnight UTC of the date. Invalid dates return the zero time.
func (d Date) Time() time.Time {
	t, err := time.Parse(constants.DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday returns the Monday=0 .. Sunday=6 weekday index.
func (d Date) Weekday() int {
	return (int(d.Time().Weekday()) + 6) % 7
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// MondayOnOrBefore returns the Monday of the week containing d.
func (d Date) MondayOnOrBefore() Date {
	return d.AddDays(-d.Weekday())
}

func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) String() string {
	return string(d)
}

// Scan implements sql.Scanner; Postgres DATE columns arrive as time.Time.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return errors.New("unsupported type for Date")
	}
}

// Value implements driver.Valuer; the string form casts cleanly to DATE.
func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}
