package util

import "time"

// DateFromParts builds a date from integer day/month/year fields as they
// appear on indexed vital records. A zero year means the record carries no
// date at all and nil is returned. Missing day or month default to 1, the
// convention used when only the year of an event is indexed.
//
// Non-constructible calendar dates (e.g. February 30th) also return nil:
// a malformed date on a source record is treated as no date.
func DateFromParts(year, month, day int) *time.Time {
	if year == 0 {
		return nil
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); a date that does not
	// round-trip was not a real calendar date.
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return nil
	}
	return &d
}

// YearOnlyDate returns January 1st of the given year, used for birth dates
// estimated from an age. Zero or negative years return nil.
func YearOnlyDate(year int) *time.Time {
	if year <= 0 {
		return nil
	}
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &d
}
