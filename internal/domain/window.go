// internal/domain/window.go
package domain

import (
	"fmt"
	"time"
)

const ClockLayout = "15:04"

// IsWithinOperatingWindow compares only the hour of now against the window.
// Minutes are ignored. A window whose end hour is before its start hour
// wraps past midnight; equal hours mean always open.
func IsWithinOperatingWindow(now, start, end time.Time) bool {
	h, s, e := now.Hour(), start.Hour(), end.Hour()
	switch {
	case e > s:
		return h >= s && h < e
	case e < s:
		return h >= s || h < e
	default:
		return true
	}
}

// ParseClock parses an "HH:MM" string.
func ParseClock(v string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", v)
	}
	return t, nil
}

// Validate checks both ends of the window parse.
func (h OperatingHours) Validate() error {
	if _, err := ParseClock(h.Start); err != nil {
		return err
	}
	if _, err := ParseClock(h.End); err != nil {
		return err
	}
	return nil
}

// Contains reports whether now falls inside the window.
func (h OperatingHours) Contains(now time.Time) (bool, error) {
	start, err := ParseClock(h.Start)
	if err != nil {
		return false, err
	}
	end, err := ParseClock(h.End)
	if err != nil {
		return false, err
	}
	return IsWithinOperatingWindow(now, start, end), nil
}

// HoursOn picks the weekend window on Saturday and Sunday, weekday otherwise.
func (s *Seller) HoursOn(day time.Weekday) OperatingHours {
	if day == time.Saturday || day == time.Sunday {
		return s.WeekendHours
	}
	return s.WeekdayHours
}

// IsOpenAt reports whether the seller's window for now's weekday contains now.
func (s *Seller) IsOpenAt(now time.Time) (bool, error) {
	return s.HoursOn(now.Weekday()).Contains(now)
}
