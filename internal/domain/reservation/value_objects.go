package reservation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// TimeOfDay is a wall-clock "HH:MM" value, as submitted by the reservation form.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// On anchors the time of day to a calendar date, at zero seconds/nanoseconds.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, t.hour, t.minute, 0, 0, loc)
}

// TimeSlot is a half-open interval [start, end). Seconds and below are
// truncated so two slots built from the same form input always compare equal.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	start = start.Truncate(time.Minute)
	end = end.Truncate(time.Minute)

	if !end.After(start) {
		return TimeSlot{}, ErrEndNotAfterStart
	}

	return TimeSlot{start: start, end: end}, nil
}

// NewTimeSlotFromParts combines a calendar date with start/end times of day.
func NewTimeSlotFromParts(date time.Time, start, end TimeOfDay, loc *time.Location) (TimeSlot, error) {
	return NewTimeSlot(start.On(date, loc), end.On(date, loc))
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses the half-open rule: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 && s2 < e1. Back-to-back slots sharing a boundary do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Purpose struct {
	value string
}

func NewPurpose(value string) Purpose {
	return Purpose{value: strings.TrimSpace(value)}
}

func (p Purpose) String() string {
	return p.value
}

func (p Purpose) IsEmpty() bool {
	return p.value == ""
}
