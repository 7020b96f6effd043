package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Recognized range tags as they appear on the wire.
const (
	TagAllTime      = "all_time"
	TagCustom       = "custom"
	TagLast3Months  = "last_3_months"
	TagLast6Months  = "last_6_months"
	TagLast9Months  = "last_9_months"
	TagLast12Months = "last_12_months"
	TagLast15Months = "last_15_months"
	TagLast18Months = "last_18_months"
)

type kind int

const (
	kindAllTime kind = iota
	kindRelative
	kindCustom
)

var relativeMonths = map[string]int{
	TagLast3Months:  3,
	TagLast6Months:  6,
	TagLast9Months:  9,
	TagLast12Months: 12,
	TagLast15Months: 15,
	TagLast18Months: 18,
}

// Range is a validated date range. The zero value is the all-time range.
// Values are only constructed through Parse, so a Range never carries an
// unrecognized tag.
type Range struct {
	kind   kind
	months int
	from   time.Time
	to     time.Time
}

// Tags returns every recognized range tag in a stable order, suitable for
// validation messages.
func Tags() []string {
	return []string{
		TagAllTime,
		TagCustom,
		TagLast3Months,
		TagLast6Months,
		TagLast9Months,
		TagLast12Months,
		TagLast15Months,
		TagLast18Months,
	}
}

// Parse converts a wire-level range tag into a Range. The start and end
// values are consulted only when tag is "custom"; both must then be present
// and parse as RFC 3339 timestamps or calendar dates (2006-01-02). Custom
// bounds are widened to full days in UTC.
func Parse(tag, start, end string) (Range, error) {
	switch tag {
	case TagAllTime:
		return Range{}, nil
	case TagCustom:
		if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
			return Range{}, ErrMissingBounds
		}
		from, err := parseDate(start)
		if err != nil {
			return Range{}, errors.Join(ErrInvalidBound, err)
		}
		to, err := parseDate(end)
		if err != nil {
			return Range{}, errors.Join(ErrInvalidBound, err)
		}
		from, to = StartOfDay(from), EndOfDay(to)
		if from.After(to) {
			return Range{}, ErrInvertedBounds
		}
		return Range{kind: kindCustom, from: from, to: to}, nil
	default:
		if months, ok := relativeMonths[tag]; ok {
			return Range{kind: kindRelative, months: months}, nil
		}
		return Range{}, ErrUnknownTag
	}
}

// Bounds resolves the range to an inclusive [start, end] interval evaluated
// against the given instant. The all-time range reports ok=false and applies
// no bounds. Relative windows floor the start to the beginning of the day N
// months before now and ceil the end to the last nanosecond of today, in UTC.
func (r Range) Bounds(now time.Time) (start, end time.Time, ok bool) {
	switch r.kind {
	case kindRelative:
		now = now.UTC()
		return StartOfDay(now.AddDate(0, -r.months, 0)), EndOfDay(now), true
	case kindCustom:
		return r.from, r.to, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Tag reports the wire-level tag the range was parsed from.
func (r Range) Tag() string {
	switch r.kind {
	case kindRelative:
		return fmt.Sprintf("last_%d_months", r.months)
	case kindCustom:
		return TagCustom
	default:
		return TagAllTime
	}
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay advances t to the last nanosecond of its day in UTC.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", s)
}
