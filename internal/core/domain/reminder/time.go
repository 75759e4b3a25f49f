package reminder

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimeFormat = errors.New("invalid time format")

const canonicalFmt = "%02d:%02d"

var (
	re24Hour    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	re12Hour    = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s?(am|pm)$`)
	reCanonical = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// Time is a wall clock minute without date or zone.
type Time struct {
	hour   uint
	minute uint
}

func NewTime(hour uint, minute uint) (Time, error) {
	if hour > 23 || minute > 59 {
		return Time{}, ErrInvalidTimeFormat
	}
	return Time{hour: hour, minute: minute}, nil
}

func MustTime(hour uint, minute uint) Time {
	t, err := NewTime(hour, minute)
	if err != nil {
		panic(fmt.Sprintf("invalid time %d:%d", hour, minute))
	}
	return t
}

// TimeOf truncates t to its wall clock minute in t's own location.
func TimeOf(t time.Time) Time {
	return Time{hour: uint(t.Hour()), minute: uint(t.Minute())}
}

func (t Time) Hour() uint {
	return t.hour
}

func (t Time) Minute() uint {
	return t.minute
}

func (t Time) String() string {
	return fmt.Sprintf(canonicalFmt, t.hour, t.minute)
}

// ParseTime accepts "H:MM"/"HH:MM" in 24-hour form first and then
// "H:MM am"/"H:MMpm" in 12-hour form.
func ParseTime(raw string) (Time, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))

	if match := re24Hour.FindStringSubmatch(raw); match != nil {
		if t, err := parseRawTimeAmOrPm(match[1], match[2], ""); err == nil {
			return t, nil
		}
	}

	if match := re12Hour.FindStringSubmatch(raw); match != nil {
		return parseRawTimeAmOrPm(match[1], match[2], match[3])
	}

	return Time{}, ErrInvalidTimeFormat
}

// ParseCanonicalTime accepts only the zero padded "HH:MM" form.
func ParseCanonicalTime(raw string) (Time, error) {
	match := reCanonical.FindStringSubmatch(raw)
	if match == nil {
		return Time{}, ErrInvalidTimeFormat
	}
	return parseRawTimeAmOrPm(match[1], match[2], "")
}

func parseRawTimeAmOrPm(rawHour string, rawMinute string, pmOrAm string) (Time, error) {
	hour, err := strconv.ParseUint(rawHour, 10, 8)
	if err != nil {
		return Time{}, ErrInvalidTimeFormat
	}
	minute, err := strconv.ParseUint(rawMinute, 10, 8)
	if err != nil {
		return Time{}, ErrInvalidTimeFormat
	}

	if pmOrAm != "" && (hour < 1 || hour > 12) {
		return Time{}, ErrInvalidTimeFormat
	}
	if pmOrAm == "am" && hour == 12 {
		hour = 0
	}
	if pmOrAm == "pm" && hour != 12 {
		hour += 12
	}

	return NewTime(uint(hour), uint(minute))
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseCanonicalTime(raw)
	if err != nil {
		return fmt.Errorf("could not parse reminder time %q: %w", raw, err)
	}
	*t = parsed
	return nil
}
