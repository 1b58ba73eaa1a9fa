package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, serialized as "HH:MM".
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("failed to parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns the offset from midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = TimeOfDay{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

// DurationMinutes computes the elapsed minutes between two optional times of
// day. Missing inputs, equal times and spans that would wrap past midnight
// all yield 0; overnight operations are not supported.
func DurationMinutes(start, end *TimeOfDay) int {
	if start == nil || end == nil {
		return 0
	}
	if end.Minutes() > start.Minutes() {
		return end.Minutes() - start.Minutes()
	}
	return 0
}

// FormatDuration renders minutes in the short Turkish form used on plans and
// reports: "2sa 15dk", "45dk", "8sa". Zero parts are suppressed.
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0dk"
	}
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%ddk", rest)
	case rest == 0:
		return fmt.Sprintf("%dsa", hours)
	default:
		return fmt.Sprintf("%dsa %ddk", hours, rest)
	}
}

// Date is a calendar date serialized as "2006-01-02".
type Date struct {
	Time time.Time
}

func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return Date{Time: parsed}, nil
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v}
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
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
