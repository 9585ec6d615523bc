package utils

import (
	"fmt"
	"time"
)

const (
	NOTIFICATION_TIME_FORMAT = "03:04pm"
	PUSH_TIME_FORMAT         = "15:04"
	PUSH_DATE_FORMAT         = "02.01.2006"
)

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// FormatLongDate renders "Monday, 2nd January".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d%s %s", t.Weekday(), t.Day(), ordinalSuffix(t.Day()), t.Month())
}

// UnixOrNil returns nil for a missing time so it marshals as JSON null.
func UnixOrNil(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
