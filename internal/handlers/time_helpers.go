package handlers

import (
	"time"
)

// --------------------------------------------------
// Parsing de datas no fuso oficial do negócio
// --------------------------------------------------

func parseDateIn(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

func parseDateTimeIn(loc *time.Location, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", value, loc)
}
