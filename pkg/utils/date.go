package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta YYYY-MM-DD no fuso loc; string vazia retorna nil
func ParseDate(dateStr string, loc *time.Location) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay retorna o último instante representável do dia de t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
