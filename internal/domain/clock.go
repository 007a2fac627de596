package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOnly приводит момент времени к полуночи UTC той же календарной даты
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: %v", ErrMalformedDateTime, s, err)
	}
	return t, nil
}

// ParseClock проверяет время в формате HH:MM и возвращает минуты от полуночи
func ParseClock(s string) (int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q: %v", ErrMalformedDateTime, s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock форматирует минуты от полуночи как HH:MM
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockWindow возвращает границы окна +-spanMinutes вокруг времени, не выходя за сутки
func ClockWindow(s string, spanMinutes int) (from, to string, err error) {
	m, err := ParseClock(s)
	if err != nil {
		return "", "", err
	}
	lo := max(m-spanMinutes, 0)
	hi := min(m+spanMinutes, 24*60-1)
	return FormatClock(lo), FormatClock(hi), nil
}
