package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat формат времени слота (HH:MM)
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время начала слота в формате "HH:MM" (локальное время салона/компании).
// Хранится и передаётся как строка, чтобы избежать проблем с таймзонами.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String возвращает строковое представление времени
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что строка соответствует формату HH:MM
func (ts TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// parse разбирает время, предполагая валидный формат
func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(TimeFormat, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное число минут
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore возвращает true, если ts строго раньше other
// Формат HH:MM с ведущими нулями сравнивается лексикографически корректно
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres-колонка TIME сканируется как строка "15:04:05" или time.Time
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		if len(v) > 5 {
			v = v[:5]
		}
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
