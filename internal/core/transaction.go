package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

type (
	// Kind classifies a transaction as money out or money in. The set is
	// closed: exactly these two values are valid.
	Kind string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one recorded monetary event. Identity is assigned
	// when the record enters the ledger and never changes afterwards.
	Transaction struct {
		ID     uuid.UUID
		Date   Date
		Label  string
		Amount Money
		Kind   Kind
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyLabel    = errors.New("empty label")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrZeroDate      = errors.New("date cannot be zero")
)

func (k Kind) Validate() error {
	switch k {
	case KindExpense, KindIncome:
		return nil
	default:
		return ErrInvalidKind
	}
}

// ParseKind maps raw user input onto the closed kind set.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindExpense):
		return KindExpense, nil
	case string(KindIncome):
		return KindIncome, nil
	default:
		return "", ErrInvalidKind
	}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// SameMonth reports whether d falls in the same calendar month and year
// as ref. Time of day is irrelevant at this granularity.
func (d Date) SameMonth(ref time.Time) bool {
	return d.Year() == ref.Year() && d.Month() == int(ref.Month())
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Label)) == 0 {
		return ErrEmptyLabel
	}
	if len(t.Label) > 200 {
		return errors.New("label too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	return t.Kind.Validate()
}
