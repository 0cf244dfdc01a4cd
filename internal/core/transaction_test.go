package core

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestKindValidate(t *testing.T) {
	if err := KindExpense.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := KindIncome.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := Kind("transfer").Validate(); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"expense", KindExpense, true},
		{"Income", KindIncome, true},
		{" EXPENSE ", KindExpense, true},
		{"", "", false},
		{"transfer", "", false},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: expected %q, got %q (err=%v)", tc.in, tc.want, got, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("%q: expected ErrInvalidKind, got %v", tc.in, err)
		}
	}
}

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateSameMonth(t *testing.T) {
	ref := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	cases := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, 3, 1), true},
		{NewDate(2024, 3, 31), true},
		{NewDate(2024, 2, 29), false},
		{NewDate(2023, 3, 15), false}, // same month, other year
	}
	for i, tc := range cases {
		if got := tc.d.SameMonth(ref); got != tc.want {
			t.Fatalf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:     uuid.New(),
		Date:   NewDate(2025, 1, 1),
		Label:  "groceries",
		Amount: Money{Cents: 100},
		Kind:   KindExpense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		tx   Transaction
		want error
	}{
		{Transaction{Date: Date{}, Label: "a", Amount: Money{Cents: 1}, Kind: KindExpense}, ErrZeroDate},
		{Transaction{Date: NewDate(2025, 1, 1), Label: "", Amount: Money{Cents: 1}, Kind: KindExpense}, ErrEmptyLabel},
		{Transaction{Date: NewDate(2025, 1, 1), Label: "   ", Amount: Money{Cents: 1}, Kind: KindExpense}, ErrEmptyLabel},
		{Transaction{Date: NewDate(2025, 1, 1), Label: "a", Amount: Money{Cents: 0}, Kind: KindExpense}, ErrInvalidAmount},
		{Transaction{Date: NewDate(2025, 1, 1), Label: "a", Amount: Money{Cents: -5}, Kind: KindIncome}, ErrInvalidAmount},
		{Transaction{Date: NewDate(2025, 1, 1), Label: "a", Amount: Money{Cents: 1}, Kind: "gift"}, ErrInvalidKind},
	}
	for i, tc := range cases {
		if err := tc.tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, err)
		}
	}
}
