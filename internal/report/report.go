// Package report computes the read-side aggregations over a ledger
// snapshot: the monthly net balance and the per-label expense breakdown.
//
// Every function is pure and takes an explicit reference date, so callers
// decide which month is summed and tests stay deterministic.
package report

import (
	"sort"
	"time"

	"bilancio/internal/core"
)

// MonthSummary holds the totals for a single calendar month.
type MonthSummary struct {
	Year     int
	Month    int // 1-12
	Income   core.Money
	Expenses core.Money
	Net      core.Money // Income - Expenses, may be negative
}

// LabelTotal is one row of the expense breakdown: a label and the summed
// amount of all expenses carrying it.
type LabelTotal struct {
	Label string
	Total core.Money
}

// MonthlyBalance sums income and expenses for transactions falling in the
// same calendar month and year as ref. An empty filtered set yields an
// all-zero summary.
func MonthlyBalance(txs []core.Transaction, ref time.Time) MonthSummary {
	sum := MonthSummary{Year: ref.Year(), Month: int(ref.Month())}
	for _, t := range txs {
		if !t.Date.SameMonth(ref) {
			continue
		}
		switch t.Kind {
		case core.KindIncome:
			sum.Income.Cents += t.Amount.Cents
		case core.KindExpense:
			sum.Expenses.Cents += t.Amount.Cents
		}
	}
	sum.Net.Cents = sum.Income.Cents - sum.Expenses.Cents
	return sum
}

// FormatNet renders a net balance as a surplus or deficit label with the
// absolute magnitude.
func FormatNet(net core.Money) string {
	if net.Cents < 0 {
		return "deficit of " + core.Money{Cents: -net.Cents}.String()
	}
	return "surplus of " + net.String()
}

// ExpenseBreakdown groups the reference month's expenses by label, summing
// amounts per label, and orders the rows descending by total. Ties keep
// the order in which the labels were first encountered. An empty result
// means "no expenses this month" and is not an error.
func ExpenseBreakdown(txs []core.Transaction, ref time.Time) []LabelTotal {
	var rows []LabelTotal
	index := make(map[string]int)
	for _, t := range txs {
		if t.Kind != core.KindExpense || !t.Date.SameMonth(ref) {
			continue
		}
		if i, ok := index[t.Label]; ok {
			rows[i].Total.Cents += t.Amount.Cents
			continue
		}
		index[t.Label] = len(rows)
		rows = append(rows, LabelTotal{Label: t.Label, Total: t.Amount})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.Cents > rows[j].Total.Cents
	})
	return rows
}

// Percent returns the rounded share, 0-100, of row i against the sum of
// all rows. It drives proportional chart sectors. A zero sum yields 0.
func Percent(rows []LabelTotal, i int) int {
	if i < 0 || i >= len(rows) {
		return 0
	}
	var sum int64
	for _, r := range rows {
		sum += r.Total.Cents
	}
	if sum <= 0 || rows[i].Total.Cents <= 0 {
		return 0
	}
	pct := int((rows[i].Total.Cents*100 + sum/2) / sum)
	if pct > 100 {
		pct = 100
	}
	return pct
}
