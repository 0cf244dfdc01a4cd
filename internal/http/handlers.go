package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bilancio/internal/core"
	applog "bilancio/internal/log"
	"bilancio/internal/report"
)

// transactionView is the JSON shape of one ledger record.
type transactionView struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Cents  int64  `json:"amount_cents"`
	Amount string `json:"amount"`
	Kind   string `json:"kind"`
}

func viewOf(t core.Transaction) transactionView {
	return transactionView{
		ID:     t.ID.String(),
		Date:   t.Date.Format("2006-01-02"),
		Label:  t.Label,
		Cents:  t.Amount.Cents,
		Amount: t.Amount.String(),
		Kind:   string(t.Kind),
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		BadRequestError("invalid_body", "Request body could not be parsed").Write(w)
		return
	}

	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		ValidationError(err).Write(w)
		return
	}
	kind, err := core.ParseKind(p.Get("kind"))
	if err != nil {
		ValidationError(err).Write(w)
		return
	}

	// Date defaults to today; an explicit value must be YYYY-MM-DD.
	now := time.Now()
	date := core.NewDate(now.Year(), int(now.Month()), now.Day())
	if v := p.Get("date"); v != "" {
		date, err = parseDate(v)
		if err != nil {
			BadRequestError("invalid_date", "Date must be YYYY-MM-DD").Write(w)
			return
		}
	}

	tx, err := s.store.Add(amount, p.Get("label"), date, kind)
	if err != nil {
		ValidationError(err).Write(w)
		return
	}

	s.invalidateMonth(tx.Date.Year(), tx.Date.Month())
	slog.InfoContext(r.Context(), "Transaction recorded",
		applog.FieldTxID, tx.ID.String(),
		applog.FieldLabel, tx.Label,
		applog.FieldAmount, tx.Amount.Cents,
		applog.FieldKind, string(tx.Kind))

	NewJSONResponse().Status(http.StatusCreated).Body(viewOf(tx)).Write(w)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	items := s.store.Sorted(nil)
	views := make([]transactionView, 0, len(items))
	for _, t := range items {
		views = append(views, viewOf(t))
	}
	NewJSONResponse().Body(struct {
		Transactions []transactionView `json:"transactions"`
		Count        int               `json:"count"`
	}{Transactions: views, Count: len(views)}).Write(w)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		BadRequestError("invalid_id", "Transaction id must be a UUID").Write(w)
		return
	}

	// Look the record up first so its month can be invalidated after
	// removal.
	tx, present := s.store.Get(id)
	removed := s.store.Remove(id)
	if removed && present {
		s.invalidateMonth(tx.Date.Year(), tx.Date.Month())
		slog.InfoContext(r.Context(), "Transaction removed", applog.FieldTxID, id.String())
	}

	// An absent identity is a no-op, not an error: the caller may hold a
	// stale view.
	NewJSONResponse().Body(struct {
		Removed bool `json:"removed"`
	}{Removed: removed}).Write(w)
}

func (s *Server) handleRemoveDisplayed(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		BadRequestError("invalid_body", "Request body could not be parsed").Write(w)
		return
	}
	indices, err := p.GetInts("indices")
	if err != nil {
		BadRequestError("invalid_indices", "indices must be integers").Write(w)
		return
	}

	n := s.store.RemoveDisplayed(indices, nil)
	if n > 0 {
		// Bulk removal may touch any month, drop everything cached.
		s.invalidateAll()
		slog.InfoContext(r.Context(), "Transactions removed by display position", applog.FieldCount, n)
	}

	NewJSONResponse().Body(struct {
		Removed int `json:"removed"`
	}{Removed: n}).Write(w)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	sum, found := s.balanceCache.Get(s.cacheKey(year, month))
	if !found {
		ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		sum = report.MonthlyBalance(s.store.List(), ref)
		s.balanceCache.Set(s.cacheKey(year, month), sum)
		slog.DebugContext(r.Context(), "Balance cached",
			applog.FieldYear, year, applog.FieldMonth, month)
	}

	NewJSONResponse().Body(struct {
		Year          int    `json:"year"`
		Month         int    `json:"month"`
		IncomeCents   int64  `json:"income_cents"`
		ExpensesCents int64  `json:"expenses_cents"`
		NetCents      int64  `json:"net_cents"`
		Income        string `json:"income"`
		Expenses      string `json:"expenses"`
		Net           string `json:"net"`
	}{
		Year:          sum.Year,
		Month:         sum.Month,
		IncomeCents:   sum.Income.Cents,
		ExpensesCents: sum.Expenses.Cents,
		NetCents:      sum.Net.Cents,
		Income:        sum.Income.String(),
		Expenses:      sum.Expenses.String(),
		Net:           report.FormatNet(sum.Net),
	}).Write(w)
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	year, month := parseYearMonth(r)

	rows, found := s.breakdownCache.Get(s.cacheKey(year, month))
	if !found {
		ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		rows = report.ExpenseBreakdown(s.store.List(), ref)
		s.breakdownCache.Set(s.cacheKey(year, month), rows)
		slog.DebugContext(r.Context(), "Breakdown cached",
			applog.FieldYear, year, applog.FieldMonth, month, applog.FieldCount, len(rows))
	}

	type rowView struct {
		Label   string `json:"label"`
		Cents   int64  `json:"total_cents"`
		Total   string `json:"total"`
		Percent int    `json:"percent"`
	}
	views := make([]rowView, 0, len(rows))
	for i, row := range rows {
		views = append(views, rowView{
			Label:   row.Label,
			Cents:   row.Total.Cents,
			Total:   row.Total.String(),
			Percent: report.Percent(rows, i),
		})
	}

	NewJSONResponse().Body(struct {
		Year  int       `json:"year"`
		Month int       `json:"month"`
		Rows  []rowView `json:"rows"`
	}{Year: year, Month: month, Rows: views}).Write(w)
}
