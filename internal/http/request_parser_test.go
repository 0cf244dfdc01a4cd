package http

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestBodyParserJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/transactions",
		strings.NewReader(`{"amount":"12,50","label":"groceries","count":3,"flag":true}`))
	req.Header.Set("Content-Type", "application/json")

	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !p.IsJSON() {
		t.Fatalf("expected JSON detection")
	}
	if got := p.Get("amount"); got != "12,50" {
		t.Fatalf("amount: got %q", got)
	}
	if got := p.Get("label"); got != "groceries" {
		t.Fatalf("label: got %q", got)
	}
	if got := p.Get("count"); got != "3" {
		t.Fatalf("numeric value: got %q", got)
	}
	if got := p.Get("flag"); got != "true" {
		t.Fatalf("bool value: got %q", got)
	}
	if got := p.Get("missing"); got != "" {
		t.Fatalf("missing key: got %q", got)
	}
}

func TestRequestBodyParserForm(t *testing.T) {
	req := httptest.NewRequest("POST", "/transactions",
		strings.NewReader("amount=9.99&label=+padded+"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.IsJSON() {
		t.Fatalf("expected form detection")
	}
	if got := p.Get("amount"); got != "9.99" {
		t.Fatalf("amount: got %q", got)
	}
	if got := p.Get("label"); got != "padded" {
		t.Fatalf("label should be trimmed: got %q", got)
	}
}

func TestRequestBodyParserEmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/transactions", strings.NewReader(""))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := p.Get("anything"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestRequestBodyParserMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/transactions", strings.NewReader(`{"broken`))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGetIntsJSONArray(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{"indices":[0,2,5]}`))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, err := p.GetInts("indices")
	if err != nil {
		t.Fatalf("get ints: %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestGetIntsJSONRejectsFractions(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader(`{"indices":[1.5]}`))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := p.GetInts("indices"); err == nil {
		t.Fatalf("expected error for fractional index")
	}
}

func TestGetIntsForm(t *testing.T) {
	req := httptest.NewRequest("POST", "/x", strings.NewReader("indices=0,2&indices=4"))
	p := NewRequestBodyParser(req)
	if err := p.Parse(); err != nil {
		t.Fatalf("parse: %v", err)
	}
	got, err := p.GetInts("indices")
	if err != nil {
		t.Fatalf("get ints: %v", err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestParseYearMonthDefaultsAndCorrection(t *testing.T) {
	req := httptest.NewRequest("GET", "/summary/balance?year=2024&month=6", nil)
	year, month := parseYearMonth(req)
	if year != 2024 || month != 6 {
		t.Fatalf("got %d-%d", year, month)
	}

	// Out-of-range month falls back to the current month.
	req = httptest.NewRequest("GET", "/summary/balance?year=2024&month=13", nil)
	_, month = parseYearMonth(req)
	if month < 1 || month > 12 {
		t.Fatalf("month not corrected: %d", month)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  a\x00b\x1fc  "); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := sanitizeInput("tab\tok"); got != "tab\tok" {
		t.Fatalf("tab should survive: %q", got)
	}
}
