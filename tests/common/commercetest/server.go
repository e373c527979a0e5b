//go:build unit || e2e

// Package commercetest runs an in-memory stand-in for the commerce
// platform's discount API so tests can exercise the real HTTP client.
package commercetest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"
)

type rule struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	ValueType  string     `json:"value_type"`
	Value      float64    `json:"value"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
	UsageLimit *int32     `json:"usage_limit,omitempty"`
}

type discountCode struct {
	ID         int64  `json:"id"`
	RuleID     int64  `json:"price_rule_id"`
	Code       string `json:"code"`
	UsageCount int32  `json:"usage_count"`
}

// FakePlatform keeps rules and codes in memory and serves the subset of
// the platform API the backoffice talks to.
type FakePlatform struct {
	mu     sync.Mutex
	server *httptest.Server

	nextID          int64
	rules           map[int64]*rule
	codesByRule     map[int64]*discountCode
	failCreateCode  int
	failCreateRule  int
	createCodeCalls int
}

func NewFakePlatform() *FakePlatform {
	f := &FakePlatform{
		nextID:      1000,
		rules:       make(map[int64]*rule),
		codesByRule: make(map[int64]*discountCode),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/price_rules", f.handleRules)
	mux.HandleFunc("/price_rules/", f.handleRuleSubresource)
	mux.HandleFunc("/discount_codes/lookup", f.handleLookup)
	f.server = httptest.NewServer(mux)
	return f
}

func (f *FakePlatform) URL() string { return f.server.URL }

func (f *FakePlatform) Close() { f.server.Close() }

// FailNextCreateCode makes the next n code-attach calls return 500.
func (f *FakePlatform) FailNextCreateCode(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreateCode = n
}

// FailNextCreateRule makes the next n rule-create calls return 500.
func (f *FakePlatform) FailNextCreateRule(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreateRule = n
}

// CreateCodeCalls reports how many attach attempts the platform has seen.
func (f *FakePlatform) CreateCodeCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCodeCalls
}

// RuleCount reports how many rules currently exist.
func (f *FakePlatform) RuleCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rules)
}

func (f *FakePlatform) handleRules(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPost:
		if f.failCreateRule > 0 {
			f.failCreateRule--
			writeError(w, http.StatusInternalServerError, "platform unavailable")
			return
		}
		var body struct {
			PriceRule rule `json:"price_rule"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}
		for _, existing := range f.rules {
			if existing.Title == body.PriceRule.Title {
				writeError(w, http.StatusUnprocessableEntity, "title has already been taken")
				return
			}
		}
		f.nextID++
		created := body.PriceRule
		created.ID = f.nextID
		f.rules[created.ID] = &created
		writeJSON(w, http.StatusCreated, map[string]any{"price_rule": created})

	case http.MethodGet:
		title := r.URL.Query().Get("title")
		var matched []rule
		for _, existing := range f.rules {
			if title == "" || existing.Title == title {
				matched = append(matched, *existing)
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"price_rules": matched})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (f *FakePlatform) handleRuleSubresource(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest := strings.TrimPrefix(r.URL.Path, "/price_rules/")
	parts := strings.Split(rest, "/")
	ruleID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodDelete:
		if _, ok := f.rules[ruleID]; !ok {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		delete(f.rules, ruleID)
		delete(f.codesByRule, ruleID)
		w.WriteHeader(http.StatusNoContent)

	case len(parts) == 2 && parts[1] == "discount_codes" && r.Method == http.MethodPost:
		f.createCodeCalls++
		if f.failCreateCode > 0 {
			f.failCreateCode--
			writeError(w, http.StatusInternalServerError, "platform unavailable")
			return
		}
		if _, ok := f.rules[ruleID]; !ok {
			writeError(w, http.StatusNotFound, "rule not found")
			return
		}
		var body struct {
			DiscountCode struct {
				Code string `json:"code"`
			} `json:"discount_code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "malformed body")
			return
		}
		if existing, ok := f.codesByRule[ruleID]; ok && existing.Code == body.DiscountCode.Code {
			writeJSON(w, http.StatusCreated, map[string]any{"discount_code": existing})
			return
		}
		f.nextID++
		code := &discountCode{ID: f.nextID, RuleID: ruleID, Code: body.DiscountCode.Code}
		f.codesByRule[ruleID] = code
		writeJSON(w, http.StatusCreated, map[string]any{"discount_code": code})

	default:
		writeError(w, http.StatusNotFound, "not found")
	}
}

func (f *FakePlatform) handleLookup(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	code := r.URL.Query().Get("code")
	for _, existing := range f.codesByRule {
		if existing.Code == code {
			writeJSON(w, http.StatusOK, map[string]any{"discount_code": existing})
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("code %q not found", code))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"errors": msg})
}
