package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"membership-backoffice/internal/pkg/config"
	"membership-backoffice/internal/pkg/errs"
)

const maxErrorBodyBytes = 4 << 10

// HTTPClient is a thin adapter over the commerce platform's REST API.
// Every call suspends on network I/O with a fixed request timeout; a
// timeout surfaces as a transient platform error.
type HTTPClient struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

func NewHTTPClient(cfg config.CommerceConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		client:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// CreateRule creates a discount rule. A 422 duplicate surfaces as a
// Conflict kind; callers fall back to FindRuleByTitle.
func (c *HTTPClient) CreateRule(ctx context.Context, spec RuleSpec) (*Rule, error) {
	var out ruleEnvelope
	body := map[string]RuleSpec{"price_rule": spec}
	if err := c.do(ctx, "create_rule", http.MethodPost, "/price_rules", body, &out); err != nil {
		return nil, err
	}
	slog.Info("commerce rule created", "rule_id", out.PriceRule.ID, "title", out.PriceRule.Title)
	return &out.PriceRule, nil
}

// FindRuleByTitle resolves an existing rule after a create conflict.
func (c *HTTPClient) FindRuleByTitle(ctx context.Context, title string) (*Rule, error) {
	var out rulesEnvelope
	path := "/price_rules?title=" + url.QueryEscape(title)
	if err := c.do(ctx, "find_rule", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	for i := range out.PriceRules {
		if out.PriceRules[i].Title == title {
			return &out.PriceRules[i], nil
		}
	}
	return nil, ErrRuleNotFound
}

// CreateCode attaches a redemption code to an existing rule.
func (c *HTTPClient) CreateCode(ctx context.Context, ruleID int64, code string) (*DiscountCode, error) {
	var out codeEnvelope
	body := map[string]map[string]string{"discount_code": {"code": code}}
	path := fmt.Sprintf("/price_rules/%d/discount_codes", ruleID)
	if err := c.do(ctx, "create_code", http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	slog.Info("commerce code created", "rule_id", ruleID, "code", code)
	return &out.DiscountCode, nil
}

// LookupCode resolves a code string to its rule and code identifiers.
// Returns ErrCodeNotFound when the platform does not know the code.
func (c *HTTPClient) LookupCode(ctx context.Context, code string) (*CodeLookup, error) {
	var out lookupEnvelope
	path := "/discount_codes/lookup?code=" + url.QueryEscape(code)
	err := c.do(ctx, "lookup_code", http.MethodGet, path, nil, &out)
	if err != nil {
		var pe *PlatformError
		if errors.As(err, &pe) && pe.Status == http.StatusNotFound {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}
	return &out.DiscountCode, nil
}

// DeleteRule removes a rule and its codes. Best-effort for callers:
// failures are surfaced but typically only logged.
func (c *HTTPClient) DeleteRule(ctx context.Context, ruleID int64) error {
	path := fmt.Sprintf("/price_rules/%d", ruleID)
	err := c.do(ctx, "delete_rule", http.MethodDelete, path, nil, nil)
	if err != nil {
		var pe *PlatformError
		if errors.As(err, &pe) && pe.Status == http.StatusNotFound {
			// Already gone; nothing to do.
			return nil
		}
		return err
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &PlatformError{Kind: KindPermanent, Op: op, err: err}
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &PlatformError{Kind: KindPermanent, Op: op, err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Commerce-Access-Token", c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		// Network failures and client timeouts are retryable.
		return &PlatformError{Kind: KindTransient, Op: op, err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close commerce response body", "op", op, "error", closeErr.Error())
		}
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &PlatformError{Kind: KindTransient, Op: op, Status: resp.StatusCode,
				err: errs.Wrap(err, "failed to decode response")}
		}
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &PlatformError{
		Kind:   classifyStatus(resp.StatusCode),
		Op:     op,
		Status: resp.StatusCode,
		Body:   string(raw),
	}
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status >= 500 || status == http.StatusTooManyRequests:
		return KindTransient
	case status == http.StatusUnprocessableEntity:
		return KindConflict
	default:
		return KindPermanent
	}
}
