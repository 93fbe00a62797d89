package zumrails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// action identifies one of the fixed API calls the client can perform. The set
// is closed: verb, path and authorization extraction are all switched on it
// exhaustively, so adding an action is a compile-time-checked change.
type action int

const (
	actionLogin action = iota
	actionWallet
	actionPurchase
	actionRefund
	actionVoid
)

func (a action) String() string {
	switch a {
	case actionLogin:
		return "login"
	case actionWallet:
		return "wallet"
	case actionPurchase:
		return "purchase"
	case actionRefund:
		return "refund"
	case actionVoid:
		return "void"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

func (a action) method() string {
	switch a {
	case actionWallet:
		return http.MethodGet
	case actionLogin, actionPurchase, actionRefund:
		return http.MethodPost
	case actionVoid:
		return http.MethodDelete
	}
	panic(fmt.Sprintf("zumrails: unsupported action %d", int(a)))
}

// path builds the endpoint path, substituting the transaction id where the
// template needs one.
func (a action) path(transactionID string) string {
	switch a {
	case actionLogin:
		return "api/authorize"
	case actionWallet:
		return "api/wallet"
	case actionPurchase:
		return "api/transaction"
	case actionRefund:
		return fmt.Sprintf("api/transaction/%s/refund", url.PathEscape(transactionID))
	case actionVoid:
		return fmt.Sprintf("api/transaction/%s", url.PathEscape(transactionID))
	}
	panic(fmt.Sprintf("zumrails: unsupported action %d", int(a)))
}

// Transport performs a single HTTP exchange. Implementations own all deadline
// and proxy concerns; the client itself never retries or times out.
type Transport interface {
	Do(ctx context.Context, method, url string, body []byte, headers map[string]string) (status int, respBody []byte, err error)
}

// httpTransport is the default Transport backed by net/http.
type httpTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a Transport with the given timeout, defaulting to
// 30 seconds when zero.
func NewHTTPTransport(timeout time.Duration) Transport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &httpTransport{client: &http.Client{Timeout: timeout}}
}

func (t *httpTransport) Do(ctx context.Context, method, rawURL string, body []byte, headers map[string]string) (int, []byte, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// commit serializes the payload, performs the authenticated call for the
// action and returns the normalized response. Transport failures surface as
// errors; everything with a body, JSON or not, yields a Response.
func (c *Client) commit(ctx context.Context, act action, payload map[string]any, transactionID string) (*Response, error) {
	method := act.method()

	var body []byte
	if method != http.MethodGet {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s payload: %w", act, err)
		}
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, act.path(transactionID))

	c.logger.Debug("gateway request",
		"action", act.String(),
		"method", method,
		"url", endpoint,
		"body", Scrub(string(body)))

	status, raw, err := c.transport.Do(ctx, method, endpoint, body, c.requestHeaders())
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", act, err)
	}

	c.logger.Debug("gateway response",
		"action", act.String(),
		"status", status,
		"body", Scrub(string(raw)))

	return newResponse(act, parseEnvelope(raw), c.sandbox), nil
}

func (c *Client) requestHeaders() map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if c.token != "" {
		headers["Authorization"] = "Bearer " + c.token
	}
	return headers
}
