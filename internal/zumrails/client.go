// Package zumrails implements a client for the Zūm Rails payment API.
//
// Zūm Rails is user-centric: each user stores one card and one bank account
// with the provider, and the funding source applied to a transaction follows
// from the transaction type and method rather than from per-call card data.
// The client logs in with username/password to obtain a short-lived bearer
// token, resolves the account's wallet when a transaction draws on it, and
// exposes purchase, refund and void operations that return a normalized
// Response.
package zumrails

import (
	"context"
	"log/slog"
	"time"

	"github.com/zum-pay/zum_pay/internal/logging"
	"github.com/zum-pay/zum_pay/internal/money"
)

const (
	sandboxURL    = "https://api-sandbox.zumrails.com"
	productionURL = "https://api-app.zumrails.com"

	// DefaultTokenRefreshInterval is how long a bearer token is reused before
	// the client logs in again. Tokens expire server-side after about an hour.
	DefaultTokenRefreshInterval = 30 * time.Minute
)

// Credentials authenticate the client against the login endpoint. They are
// fixed for the lifetime of a Client.
type Credentials struct {
	Username string
	Password string
}

// Config carries the construction-time settings for a Client.
type Config struct {
	Credentials Credentials
	// Sandbox selects the sandbox base URL instead of production.
	Sandbox bool
	// BaseURL overrides the environment base URL when set. Used in tests.
	BaseURL string
	// TokenRefreshInterval overrides DefaultTokenRefreshInterval when positive.
	TokenRefreshInterval time.Duration
	// Transport performs the HTTP calls. Defaults to an http.Client-backed
	// transport with a 30 second timeout.
	Transport Transport
	Logger    *slog.Logger
}

// Client holds the session state for one authenticated account.
//
// A Client is not safe for concurrent use: the cached token and wallet id are
// mutated during calls, so share one instance per worker or serialize access
// externally.
type Client struct {
	creds           Credentials
	baseURL         string
	sandbox         bool
	refreshInterval time.Duration
	transport       Transport
	logger          *slog.Logger
	now             func() time.Time

	token          string
	tokenRefreshed time.Time
	walletID       string
}

// NewClient builds a client from the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := productionURL
	if cfg.Sandbox {
		baseURL = sandboxURL
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	interval := cfg.TokenRefreshInterval
	if interval <= 0 {
		interval = DefaultTokenRefreshInterval
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		creds:           cfg.Credentials,
		baseURL:         baseURL,
		sandbox:         cfg.Sandbox,
		refreshInterval: interval,
		transport:       transport,
		logger:          logger,
		now:             time.Now,
	}
}

// Purchase creates a transaction for the given amount in minor units.
//
// Option validation happens before any network traffic. The client then
// guarantees a valid bearer token, resolves the wallet id when the source type
// is the virtual wallet, and submits the transaction. A declined transaction
// is reported through the returned Response, not the error.
func (c *Client) Purchase(ctx context.Context, amountMinor int64, opts PurchaseOptions) (*Response, error) {
	payload, sourceType, err := buildPurchasePayload(amountMinor, opts)
	if err != nil {
		return nil, err
	}

	if err := c.ensureAccessToken(ctx); err != nil {
		return nil, err
	}

	if sourceType == SourceVirtualWallet {
		if err := c.ensureWallet(ctx); err != nil {
			return nil, err
		}
		payload["WalletId"] = c.walletID
	}

	return c.commit(ctx, actionPurchase, payload, "")
}

// Refund refunds the referenced transaction, fully or partially depending on
// the amount. Only transactions created with the CreditCard method are
// refundable on the provider side.
func (c *Client) Refund(ctx context.Context, amountMinor int64, authorization string) (*Response, error) {
	if authorization == "" {
		return nil, &ValidationError{msg: "missing required option: authorization"}
	}

	if err := c.ensureAccessToken(ctx); err != nil {
		return nil, err
	}

	payload := map[string]any{"Amount": money.Format(amountMinor)}
	return c.commit(ctx, actionRefund, payload, authorization)
}

// Void cancels the referenced transaction before it completes. Useful for the
// slower rails (Eft, Interac) where settlement is not instant.
func (c *Client) Void(ctx context.Context, authorization string) (*Response, error) {
	if authorization == "" {
		return nil, &ValidationError{msg: "missing required option: authorization"}
	}

	if err := c.ensureAccessToken(ctx); err != nil {
		return nil, err
	}

	return c.commit(ctx, actionVoid, map[string]any{}, authorization)
}
