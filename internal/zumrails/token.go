package zumrails

import (
	"context"
	"time"
)

// ensureAccessToken guarantees that, on nil return, the session holds a token
// that was valid at the instant of the check. The check runs synchronously at
// the start of every public operation; there is no background refresh.
func (c *Client) ensureAccessToken(ctx context.Context) error {
	if c.accessTokenValid() {
		return nil
	}
	return c.refreshAccessToken(ctx)
}

func (c *Client) accessTokenValid() bool {
	return c.token != "" && c.now().Before(c.tokenRefreshed.Add(c.refreshInterval))
}

// clearAccessToken drops the session before a refresh attempt so a failed
// refresh never leaves a stale-but-expired token in place.
func (c *Client) clearAccessToken() {
	c.token = ""
	c.tokenRefreshed = time.Time{}
}

// refreshAccessToken performs a login with the stored credentials and caches
// the returned token with its acquisition time. A failed login surfaces as a
// SetupError; no retry is attempted.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	c.clearAccessToken()

	payload := map[string]any{
		"Username": c.creds.Username,
		"Password": c.creds.Password,
	}

	resp, err := c.commit(ctx, actionLogin, payload, "")
	if err != nil {
		return err
	}
	if !resp.Success {
		return &SetupError{Response: resp}
	}

	c.token = resp.Authorization
	c.tokenRefreshed = c.now()
	return nil
}
