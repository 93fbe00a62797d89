package zumrails

import "context"

// ensureWallet guarantees the wallet id is populated. It is called only when
// the transaction's source type resolves to the virtual wallet.
//
// The wallet endpoint returns a collection but only the first entry is used:
// the adapter assumes exactly one relevant wallet per authenticated account.
// The id is considered stable for the account's lifetime once resolved; a
// failed lookup caches nothing, so the next purchase retries resolution.
func (c *Client) ensureWallet(ctx context.Context) error {
	if c.walletID != "" {
		return nil
	}

	resp, err := c.commit(ctx, actionWallet, nil, "")
	if err != nil {
		return err
	}
	if !resp.Success {
		return &SetupError{Response: resp}
	}

	c.walletID = resp.Authorization
	return nil
}
