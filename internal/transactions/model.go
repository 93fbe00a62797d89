package transactions

import "time"

// Kind labels the gateway operation a record came from.
const (
	KindPurchase = "purchase"
	KindRefund   = "refund"
	KindVoid     = "void"
)

// Record statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Record captures the outcome of one gateway call for audit and reconciliation.
type Record struct {
	ID            string
	Kind          string
	AmountMinor   int64
	UserID        string
	Memo          string
	Authorization string
	Status        string
	Message       string
	ErrorCode     string
	CreatedAt     time.Time
}
