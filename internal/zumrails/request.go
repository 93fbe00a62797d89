package zumrails

import (
	"fmt"

	"github.com/zum-pay/zum_pay/internal/money"
)

// TransactionType selects the direction of funds relative to the wallet.
type TransactionType string

const (
	// TypeFundZumWallet sends money from a funding source to the Zūm wallet.
	TypeFundZumWallet TransactionType = "FundZumWallet"
	// TypeWithdrawZumWallet withdraws money from the Zūm wallet to a funding source.
	TypeWithdrawZumWallet TransactionType = "WithdrawZumWallet"
	// TypeAccountsPayable sends money from the wallet/funding source to a user.
	TypeAccountsPayable TransactionType = "AccountsPayable"
	// TypeAccountsReceivable withdraws money from a user to the wallet/funding source.
	TypeAccountsReceivable TransactionType = "AccountsReceivable"

	// DefaultTransactionType applies when the options leave the type empty.
	DefaultTransactionType = TypeAccountsReceivable
)

func (t TransactionType) valid() bool {
	switch t {
	case TypeFundZumWallet, TypeWithdrawZumWallet, TypeAccountsPayable, TypeAccountsReceivable:
		return true
	}
	return false
}

// requiresUserID reports whether the transaction type moves money to or from a
// stored user and therefore needs a user id.
func (t TransactionType) requiresUserID() bool {
	return t == TypeAccountsPayable || t == TypeAccountsReceivable
}

// TransactionMethod selects the payment rail.
type TransactionMethod string

const (
	// MethodEft is an electronic funds transfer between banks.
	MethodEft TransactionMethod = "Eft"
	// MethodInterac is an online e-transfer; the user receives an e-mail or SMS.
	MethodInterac TransactionMethod = "Interac"
	// MethodVisaDirect pushes or pulls funds directly on a Visa debit card.
	MethodVisaDirect TransactionMethod = "VisaDirect"
	// MethodCreditCard collects funds through a card payment.
	MethodCreditCard TransactionMethod = "CreditCard"

	// DefaultTransactionMethod applies when the options leave the method empty.
	DefaultTransactionMethod = MethodCreditCard
)

func (m TransactionMethod) valid() bool {
	switch m {
	case MethodEft, MethodInterac, MethodVisaDirect, MethodCreditCard:
		return true
	}
	return false
}

// requires3DS reports whether the method rides card rails and must carry the
// 3-D Secure fields.
func (m TransactionMethod) requires3DS() bool {
	return m == MethodVisaDirect || m == MethodCreditCard
}

// SourceType selects the owner side of the transaction.
type SourceType string

const (
	// SourceVirtualWallet draws on the account's Zūm wallet.
	SourceVirtualWallet SourceType = "virtual_wallet"
	// SourceFundingSource draws on a caller-supplied funding source.
	SourceFundingSource SourceType = "funding_source"

	// DefaultSourceType applies when the options leave the source type empty.
	DefaultSourceType = SourceVirtualWallet
)

func (s SourceType) valid() bool {
	return s == SourceVirtualWallet || s == SourceFundingSource
}

// PurchaseOptions carries the per-transaction inputs for Purchase. Zero values
// fall back to the documented defaults where a default exists.
type PurchaseOptions struct {
	// UserID is required for AccountsPayable and AccountsReceivable.
	UserID string
	// Memo is required on every purchase.
	Memo string
	// Comment defaults to the empty string.
	Comment string

	TransactionType   TransactionType
	TransactionMethod TransactionMethod
	SourceType        SourceType

	// FundingSourceID is required when SourceType is SourceFundingSource.
	FundingSourceID string

	// 3-D Secure artifacts, forwarded for the card-rail methods even when empty.
	CardECI  string
	CardXID  string
	CardCAVV string
}

// buildPurchasePayload validates the options and assembles the wire payload.
// It performs no network calls; when the source type is the virtual wallet the
// WalletId key is filled in by the caller after wallet resolution.
func buildPurchasePayload(amountMinor int64, opts PurchaseOptions) (map[string]any, SourceType, error) {
	payload := map[string]any{"Amount": money.Format(amountMinor)}

	txType := opts.TransactionType
	if txType == "" {
		txType = DefaultTransactionType
	}
	if !txType.valid() {
		return nil, "", &ValidationError{msg: fmt.Sprintf("invalid transaction type: %s", txType)}
	}
	payload["ZumRailsType"] = string(txType)

	method := opts.TransactionMethod
	if method == "" {
		method = DefaultTransactionMethod
	}
	if !method.valid() {
		return nil, "", &ValidationError{msg: fmt.Sprintf("invalid transaction method: %s", method)}
	}
	payload["TransactionMethod"] = string(method)

	if method.requires3DS() {
		payload["CardEci"] = opts.CardECI
		payload["CardXid"] = opts.CardXID
		payload["CardCavv"] = opts.CardCAVV
	}

	if txType.requiresUserID() {
		if opts.UserID == "" {
			return nil, "", &ValidationError{msg: "missing required option: user_id"}
		}
		payload["UserId"] = opts.UserID
	}

	if opts.Memo == "" {
		return nil, "", &ValidationError{msg: "missing required option: memo"}
	}
	payload["Memo"] = opts.Memo
	payload["Comment"] = opts.Comment

	sourceType := opts.SourceType
	if sourceType == "" {
		sourceType = DefaultSourceType
	}
	switch sourceType {
	case SourceVirtualWallet:
		// WalletId is attached after resolution.
	case SourceFundingSource:
		if opts.FundingSourceID == "" {
			return nil, "", &ValidationError{msg: "missing required option: funding_source_id"}
		}
		payload["FundingSourceId"] = opts.FundingSourceID
	default:
		return nil, "", &ValidationError{msg: fmt.Sprintf("invalid source type: %s", sourceType)}
	}

	return payload, sourceType, nil
}
