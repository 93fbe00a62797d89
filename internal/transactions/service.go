package transactions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zum-pay/zum_pay/internal/notification"
	"github.com/zum-pay/zum_pay/internal/zumrails"
)

// Gateway abstracts the payment rails connector the service drives.
type Gateway interface {
	Purchase(ctx context.Context, amountMinor int64, opts zumrails.PurchaseOptions) (*zumrails.Response, error)
	Refund(ctx context.Context, amountMinor int64, authorization string) (*zumrails.Response, error)
	Void(ctx context.Context, authorization string) (*zumrails.Response, error)
}

// Service originates, refunds and voids transactions through the gateway and
// records every outcome.
//
// The zumrails client mutates session state during calls and is not safe for
// concurrent use, so the service serializes gateway access with a mutex.
type Service struct {
	gatewayMu sync.Mutex
	gateway   Gateway
	repo      Repository
	notifier  notification.Notifier
}

// NewService constructs a transaction service.
func NewService(gateway Gateway, repo Repository, notifier notification.Notifier) *Service {
	return &Service{gateway: gateway, repo: repo, notifier: notifier}
}

// PurchaseInput captures the data needed to originate a transaction.
type PurchaseInput struct {
	AmountMinor       int64
	UserID            string
	Memo              string
	Comment           string
	TransactionType   zumrails.TransactionType
	TransactionMethod zumrails.TransactionMethod
	SourceType        zumrails.SourceType
	FundingSourceID   string
	CardECI           string
	CardXID           string
	CardCAVV          string
}

// Result describes the recorded outcome of a gateway operation. Success is
// false for declined calls; those are ordinary results, not errors.
type Result struct {
	RecordID      string
	Success       bool
	Authorization string
	Message       string
	ErrorCode     string
	CompletedAt   time.Time
}

// Purchase originates a transaction. Validation and setup failures return an
// error before anything is recorded; declines are recorded and returned as
// non-error results.
func (s *Service) Purchase(ctx context.Context, input PurchaseInput) (Result, error) {
	s.gatewayMu.Lock()
	resp, err := s.gateway.Purchase(ctx, input.AmountMinor, zumrails.PurchaseOptions{
		UserID:            input.UserID,
		Memo:              input.Memo,
		Comment:           input.Comment,
		TransactionType:   input.TransactionType,
		TransactionMethod: input.TransactionMethod,
		SourceType:        input.SourceType,
		FundingSourceID:   input.FundingSourceID,
		CardECI:           input.CardECI,
		CardXID:           input.CardXID,
		CardCAVV:          input.CardCAVV,
	})
	s.gatewayMu.Unlock()
	if err != nil {
		return Result{}, err
	}

	result, recErr := s.record(ctx, Record{
		Kind:        KindPurchase,
		AmountMinor: input.AmountMinor,
		UserID:      input.UserID,
		Memo:        input.Memo,
	}, resp)
	if recErr != nil {
		return Result{}, recErr
	}

	if resp.Success {
		s.notify(ctx, notification.KindPaymentCaptured, input.UserID, result)
	}
	return result, nil
}

// Refund refunds all or part of a previously originated transaction.
func (s *Service) Refund(ctx context.Context, amountMinor int64, authorization string) (Result, error) {
	s.gatewayMu.Lock()
	resp, err := s.gateway.Refund(ctx, amountMinor, authorization)
	s.gatewayMu.Unlock()
	if err != nil {
		return Result{}, err
	}

	result, recErr := s.record(ctx, Record{
		Kind:        KindRefund,
		AmountMinor: amountMinor,
		// Refund envelopes return no id of their own; keep the original.
		Authorization: authorization,
	}, resp)
	if recErr != nil {
		return Result{}, recErr
	}

	if resp.Success {
		s.notify(ctx, notification.KindPaymentRefunded, "", result)
	}
	return result, nil
}

// Void cancels a pending transaction.
func (s *Service) Void(ctx context.Context, authorization string) (Result, error) {
	s.gatewayMu.Lock()
	resp, err := s.gateway.Void(ctx, authorization)
	s.gatewayMu.Unlock()
	if err != nil {
		return Result{}, err
	}

	result, recErr := s.record(ctx, Record{
		Kind:          KindVoid,
		Authorization: authorization,
	}, resp)
	if recErr != nil {
		return Result{}, recErr
	}

	if resp.Success {
		s.notify(ctx, notification.KindPaymentVoided, "", result)
	}
	return result, nil
}

// Get retrieves a stored transaction record.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) record(ctx context.Context, rec Record, resp *zumrails.Response) (Result, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	rec.Message = resp.Message
	rec.ErrorCode = resp.ErrorCode
	if resp.Authorization != "" {
		rec.Authorization = resp.Authorization
	}
	if resp.Success {
		rec.Status = StatusSucceeded
	} else {
		rec.Status = StatusFailed
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Result{}, err
	}

	return Result{
		RecordID:      rec.ID,
		Success:       resp.Success,
		Authorization: rec.Authorization,
		Message:       resp.Message,
		ErrorCode:     resp.ErrorCode,
		CompletedAt:   rec.CreatedAt,
	}, nil
}

func (s *Service) notify(ctx context.Context, kind, destination string, result Result) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        kind,
		Destination: destination,
		Body:        result.Authorization,
	})
}
