package transactions

import (
	"context"
	"testing"

	"github.com/zum-pay/zum_pay/internal/zumrails"
)

type stubGateway struct {
	purchaseResp *zumrails.Response
	purchaseErr  error
	refundResp   *zumrails.Response
	voidResp     *zumrails.Response

	purchases int
	refunds   int
	voids     int
}

func (g *stubGateway) Purchase(_ context.Context, _ int64, _ zumrails.PurchaseOptions) (*zumrails.Response, error) {
	g.purchases++
	return g.purchaseResp, g.purchaseErr
}

func (g *stubGateway) Refund(_ context.Context, _ int64, _ string) (*zumrails.Response, error) {
	g.refunds++
	return g.refundResp, nil
}

func (g *stubGateway) Void(_ context.Context, _ string) (*zumrails.Response, error) {
	g.voids++
	return g.voidResp, nil
}

func TestPurchaseRecordsSucceededOutcome(t *testing.T) {
	gateway := &stubGateway{purchaseResp: &zumrails.Response{
		Success:       true,
		Message:       "Succeeded",
		Authorization: "t1",
		Test:          true,
	}}
	repo := NewMemoryRepository()
	svc := NewService(gateway, repo, nil)

	ctx := context.Background()
	result, err := svc.Purchase(ctx, PurchaseInput{AmountMinor: 1000, UserID: "u1", Memo: "TEST"})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !result.Success || result.Authorization != "t1" {
		t.Fatalf("unexpected result %+v", result)
	}

	record, err := svc.Get(ctx, result.RecordID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record.Kind != KindPurchase || record.Status != StatusSucceeded {
		t.Fatalf("unexpected record %+v", record)
	}
	if record.Authorization != "t1" || record.AmountMinor != 1000 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestPurchaseRecordsDeclineAsFailedRow(t *testing.T) {
	gateway := &stubGateway{purchaseResp: &zumrails.Response{
		Success:   false,
		Message:   "Unable to read error message",
		ErrorCode: "Unsupported Media Type",
	}}
	repo := NewMemoryRepository()
	svc := NewService(gateway, repo, nil)

	ctx := context.Background()
	result, err := svc.Purchase(ctx, PurchaseInput{AmountMinor: 1000, UserID: "u1", Memo: "TEST"})
	if err != nil {
		t.Fatalf("declines are results, not errors: %v", err)
	}
	if result.Success {
		t.Fatalf("expected declined result")
	}
	if result.ErrorCode != "Unsupported Media Type" {
		t.Fatalf("expected mapped error code, got %q", result.ErrorCode)
	}

	record, err := svc.Get(ctx, result.RecordID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record.Status != StatusFailed {
		t.Fatalf("expected failed status, got %q", record.Status)
	}
}

func TestPurchaseValidationErrorRecordsNothing(t *testing.T) {
	gateway := &stubGateway{purchaseErr: &zumrails.ValidationError{}}
	repo := NewMemoryRepository()
	svc := NewService(gateway, repo, nil)

	_, err := svc.Purchase(context.Background(), PurchaseInput{AmountMinor: 1000})
	if err == nil {
		t.Fatalf("expected validation error to propagate")
	}
}

func TestRefundKeepsOriginalAuthorization(t *testing.T) {
	gateway := &stubGateway{refundResp: &zumrails.Response{
		Success: true,
		Message: "Succeeded",
		// Refund envelopes return an empty result, so no authorization.
	}}
	repo := NewMemoryRepository()
	svc := NewService(gateway, repo, nil)

	ctx := context.Background()
	result, err := svc.Refund(ctx, 500, "t1")
	if err != nil {
		t.Fatalf("refund: %v", err)
	}
	if result.Authorization != "t1" {
		t.Fatalf("expected original transaction id kept, got %q", result.Authorization)
	}

	record, err := svc.Get(ctx, result.RecordID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record.Kind != KindRefund || record.Authorization != "t1" || record.AmountMinor != 500 {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestVoidRecordsOutcome(t *testing.T) {
	gateway := &stubGateway{voidResp: &zumrails.Response{Success: true, Message: "Succeeded"}}
	repo := NewMemoryRepository()
	svc := NewService(gateway, repo, nil)

	ctx := context.Background()
	result, err := svc.Void(ctx, "t1")
	if err != nil {
		t.Fatalf("void: %v", err)
	}

	record, err := svc.Get(ctx, result.RecordID)
	if err != nil {
		t.Fatalf("get record: %v", err)
	}
	if record.Kind != KindVoid || record.Status != StatusSucceeded || record.Authorization != "t1" {
		t.Fatalf("unexpected record %+v", record)
	}
}
