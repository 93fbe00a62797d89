package transactions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zum-pay/zum_pay/internal/zumrails"
)

// Handler exposes transaction endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a transaction handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type purchaseRequest struct {
	Amount            int64  `json:"amount"`
	UserID            string `json:"user_id"`
	Memo              string `json:"memo"`
	Comment           string `json:"comment"`
	TransactionType   string `json:"transaction_type"`
	TransactionMethod string `json:"transaction_method"`
	SourceType        string `json:"source_type"`
	FundingSourceID   string `json:"funding_source_id"`
	CardECI           string `json:"card_eci"`
	CardXID           string `json:"card_xid"`
	CardCAVV          string `json:"card_cavv"`
}

type refundRequest struct {
	Amount int64 `json:"amount"`
}

type resultResponse struct {
	RecordID      string `json:"record_id"`
	Success       bool   `json:"success"`
	Authorization string `json:"authorization,omitempty"`
	Message       string `json:"message"`
	ErrorCode     string `json:"error_code,omitempty"`
	CompletedAt   string `json:"completed_at"`
}

// Purchase originates a transaction against the gateway.
func (h *Handler) Purchase(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Amount <= 0 {
		return fiber.NewError(http.StatusBadRequest, "amount must be positive")
	}

	result, err := h.service.Purchase(c.UserContext(), PurchaseInput{
		AmountMinor:       req.Amount,
		UserID:            req.UserID,
		Memo:              req.Memo,
		Comment:           req.Comment,
		TransactionType:   zumrails.TransactionType(req.TransactionType),
		TransactionMethod: zumrails.TransactionMethod(req.TransactionMethod),
		SourceType:        zumrails.SourceType(req.SourceType),
		FundingSourceID:   req.FundingSourceID,
		CardECI:           req.CardECI,
		CardXID:           req.CardXID,
		CardCAVV:          req.CardCAVV,
	})
	if err != nil {
		return mapGatewayError(err)
	}

	status := http.StatusCreated
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(toResponse(result))
}

// Refund refunds a previously originated transaction, fully or partially.
func (h *Handler) Refund(c *fiber.Ctx) error {
	var req refundRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Amount <= 0 {
		return fiber.NewError(http.StatusBadRequest, "amount must be positive")
	}

	result, err := h.service.Refund(c.UserContext(), req.Amount, c.Params("transactionId"))
	if err != nil {
		return mapGatewayError(err)
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(toResponse(result))
}

// Void cancels a pending transaction.
func (h *Handler) Void(c *fiber.Ctx) error {
	result, err := h.service.Void(c.UserContext(), c.Params("transactionId"))
	if err != nil {
		return mapGatewayError(err)
	}

	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(toResponse(result))
}

// Get returns a stored transaction record.
func (h *Handler) Get(c *fiber.Ctx) error {
	record, err := h.service.Get(c.UserContext(), c.Params("transactionId"))
	if err != nil {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"id":            record.ID,
		"kind":          record.Kind,
		"amount":        record.AmountMinor,
		"user_id":       record.UserID,
		"memo":          record.Memo,
		"authorization": record.Authorization,
		"status":        record.Status,
		"message":       record.Message,
		"error_code":    record.ErrorCode,
		"created_at":    record.CreatedAt,
	})
}

func toResponse(result Result) resultResponse {
	return resultResponse{
		RecordID:      result.RecordID,
		Success:       result.Success,
		Authorization: result.Authorization,
		Message:       result.Message,
		ErrorCode:     result.ErrorCode,
		CompletedAt:   result.CompletedAt.Format(time.RFC3339Nano),
	}
}

func mapGatewayError(err error) error {
	var validationErr *zumrails.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.NewError(http.StatusBadRequest, validationErr.Error())
	}
	var setupErr *zumrails.SetupError
	if errors.As(err, &setupErr) {
		return fiber.NewError(http.StatusBadGateway, setupErr.Error())
	}
	return fiber.NewError(http.StatusInternalServerError, err.Error())
}
