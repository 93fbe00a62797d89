package zumrails

import (
	"encoding/json"
	"fmt"
)

const (
	successMessage         = "Succeeded"
	fallbackFailureMessage = "Unable to read error message"
)

// invalidResponseMessage is used when the API returns a body that is not JSON.
const invalidResponseMessage = "Invalid response received from the Zūm Rails API. " +
	"Please contact support@zumrails.com if you continue to receive this message."

// errorCodeLabels maps the envelope's numeric statusCode to a stable label.
// Statuses outside the table yield no error code.
var errorCodeLabels = map[int]string{
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	415: "Unsupported Media Type",
	429: "Too Many Requests",
	500: "Internal Server Error",
}

// Response is the normalized outcome of one gateway call.
type Response struct {
	// Success reports whether the envelope carried isError == false.
	Success bool
	// Message is a fixed string on success, otherwise the API's exception
	// message when readable.
	Message string
	// Raw is the parsed response envelope as returned by the API.
	Raw map[string]any
	// Authorization identifies the created resource: the bearer token for a
	// login, the wallet id for a wallet lookup, the transaction id for a
	// purchase. Refund and void envelopes often return an empty result, so an
	// empty Authorization on those actions is not a failure signal.
	Authorization string
	// Test reports whether the call went to the sandbox environment.
	Test bool
	// ErrorCode is the mapped label for the envelope's statusCode, empty when
	// the status is unmapped or the call succeeded.
	ErrorCode string
}

// parseEnvelope decodes the response body. A body that is not valid JSON is
// mapped to a synthetic error envelope with a fixed diagnostic message so
// downstream normalization never has to handle a parse failure.
func parseEnvelope(body []byte) map[string]any {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil || envelope == nil {
		return map[string]any{
			"status":  "error",
			"message": fmt.Sprintf("%s (The raw response returned by the API was %q)", invalidResponseMessage, body),
		}
	}
	return envelope
}

// newResponse normalizes a parsed envelope for the given action.
func newResponse(act action, envelope map[string]any, test bool) *Response {
	success := successFrom(envelope)
	return &Response{
		Success:       success,
		Message:       messageFrom(envelope, success),
		Raw:           envelope,
		Authorization: authorizationFrom(act, envelope),
		Test:          test,
		ErrorCode:     errorCodeFrom(envelope),
	}
}

// successFrom is strict: only an explicit isError == false counts as success.
func successFrom(envelope map[string]any) bool {
	isError, ok := envelope["isError"].(bool)
	return ok && !isError
}

func messageFrom(envelope map[string]any, success bool) string {
	if success {
		return successMessage
	}
	if exception, ok := envelope["responseException"].(map[string]any); ok {
		if msg, ok := exception["exceptionMessage"].(string); ok && msg != "" {
			return msg
		}
	}
	if msg, ok := envelope["message"].(string); ok && msg != "" {
		return msg
	}
	return fallbackFailureMessage
}

func authorizationFrom(act action, envelope map[string]any) string {
	switch act {
	case actionLogin:
		if result, ok := envelope["result"].(map[string]any); ok {
			if token, ok := result["Token"].(string); ok {
				return token
			}
		}
	case actionWallet:
		// The API returns a collection; the account is assumed to hold exactly
		// one relevant wallet, so the first entry is canonical.
		if result, ok := envelope["result"].([]any); ok && len(result) > 0 {
			if first, ok := result[0].(map[string]any); ok {
				if id, ok := first["Id"].(string); ok {
					return id
				}
			}
		}
	case actionPurchase, actionRefund, actionVoid:
		if result, ok := envelope["result"].(map[string]any); ok {
			if id, ok := result["Id"].(string); ok {
				return id
			}
		}
	}
	return ""
}

func errorCodeFrom(envelope map[string]any) string {
	status, ok := envelope["statusCode"].(float64)
	if !ok {
		return ""
	}
	return errorCodeLabels[int(status)]
}
