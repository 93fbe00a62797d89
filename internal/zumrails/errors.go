package zumrails

import "fmt"

// ValidationError reports a missing or invalid option. It is returned before
// any request leaves the client.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// SetupError reports a failed login or wallet lookup. The public operation
// that triggered it aborts without attempting the business call; the failed
// normalized response is attached for inspection.
type SetupError struct {
	Response *Response
}

func (e *SetupError) Error() string {
	if e.Response == nil {
		return "gateway setup call failed"
	}
	return fmt.Sprintf("gateway setup call failed: %s", e.Response.Message)
}
