package response

// Resp is the standard JSON response body for error and system routes.
// Contract endpoints (/ and the chat routes) emit their own documented
// shapes directly.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message attached to successful envelopes.
	MessageSuccess = "Success"

	// InternalServerErrorCode flags unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internals from callers.
	DefaultErrorMessage = "Something went wrong"
)
