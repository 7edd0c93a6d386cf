package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "ORDER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope written by the central error handler
type Response struct {
	Success   bool       `json:"success"`
	Status    string     `json:"status"` // "fail" for 4xx, "error" for 5xx
	Code      int        `json:"code"`
	Message   string     `json:"message"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
}
