package errors

// Response is the unified API envelope shape shared with the HTTP error
// handler, mirroring the success envelope in delivery/http/response.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "PROPERTY_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}
