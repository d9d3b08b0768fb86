package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidRequestError   = "invalid_request"
	HttpNotFoundError         = "not_found"
	HttpDuplicateRecordError  = "duplicate_record"
	HttpStoreUnavailableError = "store_unavailable"
)

// ErrorResponse is the error response body shared by all HTTP handlers.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
