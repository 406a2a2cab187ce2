package constants

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Request context
const (
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
	MaxRequestIDLength  = 128
)
