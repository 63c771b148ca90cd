package util

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)
