package server

import "math"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Debug server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgDecodeFailed     = "Failed to decode request"
)

// Client-facing error messages
const (
	ErrMsgInvalidRequest = "Invalid request body"
	ErrMsgSlotNotFound   = "Save slot not found"
	ErrMsgServerError    = "Server error occurred"
)

// Request limits
const (
	MaxRequestBytes = 1 << 16
	MaxLevelsPerUp  = math.MaxInt8
)

// Paths excluded from request logging
var quietPaths = []string{
	"/healthz",
	"/metrics",
}
