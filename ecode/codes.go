package ecode

import "sync"

// Business codes
const (
	OK = 0

	RequestErr       = -400
	ParamErr         = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409
	FieldErr         = -422

	ServerErr          = -500
	ServiceUnavailable = -503
	Deadline           = -504
)

var (
	mu       sync.RWMutex
	messages = map[int]string{
		OK:                 "ok",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		AccessDenied:       "Access denied",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		FieldErr:           "Invalid fields",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		Deadline:           "Deadline exceeded",
	}
)

// Text returns the message registered for a code.
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// Register adds or replaces the message of a code.
func Register(code int, message string) {
	mu.Lock()
	defer mu.Unlock()
	messages[code] = message
}
