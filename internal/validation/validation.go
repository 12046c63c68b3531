package validation

import (
	"regexp"
	"strings"
)

// MaxMessageLength caps a chat message; anything longer is rejected before
// the core pipeline runs.
const MaxMessageLength = 2000

// SessionIDPattern defines the valid session id format: alphanumeric,
// hyphens, underscores. UUIDs fit naturally.
var SessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateMessage checks that a chat message is present and within bounds.
func ValidateMessage(message string) (bool, string) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return false, "message is required"
	}
	if len(message) > MaxMessageLength {
		return false, "message is too long"
	}
	return true, ""
}

// ValidateSessionID checks a caller-supplied session id. An empty id is
// valid: the handler generates one.
func ValidateSessionID(sessionID string) bool {
	if sessionID == "" {
		return true
	}
	if len(sessionID) > 100 {
		return false
	}
	return SessionIDPattern.MatchString(sessionID)
}
