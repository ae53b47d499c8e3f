package utils

import (
	"log/slog"
	"strings"
)

// LogEvent writes a standardized service event with module/action/request_id.
// Avoid logging full payloads; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	slog.Info(message,
		"module", strings.ToLower(module),
		"action", action,
		"request_id", strings.TrimSpace(requestID),
	)
}
