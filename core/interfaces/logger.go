package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps the core independent of the logging backend.
//
// Example usage:
//
//	logger.Info("Feed refreshed", map[string]interface{}{
//		"category": "movie",
//		"items":    40,
//	})
//
//	logger.Error("Catalog request failed", map[string]interface{}{
//		"operation": "search",
//		"error":     err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
