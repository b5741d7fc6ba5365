package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	// globalLogger holds the singleton logger instance
	globalLogger *ZapLogger
	globalMu     sync.RWMutex
)

// SetGlobalLogger installs the process-wide logger instance
func SetGlobalLogger(logger *ZapLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, falling back to a no-op
// logger when none has been installed (tests, early startup).
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return &ZapLogger{
			Logger: zap.NewNop(),
			sugar:  zap.NewNop().Sugar(),
		}
	}
	return globalLogger
}

// Info logs a message at info level using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a message at warn level using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs a message at error level using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

// Debug logs a message at debug level using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

// Fatal logs a message at fatal level using the global logger and exits
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}
