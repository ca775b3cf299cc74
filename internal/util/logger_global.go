package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface = discardLogger()
	loggerMu     sync.RWMutex
)

// InitLogger replaces the global logger. Fields are attached to every entry.
func InitLogger(cfg LoggerConfig, fields ...Field) error {
	logger, err := NewLogger(cfg)
	if err != nil {
		return err
	}
	SetLogger(logger.With(fields...))
	return nil
}

// SetLogger installs l as the global logger.
func SetLogger(l LoggerInterface) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	globalLogger = l
}

// L returns the global logger.
func L() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// CloseLogger flushes and closes the global logger outputs.
func CloseLogger() error {
	return L().Close()
}

func LogInfo(msg string, fields ...Field) {
	L().Info(msg, fields...)
}

func LogInfof(format string, args ...interface{}) {
	L().Infof(format, args...)
}

func LogDebug(msg string, fields ...Field) {
	L().Debug(msg, fields...)
}

func LogDebugf(format string, args ...interface{}) {
	L().Debugf(format, args...)
}

func LogWarn(msg string, fields ...Field) {
	L().Warn(msg, fields...)
}

func LogWarnf(format string, args ...interface{}) {
	L().Warnf(format, args...)
}

func LogError(msg string, fields ...Field) {
	L().Error(msg, fields...)
}

func LogErrorf(format string, args ...interface{}) {
	L().Errorf(format, args...)
}
