package carbonapi

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var currentLevel atomic.Int32

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

func init() { currentLevel.Store(int32(LevelInfo)) }

// SetLogLevel parses and sets the global log level. Unknown names are
// ignored, leaving the current level in place.
func SetLogLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		currentLevel.Store(int32(LevelDebug))
	case "info":
		currentLevel.Store(int32(LevelInfo))
	case "warn", "warning":
		currentLevel.Store(int32(LevelWarn))
	case "error":
		currentLevel.Store(int32(LevelError))
	}
}

func logf(l LogLevel, prefix, format string, args ...interface{}) {
	if LogLevel(currentLevel.Load()) > l {
		return
	}
	if len(args) == 0 {
		// plain message: skip fmt so literal % survives
		baseLogger.Printf("[%s] %s", prefix, format)
		return
	}
	baseLogger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, "DEBUG", format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, "INFO", format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, "WARN", format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, "ERROR", format, a...) }
