package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Leveled logger shared by the service and the CLI.
// - Debug/Info/Warn/Error/Fatal variants and Init(level)
// - registered secrets are masked in every emitted line

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

const redacted = "[REDACTED]"

var (
	mu      sync.RWMutex
	logger  *log.Logger = log.New(os.Stdout, "", 0)
	level   Level       = LevelInfo
	secrets []string
)

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Call early during startup. Default level is Info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// SetOutput redirects log lines, e.g. to stderr for the CLI.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// RegisterSecret masks s in all later output. Empty or very short values are
// ignored so that common substrings are not blanked out.
func RegisterSecret(s string) {
	s = strings.TrimSpace(s)
	if len(s) < 6 {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	for _, existing := range secrets {
		if existing == s {
			return
		}
	}
	secrets = append(secrets, s)
}

func emit(l Level, name, format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	line := fmt.Sprintf(format, v...)
	for _, s := range secrets {
		line = strings.ReplaceAll(line, s, redacted)
	}
	logger.Printf("%s [%s] %s", time.Now().Format(time.RFC3339), strings.ToUpper(name), line)
}

func Debugf(format string, v ...interface{}) { emit(LevelDebug, "debug", format, v...) }
func Infof(format string, v ...interface{})  { emit(LevelInfo, "info", format, v...) }
func Warnf(format string, v ...interface{})  { emit(LevelWarn, "warn", format, v...) }
func Errorf(format string, v ...interface{}) { emit(LevelError, "error", format, v...) }

func Fatalf(format string, v ...interface{}) {
	emit(LevelFatal, "fatal", format, v...)
	os.Exit(1)
}

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
