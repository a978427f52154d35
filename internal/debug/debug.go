package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/namesake/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output (defaults to nil, meaning no output)
var debugOutput io.Writer

// debugFile holds the open file handle if debug output goes to a file
var debugFile *os.File

// logger is rebuilt whenever the output changes
var logger = zap.NewNop()

// debugMutex protects access to debug output
var debugMutex sync.Mutex

func newLogger(w io.Writer) *zap.Logger {
	if w == nil {
		return zap.NewNop()
	}
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// SetDebugOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetDebugOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
	logger = newLogger(w)
}

// Logger returns the current zap logger
func Logger() *zap.Logger {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return logger
}

// InitDebugLogFile initializes debug logging to a file.
// Returns the path to the log file, or an error if initialization fails.
// Call CloseDebugLog when done to ensure the file is properly closed.
func InitDebugLogFile() (string, error) {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	logDir := filepath.Join(os.TempDir(), "namesake-debug-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02T150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("debug-%s.log", timestamp))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create debug log file: %w", err)
	}

	debugFile = file
	debugOutput = file
	logger = newLogger(file)
	return logPath, nil
}

// CloseDebugLog closes the debug log file if one is open.
func CloseDebugLog() error {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	if debugFile != nil {
		_ = logger.Sync()
		err := debugFile.Close()
		debugFile = nil
		debugOutput = nil
		logger = zap.NewNop()
		return err
	}
	return nil
}

// IsDebugEnabled returns true if debug mode is enabled by build flag or DEBUG env
func IsDebugEnabled() bool {
	if EnableDebug == "true" {
		return true
	}

	// Allow runtime override via environment variable
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return true
	}

	return false
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	Logger().Named(component).Debug(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// LogFields logs a message with structured zap fields
func LogFields(component, msg string, fields ...zap.Field) {
	if !IsDebugEnabled() {
		return
	}
	Logger().Named(component).Debug(msg, fields...)
}

// LogMatch provides debug logging specifically for match explanations
func LogMatch(format string, args ...interface{}) {
	Log("MATCH", format, args...)
}

// LogDictionary provides debug logging for dictionary loading
func LogDictionary(format string, args ...interface{}) {
	Log("DICT", format, args...)
}

// LogConfig provides debug logging for configuration handling
func LogConfig(format string, args ...interface{}) {
	Log("CONFIG", format, args...)
}
