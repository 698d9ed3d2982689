package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	sessionID    = uuid.New().String()
)

// DefaultLogPath returns ~/.local/state/filetree/filetree.log.
func DefaultLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "state", "filetree", "filetree.log"), nil
}

// Configure sets the log destination. An empty path falls back to
// DefaultLogPath. Directories are created when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(path) == "" {
		def, err := DefaultLogPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to resolve log path: %v\n", err)
			logPath = ""
			return
		}
		path = def
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = ""
		return
	}
	logPath = path
}

// Path returns the configured log file, or "" when logging is disabled.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// SessionID identifies this process run in trace entries.
func SessionID() string {
	return sessionID
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error appends err to the log file.
func Error(err error) {
	if err == nil {
		return
	}

	f, ok := open()
	if !ok {
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Println(err)
}

// Trace appends a JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled := traceEnabled
	mu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Session string      `json:"session"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Session: sessionID,
		Event:   event,
		Payload: payload,
	}

	f, ok := open()
	if !ok {
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

func open() (*os.File, bool) {
	path := Path()
	if path == "" {
		return nil, false
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil, false
	}
	return f, true
}
