// Package audit keeps an append-only JSON lines record of every command
// issued through the EUI, who issued it and how it ended.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Entry is one audited command invocation.
type Entry struct {
	Timestamp   time.Time              `json:"ts"`
	User        string                 `json:"user"`
	Correlation string                 `json:"correlation"`
	Command     string                 `json:"command"`
	Params      map[string]interface{} `json:"params,omitempty"`
	Outcome     string                 `json:"outcome"`
	Error       string                 `json:"error,omitempty"`
	LatencyMS   int64                  `json:"latencyMs"`
}

// Logger writes entries to <dir>/commands.jsonl.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

func NewLogger(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating audit directory: %w", err)
	}
	path := filepath.Join(dir, "commands.jsonl")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	return &Logger{file: file}, nil
}

// Record writes one entry. A failed write is logged but never fails the
// command that triggered it.
func (l *Logger) Record(user, correlation, command string, params map[string]interface{}, cmdErr error, latency time.Duration) {
	entry := Entry{
		Timestamp:   time.Now().UTC(),
		User:        user,
		Correlation: correlation,
		Command:     command,
		Params:      params,
		Outcome:     "accepted",
		LatencyMS:   latency.Milliseconds(),
	}
	if cmdErr != nil {
		entry.Outcome = "failed"
		entry.Error = cmdErr.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.WithError(err).Error("marshaling audit entry")
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.file.Write(append(data, '\n')); err != nil {
		log.WithError(err).Error("writing audit entry")
	}
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
