package audit

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, dir string) []Entry {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, "commands.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestRecord(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	require.NoError(t, err)
	defer l.Close()

	l.Record("operator", "c-1", "raiseM1M3", nil, nil, 120*time.Millisecond)
	l.Record("operator", "c-2", "setFanRPM",
		map[string]interface{}{"rpm": 900.0}, errors.New("command rejected"), 5*time.Millisecond)

	entries := readEntries(t, dir)
	require.Len(t, entries, 2)

	assert.Equal(t, "raiseM1M3", entries[0].Command)
	assert.Equal(t, "accepted", entries[0].Outcome)
	assert.Equal(t, int64(120), entries[0].LatencyMS)
	assert.Empty(t, entries[0].Error)

	assert.Equal(t, "failed", entries[1].Outcome)
	assert.Equal(t, "command rejected", entries[1].Error)
	assert.Equal(t, 900.0, entries[1].Params["rpm"])
}

func TestAppendsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	l, err := NewLogger(dir)
	require.NoError(t, err)
	l.Record("operator", "c-1", "start", nil, nil, 0)
	require.NoError(t, l.Close())

	l, err = NewLogger(dir)
	require.NoError(t, err)
	l.Record("operator", "c-2", "enable", nil, nil, 0)
	require.NoError(t, l.Close())

	entries := readEntries(t, dir)
	require.Len(t, entries, 2)
	assert.Equal(t, "start", entries[0].Command)
	assert.Equal(t, "enable", entries[1].Command)
}
