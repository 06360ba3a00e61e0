package filestore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/breeew/aicare-api/pkg/types"
)

// RecordLog appends patient records to a file, one JSON object per line.
type RecordLog struct {
	path string
	mu   sync.Mutex
}

func NewRecordLog(path string) *RecordLog {
	return &RecordLog{path: path}
}

func (l *RecordLog) Path() string {
	return l.path
}

func (l *RecordLog) Append(record types.PatientRecord) error {
	line, err := json.Marshal(types.PatientRecord{
		Timestamp: record.Timestamp,
		RawText:   record.RawText,
		Lang:      record.Lang,
	})
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err = os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err = f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load returns every record in file order. Malformed lines are skipped.
func (l *RecordLog) Load() ([]types.PatientRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.PatientRecord{}, nil
		}
		return nil, err
	}

	list := []types.PatientRecord{}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), len(raw)+1)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record types.PatientRecord
		if err = json.Unmarshal(line, &record); err != nil {
			slog.Warn("skip malformed record log line", slog.String("path", l.path), slog.Int("line", lineNo), slog.String("error", err.Error()))
			continue
		}
		list = append(list, record)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Reset leaves an empty file behind.
func (l *RecordLog) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.path, nil, 0o644)
}
